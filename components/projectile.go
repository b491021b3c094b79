package components

import (
	"github.com/lixenwraith/sprite-quest/constants"
	"github.com/lixenwraith/sprite-quest/core"
	"github.com/lixenwraith/sprite-quest/vmath"
)

// Projectile flies in a straight line toward the point captured at fire time
type Projectile struct {
	ID     core.Entity
	Pos    vmath.Vec2
	Vel    vmath.Vec2
	Damage int
	Life   int // ticks
}

// NewProjectile aims from origin toward target; a zero-length aim leaves it stationary
func NewProjectile(id core.Entity, origin, target vmath.Vec2, damage int) *Projectile {
	return &Projectile{
		ID:     id,
		Pos:    origin,
		Vel:    vmath.Toward(origin, target, constants.ProjectileSpeed),
		Damage: damage,
		Life:   constants.ProjectileLifeTicks,
	}
}

// Bounds returns the projectile hitbox
func (p *Projectile) Bounds() vmath.Rect {
	return vmath.Rect{X: p.Pos.X, Y: p.Pos.Y, W: constants.ProjectileSize, H: constants.ProjectileSize}
}

// Alive reports remaining life
func (p *Projectile) Alive() bool {
	return p.Life > 0
}
