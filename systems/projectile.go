package systems

import (
	"time"

	"github.com/lixenwraith/sprite-quest/components"
	"github.com/lixenwraith/sprite-quest/constants"
	"github.com/lixenwraith/sprite-quest/engine"
)

// ProjectileSystem moves player projectiles and resolves their hits
type ProjectileSystem struct{}

// NewProjectileSystem creates a new projectile system
func NewProjectileSystem() *ProjectileSystem {
	return &ProjectileSystem{}
}

// Priority returns the system's priority
func (s *ProjectileSystem) Priority() int {
	return constants.PriorityProjectile
}

// Update advances projectiles, culls expired or out-of-world ones, and applies the first hit
func (s *ProjectileSystem) Update(world *engine.World, dt time.Duration) {
	bounds := world.Bounds()
	kept := world.Projectiles[:0]

	for _, p := range world.Projectiles {
		p.Pos = p.Pos.Add(p.Vel)
		p.Life--

		if !p.Alive() || !bounds.Contains(p.Pos) {
			continue
		}
		if s.resolveHit(world, p) {
			continue
		}
		kept = append(kept, p)
	}

	clearTail(world.Projectiles, len(kept))
	world.Projectiles = kept
}

// resolveHit damages the first living enemy overlapping p, monsters before the boss
func (s *ProjectileSystem) resolveHit(world *engine.World, p *components.Projectile) bool {
	box := p.Bounds()

	for _, m := range world.Monsters {
		if m.IsDead() || !box.Overlaps(m.Bounds()) {
			continue
		}
		m.TakeDamage(p.Damage)
		world.AddEffect(components.EffectHit, p.Pos)
		return true
	}

	if b := world.Boss; b != nil && !b.IsDead() && box.Overlaps(b.Bounds()) {
		b.TakeDamage(p.Damage)
		world.AddEffect(components.EffectHit, p.Pos)
		return true
	}
	return false
}

// clearTail nils the dropped pointer slots so removed entities can be collected
func clearTail[T any](s []*T, from int) {
	for i := from; i < len(s); i++ {
		s[i] = nil
	}
}
