package components

import (
	"github.com/lixenwraith/sprite-quest/core"
	"github.com/lixenwraith/sprite-quest/vmath"
)

// VisualEffect is a transient marker the front end draws until it expires
type VisualEffect struct {
	ID       core.Entity
	Kind     EffectKind
	Pos      vmath.Vec2
	Life     int // ticks remaining
	Duration int // initial life, for fading
}

// Alive reports remaining life
func (v *VisualEffect) Alive() bool {
	return v.Life > 0
}

// Progress returns 0.0 at spawn rising to 1.0 at expiry
func (v *VisualEffect) Progress() float64 {
	if v.Duration <= 0 {
		return 1
	}
	return 1 - float64(v.Life)/float64(v.Duration)
}
