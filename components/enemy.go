package components

import (
	"math"

	"github.com/lixenwraith/sprite-quest/core"
	"github.com/lixenwraith/sprite-quest/vmath"
)

// Enemy is the shared shape of monsters and the boss
type Enemy struct {
	ID      core.Entity
	Species Species
	Pos     vmath.Vec2

	Width, Height float64

	HP, MaxHP  int
	BaseAttack int
	BaseSpeed  float64

	// Cooldowns count down in ticks; intervals are the reset values
	AttackCooldown int
	AttackInterval int
	SkillCooldown  int
	SkillInterval  int
	SkillChance    float64

	Skills     []Skill
	GoldReward int
	ExpReward  int

	Buffs []Buff
}

// Bounds returns the enemy hitbox
func (e *Enemy) Bounds() vmath.Rect {
	return vmath.Rect{X: e.Pos.X, Y: e.Pos.Y, W: e.Width, H: e.Height}
}

// Center returns the hitbox center
func (e *Enemy) Center() vmath.Vec2 {
	return e.Bounds().Center()
}

// IsDead reports whether hp reached zero
func (e *Enemy) IsDead() bool {
	return e.HP <= 0
}

// TakeDamage subtracts hp, floored at zero
func (e *Enemy) TakeDamage(n int) {
	if n <= 0 {
		return
	}
	e.HP -= n
	if e.HP < 0 {
		e.HP = 0
	}
}

// EffectiveAttack is the base attack scaled by active attack buffs
func (e *Enemy) EffectiveAttack() int {
	return Scale(e.BaseAttack, Multiplier(e.Buffs, BuffAttack))
}

// EffectiveSpeed is the base speed scaled by active speed buffs
func (e *Enemy) EffectiveSpeed() float64 {
	return e.BaseSpeed * Multiplier(e.Buffs, BuffSpeed)
}

// AddBuff appends a timed buff; overlapping buffs of the same kind stack multiplicatively
func (e *Enemy) AddBuff(kind BuffKind, multiplier float64, ticks int) {
	e.Buffs = append(e.Buffs, Buff{Kind: kind, Multiplier: multiplier, Remaining: ticks})
}

// DrainTimers advances cooldowns and buff lifetimes by one tick
func (e *Enemy) DrainTimers() {
	if e.AttackCooldown > 0 {
		e.AttackCooldown--
	}
	if e.SkillCooldown > 0 {
		e.SkillCooldown--
	}
	if len(e.Buffs) > 0 {
		e.Buffs = TickBuffs(e.Buffs)
	}
}

// Scale multiplies an integer stat and rounds to the nearest whole point
func Scale(n int, m float64) int {
	return int(math.Round(float64(n) * m))
}
