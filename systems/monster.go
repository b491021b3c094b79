package systems

import (
	"math"
	"time"

	"github.com/lixenwraith/sprite-quest/components"
	"github.com/lixenwraith/sprite-quest/constants"
	"github.com/lixenwraith/sprite-quest/engine"
	"github.com/lixenwraith/sprite-quest/events"
	"github.com/lixenwraith/sprite-quest/vmath"
)

// MonsterSystem drives regular monsters: chase, melee and skills
type MonsterSystem struct{}

// NewMonsterSystem creates a new monster system
func NewMonsterSystem() *MonsterSystem {
	return &MonsterSystem{}
}

// Priority returns the system's priority
func (s *MonsterSystem) Priority() int {
	return constants.PriorityMonster
}

// Update advances every living monster by one tick
func (s *MonsterSystem) Update(world *engine.World, dt time.Duration) {
	for _, m := range world.Monsters {
		if m.IsDead() {
			continue
		}
		m.DrainTimers()

		d := vmath.Distance(m.Pos, world.Player.Pos)
		if d > 0 && d < constants.MonsterAggroRadius {
			chaseStep(world, m)
		}

		s.melee(world, m)

		if m.SkillCooldown <= 0 && world.Camera.Visible(m.Bounds()) && world.Rand.Float64() < m.SkillChance {
			m.SkillCooldown = m.SkillInterval
			s.useSkill(world, m, pickSkill(world, m))
		}
	}
}

// melee hits the player when in contact and off cooldown
func (s *MonsterSystem) melee(world *engine.World, m *components.Enemy) {
	if m.AttackCooldown > 0 {
		return
	}
	delta := world.Player.Pos.Sub(m.Pos)
	if math.Abs(delta.X) >= constants.MonsterContactBox || math.Abs(delta.Y) >= constants.MonsterContactBox {
		return
	}
	if delta.Length() >= constants.MonsterMeleeRange {
		return
	}

	m.AttackCooldown = m.AttackInterval
	hitPlayer(world, m.Species, "", m.EffectiveAttack())
	world.AddEffect(components.EffectMelee, m.Center())
}

// useSkill executes one monster skill
func (s *MonsterSystem) useSkill(world *engine.World, m *components.Enemy, skill components.Skill) {
	if skill == "" {
		return
	}
	world.Emit(events.EventSkillUsed, &events.SkillUsedPayload{Source: m.Species, Skill: skill})

	dist := vmath.Distance(m.Pos, world.Player.Pos)
	atk := m.EffectiveAttack()

	switch skill {
	case components.SkillPoisonSpit:
		// Poison cloud is a warning cue only
		world.AddEffect(components.EffectPoison, m.Center())
	case components.SkillJumpAttack:
		world.AddEffect(components.EffectJump, m.Center())
		hitPlayer(world, m.Species, skill, components.Scale(atk, constants.JumpAttackMultiplier))
	case components.SkillSpeedBoost:
		m.AddBuff(components.BuffSpeed, constants.SpeedBoostMultiplier, constants.SpeedBoostTicks)
	case components.SkillDoubleAttack:
		hitPlayer(world, m.Species, skill, atk)
		hitPlayer(world, m.Species, skill, atk)
	case components.SkillGroundSlam:
		world.AddEffect(components.EffectSlam, m.Center())
		if dist < constants.GroundSlamRange {
			hitPlayer(world, m.Species, skill, components.Scale(atk, constants.GroundSlamMultiplier))
		}
	case components.SkillBerserkerRage:
		m.AddBuff(components.BuffAttack, constants.BerserkerMultiplier, constants.BerserkerTicks)
	}
}

// BossSystem drives the boss: always chases, wider melee, dragon skills
type BossSystem struct{}

// NewBossSystem creates a new boss system
func NewBossSystem() *BossSystem {
	return &BossSystem{}
}

// Priority returns the system's priority
func (s *BossSystem) Priority() int {
	return constants.PriorityBoss
}

// Update advances the boss by one tick when present
func (s *BossSystem) Update(world *engine.World, dt time.Duration) {
	b := world.Boss
	if b == nil || b.IsDead() {
		return
	}
	b.DrainTimers()

	if vmath.Distance(b.Pos, world.Player.Pos) > 0 {
		chaseStep(world, b)
	}

	if b.AttackCooldown <= 0 {
		delta := world.Player.Pos.Sub(b.Pos)
		if math.Abs(delta.X) < constants.BossContactBox &&
			math.Abs(delta.Y) < constants.BossContactBox &&
			delta.Length() < constants.BossMeleeRange {
			b.AttackCooldown = b.AttackInterval
			hitPlayer(world, b.Species, "", b.EffectiveAttack())
			world.AddEffect(components.EffectMelee, b.Center())
		}
	}

	// Unlike monsters the boss uses skills off-screen too
	if b.SkillCooldown <= 0 && world.Rand.Float64() < b.SkillChance {
		b.SkillCooldown = b.SkillInterval
		s.useSkill(world, b, pickSkill(world, b))
	}
}

func (s *BossSystem) useSkill(world *engine.World, b *components.Enemy, skill components.Skill) {
	if skill == "" {
		return
	}
	world.Emit(events.EventSkillUsed, &events.SkillUsedPayload{Source: b.Species, Skill: skill})

	switch skill {
	case components.SkillFireBreath:
		world.AddEffect(components.EffectFire, b.Center())
		hitPlayer(world, b.Species, skill, constants.FireBreathDamage)
	case components.SkillWingAttack:
		world.AddEffect(components.EffectWing, b.Center())
		hitPlayer(world, b.Species, skill, constants.WingAttackDamage)
	case components.SkillDragonRoar:
		world.AddEffect(components.EffectRoar, b.Center())
		hitPlayer(world, b.Species, skill, constants.DragonRoarDamage)
		b.BaseAttack += constants.DragonRoarAttackBonus
		b.BaseSpeed += constants.DragonRoarSpeedBonus
	}
}
