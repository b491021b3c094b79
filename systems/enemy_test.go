package systems

import (
	"testing"

	"github.com/lixenwraith/sprite-quest/components"
	"github.com/lixenwraith/sprite-quest/constants"
	"github.com/lixenwraith/sprite-quest/engine"
	"github.com/lixenwraith/sprite-quest/events"
	"github.com/lixenwraith/sprite-quest/vmath"
)

func TestMonsterMeleeRespectsCooldown(t *testing.T) {
	w, _ := newTestWorld(t)
	pp := w.Player.Pos
	m := placeMonster(w, components.SpeciesSlime, pp.X+20, pp.Y+10)
	silenceSkills(m)
	sys := NewMonsterSystem()

	sys.Update(w, constants.GameUpdateInterval)
	if w.Player.HP != constants.PlayerMaxHP-3 {
		t.Fatalf("Expected slime hit for 3, hp %d", w.Player.HP)
	}
	if m.AttackCooldown != m.AttackInterval {
		t.Errorf("Expected cooldown reset to %d, got %d", m.AttackInterval, m.AttackCooldown)
	}

	sys.Update(w, constants.GameUpdateInterval)
	if w.Player.HP != constants.PlayerMaxHP-3 {
		t.Errorf("Expected no second hit during cooldown, hp %d", w.Player.HP)
	}

	if n := countEvents(drainEvents(w), events.EventPlayerHit); n != 1 {
		t.Errorf("Expected 1 hit event, got %d", n)
	}
}

func TestMonsterChasesOnlyInsideAggro(t *testing.T) {
	w, _ := newTestWorld(t)
	pp := w.Player.Pos
	near := placeMonster(w, components.SpeciesGoblin, pp.X+150, pp.Y)
	far := placeMonster(w, components.SpeciesGoblin, pp.X+300, pp.Y)
	silenceSkills(near)
	silenceSkills(far)

	NewMonsterSystem().Update(w, constants.GameUpdateInterval)

	if near.Pos.X != pp.X+149 {
		t.Errorf("Expected near monster to step 1 toward player, at %v", near.Pos.X)
	}
	if far.Pos.X != pp.X+300 {
		t.Errorf("Expected far monster to stay, at %v", far.Pos.X)
	}
}

// onScreenMonster places a monster visible but outside aggro and melee range
func onScreenMonster(t *testing.T, sp components.Species, skill components.Skill) (*engine.World, *components.Enemy) {
	t.Helper()
	w, _ := newTestWorld(t)
	pp := w.Player.Pos
	m := placeMonster(w, sp, pp.X+220, pp.Y)
	m.Skills = []components.Skill{skill}
	m.SkillChance = 1
	if !w.Camera.Visible(m.Bounds()) {
		t.Fatal("Test monster should be on screen")
	}
	return w, m
}

func TestMonsterSkills(t *testing.T) {
	tests := []struct {
		name    string
		species components.Species
		skill   components.Skill
		wantHP  int
		check   func(t *testing.T, m *components.Enemy)
	}{
		{"jump attack doubles", components.SpeciesSlime, components.SkillJumpAttack, 100 - 6, nil},
		{"double attack hits twice", components.SpeciesGoblin, components.SkillDoubleAttack, 100 - 10, nil},
		{"poison spit", components.SpeciesSlime, components.SkillPoisonSpit, 100, nil},
		{"ground slam out of range", components.SpeciesOrc, components.SkillGroundSlam, 100, nil},
		{"speed boost", components.SpeciesGoblin, components.SkillSpeedBoost, 100, func(t *testing.T, m *components.Enemy) {
			if m.EffectiveSpeed() != 2 {
				t.Errorf("Expected boosted speed 2, got %v", m.EffectiveSpeed())
			}
		}},
		{"berserker rage", components.SpeciesOrc, components.SkillBerserkerRage, 100, func(t *testing.T, m *components.Enemy) {
			if m.EffectiveAttack() != 12 {
				t.Errorf("Expected raged attack 12, got %d", m.EffectiveAttack())
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, m := onScreenMonster(t, tt.species, tt.skill)
			NewMonsterSystem().Update(w, constants.GameUpdateInterval)

			if w.Player.HP != tt.wantHP {
				t.Errorf("Expected hp %d, got %d", tt.wantHP, w.Player.HP)
			}
			if m.SkillCooldown != m.SkillInterval {
				t.Errorf("Expected skill cooldown %d, got %d", m.SkillInterval, m.SkillCooldown)
			}
			if tt.check != nil {
				tt.check(t, m)
			}
		})
	}
}

func TestPoisonSpitIsHarmless(t *testing.T) {
	w, _ := newTestWorld(t)
	pp := w.Player.Pos
	m := placeMonster(w, components.SpeciesSlime, pp.X+20, pp.Y)
	m.Skills = []components.Skill{components.SkillPoisonSpit}
	m.SkillChance = 1
	m.AttackCooldown = m.AttackInterval

	NewMonsterSystem().Update(w, constants.GameUpdateInterval)

	if w.Player.HP != constants.PlayerMaxHP {
		t.Errorf("Expected spit to deal no damage, hp %d", w.Player.HP)
	}
	if countEvents(drainEvents(w), events.EventSkillUsed) != 1 {
		t.Error("Expected one skill event")
	}
	if len(w.Effects) != 1 || w.Effects[0].Kind != components.EffectPoison {
		t.Errorf("Expected poison cloud effect, got %+v", w.Effects)
	}
}

func TestBerserkerExpires(t *testing.T) {
	m := &components.Enemy{BaseAttack: 8}
	m.AddBuff(components.BuffAttack, constants.BerserkerMultiplier, constants.BerserkerTicks)

	for i := 0; i < constants.BerserkerTicks; i++ {
		m.DrainTimers()
	}
	if m.EffectiveAttack() != 8 {
		t.Errorf("Expected attack back to 8, got %d", m.EffectiveAttack())
	}
}

func TestOffScreenMonsterNoSkill(t *testing.T) {
	w, _ := newTestWorld(t)
	m := placeMonster(w, components.SpeciesSlime, 0, 0)
	m.Skills = []components.Skill{components.SkillJumpAttack}
	m.SkillChance = 1

	NewMonsterSystem().Update(w, constants.GameUpdateInterval)

	if w.Player.HP != constants.PlayerMaxHP {
		t.Errorf("Expected no off-screen skill, hp %d", w.Player.HP)
	}
	if m.SkillCooldown != 0 {
		t.Errorf("Expected skill cooldown untouched, got %d", m.SkillCooldown)
	}
}

func TestBossMelee(t *testing.T) {
	w, _ := newTestWorld(t)
	pp := w.Player.Pos
	b := w.AddBoss(vmath.Vec2{X: pp.X + 50, Y: pp.Y})
	b.SkillChance = 0

	NewBossSystem().Update(w, constants.GameUpdateInterval)

	if b.Pos.X != pp.X+48 {
		t.Errorf("Expected boss to step 2 toward player, at %v", b.Pos.X)
	}
	if w.Player.HP != constants.PlayerMaxHP-25 {
		t.Errorf("Expected boss hit for 25, hp %d", w.Player.HP)
	}
}

func TestBossSkillsOffScreen(t *testing.T) {
	tests := []struct {
		skill  components.Skill
		wantHP int
	}{
		{components.SkillFireBreath, 85},
		{components.SkillWingAttack, 80},
		{components.SkillDragonRoar, 90},
	}

	for _, tt := range tests {
		t.Run(string(tt.skill), func(t *testing.T) {
			w, _ := newTestWorld(t)
			b := w.AddBoss(vmath.Vec2{X: 0, Y: 0})
			b.Skills = []components.Skill{tt.skill}
			b.SkillChance = 1
			if w.Camera.Visible(b.Bounds()) {
				t.Fatal("Test boss should be off screen")
			}

			NewBossSystem().Update(w, constants.GameUpdateInterval)

			if w.Player.HP != tt.wantHP {
				t.Errorf("Expected hp %d, got %d", tt.wantHP, w.Player.HP)
			}
			if tt.skill == components.SkillDragonRoar {
				if b.BaseAttack != 30 || b.BaseSpeed != 3 {
					t.Errorf("Expected roar to raise attack 30 speed 3, got %d %v", b.BaseAttack, b.BaseSpeed)
				}
			}
		})
	}
}
