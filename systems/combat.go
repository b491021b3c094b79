package systems

import (
	"github.com/lixenwraith/sprite-quest/components"
	"github.com/lixenwraith/sprite-quest/constants"
	"github.com/lixenwraith/sprite-quest/engine"
	"github.com/lixenwraith/sprite-quest/events"
	"github.com/lixenwraith/sprite-quest/vmath"
)

// CombatSystem resolves player actions: ranged attack, area attack, potion
// Runs at dispatch time, before the tick's systems
type CombatSystem struct{}

// NewCombatSystem creates a new combat handler
func NewCombatSystem() *CombatSystem {
	return &CombatSystem{}
}

// EventTypes returns the event types CombatSystem handles
func (s *CombatSystem) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventAttackRequest,
		events.EventAreaAttackRequest,
		events.EventPotionRequest,
	}
}

// HandleEvent processes player action requests
func (s *CombatSystem) HandleEvent(world *engine.World, ev events.GameEvent) {
	if world.GameOver {
		return
	}
	switch ev.Type {
	case events.EventAttackRequest:
		Attack(world)
	case events.EventAreaAttackRequest:
		AreaAttack(world)
	case events.EventPotionRequest:
		UsePotion(world)
	}
}

// NearestEnemy returns the living monster or boss closest to the player, nil if none
// Ties favor monsters in spawn order
func NearestEnemy(world *engine.World) *components.Enemy {
	origin := world.Player.Pos
	var nearest *components.Enemy
	best := 0.0

	for _, m := range world.Monsters {
		if m.IsDead() {
			continue
		}
		d := vmath.Distance(origin, m.Pos)
		if nearest == nil || d < best {
			nearest, best = m, d
		}
	}
	if b := world.Boss; b != nil && !b.IsDead() {
		if d := vmath.Distance(origin, b.Pos); nearest == nil || d < best {
			nearest = b
		}
	}
	return nearest
}

// Attack fires a projectile from the player center at the nearest enemy center
func Attack(world *engine.World) *components.Projectile {
	target := NearestEnemy(world)
	if target == nil {
		world.Emit(events.EventNoTarget, nil)
		return nil
	}

	p := world.Player
	origin := p.Center()
	proj := world.AddProjectile(origin, target.Center(), p.Attack)
	world.AddEffect(components.EffectAttack, origin)
	world.Emit(events.EventAttackFired, &events.AttackPayload{Target: target.Species, Damage: p.Attack})
	return proj
}

// AreaAttack damages every monster whose center is within range of the player center
// Each kill schedules 1-2 replacement monsters
func AreaAttack(world *engine.World) {
	p := world.Player
	if p.AreaCooldown > 0 {
		world.Emit(events.EventAreaAttack, &events.AreaAttackPayload{OnCooldown: true})
		return
	}
	p.AreaCooldown = constants.AreaAttackCooldownTicks

	center := p.Center()
	hits, total := 0, 0
	for _, m := range world.Monsters {
		if m.IsDead() || vmath.Distance(center, m.Center()) >= constants.AreaAttackRange {
			continue
		}
		m.TakeDamage(p.Attack)
		hits++
		total += p.Attack

		if m.IsDead() {
			world.PendingSpawns = append(world.PendingSpawns, engine.PendingSpawn{
				Count:   1 + world.Rand.Intn(2),
				DueTick: world.Tick + constants.AreaKillRespawnDelayTicks,
			})
		}
	}

	world.AddEffect(components.EffectAttack, center)
	world.Emit(events.EventAreaAttack, &events.AreaAttackPayload{Hits: hits, TotalDamage: total})
}

// UsePotion drinks one carried potion
func UsePotion(world *engine.World) {
	p := world.Player
	if p.Potions <= 0 {
		world.Emit(events.EventPotionUsed, &events.PotionPayload{Empty: true})
		return
	}
	before := p.HP
	p.Potions--
	p.Heal(constants.PotionHealAmount)
	world.Emit(events.EventPotionUsed, &events.PotionPayload{Healed: p.HP - before, Remaining: p.Potions})
}
