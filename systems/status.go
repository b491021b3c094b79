package systems

import (
	"fmt"

	"github.com/lixenwraith/sprite-quest/components"
	"github.com/lixenwraith/sprite-quest/engine"
	"github.com/lixenwraith/sprite-quest/events"
)

// StatusSystem turns outcome events into the one-line status message
type StatusSystem struct{}

// NewStatusSystem creates a new status handler
func NewStatusSystem() *StatusSystem {
	return &StatusSystem{}
}

// EventTypes returns the event types StatusSystem handles
func (s *StatusSystem) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventGameReset,
		events.EventAttackFired,
		events.EventNoTarget,
		events.EventAreaAttack,
		events.EventPlayerHit,
		events.EventSkillUsed,
		events.EventEnemyKilled,
		events.EventBossSpawned,
		events.EventItemCollected,
		events.EventPotionUsed,
		events.EventLevelUp,
		events.EventPurchase,
		events.EventPlayerDied,
	}
}

// HandleEvent updates World.Status
func (s *StatusSystem) HandleEvent(world *engine.World, ev events.GameEvent) {
	if msg := s.message(world, ev); msg != "" {
		world.SetStatus(msg)
	}
}

func (s *StatusSystem) message(world *engine.World, ev events.GameEvent) string {
	b := world.Bestiary

	switch ev.Type {
	case events.EventGameReset:
		return "A new adventure begins!"

	case events.EventAttackFired:
		if p, ok := ev.Payload.(*events.AttackPayload); ok {
			return fmt.Sprintf("Attacking %s!", b.DisplayName(p.Target))
		}

	case events.EventNoTarget:
		return "No monster to attack."

	case events.EventAreaAttack:
		if p, ok := ev.Payload.(*events.AreaAttackPayload); ok {
			switch {
			case p.OnCooldown:
				return "Area attack is recharging."
			case p.Hits == 0:
				return "Area attack hit nothing."
			default:
				return fmt.Sprintf("Area attack hit %d monsters for %d damage!", p.Hits, p.TotalDamage)
			}
		}

	case events.EventPlayerHit:
		if p, ok := ev.Payload.(*events.PlayerHitPayload); ok {
			if p.Skill != "" {
				return fmt.Sprintf("%s used %s! (-%d hp)", b.DisplayName(p.Source), b.SkillName(p.Skill), p.Damage)
			}
			return fmt.Sprintf("Hit by %s! (-%d hp)", b.DisplayName(p.Source), p.Damage)
		}

	case events.EventSkillUsed:
		if p, ok := ev.Payload.(*events.SkillUsedPayload); ok {
			return fmt.Sprintf("%s used %s!", b.DisplayName(p.Source), b.SkillName(p.Skill))
		}

	case events.EventEnemyKilled:
		if p, ok := ev.Payload.(*events.KillPayload); ok {
			verb := "Defeated"
			if p.Boss {
				verb = "Slew the boss"
			}
			return fmt.Sprintf("%s %s! +%d exp, +%d gold", verb, b.DisplayName(p.Species), p.Exp, p.Gold)
		}

	case events.EventBossSpawned:
		if p, ok := ev.Payload.(*events.BossSpawnedPayload); ok {
			return fmt.Sprintf("The %s has appeared!", b.DisplayName(p.Species))
		}

	case events.EventItemCollected:
		if p, ok := ev.Payload.(*events.ItemCollectedPayload); ok {
			if p.Kind == components.ItemGold {
				return fmt.Sprintf("Picked up %d gold.", p.Amount)
			}
			return "Picked up a potion."
		}

	case events.EventPotionUsed:
		if p, ok := ev.Payload.(*events.PotionPayload); ok {
			if p.Empty {
				return "No potions left!"
			}
			return fmt.Sprintf("Healed %d hp. %d potions left.", p.Healed, p.Remaining)
		}

	case events.EventLevelUp:
		if p, ok := ev.Payload.(*events.LevelUpPayload); ok {
			return fmt.Sprintf("Level up! Now level %d.", p.Level)
		}

	case events.EventPurchase:
		if p, ok := ev.Payload.(*events.PurchasePayload); ok {
			if !p.OK {
				return fmt.Sprintf("Not enough gold for %s (%d needed).", p.Name, p.Price)
			}
			return fmt.Sprintf("Bought %s for %d gold.", p.Name, p.Price)
		}

	case events.EventPlayerDied:
		return "You died! Press r to play again."
	}
	return ""
}
