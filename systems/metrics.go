package systems

import (
	"github.com/lixenwraith/sprite-quest/engine"
	"github.com/lixenwraith/sprite-quest/events"
	"github.com/lixenwraith/sprite-quest/status"
)

// MetricsSystem counts run outcomes into a status registry
type MetricsSystem struct {
	reg *status.Registry
}

// NewMetricsSystem creates a counter handler over reg
func NewMetricsSystem(reg *status.Registry) *MetricsSystem {
	return &MetricsSystem{reg: reg}
}

// EventTypes returns the event types MetricsSystem handles
func (s *MetricsSystem) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventGameReset,
		events.EventAttackFired,
		events.EventAreaAttack,
		events.EventPlayerHit,
		events.EventEnemyKilled,
		events.EventBossSpawned,
		events.EventItemCollected,
		events.EventPotionUsed,
		events.EventLevelUp,
		events.EventPurchase,
		events.EventPlayerDied,
	}
}

// HandleEvent updates counters for one event
func (s *MetricsSystem) HandleEvent(world *engine.World, ev events.GameEvent) {
	switch ev.Type {
	case events.EventGameReset:
		s.reg.Inc(status.Resets, 1)
	case events.EventAttackFired:
		s.reg.Inc(status.Attacks, 1)
	case events.EventAreaAttack:
		if p, ok := ev.Payload.(*events.AreaAttackPayload); ok && !p.OnCooldown {
			s.reg.Inc(status.AreaAttacks, 1)
		}
	case events.EventPlayerHit:
		if p, ok := ev.Payload.(*events.PlayerHitPayload); ok {
			s.reg.Inc(status.DamageTaken, int64(p.Damage))
		}
	case events.EventEnemyKilled:
		if p, ok := ev.Payload.(*events.KillPayload); ok {
			s.reg.Inc(status.KillsPrefix+string(p.Species), 1)
			if p.Boss {
				s.reg.Inc(status.BossKills, 1)
			}
		}
	case events.EventBossSpawned:
		s.reg.Inc(status.BossesSpawned, 1)
	case events.EventItemCollected:
		s.reg.Inc(status.ItemsPicked, 1)
	case events.EventPotionUsed:
		if p, ok := ev.Payload.(*events.PotionPayload); ok && !p.Empty {
			s.reg.Inc(status.PotionsUsed, 1)
		}
	case events.EventLevelUp:
		s.reg.Inc(status.LevelUps, 1)
	case events.EventPurchase:
		if p, ok := ev.Payload.(*events.PurchasePayload); ok && p.OK {
			s.reg.Inc(status.Purchases, 1)
		}
	case events.EventPlayerDied:
		s.reg.Inc(status.Deaths, 1)
	}
}
