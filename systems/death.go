package systems

import (
	"time"

	"github.com/lixenwraith/sprite-quest/components"
	"github.com/lixenwraith/sprite-quest/constants"
	"github.com/lixenwraith/sprite-quest/engine"
	"github.com/lixenwraith/sprite-quest/events"
)

// DeathSystem removes dead enemies and pays out their reward
// Every damage source only lowers hp; removal and reward happen here, once per death
type DeathSystem struct{}

// NewDeathSystem creates a new death system
func NewDeathSystem() *DeathSystem {
	return &DeathSystem{}
}

// Priority returns the system's priority
func (s *DeathSystem) Priority() int {
	return constants.PriorityDeath
}

// Update culls dead monsters and the dead boss in the tick they died
func (s *DeathSystem) Update(world *engine.World, dt time.Duration) {
	kept := world.Monsters[:0]
	for _, m := range world.Monsters {
		if m.IsDead() {
			s.reward(world, m, false)
			continue
		}
		kept = append(kept, m)
	}
	clearTail(world.Monsters, len(kept))
	world.Monsters = kept

	if b := world.Boss; b != nil && b.IsDead() {
		s.reward(world, b, true)
		world.Boss = nil
	}
}

func (s *DeathSystem) reward(world *engine.World, e *components.Enemy, boss bool) {
	p := world.Player
	p.Exp += e.ExpReward
	p.Gold += e.GoldReward
	world.Dex.RecordDefeat(e.Species)

	world.Emit(events.EventEnemyKilled, &events.KillPayload{
		Species: e.Species,
		Boss:    boss,
		Gold:    e.GoldReward,
		Exp:     e.ExpReward,
	})
}

// ProgressionSystem handles level-ups and player death
type ProgressionSystem struct{}

// NewProgressionSystem creates a new progression system
func NewProgressionSystem() *ProgressionSystem {
	return &ProgressionSystem{}
}

// Priority returns the system's priority
func (s *ProgressionSystem) Priority() int {
	return constants.PriorityProgression
}

// Update applies at most one level-up, then checks for game over
func (s *ProgressionSystem) Update(world *engine.World, dt time.Duration) {
	p := world.Player

	if p.Exp >= p.ExpToNext() {
		p.LevelUp()
		world.AddEffect(components.EffectLevelUp, p.Center())
		world.Emit(events.EventLevelUp, &events.LevelUpPayload{Level: p.Level})
	}

	if p.IsDead() && !world.GameOver {
		world.GameOver = true
		world.Input.ReleaseAll()
		world.Emit(events.EventPlayerDied, nil)
	}
}
