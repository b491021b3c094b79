package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/sprite-quest/components"
	"github.com/lixenwraith/sprite-quest/constants"
	"github.com/lixenwraith/sprite-quest/engine"
	"github.com/lixenwraith/sprite-quest/events"
	"github.com/lixenwraith/sprite-quest/vmath"
)

var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// newTestWorld creates an empty seeded world with a mock input clock
func newTestWorld(t *testing.T) (*engine.World, *engine.ManualClock) {
	t.Helper()
	clock := engine.NewManualClock(testEpoch)
	w := engine.NewWorld(engine.WorldConfig{
		Seed:  42,
		Input: engine.NewInputState(clock),
	})
	return w, clock
}

// placeMonster adds a monster of sp with its top-left at (x, y)
func placeMonster(w *engine.World, sp components.Species, x, y float64) *components.Enemy {
	return w.AddMonster(sp, vmath.Vec2{X: x, Y: y})
}

// drainEvents returns and clears every queued event
func drainEvents(w *engine.World) []events.GameEvent {
	return w.Events.Consume()
}

// countEvents counts queued events of type t without keeping them
func countEvents(evs []events.GameEvent, t events.EventType) int {
	n := 0
	for _, ev := range evs {
		if ev.Type == t {
			n++
		}
	}
	return n
}

// stepTicks runs n full ticks of the registered systems
func stepTicks(w *engine.World, n int) {
	for i := 0; i < n; i++ {
		w.Update(constants.GameUpdateInterval)
	}
}

// silenceSkills stops random skill rolls for deterministic melee tests
func silenceSkills(e *components.Enemy) {
	e.SkillChance = 0
}
