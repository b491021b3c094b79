package systems

import (
	"time"

	"github.com/lixenwraith/sprite-quest/components"
	"github.com/lixenwraith/sprite-quest/constants"
	"github.com/lixenwraith/sprite-quest/engine"
	"github.com/lixenwraith/sprite-quest/events"
)

// ItemSystem collects items the player touches
type ItemSystem struct{}

// NewItemSystem creates a new item system
func NewItemSystem() *ItemSystem {
	return &ItemSystem{}
}

// Priority returns the system's priority
func (s *ItemSystem) Priority() int {
	return constants.PriorityItem
}

// Update applies pickups and removes collected items
func (s *ItemSystem) Update(world *engine.World, dt time.Duration) {
	p := world.Player
	box := p.Bounds()
	kept := world.Items[:0]

	for _, it := range world.Items {
		if !it.Collected && box.Overlaps(it.Bounds()) {
			it.Collected = true

			amount := 0
			switch it.Kind {
			case components.ItemPotion:
				amount = 1
				p.Potions += amount
			case components.ItemGold:
				amount = constants.GoldPickupAmount
				p.Gold += amount
			}
			world.AddEffect(components.EffectPickup, it.Bounds().Center())
			world.Emit(events.EventItemCollected, &events.ItemCollectedPayload{Kind: it.Kind, Amount: amount})
		}
		if it.Collected {
			continue
		}
		kept = append(kept, it)
	}

	clearTail(world.Items, len(kept))
	world.Items = kept
}

// EffectSystem ages visual effects and drops expired ones
type EffectSystem struct{}

// NewEffectSystem creates a new effect system
func NewEffectSystem() *EffectSystem {
	return &EffectSystem{}
}

// Priority returns the system's priority
func (s *EffectSystem) Priority() int {
	return constants.PriorityEffect
}

// Update decrements effect life
func (s *EffectSystem) Update(world *engine.World, dt time.Duration) {
	kept := world.Effects[:0]
	for _, e := range world.Effects {
		e.Life--
		if e.Alive() {
			kept = append(kept, e)
		}
	}
	clearTail(world.Effects, len(kept))
	world.Effects = kept
}
