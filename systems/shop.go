package systems

import (
	"github.com/lixenwraith/sprite-quest/content"
	"github.com/lixenwraith/sprite-quest/engine"
	"github.com/lixenwraith/sprite-quest/events"
)

// ShopSystem handles purchases; runs while the shop panel has the game paused
type ShopSystem struct{}

// NewShopSystem creates a new shop handler
func NewShopSystem() *ShopSystem {
	return &ShopSystem{}
}

// EventTypes returns the event types ShopSystem handles
func (s *ShopSystem) EventTypes() []events.EventType {
	return []events.EventType{events.EventPurchaseRequest}
}

// HandleEvent processes purchase requests
func (s *ShopSystem) HandleEvent(world *engine.World, ev events.GameEvent) {
	if world.GameOver {
		return
	}
	if req, ok := ev.Payload.(*events.PurchaseRequestPayload); ok {
		Buy(world, req.Key)
	}
}

// Buy spends gold on a shop item and applies it; unknown keys are ignored
// Returns whether the purchase went through
func Buy(world *engine.World, key string) bool {
	item, ok := world.Bestiary.ShopItem(key)
	if !ok {
		return false
	}

	p := world.Player
	if p.Gold < item.Price {
		world.Emit(events.EventPurchase, &events.PurchasePayload{
			Key: item.Key, Name: item.Name, Price: item.Price, Gold: p.Gold,
		})
		return false
	}

	p.Gold -= item.Price
	amount := int(item.Amount)
	switch item.Effect {
	case content.EffectHeal:
		p.Heal(amount)
	case content.EffectFullHeal:
		p.HP = p.MaxHP
	case content.EffectAttack:
		p.Attack += amount
	case content.EffectMaxHP:
		p.MaxHP = max(1, p.MaxHP+amount)
		p.HP = min(p.HP, p.MaxHP)
		p.Heal(amount)
	case content.EffectSpeed:
		p.Speed += item.Amount
	}

	world.Emit(events.EventPurchase, &events.PurchasePayload{
		Key: item.Key, Name: item.Name, Price: item.Price, OK: true, Gold: p.Gold,
	})
	return true
}

// ResetHandler rebuilds the world when a new run is requested
type ResetHandler struct{}

// NewResetHandler creates a new reset handler
func NewResetHandler() *ResetHandler {
	return &ResetHandler{}
}

// EventTypes returns the event types ResetHandler handles
func (h *ResetHandler) EventTypes() []events.EventType {
	return []events.EventType{events.EventGameReset}
}

// HandleEvent resets and repopulates the world
func (h *ResetHandler) HandleEvent(world *engine.World, ev events.GameEvent) {
	Reset(world)
}

// Reset rebuilds the world: fresh centered player, initial monsters and items
// The dex and registered systems survive
func Reset(world *engine.World) {
	world.Input.ReleaseAll()
	world.Reset()
	Populate(world)
}
