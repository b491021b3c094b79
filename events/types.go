package events

// EventType represents the type of game event
type EventType int

const (
	// EventAttackRequest fires a projectile at the nearest enemy
	// Trigger: InputHandler (f key, left click)
	// Consumer: CombatSystem | Payload: nil
	EventAttackRequest EventType = iota

	// EventAreaAttackRequest damages every monster around the player
	// Trigger: InputHandler (q key)
	// Consumer: CombatSystem | Payload: nil
	EventAreaAttackRequest

	// EventPotionRequest consumes one carried potion
	// Trigger: InputHandler (e key)
	// Consumer: CombatSystem | Payload: nil
	EventPotionRequest

	// EventPurchaseRequest buys a shop item
	// Trigger: InputHandler (1-5 in shop)
	// Consumer: ShopSystem | Payload: *PurchaseRequestPayload
	EventPurchaseRequest

	// EventGameReset rebuilds the world
	// Trigger: InputHandler (r on game over)
	// Consumer: ResetHandler | Payload: nil
	EventGameReset

	// EventAttackFired signals a projectile launch
	// Payload: *AttackPayload
	EventAttackFired

	// EventNoTarget signals an attack with nothing to aim at
	// Payload: nil
	EventNoTarget

	// EventAreaAttack signals an area attack resolution
	// Payload: *AreaAttackPayload
	EventAreaAttack

	// EventPlayerHit signals damage dealt to the player
	// Trigger: MonsterSystem, BossSystem | Payload: *PlayerHitPayload
	EventPlayerHit

	// EventSkillUsed signals an enemy skill activation
	// Trigger: MonsterSystem, BossSystem | Payload: *SkillUsedPayload
	EventSkillUsed

	// EventEnemyKilled signals a monster or boss death with its reward
	// Trigger: DeathSystem | Payload: *KillPayload
	EventEnemyKilled

	// EventBossSpawned signals the boss entering the world
	// Trigger: SpawnSystem | Payload: *BossSpawnedPayload
	EventBossSpawned

	// EventItemCollected signals a pickup
	// Trigger: ItemSystem | Payload: *ItemCollectedPayload
	EventItemCollected

	// EventPotionUsed signals a potion consumption (or an empty bag)
	// Trigger: CombatSystem | Payload: *PotionPayload
	EventPotionUsed

	// EventLevelUp signals a level gain
	// Trigger: ProgressionSystem | Payload: *LevelUpPayload
	EventLevelUp

	// EventPurchase signals a shop transaction outcome
	// Trigger: ShopSystem | Payload: *PurchasePayload
	EventPurchase

	// EventPlayerDied signals game over
	// Trigger: ProgressionSystem | Payload: nil
	EventPlayerDied
)

// IsAction reports whether t is a player request rather than a gameplay outcome
func (t EventType) IsAction() bool {
	return t <= EventGameReset
}

// IsPanelAction reports whether t may be resolved while the game is paused
// Combat requests wait for the simulation to resume
func (t EventType) IsPanelAction() bool {
	return t == EventPurchaseRequest || t == EventGameReset
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    uint64 // Game tick the event was emitted on
}
