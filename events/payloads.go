package events

import "github.com/lixenwraith/sprite-quest/components"

// PurchaseRequestPayload names the shop item to buy
type PurchaseRequestPayload struct {
	Key string
}

// AttackPayload describes a projectile launch
type AttackPayload struct {
	Target components.Species
	Damage int
}

// AreaAttackPayload summarizes an area attack
type AreaAttackPayload struct {
	Hits        int
	TotalDamage int
	OnCooldown  bool
}

// PlayerHitPayload describes damage dealt to the player
type PlayerHitPayload struct {
	Source components.Species
	Skill  components.Skill // Empty for a melee hit
	Damage int
}

// SkillUsedPayload names the enemy and skill
type SkillUsedPayload struct {
	Source components.Species
	Skill  components.Skill
}

// KillPayload carries the reward granted for a death
type KillPayload struct {
	Species components.Species
	Boss    bool
	Gold    int
	Exp     int
}

// BossSpawnedPayload names the spawned boss
type BossSpawnedPayload struct {
	Species components.Species
}

// ItemCollectedPayload describes a pickup
type ItemCollectedPayload struct {
	Kind   components.ItemKind
	Amount int
}

// PotionPayload describes a potion use; Empty is set when none were carried
type PotionPayload struct {
	Healed    int
	Remaining int
	Empty     bool
}

// LevelUpPayload carries the new level
type LevelUpPayload struct {
	Level int
}

// PurchasePayload describes a shop transaction
type PurchasePayload struct {
	Key   string
	Name  string
	Price int
	OK    bool
	Gold  int // Gold after the transaction
}
