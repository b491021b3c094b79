package constants

// Player Base Stats
const (
	PlayerSize      = 40.0
	PlayerSpeed     = 5.0
	PlayerMaxHP     = 100
	PlayerAttack    = 15
	PlayerPotions   = 3
	PlayerStartGold = 0
)

// Level Progression
const (
	// ExpPerLevel is multiplied by the current level to get the exp needed for the next one
	ExpPerLevel = 40

	LevelUpMaxHP  = 30
	LevelUpAttack = 8
	LevelUpSpeed  = 0.5
)

// Monster & Boss Geometry
const (
	MonsterSize = 35.0
	BossSize    = 80.0

	// MonsterAggroRadius is the distance within which a monster seeks the player
	MonsterAggroRadius = 200.0

	// MonsterContactBox is the per-axis proximity gate for monster melee
	MonsterContactBox = 40.0

	// MonsterMeleeRange is the origin-to-origin distance a monster must be within to hit
	MonsterMeleeRange = 50.0

	BossContactBox = 60.0
	BossMeleeRange = 80.0
)

// Item & Projectile
const (
	ItemSize = 20.0

	// GoldPickupAmount is the gold granted by a gold item
	GoldPickupAmount = 5

	ProjectileSize  = 8.0
	ProjectileSpeed = 8.0

	// ProjectileLifeTicks is how long a projectile flies before it fizzles (1s)
	ProjectileLifeTicks = 60

	// EffectLifeTicks is the default lifetime of a visual effect (0.5s)
	EffectLifeTicks = 30
)
