package constants

// Player Actions
const (
	// PotionHealAmount is the hp restored by one carried potion
	PotionHealAmount = 30

	// AreaAttackRange is the radius around the player center hit by an area attack
	AreaAttackRange = 120.0

	// AreaAttackCooldownTicks gates area attack reuse (1s)
	AreaAttackCooldownTicks = 60

	// AreaKillRespawnDelayTicks is the delay before replacements for an area kill arrive
	AreaKillRespawnDelayTicks = 60
)

// Monster Skills
const (
	GroundSlamRange       = 60.0
	GroundSlamMultiplier  = 1.5
	JumpAttackMultiplier  = 2.0
	SpeedBoostMultiplier  = 2.0
	SpeedBoostTicks       = 180 // 3s
	BerserkerMultiplier   = 1.5
	BerserkerTicks        = 300 // 5s
	FireBreathDamage      = 15
	WingAttackDamage      = 20
	DragonRoarDamage      = 10
	DragonRoarAttackBonus = 5
	DragonRoarSpeedBonus  = 1.0
)

// Spawning
const (
	// InitialMonsterCount is the population created on reset
	InitialMonsterCount = 8

	// SpawnIntervalTicks is the period of the batch spawn check (5s)
	SpawnIntervalTicks = 5 * TicksPerSecond

	// SpawnBatchMin/Max bound the monsters created per batch (inclusive)
	SpawnBatchMin = 2
	SpawnBatchMax = 3

	// ItemSpawnChance is the probability of an item in each batch
	ItemSpawnChance = 0.6

	// BossSpawnIntervalTicks is how long the boss timer runs with no boss alive (60s)
	BossSpawnIntervalTicks = 60 * TicksPerSecond

	// MonsterSpawnExclusion is the per-axis distance from the player a monster may not spawn within
	MonsterSpawnExclusion = 100.0
	BossSpawnExclusion    = 200.0

	// SpawnMaxAttempts bounds rejection sampling for placement
	SpawnMaxAttempts = 64

	// MaxMonsters caps the live monster population
	MaxMonsters = 60
)
