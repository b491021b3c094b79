package components

// Species identifies a monster or boss kind
type Species string

const (
	SpeciesSlime  Species = "slime"
	SpeciesGoblin Species = "goblin"
	SpeciesOrc    Species = "orc"
	SpeciesDragon Species = "dragon"
)

// MonsterSpecies lists the regular spawnable species in spawn-roll order
var MonsterSpecies = []Species{SpeciesSlime, SpeciesGoblin, SpeciesOrc}

// Skill identifies an enemy special move
type Skill string

const (
	SkillPoisonSpit    Skill = "poison_spit"
	SkillJumpAttack    Skill = "jump_attack"
	SkillSpeedBoost    Skill = "speed_boost"
	SkillDoubleAttack  Skill = "double_attack"
	SkillGroundSlam    Skill = "ground_slam"
	SkillBerserkerRage Skill = "berserker_rage"
	SkillFireBreath    Skill = "fire_breath"
	SkillWingAttack    Skill = "wing_attack"
	SkillDragonRoar    Skill = "dragon_roar"
)

// Direction is the player facing
type Direction int

const (
	DirDown Direction = iota
	DirUp
	DirLeft
	DirRight
)

// ItemKind identifies a collectible
type ItemKind string

const (
	ItemPotion ItemKind = "potion"
	ItemGold   ItemKind = "gold"
)

// EffectKind identifies a transient visual effect
type EffectKind int

const (
	EffectHit EffectKind = iota
	EffectAttack
	EffectPoison
	EffectJump
	EffectSlam
	EffectRoar
	EffectFire
	EffectWing
	EffectPickup
	EffectLevelUp
	EffectMelee
)
