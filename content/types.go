package content

import "github.com/lixenwraith/sprite-quest/components"

// Stats is the tuning row for one species
type Stats struct {
	Name           string             `yaml:"name"`
	HP             int                `yaml:"hp"`
	Attack         int                `yaml:"attack"`
	Speed          float64            `yaml:"speed"`
	AttackInterval int                `yaml:"attack_interval"`
	SkillInterval  int                `yaml:"skill_interval"`
	SkillChance    float64            `yaml:"skill_chance"`
	Gold           int                `yaml:"gold"`
	Exp            int                `yaml:"exp"`
	Skills         []components.Skill `yaml:"skills"`
}

// ShopEffect names what a purchase does to the player
type ShopEffect string

const (
	EffectHeal     ShopEffect = "heal"
	EffectFullHeal ShopEffect = "full_heal"
	EffectAttack   ShopEffect = "attack"
	EffectMaxHP    ShopEffect = "max_hp"
	EffectSpeed    ShopEffect = "speed"
)

// ShopItem is one purchasable entry
type ShopItem struct {
	Key    string     `yaml:"key"`
	Name   string     `yaml:"name"`
	Price  int        `yaml:"price"`
	Effect ShopEffect `yaml:"effect"`
	Amount float64    `yaml:"amount"`
}

// Bestiary is the loaded content document
type Bestiary struct {
	Monsters   map[components.Species]Stats `yaml:"monsters"`
	Boss       map[components.Species]Stats `yaml:"boss"`
	SkillNames map[components.Skill]string  `yaml:"skill_names"`
	Shop       []ShopItem                   `yaml:"shop"`
}
