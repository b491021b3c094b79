package content

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/sprite-quest/components"
)

//go:embed defaults.yaml
var defaultBestiary []byte

// Monster and boss systems each execute only their own skill set
var monsterSkills = map[components.Skill]bool{
	components.SkillPoisonSpit:    true,
	components.SkillJumpAttack:    true,
	components.SkillSpeedBoost:    true,
	components.SkillDoubleAttack:  true,
	components.SkillGroundSlam:    true,
	components.SkillBerserkerRage: true,
}

var bossSkills = map[components.Skill]bool{
	components.SkillFireBreath: true,
	components.SkillWingAttack: true,
	components.SkillDragonRoar: true,
}

var knownEffects = map[ShopEffect]bool{
	EffectHeal:     true,
	EffectFullHeal: true,
	EffectAttack:   true,
	EffectMaxHP:    true,
	EffectSpeed:    true,
}

// Default returns the embedded tables
func Default() *Bestiary {
	b, err := Parse(defaultBestiary)
	if err != nil {
		panic(fmt.Errorf("embedded bestiary invalid: %w", err))
	}
	return b
}

// Load reads a bestiary file, or the embedded default when path is empty
func Load(path string) (*Bestiary, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bestiary %s: %w", path, err)
	}
	b, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("bestiary %s: %w", path, err)
	}
	return b, nil
}

// Parse decodes and validates a bestiary document
func Parse(data []byte) (*Bestiary, error) {
	var b Bestiary
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

// Validate checks every required species is present and sane
func (b *Bestiary) Validate() error {
	for _, sp := range components.MonsterSpecies {
		st, ok := b.Monsters[sp]
		if !ok {
			return fmt.Errorf("missing monster %q", sp)
		}
		if err := validateStats(sp, st, monsterSkills); err != nil {
			return err
		}
	}
	st, ok := b.Boss[components.SpeciesDragon]
	if !ok {
		return fmt.Errorf("missing boss %q", components.SpeciesDragon)
	}
	if err := validateStats(components.SpeciesDragon, st, bossSkills); err != nil {
		return err
	}

	seen := make(map[string]bool, len(b.Shop))
	for _, item := range b.Shop {
		if item.Key == "" {
			return fmt.Errorf("shop item without key")
		}
		if seen[item.Key] {
			return fmt.Errorf("duplicate shop item %q", item.Key)
		}
		seen[item.Key] = true
		if item.Price <= 0 {
			return fmt.Errorf("shop item %q: price must be positive", item.Key)
		}
		if !knownEffects[item.Effect] {
			return fmt.Errorf("shop item %q: unknown effect %q", item.Key, item.Effect)
		}
		if item.Effect != EffectFullHeal && item.Amount <= 0 {
			return fmt.Errorf("shop item %q: amount must be positive", item.Key)
		}
	}
	return nil
}

func validateStats(sp components.Species, st Stats, allowed map[components.Skill]bool) error {
	switch {
	case st.HP <= 0:
		return fmt.Errorf("%s: hp must be positive", sp)
	case st.Attack < 0:
		return fmt.Errorf("%s: attack must not be negative", sp)
	case st.Speed < 0:
		return fmt.Errorf("%s: speed must not be negative", sp)
	case st.AttackInterval <= 0 || st.SkillInterval <= 0:
		return fmt.Errorf("%s: intervals must be positive", sp)
	case st.Gold < 0 || st.Exp < 0:
		return fmt.Errorf("%s: rewards must not be negative", sp)
	case st.SkillChance < 0 || st.SkillChance > 1:
		return fmt.Errorf("%s: skill_chance must be within [0, 1]", sp)
	case len(st.Skills) == 0:
		return fmt.Errorf("%s: at least one skill required", sp)
	}
	for _, sk := range st.Skills {
		if !allowed[sk] {
			return fmt.Errorf("%s: unknown skill %q", sp, sk)
		}
	}
	return nil
}

// Monster returns stats for a species, falling back to slime for unknown keys
func (b *Bestiary) Monster(sp components.Species) Stats {
	if st, ok := b.Monsters[sp]; ok {
		return st
	}
	return b.Monsters[components.SpeciesSlime]
}

// BossStats returns the dragon entry
func (b *Bestiary) BossStats() Stats {
	return b.Boss[components.SpeciesDragon]
}

// DisplayName returns the configured name of a species, or the key itself
func (b *Bestiary) DisplayName(sp components.Species) string {
	if st, ok := b.Monsters[sp]; ok && st.Name != "" {
		return st.Name
	}
	if st, ok := b.Boss[sp]; ok && st.Name != "" {
		return st.Name
	}
	return string(sp)
}

// SkillName returns the configured display name of a skill, or the key itself
func (b *Bestiary) SkillName(sk components.Skill) string {
	if n, ok := b.SkillNames[sk]; ok {
		return n
	}
	return string(sk)
}

// ShopItem looks up a purchasable entry by key
func (b *Bestiary) ShopItem(key string) (ShopItem, bool) {
	for _, item := range b.Shop {
		if item.Key == key {
			return item, true
		}
	}
	return ShopItem{}, false
}
