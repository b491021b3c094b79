package engine

import (
	"github.com/lixenwraith/sprite-quest/components"
	"github.com/lixenwraith/sprite-quest/content"
)

// DexEntry tracks what the player has seen and beaten of one species
type DexEntry struct {
	Species    components.Species
	Discovered bool
	Defeated   int
	Skills     []components.Skill
}

// Dex is the session bestiary: monsters and bosses in display order
// Survives world resets, not persisted
type Dex struct {
	Monsters []*DexEntry
	Bosses   []*DexEntry

	index map[components.Species]*DexEntry
}

// NewDex creates undiscovered entries for every known species
func NewDex(b *content.Bestiary) *Dex {
	d := &Dex{index: make(map[components.Species]*DexEntry)}
	for _, sp := range components.MonsterSpecies {
		e := &DexEntry{Species: sp, Skills: b.Monster(sp).Skills}
		d.Monsters = append(d.Monsters, e)
		d.index[sp] = e
	}
	boss := &DexEntry{Species: components.SpeciesDragon, Skills: b.BossStats().Skills}
	d.Bosses = append(d.Bosses, boss)
	d.index[components.SpeciesDragon] = boss
	return d
}

// Entry returns the record of a species, nil for unknown keys
func (d *Dex) Entry(sp components.Species) *DexEntry {
	return d.index[sp]
}

// Discover marks a species as seen; unknown keys are ignored
func (d *Dex) Discover(sp components.Species) {
	if e := d.index[sp]; e != nil {
		e.Discovered = true
	}
}

// RecordDefeat counts a kill; unknown keys are ignored
func (d *Dex) RecordDefeat(sp components.Species) {
	if e := d.index[sp]; e != nil {
		e.Discovered = true
		e.Defeated++
	}
}
