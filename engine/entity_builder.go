package engine

import (
	"github.com/lixenwraith/sprite-quest/components"
	"github.com/lixenwraith/sprite-quest/constants"
	"github.com/lixenwraith/sprite-quest/content"
	"github.com/lixenwraith/sprite-quest/vmath"
)

// NewEnemy builds an enemy from a stats row without adding it to the world
func NewEnemy(w *World, sp components.Species, st content.Stats, size float64, pos vmath.Vec2) *components.Enemy {
	skills := make([]components.Skill, len(st.Skills))
	copy(skills, st.Skills)

	return &components.Enemy{
		ID:             w.CreateEntity(),
		Species:        sp,
		Pos:            pos,
		Width:          size,
		Height:         size,
		HP:             st.HP,
		MaxHP:          st.HP,
		BaseAttack:     st.Attack,
		BaseSpeed:      st.Speed,
		AttackInterval: st.AttackInterval,
		SkillInterval:  st.SkillInterval,
		SkillChance:    st.SkillChance,
		Skills:         skills,
		GoldReward:     st.Gold,
		ExpReward:      st.Exp,
	}
}

// AddMonster creates a monster at pos and records its discovery
func (w *World) AddMonster(sp components.Species, pos vmath.Vec2) *components.Enemy {
	m := NewEnemy(w, sp, w.Bestiary.Monster(sp), constants.MonsterSize, pos)
	w.Monsters = append(w.Monsters, m)
	w.Dex.Discover(sp)
	return m
}

// AddBoss creates the boss at pos; returns nil without change while one is alive
func (w *World) AddBoss(pos vmath.Vec2) *components.Enemy {
	if w.Boss != nil {
		return nil
	}
	b := NewEnemy(w, components.SpeciesDragon, w.Bestiary.BossStats(), constants.BossSize, pos)
	w.Boss = b
	w.Dex.Discover(components.SpeciesDragon)
	return b
}

// AddItem drops a collectible at pos
func (w *World) AddItem(kind components.ItemKind, pos vmath.Vec2) *components.Item {
	it := &components.Item{ID: w.CreateEntity(), Kind: kind, Pos: pos}
	w.Items = append(w.Items, it)
	return it
}

// AddProjectile launches a projectile from origin toward target
func (w *World) AddProjectile(origin, target vmath.Vec2, damage int) *components.Projectile {
	p := components.NewProjectile(w.CreateEntity(), origin, target, damage)
	w.Projectiles = append(w.Projectiles, p)
	return p
}

// AddEffect spawns a transient visual effect with the default lifetime
func (w *World) AddEffect(kind components.EffectKind, pos vmath.Vec2) *components.VisualEffect {
	e := &components.VisualEffect{
		ID:       w.CreateEntity(),
		Kind:     kind,
		Pos:      pos,
		Life:     constants.EffectLifeTicks,
		Duration: constants.EffectLifeTicks,
	}
	w.Effects = append(w.Effects, e)
	return e
}
