package components

import (
	"github.com/lixenwraith/sprite-quest/constants"
	"github.com/lixenwraith/sprite-quest/vmath"
)

// Player is the controlled sprite
type Player struct {
	Pos           vmath.Vec2
	Width, Height float64
	Speed         float64

	HP, MaxHP int
	Attack    int
	Level     int
	Exp       int
	Gold      int
	Potions   int

	Facing Direction

	// AreaCooldown counts down ticks until the next area attack
	AreaCooldown int
}

// NewPlayer creates a level 1 player with its top-left corner at pos
func NewPlayer(pos vmath.Vec2) *Player {
	return &Player{
		Pos:     pos,
		Width:   constants.PlayerSize,
		Height:  constants.PlayerSize,
		Speed:   constants.PlayerSpeed,
		HP:      constants.PlayerMaxHP,
		MaxHP:   constants.PlayerMaxHP,
		Attack:  constants.PlayerAttack,
		Level:   1,
		Gold:    constants.PlayerStartGold,
		Potions: constants.PlayerPotions,
		Facing:  DirDown,
	}
}

// Bounds returns the player hitbox
func (p *Player) Bounds() vmath.Rect {
	return vmath.Rect{X: p.Pos.X, Y: p.Pos.Y, W: p.Width, H: p.Height}
}

// Center returns the hitbox center
func (p *Player) Center() vmath.Vec2 {
	return p.Bounds().Center()
}

// TakeDamage subtracts hp, clamped to [0, MaxHP]. Negative damage is ignored
func (p *Player) TakeDamage(n int) {
	if n <= 0 {
		return
	}
	p.HP = vmath.ClampInt(p.HP-n, 0, p.MaxHP)
}

// Heal restores hp, clamped to [0, MaxHP]
func (p *Player) Heal(n int) {
	if n <= 0 {
		return
	}
	p.HP = vmath.ClampInt(p.HP+n, 0, p.MaxHP)
}

// IsDead reports whether hp reached zero
func (p *Player) IsDead() bool {
	return p.HP <= 0
}

// ExpToNext returns the exp threshold for the next level
func (p *Player) ExpToNext() int {
	return p.Level * constants.ExpPerLevel
}

// LevelUp applies a single level gain; excess exp is discarded
func (p *Player) LevelUp() {
	p.Level++
	p.Exp = 0
	p.MaxHP += constants.LevelUpMaxHP
	p.HP = p.MaxHP
	p.Attack += constants.LevelUpAttack
	p.Speed += constants.LevelUpSpeed
}
