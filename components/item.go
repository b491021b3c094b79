package components

import (
	"github.com/lixenwraith/sprite-quest/constants"
	"github.com/lixenwraith/sprite-quest/core"
	"github.com/lixenwraith/sprite-quest/vmath"
)

// Item is a collectible lying in the world
type Item struct {
	ID        core.Entity
	Kind      ItemKind
	Pos       vmath.Vec2
	Collected bool
}

// Bounds returns the pickup box
func (i *Item) Bounds() vmath.Rect {
	return vmath.Rect{X: i.Pos.X, Y: i.Pos.Y, W: constants.ItemSize, H: constants.ItemSize}
}
