package engine

import (
	"github.com/lixenwraith/sprite-quest/constants"
	"github.com/lixenwraith/sprite-quest/vmath"
)

// Camera is a smoothed projection of the player position; not gameplay state
// apart from the on-screen test used by monster skills
type Camera struct {
	Pos          vmath.Vec2
	ViewW, ViewH float64
}

// target returns the top-left that centers the view on center
func (c *Camera) target(center vmath.Vec2) vmath.Vec2 {
	return vmath.Vec2{X: center.X - c.ViewW/2, Y: center.Y - c.ViewH/2}
}

// Follow moves the camera a fraction of the way toward centering on center
func (c *Camera) Follow(center vmath.Vec2, smoothing float64) {
	t := c.target(center)
	c.Pos.X += (t.X - c.Pos.X) * smoothing
	c.Pos.Y += (t.Y - c.Pos.Y) * smoothing
	c.clamp()
}

// Snap centers the camera on center immediately
func (c *Camera) Snap(center vmath.Vec2) {
	c.Pos = c.target(center)
	c.clamp()
}

// SetView resizes the viewport, keeping the camera inside the world
func (c *Camera) SetView(w, h float64) {
	c.ViewW, c.ViewH = w, h
	c.clamp()
}

// View returns the visible world rectangle
func (c *Camera) View() vmath.Rect {
	return vmath.Rect{X: c.Pos.X, Y: c.Pos.Y, W: c.ViewW, H: c.ViewH}
}

// Visible reports whether r overlaps the view
func (c *Camera) Visible(r vmath.Rect) bool {
	return c.View().Overlaps(r)
}

func (c *Camera) clamp() {
	c.Pos.X = vmath.Clamp(c.Pos.X, 0, constants.WorldWidth-c.ViewW)
	c.Pos.Y = vmath.Clamp(c.Pos.Y, 0, constants.WorldHeight-c.ViewH)
}
