package systems

import (
	"time"

	"github.com/lixenwraith/sprite-quest/constants"
	"github.com/lixenwraith/sprite-quest/engine"
)

// PlayerSystem applies held movement keys to the player
type PlayerSystem struct{}

// NewPlayerSystem creates a new player system
func NewPlayerSystem() *PlayerSystem {
	return &PlayerSystem{}
}

// Priority returns the system's priority
func (s *PlayerSystem) Priority() int {
	return constants.PriorityPlayer
}

// Update moves the player by speed per axis and keeps it inside the world
func (s *PlayerSystem) Update(world *engine.World, dt time.Duration) {
	p := world.Player

	if p.AreaCooldown > 0 {
		p.AreaCooldown--
	}

	dx, dy, facing, moving := world.Input.Axis()
	if !moving {
		return
	}
	p.Facing = facing

	// Diagonal movement is not normalized: each axis moves at full speed
	p.Pos.X += float64(dx) * p.Speed
	p.Pos.Y += float64(dy) * p.Speed
	p.Pos = p.Bounds().ClampInto(world.Bounds()).Min()
}

// CameraSystem eases the camera toward the player
type CameraSystem struct{}

// NewCameraSystem creates a new camera system
func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Priority returns the system's priority
func (s *CameraSystem) Priority() int {
	return constants.PriorityCamera
}

// Update follows the player center with smoothing
func (s *CameraSystem) Update(world *engine.World, dt time.Duration) {
	world.Camera.Follow(world.Player.Center(), constants.CameraSmoothing)
}
