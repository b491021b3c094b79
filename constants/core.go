package constants

import "time"

// Game Loop & Engine Timing
const (
	// TicksPerSecond is the fixed simulation rate
	TicksPerSecond = 60

	// GameUpdateInterval is the game logic update interval (clock tick, ~16.7ms)
	GameUpdateInterval = time.Second / TicksPerSecond

	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond
)

// Event Limits
const (
	// ActionQueueSize bounds queued player requests; extra requests are rejected
	ActionQueueSize = 64

	// OutcomeQueueSize is the ring capacity for gameplay outcomes
	// Sized above one crowded tick: every monster hitting twice with a skill
	OutcomeQueueSize = 1024
)

// System Execution Priorities (lower runs first)
const (
	PriorityPlayer      = 10
	PriorityCamera      = 20
	PriorityMonster     = 30
	PriorityBoss        = 40
	PriorityProjectile  = 50
	PriorityItem        = 60
	PriorityEffect      = 70
	PriorityDeath       = 80 // After every damage source
	PriorityProgression = 90 // After rewards are granted
	PrioritySpawn       = 100
)
