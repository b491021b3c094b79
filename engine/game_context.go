package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/sprite-quest/constants"
	"github.com/lixenwraith/sprite-quest/events"
	"github.com/lixenwraith/sprite-quest/status"
)

// GameMode is the front-end screen currently shown
type GameMode int32

const (
	ModePlaying GameMode = iota
	ModeShop
	ModeDex
)

// String returns the mode name used by the HUD
func (m GameMode) String() string {
	switch m {
	case ModeShop:
		return "shop"
	case ModeDex:
		return "dex"
	default:
		return "playing"
	}
}

// GameContext ties the world to the front end
type GameContext struct {
	// ===== Immutable After Init =====

	World         *World         // Simulation state; has internal locking
	PausableClock *PausableClock // Pausable time source; has internal sync
	RunID         string         // Session identifier for logs and the HUD feed
	Metrics       *status.Registry

	// ===== Atomic (Self-Synchronized) =====

	mode     atomic.Int32 // GameMode
	IsPaused atomic.Bool  // Pause flag; actual timing handled by PausableClock
	IsMuted  atomic.Bool

	// ===== Main-Loop Exclusive =====

	Width, Height int // Terminal dimensions in cells
}

// NewGameContext creates a context over an existing world
// width/height are initial terminal dimensions in cells
func NewGameContext(world *World, runID string, width, height int) *GameContext {
	ctx := &GameContext{
		World:         world,
		PausableClock: NewPausableClock(),
		RunID:         runID,
		Metrics:       status.NewRegistry(),
	}
	ctx.HandleResize(width, height)
	return ctx
}

// Mode returns the current screen mode
func (g *GameContext) Mode() GameMode {
	return GameMode(g.mode.Load())
}

// SetMode switches screens; any panel pauses the simulation
func (g *GameContext) SetMode(m GameMode) {
	g.mode.Store(int32(m))
	if m == ModePlaying {
		g.Resume()
		return
	}
	g.Pause()
}

// Pause freezes simulation ticks and releases held movement keys
func (g *GameContext) Pause() {
	if g.IsPaused.CompareAndSwap(false, true) {
		g.PausableClock.Pause()
		g.World.Input.ReleaseAll()
	}
}

// Resume restarts simulation ticks
func (g *GameContext) Resume() {
	if g.IsPaused.CompareAndSwap(true, false) {
		g.PausableClock.Resume()
	}
}

// HandleResize recomputes the world viewport from the terminal size
func (g *GameContext) HandleResize(width, height int) {
	g.Width, g.Height = width, height

	rows := height - constants.HUDRows
	if rows < 1 {
		rows = 1
	}
	cols := width
	if cols < 1 {
		cols = 1
	}
	g.World.RunSafe(func() {
		g.World.Camera.SetView(float64(cols)*constants.CellWidth, float64(rows)*constants.CellHeight)
	})
}

// Snapshot returns HUD state stamped with the run id and mode
func (g *GameContext) Snapshot() HUDSnapshot {
	s := g.World.Snapshot()
	s.RunID = g.RunID
	s.Mode = g.Mode().String()
	return s
}

// PushEvent queues an input action for the next tick
func (g *GameContext) PushEvent(t events.EventType, payload any) {
	g.World.Events.Push(events.GameEvent{Type: t, Payload: payload})
}

// IsGameOver reads the game-over flag under the world read lock
func (g *GameContext) IsGameOver() bool {
	var over bool
	g.World.Read(func() { over = g.World.GameOver })
	return over
}
