package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/sprite-quest/components"
)

// InputState is the held-key state for the four movement directions
// Written by the input goroutine, read by the tick
type InputState struct {
	mu    sync.Mutex
	clock TimeProvider

	// held is set by KeyDown and cleared by KeyUp
	held [4]bool
	// until is the auto-release deadline set by Press
	until [4]time.Time
}

// NewInputState creates an input state reading time from clock
func NewInputState(clock TimeProvider) *InputState {
	return &InputState{clock: clock}
}

// KeyDown marks a direction held until KeyUp
func (s *InputState) KeyDown(d components.Direction) {
	if !validDirection(d) {
		return
	}
	s.mu.Lock()
	s.held[d] = true
	s.mu.Unlock()
}

// KeyUp releases a direction
func (s *InputState) KeyUp(d components.Direction) {
	if !validDirection(d) {
		return
	}
	s.mu.Lock()
	s.held[d] = false
	s.until[d] = time.Time{}
	s.mu.Unlock()
}

// Press holds a direction for window; repeats extend it
// Terminals deliver key repeats but no key-up, so holds expire on their own
func (s *InputState) Press(d components.Direction, window time.Duration) {
	if !validDirection(d) {
		return
	}
	s.mu.Lock()
	s.until[d] = s.clock.Now().Add(window)
	s.mu.Unlock()
}

// ReleaseAll clears every held direction
func (s *InputState) ReleaseAll() {
	s.mu.Lock()
	s.held = [4]bool{}
	s.until = [4]time.Time{}
	s.mu.Unlock()
}

// Held reports whether a direction is currently active
func (s *InputState) Held(d components.Direction) bool {
	if !validDirection(d) {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.heldLocked(d, s.clock.Now())
}

// Axis returns the movement direction as -1/0/1 per axis, and the dominant facing
func (s *InputState) Axis() (dx, dy int, facing components.Direction, moving bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	facing = -1
	// Order matches the key checks in the player update: left, right, up, down
	if s.heldLocked(components.DirLeft, now) {
		dx--
		facing = components.DirLeft
	}
	if s.heldLocked(components.DirRight, now) {
		dx++
		facing = components.DirRight
	}
	if s.heldLocked(components.DirUp, now) {
		dy--
		facing = components.DirUp
	}
	if s.heldLocked(components.DirDown, now) {
		dy++
		facing = components.DirDown
	}
	return dx, dy, facing, facing >= 0
}

func (s *InputState) heldLocked(d components.Direction, now time.Time) bool {
	return s.held[d] || now.Before(s.until[d])
}

func validDirection(d components.Direction) bool {
	return d >= components.DirDown && d <= components.DirRight
}
