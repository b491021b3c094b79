package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/sprite-quest/components"
)

func TestInputStateKeyDownUp(t *testing.T) {
	s := NewInputState(NewManualClock(time.Unix(0, 0)))

	s.KeyDown(components.DirUp)
	dx, dy, facing, moving := s.Axis()
	if !moving || dx != 0 || dy != -1 || facing != components.DirUp {
		t.Errorf("Expected moving up, got dx=%d dy=%d facing=%v moving=%v", dx, dy, facing, moving)
	}

	s.KeyUp(components.DirUp)
	if _, _, _, moving := s.Axis(); moving {
		t.Error("Expected no movement after key up")
	}
}

func TestInputStateOpposingKeysCancel(t *testing.T) {
	s := NewInputState(NewManualClock(time.Unix(0, 0)))
	s.KeyDown(components.DirLeft)
	s.KeyDown(components.DirRight)

	dx, _, _, moving := s.Axis()
	if dx != 0 {
		t.Errorf("Expected opposing keys to cancel, dx=%d", dx)
	}
	if !moving {
		t.Error("Expected keys still reported as held")
	}
}

func TestInputStatePressExpires(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	s := NewInputState(clock)

	s.Press(components.DirDown, 150*time.Millisecond)
	if !s.Held(components.DirDown) {
		t.Fatal("Expected pressed key held")
	}

	clock.Advance(100 * time.Millisecond)
	s.Press(components.DirDown, 150*time.Millisecond) // key repeat extends
	clock.Advance(100 * time.Millisecond)
	if !s.Held(components.DirDown) {
		t.Error("Expected repeat to extend the hold")
	}

	clock.Advance(100 * time.Millisecond)
	if s.Held(components.DirDown) {
		t.Error("Expected hold to expire")
	}
}

func TestInputStateReleaseAllAndInvalid(t *testing.T) {
	s := NewInputState(NewManualClock(time.Unix(0, 0)))
	s.KeyDown(components.DirLeft)
	s.Press(components.DirUp, time.Hour)
	s.KeyDown(components.Direction(99))

	s.ReleaseAll()
	if _, _, _, moving := s.Axis(); moving {
		t.Error("Expected nothing held after ReleaseAll")
	}
	if s.Held(components.Direction(-1)) {
		t.Error("Expected invalid direction never held")
	}
}
