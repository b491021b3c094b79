package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/sprite-quest/constants"
)

// SoundManager plays synthesized cues through a single beep mixer
// Every method is safe on an uninitialized manager; failures leave the game silent
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool

	muted      atomic.Bool
	lastPlayed [soundTypeCount]time.Time

	played  atomic.Uint64
	dropped atomic.Uint64
}

// NewSoundManager creates a new sound manager; cfg nil uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	sm.initialized = false
}

// Play queues a cue; returns false when dropped (muted, uninitialized, too soon)
func (sm *SoundManager) Play(st SoundType) bool {
	if st < 0 || st >= soundTypeCount || sm.muted.Load() {
		return false
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.allowLocked(st, time.Now()) {
		sm.dropped.Add(1)
		return false
	}

	s := GetSoundEffect(st, sm.cfg)
	if s == nil {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()

	sm.played.Add(1)
	return true
}

// allowLocked rate-limits repeats of the same cue
func (sm *SoundManager) allowLocked(st SoundType, now time.Time) bool {
	if now.Sub(sm.lastPlayed[st]) < constants.MinSoundGap {
		return false
	}
	sm.lastPlayed[st] = now
	return true
}

// ToggleMute flips mute state, returns the new state
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// SetMuted sets mute state
func (sm *SoundManager) SetMuted(m bool) {
	sm.muted.Store(m)
}

// IsMuted returns current mute state
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// IsRunning reports whether the speaker is open
func (sm *SoundManager) IsRunning() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// GetStats returns played and dropped cue counts
func (sm *SoundManager) GetStats() (played, dropped uint64) {
	return sm.played.Load(), sm.dropped.Load()
}
