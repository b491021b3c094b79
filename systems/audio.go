package systems

import (
	"github.com/lixenwraith/sprite-quest/audio"
	"github.com/lixenwraith/sprite-quest/components"
	"github.com/lixenwraith/sprite-quest/engine"
	"github.com/lixenwraith/sprite-quest/events"
)

// SoundPlayer is the audio sink; *audio.SoundManager implements it
type SoundPlayer interface {
	Play(st audio.SoundType) bool
}

// AudioSystem maps outcome events to sound cues
// Decouples game systems from direct SoundManager access
type AudioSystem struct {
	player SoundPlayer
}

// NewAudioSystem creates an audio system with the given player
// player may be nil if audio is disabled
func NewAudioSystem(player SoundPlayer) *AudioSystem {
	return &AudioSystem{player: player}
}

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventAttackFired,
		events.EventNoTarget,
		events.EventPlayerHit,
		events.EventEnemyKilled,
		events.EventBossSpawned,
		events.EventItemCollected,
		events.EventPotionUsed,
		events.EventLevelUp,
		events.EventPurchase,
		events.EventPlayerDied,
	}
}

// HandleEvent plays the cue for an event
func (s *AudioSystem) HandleEvent(world *engine.World, ev events.GameEvent) {
	if s.player == nil {
		return
	}
	if st, ok := CueFor(ev); ok {
		s.player.Play(st)
	}
}

// CueFor returns the sound for an outcome event
func CueFor(ev events.GameEvent) (audio.SoundType, bool) {
	switch ev.Type {
	case events.EventAttackFired:
		return audio.SoundShoot, true
	case events.EventNoTarget:
		return audio.SoundError, true
	case events.EventPlayerHit:
		return audio.SoundHit, true
	case events.EventEnemyKilled:
		if p, ok := ev.Payload.(*events.KillPayload); ok && p.Boss {
			return audio.SoundRoar, true
		}
		return audio.SoundKill, true
	case events.EventBossSpawned:
		return audio.SoundRoar, true
	case events.EventItemCollected:
		if p, ok := ev.Payload.(*events.ItemCollectedPayload); ok && p.Kind == components.ItemGold {
			return audio.SoundCoin, true
		}
		return audio.SoundPickup, true
	case events.EventPotionUsed:
		if p, ok := ev.Payload.(*events.PotionPayload); ok && p.Empty {
			return audio.SoundError, true
		}
		return audio.SoundPickup, true
	case events.EventLevelUp:
		return audio.SoundLevelUp, true
	case events.EventPurchase:
		if p, ok := ev.Payload.(*events.PurchasePayload); ok && p.OK {
			return audio.SoundCoin, true
		}
		return audio.SoundError, true
	case events.EventPlayerDied:
		return audio.SoundDeath, true
	}
	return 0, false
}
