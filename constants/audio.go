package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer size
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap is the minimum gap between repeats of the same cue
	MinSoundGap = 50 * time.Millisecond
)

// Cue Timing
const (
	HitSoundDuration = 80 * time.Millisecond
	HitSoundAttack   = 5 * time.Millisecond
	HitSoundRelease  = 20 * time.Millisecond

	CoinSoundNote1Duration = 80 * time.Millisecond
	CoinSoundNote2Duration = 280 * time.Millisecond
	CoinSoundAttack        = 5 * time.Millisecond
	CoinSoundNote1Release  = 40 * time.Millisecond
	CoinSoundNote2Release  = 200 * time.Millisecond

	LevelUpNoteDuration = 120 * time.Millisecond
	LevelUpNoteRelease  = 60 * time.Millisecond

	RoarSoundDuration = 700 * time.Millisecond
	RoarSoundAttack   = 150 * time.Millisecond
	RoarSoundRelease  = 300 * time.Millisecond
)
