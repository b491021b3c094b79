package audio

import "github.com/lixenwraith/sprite-quest/constants"

// AudioConfig holds mixer settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes [soundTypeCount]float64
	SampleRate    int
}

// DefaultAudioConfig returns the default cue volumes
func DefaultAudioConfig() *AudioConfig {
	cfg := &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constants.AudioSampleRate,
	}
	for i := range cfg.EffectVolumes {
		cfg.EffectVolumes[i] = 0.6
	}
	cfg.EffectVolumes[SoundShoot] = 0.3
	cfg.EffectVolumes[SoundRoar] = 0.8
	return cfg
}

// SetVolume sets the master volume clamped to [0, 1]
func (c *AudioConfig) SetVolume(vol float64) {
	switch {
	case vol < 0:
		vol = 0
	case vol > 1:
		vol = 1
	}
	c.MasterVolume = vol
}
