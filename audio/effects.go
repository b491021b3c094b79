package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/sprite-quest/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// sweep is a sine whose frequency glides linearly from 'from' to 'to'
type sweep struct {
	from, to float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

// NewSweep creates a frequency glide
func NewSweep(from, to float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{from: from, to: to, duration: rate.N(duration), rate: rate}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}
		t := float64(s.position) / float64(s.duration)
		freq := s.from + (s.to-s.from)*t

		val := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a volume effect; 0 is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func cueVolume(cfg *AudioConfig, st SoundType) float64 {
	return cfg.EffectVolumes[st] * cfg.MasterVolume
}

// CreateShootSound generates a short falling zap for a projectile launch
func CreateShootSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := NewSweep(1200, 500, constants.HitSoundDuration, rate)
	shaped := NewEnvelope(s, constants.HitSoundDuration, constants.HitSoundAttack, constants.HitSoundRelease, rate)
	return newVolume(shaped, cueVolume(cfg, SoundShoot))
}

// CreateHitSound generates a dull thud for damage taken
func CreateHitSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	body := NewOscillator(140, constants.HitSoundDuration, WaveSquare, rate)
	bodyShaped := NewEnvelope(body, constants.HitSoundDuration, constants.HitSoundAttack, constants.HitSoundRelease, rate)
	noise := NewOscillator(0, constants.HitSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, constants.HitSoundDuration, constants.HitSoundAttack, constants.HitSoundDuration/2, rate)

	mixed := beep.Mix(newVolume(bodyShaped, 0.6), newVolume(noiseShaped, 0.3))
	return newVolume(mixed, cueVolume(cfg, SoundHit))
}

// CreateKillSound generates a descending burst for a defeated enemy
func CreateKillSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.HitSoundDuration * 2
	s := NewSweep(660, 110, d, rate)
	shaped := NewEnvelope(s, d, constants.HitSoundAttack, d/2, rate)
	return newVolume(shaped, cueVolume(cfg, SoundKill))
}

// CreateCoinSound generates a two-note chime
func CreateCoinSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// B5 then E6
	n1 := NewOscillator(987.77, constants.CoinSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.CoinSoundNote1Duration, constants.CoinSoundAttack, constants.CoinSoundNote1Release, rate)
	n2 := NewOscillator(1318.51, constants.CoinSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constants.CoinSoundNote2Duration, constants.CoinSoundAttack, constants.CoinSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), cueVolume(cfg, SoundCoin))
}

// CreatePickupSound generates a soft bell
func CreatePickupSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.CoinSoundNote2Duration

	fund := NewOscillator(880, d, WaveSine, rate)
	fundShaped := NewEnvelope(fund, d, constants.CoinSoundAttack, d-constants.CoinSoundAttack, rate)
	over := NewOscillator(1760, d, WaveSine, rate)
	overShaped := NewEnvelope(over, d, constants.CoinSoundAttack, d/2, rate)

	mixed := beep.Mix(newVolume(fundShaped, 0.7), newVolume(overShaped, 0.3))
	return newVolume(mixed, cueVolume(cfg, SoundPickup))
}

// CreateLevelUpSound generates a rising C-major arpeggio
func CreateLevelUpSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := []float64{523.25, 659.25, 783.99, 1046.50}
	seq := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		osc := NewOscillator(f, constants.LevelUpNoteDuration, WaveSquare, rate)
		seq = append(seq, NewEnvelope(osc, constants.LevelUpNoteDuration, constants.CoinSoundAttack, constants.LevelUpNoteRelease, rate))
	}
	return newVolume(beep.Seq(seq...), cueVolume(cfg, SoundLevelUp))
}

// CreateRoarSound generates a low growl for the boss
func CreateRoarSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	growl := NewSweep(90, 55, constants.RoarSoundDuration, rate)
	growlShaped := NewEnvelope(growl, constants.RoarSoundDuration, constants.RoarSoundAttack, constants.RoarSoundRelease, rate)
	rasp := NewOscillator(70, constants.RoarSoundDuration, WaveSaw, rate)
	raspShaped := NewEnvelope(rasp, constants.RoarSoundDuration, constants.RoarSoundAttack, constants.RoarSoundRelease, rate)

	mixed := beep.Mix(newVolume(growlShaped, 0.7), newVolume(raspShaped, 0.3))
	return newVolume(mixed, cueVolume(cfg, SoundRoar))
}

// CreateDeathSound generates a long falling tone
func CreateDeathSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := NewSweep(440, 80, constants.RoarSoundDuration, rate)
	shaped := NewEnvelope(s, constants.RoarSoundDuration, constants.HitSoundAttack, constants.RoarSoundRelease, rate)
	return newVolume(shaped, cueVolume(cfg, SoundDeath))
}

// CreateErrorSound generates a short harsh buzz
func CreateErrorSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	osc := NewOscillator(100.0, constants.HitSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, constants.HitSoundDuration, constants.HitSoundAttack, constants.HitSoundRelease, rate)
	return newVolume(shaped, cueVolume(cfg, SoundError))
}

// GetSoundEffect returns the streamer for a cue, nil for unknown types
func GetSoundEffect(st SoundType, cfg *AudioConfig) beep.Streamer {
	switch st {
	case SoundShoot:
		return CreateShootSound(cfg)
	case SoundHit:
		return CreateHitSound(cfg)
	case SoundKill:
		return CreateKillSound(cfg)
	case SoundCoin:
		return CreateCoinSound(cfg)
	case SoundPickup:
		return CreatePickupSound(cfg)
	case SoundLevelUp:
		return CreateLevelUpSound(cfg)
	case SoundRoar:
		return CreateRoarSound(cfg)
	case SoundDeath:
		return CreateDeathSound(cfg)
	case SoundError:
		return CreateErrorSound(cfg)
	default:
		return nil
	}
}
