package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundShoot   SoundType = iota // Projectile launch
	SoundHit                      // Player takes damage
	SoundKill                     // Enemy defeated
	SoundCoin                     // Gold or purchase
	SoundPickup                   // Potion pickup or use
	SoundLevelUp                  // Level gained
	SoundRoar                     // Boss spawn or boss skill
	SoundDeath                    // Game over
	SoundError                    // Denied action
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundShoot:   "shoot",
	SoundHit:     "hit",
	SoundKill:    "kill",
	SoundCoin:    "coin",
	SoundPickup:  "pickup",
	SoundLevelUp: "levelup",
	SoundRoar:    "roar",
	SoundDeath:   "death",
	SoundError:   "error",
}

// String returns the cue name used in configuration
func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}
