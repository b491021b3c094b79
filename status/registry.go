// Package status keeps run counters shared by the simulation, the HUD feed and the exit log
package status

import "sync/atomic"

// Counter names
const (
	Attacks       = "player.attacks"
	AreaAttacks   = "player.area_attacks"
	PotionsUsed   = "player.potions_used"
	Purchases     = "shop.purchases"
	DamageTaken   = "player.damage_taken"
	LevelUps      = "player.level_ups"
	Deaths        = "player.deaths"
	ItemsPicked   = "items.collected"
	BossesSpawned = "boss.spawned"
	BossKills     = "boss.kills"
	Resets        = "run.resets"
	HUDViewers    = "hud.viewers"
	EventsDropped = "events.dropped"

	// KillsPrefix is followed by the species key
	KillsPrefix = "kills."
)

// Registry holds named counters and flags
type Registry struct {
	Ints  *MetricMap[atomic.Int64]
	Bools *MetricMap[atomic.Bool]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:  NewMetricMap[atomic.Int64](),
		Bools: NewMetricMap[atomic.Bool](),
	}
}

// Inc adds delta to a counter
func (r *Registry) Inc(key string, delta int64) {
	r.Ints.Get(key).Add(delta)
}

// Int reads a counter; unknown keys read zero
func (r *Registry) Int(key string) int64 {
	return r.Ints.Get(key).Load()
}

// Snapshot copies every counter, flags as 0/1
func (r *Registry) Snapshot() map[string]int64 {
	out := make(map[string]int64, r.Ints.Count()+r.Bools.Count())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out[k] = v.Load()
	})
	r.Bools.Range(func(k string, v *atomic.Bool) {
		if v.Load() {
			out[k] = 1
		} else {
			out[k] = 0
		}
	})
	return out
}
