package components

// BuffKind selects the stat a buff multiplies
type BuffKind int

const (
	BuffSpeed BuffKind = iota
	BuffAttack
)

// Buff is a timed stat multiplier, expired by the tick loop rather than a callback
type Buff struct {
	Kind       BuffKind
	Multiplier float64
	Remaining  int // ticks
}

// Multiplier returns the product of all active multipliers of the given kind
func Multiplier(buffs []Buff, kind BuffKind) float64 {
	m := 1.0
	for _, b := range buffs {
		if b.Kind == kind && b.Remaining > 0 {
			m *= b.Multiplier
		}
	}
	return m
}

// TickBuffs decrements every buff and drops the expired ones in place
func TickBuffs(buffs []Buff) []Buff {
	kept := buffs[:0]
	for _, b := range buffs {
		b.Remaining--
		if b.Remaining > 0 {
			kept = append(kept, b)
		}
	}
	return kept
}
