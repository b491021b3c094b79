package engine

// HUDSnapshot is the read-only state consumed by front ends
type HUDSnapshot struct {
	RunID     string `msgpack:"run"`
	Tick      uint64 `msgpack:"tick"`
	HP        int    `msgpack:"hp"`
	MaxHP     int    `msgpack:"maxHp"`
	Attack    int    `msgpack:"attack"`
	Gold      int    `msgpack:"gold"`
	Level     int    `msgpack:"level"`
	Exp       int    `msgpack:"exp"`
	ExpToNext int    `msgpack:"expToNext"`
	Potions   int    `msgpack:"potions"`
	Monsters  int    `msgpack:"monsters"`
	BossHP    int    `msgpack:"bossHp"`
	BossMaxHP int    `msgpack:"bossMaxHp"`
	Status    string `msgpack:"status"`
	Mode      string `msgpack:"mode"`
	GameOver  bool   `msgpack:"gameOver"`
}

// SnapshotLocked captures HUD fields; caller must hold at least the read lock
func (w *World) SnapshotLocked() HUDSnapshot {
	p := w.Player
	s := HUDSnapshot{
		Tick:      w.Tick,
		HP:        p.HP,
		MaxHP:     p.MaxHP,
		Attack:    p.Attack,
		Gold:      p.Gold,
		Level:     p.Level,
		Exp:       p.Exp,
		ExpToNext: p.ExpToNext(),
		Potions:   p.Potions,
		Monsters:  len(w.Monsters),
		Status:    w.Status,
		GameOver:  w.GameOver,
	}
	if w.Boss != nil {
		s.BossHP = w.Boss.HP
		s.BossMaxHP = w.Boss.MaxHP
	}
	return s
}

// Snapshot captures HUD fields under the read lock
func (w *World) Snapshot() HUDSnapshot {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.SnapshotLocked()
}
