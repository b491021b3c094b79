package engine

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/lixenwraith/sprite-quest/components"
	"github.com/lixenwraith/sprite-quest/constants"
	"github.com/lixenwraith/sprite-quest/content"
	"github.com/lixenwraith/sprite-quest/core"
	"github.com/lixenwraith/sprite-quest/events"
	"github.com/lixenwraith/sprite-quest/vmath"
)

// System is an interface that all systems must implement
type System interface {
	Update(world *World, dt time.Duration)
	Priority() int // Lower values run first
}

// PendingSpawn is a monster batch scheduled for a later tick
type PendingSpawn struct {
	Count   int
	DueTick uint64
}

// WorldConfig seeds a new world
type WorldConfig struct {
	Seed     int64
	Bestiary *content.Bestiary
	Input    *InputState
}

// World holds the whole simulation state; mutated only by systems and event
// handlers running under its lock
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Player      *components.Player
	Monsters    []*components.Enemy
	Boss        *components.Enemy
	Items       []*components.Item
	Projectiles []*components.Projectile
	Effects     []*components.VisualEffect

	Camera   Camera
	Dex      *Dex
	Input    *InputState
	Bestiary *content.Bestiary
	Rand     *rand.Rand
	Events   *events.EventQueue

	// Tick counts simulation steps since the last reset
	Tick uint64
	// BossTimer counts ticks since the last boss spawn
	BossTimer     int
	PendingSpawns []PendingSpawn

	Status   string
	GameOver bool

	systems []System
}

// NewWorld creates a world with a centered player and no enemies
func NewWorld(cfg WorldConfig) *World {
	if cfg.Bestiary == nil {
		cfg.Bestiary = content.Default()
	}
	if cfg.Input == nil {
		cfg.Input = NewInputState(NewMonotonicTimeProvider())
	}

	w := &World{
		nextEntityID: 1,
		Dex:          NewDex(cfg.Bestiary),
		Input:        cfg.Input,
		Bestiary:     cfg.Bestiary,
		Rand:         rand.New(rand.NewSource(cfg.Seed)),
		Events:       events.NewEventQueue(),
		Camera:       Camera{ViewW: constants.DefaultViewWidth, ViewH: constants.DefaultViewHeight},
	}
	w.Reset()
	return w
}

// Reset clears every entity collection and restores a fresh player
// Dex, systems, view size and RNG survive
func (w *World) Reset() {
	w.Player = components.NewPlayer(vmath.Vec2{
		X: constants.WorldWidth/2 - constants.PlayerSize/2,
		Y: constants.WorldHeight/2 - constants.PlayerSize/2,
	})
	w.Monsters = nil
	w.Boss = nil
	w.Items = nil
	w.Projectiles = nil
	w.Effects = nil
	w.Tick = 0
	w.BossTimer = 0
	w.PendingSpawns = nil
	w.Status = ""
	w.GameOver = false
	w.Camera.Snap(w.Player.Center())
}

// Bounds returns the playable area
func (w *World) Bounds() vmath.Rect {
	return vmath.Rect{W: constants.WorldWidth, H: constants.WorldHeight}
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// AddSystem registers a system keeping priority order
func (w *World) AddSystem(s System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, s)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Update runs all systems in priority order under the world lock
func (w *World) Update(dt time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.UpdateLocked(dt)
}

// UpdateLocked runs all systems; caller must hold the world lock
func (w *World) UpdateLocked(dt time.Duration) {
	for _, s := range w.systems {
		s.Update(w, dt)
	}
}

// RunSafe executes fn while holding the world write lock
func (w *World) RunSafe(fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fn()
}

// Read executes fn while holding the world read lock
func (w *World) Read(fn func()) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	fn()
}

// Lock acquires the world write lock
func (w *World) Lock() { w.mu.Lock() }

// Unlock releases the world write lock
func (w *World) Unlock() { w.mu.Unlock() }

// Emit queues an outcome event stamped with the current tick
func (w *World) Emit(t events.EventType, payload any) {
	w.Events.Push(events.GameEvent{Type: t, Payload: payload, Tick: w.Tick})
}

// SetStatus replaces the status line text
func (w *World) SetStatus(msg string) {
	w.Status = msg
}
