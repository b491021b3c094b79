package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/sprite-quest/core"
	"github.com/lixenwraith/sprite-quest/events"
	"github.com/lixenwraith/sprite-quest/status"
)

// ClockScheduler runs the simulation on a fixed tick
// Handles pause-aware scheduling without busy-wait
type ClockScheduler struct {
	world   *World
	router  *events.Router[*World]
	metrics *status.Registry // May be nil

	pausableClock *PausableClock
	isPaused      *atomic.Bool

	// Tick configuration
	tickInterval     time.Duration
	nextTickDeadline time.Time // Next tick deadline for drift correction

	tickCount atomic.Uint64
	mu        sync.RWMutex

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// Frame synchronization channels, frameReady may be nil
	frameReady <-chan struct{}
	updateDone chan<- struct{}
}

// NewClockScheduler creates a scheduler for ctx's world
// Receives frameReady sync (receive) channel and returns the updateDone (send) channel
func NewClockScheduler(ctx *GameContext, tickInterval time.Duration, frameReady <-chan struct{}) (*ClockScheduler, <-chan struct{}) {
	updateDone := make(chan struct{}, 1)

	cs := &ClockScheduler{
		world:         ctx.World,
		router:        events.NewRouter[*World](ctx.World.Events),
		metrics:       ctx.Metrics,
		pausableClock: ctx.PausableClock,
		isPaused:      &ctx.IsPaused,
		tickInterval:  tickInterval,
		stopChan:      make(chan struct{}),
		frameReady:    frameReady,
		updateDone:    updateDone,
	}
	return cs, updateDone
}

// RegisterEventHandler adds an event handler to router, must be called before Start()
func (cs *ClockScheduler) RegisterEventHandler(handler events.Handler[*World]) {
	cs.router.Register(handler)
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop, safe to call more than once
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

// TickCount returns the number of ticks processed since start
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// schedulerLoop runs the main scheduling loop with pause awareness
func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	cs.mu.Lock()
	cs.nextTickDeadline = cs.pausableClock.Now().Add(cs.tickInterval)
	cs.mu.Unlock()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		default:
		}

		var sleepDuration time.Duration

		if cs.isPaused.Load() {
			// Panels stay interactive: purchases and resets resolve while paused
			cs.DispatchEvents()
			sleepDuration = cs.tickInterval * 2
		} else {
			gameNow := cs.pausableClock.Now()

			cs.mu.RLock()
			deadline := cs.nextTickDeadline
			cs.mu.RUnlock()

			if !gameNow.Before(deadline) {
				if cs.frameReady != nil {
					select {
					case <-cs.frameReady:
					case <-time.After(cs.tickInterval * 2):
					case <-cs.stopChan:
						return
					}
				}

				cs.Step()

				cs.mu.Lock()
				cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
				maxBehind := cs.tickInterval * 2
				if gameNow.Sub(cs.nextTickDeadline) > maxBehind {
					cs.nextTickDeadline = gameNow.Add(cs.tickInterval)
				}
				deadline = cs.nextTickDeadline
				cs.mu.Unlock()

				select {
				case cs.updateDone <- struct{}{}:
				default:
				}

				sleepDuration = deadline.Sub(cs.pausableClock.Now())
			} else {
				sleepDuration = deadline.Sub(gameNow)
			}
		}

		if sleepDuration > 0 {
			timer.Reset(sleepDuration)
			select {
			case <-timer.C:
			case <-cs.stopChan:
				return
			}
		}
	}
}

// DispatchEvents routes pending outcomes and panel actions without advancing the simulation
// Combat requests stay queued until the next Step
func (cs *ClockScheduler) DispatchEvents() {
	cs.world.RunSafe(func() {
		cs.router.DispatchWhere(cs.world, events.EventType.IsPanelAction)
	})
	cs.publishDropped()
}

// Step executes one tick: pending events first, then systems
// A finished game only processes events until reset
func (cs *ClockScheduler) Step() {
	cs.world.RunSafe(func() {
		cs.router.DispatchAll(cs.world)
		if cs.world.GameOver {
			return
		}
		cs.world.UpdateLocked(cs.tickInterval)
	})
	cs.tickCount.Add(1)
	cs.publishDropped()
}

// publishDropped mirrors the queue overflow count into the run counters
func (cs *ClockScheduler) publishDropped() {
	if cs.metrics != nil {
		cs.metrics.Ints.Get(status.EventsDropped).Store(int64(cs.world.Events.Dropped()))
	}
}
