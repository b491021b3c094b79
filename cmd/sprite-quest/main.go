package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/lixenwraith/sprite-quest/audio"
	"github.com/lixenwraith/sprite-quest/config"
	"github.com/lixenwraith/sprite-quest/constants"
	"github.com/lixenwraith/sprite-quest/content"
	"github.com/lixenwraith/sprite-quest/core"
	"github.com/lixenwraith/sprite-quest/engine"
	"github.com/lixenwraith/sprite-quest/hudfeed"
	"github.com/lixenwraith/sprite-quest/modes"
	"github.com/lixenwraith/sprite-quest/render"
	"github.com/lixenwraith/sprite-quest/systems"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "sprite-quest: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	runID := uuid.NewString()
	log.Printf("run %s starting, seed %d", runID, cfg.Seed)

	bestiary, err := content.Load(cfg.BestiaryPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sprite-quest: %v\n", err)
		os.Exit(1)
	}

	// Initialize terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.SetCrashTerminal(screen)
	screen.EnableMouse()
	screen.HideCursor()

	// World, systems and the front-end context
	world := engine.NewWorld(engine.WorldConfig{Seed: cfg.Seed, Bestiary: bestiary})
	systems.RegisterSystems(world)

	width, height := screen.Size()
	ctx := engine.NewGameContext(world, runID, width, height)
	world.RunSafe(func() {
		systems.Populate(world)
		world.Camera.Snap(world.Player.Center())
	})

	// Audio failure leaves the game silent
	sound := audio.NewSoundManager(nil)
	sound.SetMuted(cfg.Mute)
	ctx.IsMuted.Store(cfg.Mute)
	if err := sound.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
	}
	ctx.Metrics.Bools.Get("audio.enabled").Store(sound.IsRunning())
	defer sound.Cleanup()

	// Create frame synchronization channel
	frameReady := make(chan struct{}, 1)
	clockScheduler, gameUpdateDone := engine.NewClockScheduler(ctx, constants.GameUpdateInterval, frameReady)
	systems.RegisterHandlers(clockScheduler, sound, ctx.Metrics)

	// Signal initial frame ready
	frameReady <- struct{}{}
	clockScheduler.Start()
	defer clockScheduler.Stop()

	if cfg.HUDAddr != "" {
		feed := hudfeed.NewServer(ctx, ctx.Metrics, constants.HUDBroadcastInterval)
		if err := feed.Start(cfg.HUDAddr); err != nil {
			log.Printf("hud feed disabled: %v", err)
		} else {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				if err := feed.Shutdown(shutdownCtx); err != nil {
					log.Printf("hud feed: %v", err)
				}
			}()
		}
	}

	renderer := render.NewTerminalRenderer(screen)
	inputHandler := modes.NewInputHandler(ctx, sound)

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	var updatePending bool

	for {
		select {
		case ev := <-eventChan:
			if !inputHandler.HandleEvent(ev) {
				played, dropped := sound.GetStats()
				log.Printf("run %s exiting after %d ticks, sounds played %d dropped %d",
					runID, clockScheduler.TickCount(), played, dropped)
				for k, v := range ctx.Metrics.Snapshot() {
					log.Printf("  %s = %d", k, v)
				}
				return
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}

		case <-frameTicker.C:
			// During pause: skip update sync but still render panels
			if ctx.IsPaused.Load() {
				renderer.RenderFrame(ctx)
				continue
			}

			select {
			case <-gameUpdateDone:
				updatePending = false
			default:
				updatePending = true
			}

			renderer.RenderFrame(ctx)

			// Signal ready for next update (non-blocking)
			if !updatePending {
				select {
				case frameReady <- struct{}{}:
				default:
				}
			}
		}
	}
}
