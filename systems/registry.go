package systems

import (
	"github.com/lixenwraith/sprite-quest/engine"
	"github.com/lixenwraith/sprite-quest/status"
)

// RegisterSystems adds the per-tick simulation to the world
func RegisterSystems(world *engine.World) {
	world.AddSystem(NewPlayerSystem())
	world.AddSystem(NewCameraSystem())
	world.AddSystem(NewMonsterSystem())
	world.AddSystem(NewBossSystem())
	world.AddSystem(NewProjectileSystem())
	world.AddSystem(NewItemSystem())
	world.AddSystem(NewEffectSystem())
	world.AddSystem(NewDeathSystem())
	world.AddSystem(NewProgressionSystem())
	world.AddSystem(NewSpawnSystem())
}

// RegisterHandlers attaches action and outcome handlers to the scheduler
// Reset runs before status so the new-run message survives the reset
// player and metrics may be nil
func RegisterHandlers(cs *engine.ClockScheduler, player SoundPlayer, metrics *status.Registry) {
	cs.RegisterEventHandler(NewCombatSystem())
	cs.RegisterEventHandler(NewShopSystem())
	cs.RegisterEventHandler(NewResetHandler())
	cs.RegisterEventHandler(NewStatusSystem())
	cs.RegisterEventHandler(NewAudioSystem(player))
	if metrics != nil {
		cs.RegisterEventHandler(NewMetricsSystem(metrics))
	}
}
