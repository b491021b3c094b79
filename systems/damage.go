package systems

import (
	"github.com/lixenwraith/sprite-quest/components"
	"github.com/lixenwraith/sprite-quest/engine"
	"github.com/lixenwraith/sprite-quest/events"
	"github.com/lixenwraith/sprite-quest/vmath"
)

// hitPlayer applies enemy damage to the player and reports it
// skill is empty for a melee hit
func hitPlayer(world *engine.World, source components.Species, skill components.Skill, damage int) {
	if damage <= 0 {
		return
	}
	world.Player.TakeDamage(damage)
	world.Emit(events.EventPlayerHit, &events.PlayerHitPayload{
		Source: source,
		Skill:  skill,
		Damage: damage,
	})
}

// chaseStep moves e toward the player by its effective speed and keeps it in the world
func chaseStep(world *engine.World, e *components.Enemy) {
	e.Pos = e.Pos.Add(vmath.Toward(e.Pos, world.Player.Pos, e.EffectiveSpeed()))
	e.Pos = e.Bounds().ClampInto(world.Bounds()).Min()
}

// pickSkill chooses one skill uniformly; empty when the enemy has none
func pickSkill(world *engine.World, e *components.Enemy) components.Skill {
	if len(e.Skills) == 0 {
		return ""
	}
	return e.Skills[world.Rand.Intn(len(e.Skills))]
}
