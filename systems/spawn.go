package systems

import (
	"math"
	"time"

	"github.com/lixenwraith/sprite-quest/components"
	"github.com/lixenwraith/sprite-quest/constants"
	"github.com/lixenwraith/sprite-quest/engine"
	"github.com/lixenwraith/sprite-quest/events"
	"github.com/lixenwraith/sprite-quest/vmath"
)

// SpawnSystem advances the game tick and populates the world over time
type SpawnSystem struct{}

// NewSpawnSystem creates a new spawn system
func NewSpawnSystem() *SpawnSystem {
	return &SpawnSystem{}
}

// Priority returns the system's priority
func (s *SpawnSystem) Priority() int {
	return constants.PrioritySpawn
}

// Update runs the periodic batch, due delayed spawns and the boss timer
func (s *SpawnSystem) Update(world *engine.World, dt time.Duration) {
	world.Tick++

	if world.Tick%constants.SpawnIntervalTicks == 0 {
		n := constants.SpawnBatchMin + world.Rand.Intn(constants.SpawnBatchMax-constants.SpawnBatchMin+1)
		for i := 0; i < n; i++ {
			SpawnMonster(world)
		}
		if world.Rand.Float64() < constants.ItemSpawnChance {
			kind := components.ItemPotion
			if world.Rand.Intn(2) == 1 {
				kind = components.ItemGold
			}
			SpawnItem(world, kind)
		}
	}

	s.drainPending(world)

	// Timer runs during boss fights too; an overdue boss arrives once the last one dies
	world.BossTimer++
	if world.BossTimer >= constants.BossSpawnIntervalTicks && world.Boss == nil {
		if SpawnBoss(world) != nil {
			world.BossTimer = 0
		}
	}
}

// drainPending spawns every delayed batch that has come due
func (s *SpawnSystem) drainPending(world *engine.World) {
	if len(world.PendingSpawns) == 0 {
		return
	}
	kept := world.PendingSpawns[:0]
	for _, ps := range world.PendingSpawns {
		if ps.DueTick > world.Tick {
			kept = append(kept, ps)
			continue
		}
		for i := 0; i < ps.Count; i++ {
			SpawnMonster(world)
		}
	}
	world.PendingSpawns = kept
}

// Populate seeds a fresh world: the initial monsters and one potion and one gold
func Populate(world *engine.World) {
	for i := 0; i < constants.InitialMonsterCount; i++ {
		SpawnMonster(world)
	}
	SpawnItem(world, components.ItemPotion)
	SpawnItem(world, components.ItemGold)
}

// SpawnMonster adds a random monster away from the player
// Returns nil when the population cap is reached or no free spot was found
func SpawnMonster(world *engine.World) *components.Enemy {
	if len(world.Monsters) >= constants.MaxMonsters {
		return nil
	}
	pos, ok := placeAway(world, constants.MonsterSize, constants.MonsterSpawnExclusion)
	if !ok {
		return nil
	}
	sp := components.MonsterSpecies[world.Rand.Intn(len(components.MonsterSpecies))]
	return world.AddMonster(sp, pos)
}

// SpawnBoss adds the boss away from the player; no-op while a boss is alive
func SpawnBoss(world *engine.World) *components.Enemy {
	if world.Boss != nil {
		return nil
	}
	pos, ok := placeAway(world, constants.BossSize, constants.BossSpawnExclusion)
	if !ok {
		return nil
	}
	b := world.AddBoss(pos)
	if b != nil {
		world.Emit(events.EventBossSpawned, &events.BossSpawnedPayload{Species: b.Species})
	}
	return b
}

// SpawnItem drops an item anywhere in the world
func SpawnItem(world *engine.World, kind components.ItemKind) *components.Item {
	pos := vmath.RandomOrigin(world.Bounds(), constants.ItemSize, constants.ItemSize, world.Rand)
	return world.AddItem(kind, pos)
}

// placeAway rolls a top-left for a size*size box until it falls outside the
// exclusion square around the player's top-left
func placeAway(world *engine.World, size, exclusion float64) (vmath.Vec2, bool) {
	pp := world.Player.Pos
	for i := 0; i < constants.SpawnMaxAttempts; i++ {
		pos := vmath.RandomOrigin(world.Bounds(), size, size, world.Rand)
		if math.Abs(pos.X-pp.X) < exclusion && math.Abs(pos.Y-pp.Y) < exclusion {
			continue
		}
		return pos, true
	}
	return vmath.Vec2{}, false
}
