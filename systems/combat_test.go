package systems

import (
	"testing"

	"github.com/lixenwraith/sprite-quest/components"
	"github.com/lixenwraith/sprite-quest/constants"
	"github.com/lixenwraith/sprite-quest/content"
	"github.com/lixenwraith/sprite-quest/engine"
	"github.com/lixenwraith/sprite-quest/events"
	"github.com/lixenwraith/sprite-quest/vmath"
)

func TestAttackWithoutTarget(t *testing.T) {
	w, _ := newTestWorld(t)

	if p := Attack(w); p != nil {
		t.Fatal("Expected no projectile without enemies")
	}
	if len(w.Projectiles) != 0 {
		t.Errorf("Expected no projectiles, got %d", len(w.Projectiles))
	}
	if n := countEvents(drainEvents(w), events.EventNoTarget); n != 1 {
		t.Errorf("Expected no-target event, got %d", n)
	}
}

func TestNearestEnemyIncludesBoss(t *testing.T) {
	w, _ := newTestWorld(t)
	pp := w.Player.Pos
	placeMonster(w, components.SpeciesSlime, pp.X+300, pp.Y)
	b := w.AddBoss(vmath.Vec2{X: pp.X - 150, Y: pp.Y})

	if got := NearestEnemy(w); got != b {
		t.Errorf("Expected boss as nearest, got %+v", got)
	}
}

func TestProjectileHitsFirstMonster(t *testing.T) {
	w, _ := newTestWorld(t)
	pp := w.Player.Pos
	m := placeMonster(w, components.SpeciesSlime, pp.X+120, pp.Y)

	if Attack(w) == nil {
		t.Fatal("Expected a projectile")
	}

	sys := NewProjectileSystem()
	for i := 0; i < 30 && len(w.Projectiles) > 0; i++ {
		sys.Update(w, constants.GameUpdateInterval)
	}

	if len(w.Projectiles) != 0 {
		t.Fatal("Expected projectile removed on hit")
	}
	if m.HP != 30-constants.PlayerAttack {
		t.Errorf("Expected slime hp %d, got %d", 30-constants.PlayerAttack, m.HP)
	}

	hits := 0
	for _, e := range w.Effects {
		if e.Kind == components.EffectHit {
			hits++
		}
	}
	if hits != 1 {
		t.Errorf("Expected one hit effect, got %d", hits)
	}
}

func TestProjectileLeavesWorld(t *testing.T) {
	w, _ := newTestWorld(t)
	w.AddProjectile(vmath.Vec2{X: 4, Y: 100}, vmath.Vec2{X: -100, Y: 100}, 10)

	NewProjectileSystem().Update(w, constants.GameUpdateInterval)

	if len(w.Projectiles) != 0 {
		t.Errorf("Expected projectile culled outside world, got %d", len(w.Projectiles))
	}
}

func TestProjectileExpires(t *testing.T) {
	w, _ := newTestWorld(t)
	at := vmath.Vec2{X: 100, Y: 100}
	w.AddProjectile(at, at, 10) // stationary

	sys := NewProjectileSystem()
	for i := 0; i < constants.ProjectileLifeTicks-1; i++ {
		sys.Update(w, constants.GameUpdateInterval)
	}
	if len(w.Projectiles) != 1 {
		t.Fatal("Expected projectile alive before its last tick")
	}
	sys.Update(w, constants.GameUpdateInterval)
	if len(w.Projectiles) != 0 {
		t.Error("Expected projectile expired")
	}
}

// monsterAt places a monster whose center is at c
func monsterAt(w *engine.World, sp components.Species, c vmath.Vec2) *components.Enemy {
	half := constants.MonsterSize / 2
	return w.AddMonster(sp, vmath.Vec2{X: c.X - half, Y: c.Y - half})
}

func TestAreaAttack(t *testing.T) {
	w, _ := newTestWorld(t)
	c := w.Player.Center()

	weak := monsterAt(w, components.SpeciesSlime, vmath.Vec2{X: c.X + 50, Y: c.Y})
	weak.HP = 10
	tough := monsterAt(w, components.SpeciesOrc, vmath.Vec2{X: c.X - 100, Y: c.Y})
	far := monsterAt(w, components.SpeciesGoblin, vmath.Vec2{X: c.X + 200, Y: c.Y})

	AreaAttack(w)

	if !weak.IsDead() {
		t.Error("Expected weak monster killed")
	}
	if tough.HP != 80-constants.PlayerAttack {
		t.Errorf("Expected orc hp %d, got %d", 80-constants.PlayerAttack, tough.HP)
	}
	if far.HP != far.MaxHP {
		t.Errorf("Expected far monster untouched, hp %d", far.HP)
	}
	if w.Player.AreaCooldown != constants.AreaAttackCooldownTicks {
		t.Errorf("Expected cooldown %d, got %d", constants.AreaAttackCooldownTicks, w.Player.AreaCooldown)
	}

	if len(w.PendingSpawns) != 1 {
		t.Fatalf("Expected one pending respawn batch, got %d", len(w.PendingSpawns))
	}
	ps := w.PendingSpawns[0]
	if ps.Count < 1 || ps.Count > 2 {
		t.Errorf("Expected 1-2 respawns, got %d", ps.Count)
	}
	if ps.DueTick != w.Tick+constants.AreaKillRespawnDelayTicks {
		t.Errorf("Expected due tick %d, got %d", w.Tick+constants.AreaKillRespawnDelayTicks, ps.DueTick)
	}

	// Second use is gated
	AreaAttack(w)
	if tough.HP != 80-constants.PlayerAttack {
		t.Errorf("Expected cooldown to block second area attack, orc hp %d", tough.HP)
	}

	var onCooldown bool
	for _, ev := range drainEvents(w) {
		if p, ok := ev.Payload.(*events.AreaAttackPayload); ok && p.OnCooldown {
			onCooldown = true
		}
	}
	if !onCooldown {
		t.Error("Expected an on-cooldown area attack event")
	}
}

func TestUsePotion(t *testing.T) {
	tests := []struct {
		name        string
		hp, potions int
		wantHP      int
		wantPotions int
	}{
		{"heals 30", 50, 3, 80, 2},
		{"capped at max", 90, 1, 100, 0},
		{"empty bag", 40, 0, 40, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := newTestWorld(t)
			w.Player.HP = tt.hp
			w.Player.Potions = tt.potions

			UsePotion(w)

			if w.Player.HP != tt.wantHP {
				t.Errorf("Expected hp %d, got %d", tt.wantHP, w.Player.HP)
			}
			if w.Player.Potions != tt.wantPotions {
				t.Errorf("Expected %d potions, got %d", tt.wantPotions, w.Player.Potions)
			}
		})
	}
}

func TestCombatIgnoredAfterGameOver(t *testing.T) {
	w, _ := newTestWorld(t)
	w.GameOver = true
	w.Player.HP = 10

	NewCombatSystem().HandleEvent(w, events.GameEvent{Type: events.EventPotionRequest})

	if w.Player.HP != 10 || w.Player.Potions != constants.PlayerPotions {
		t.Error("Expected potion request ignored after game over")
	}
}

func TestBuy(t *testing.T) {
	w, _ := newTestWorld(t)
	p := w.Player

	if Buy(w, "healing_potion") {
		t.Error("Expected purchase refused without gold")
	}
	evs := drainEvents(w)
	if len(evs) != 1 || evs[0].Payload.(*events.PurchasePayload).OK {
		t.Errorf("Expected one refused purchase event, got %+v", evs)
	}

	if Buy(w, "no_such_item") {
		t.Error("Expected unknown item ignored")
	}
	if len(drainEvents(w)) != 0 {
		t.Error("Expected no event for unknown item")
	}

	p.Gold = 1000
	p.HP = 10

	steps := []struct {
		key   string
		check func() bool
	}{
		{"healing_potion", func() bool { return p.HP == 60 }},
		{"attack_upgrade", func() bool { return p.Attack == constants.PlayerAttack+5 }},
		{"hp_upgrade", func() bool { return p.MaxHP == 125 && p.HP == 85 }},
		{"speed_upgrade", func() bool { return p.Speed == constants.PlayerSpeed+1 }},
		{"super_potion", func() bool { return p.HP == p.MaxHP }},
	}
	gold := p.Gold
	for _, s := range steps {
		item, _ := w.Bestiary.ShopItem(s.key)
		if !Buy(w, s.key) {
			t.Fatalf("Expected %s purchase to succeed", s.key)
		}
		gold -= item.Price
		if p.Gold != gold {
			t.Errorf("%s: expected gold %d, got %d", s.key, gold, p.Gold)
		}
		if !s.check() {
			t.Errorf("%s: effect not applied (%+v)", s.key, *p)
		}
	}
}

func TestBuyMaxHPKeepsHPInRange(t *testing.T) {
	w, _ := newTestWorld(t)
	w.Bestiary.Shop = append(w.Bestiary.Shop, content.ShopItem{
		Key: "cursed_charm", Name: "Cursed Charm", Price: 1, Effect: content.EffectMaxHP, Amount: -80,
	})
	p := w.Player
	p.Gold = 10

	if !Buy(w, "cursed_charm") {
		t.Fatal("Expected purchase to succeed")
	}
	if p.MaxHP != constants.PlayerMaxHP-80 {
		t.Errorf("Expected max hp %d, got %d", constants.PlayerMaxHP-80, p.MaxHP)
	}
	if p.HP != p.MaxHP {
		t.Errorf("Expected hp clamped to %d, got %d", p.MaxHP, p.HP)
	}
}
