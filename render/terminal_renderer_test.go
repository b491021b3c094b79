package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sprite-quest/components"
	"github.com/lixenwraith/sprite-quest/constants"
	"github.com/lixenwraith/sprite-quest/engine"
	"github.com/lixenwraith/sprite-quest/vmath"
)

const (
	testCols = 80
	testRows = 24
)

func newTestRenderer(t *testing.T) (*TerminalRenderer, tcell.SimulationScreen, *engine.GameContext) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(testCols, testRows)

	clock := engine.NewManualClock(time.Unix(0, 0))
	world := engine.NewWorld(engine.WorldConfig{Seed: 3, Input: engine.NewInputState(clock)})
	ctx := engine.NewGameContext(world, "render-test", testCols, testRows)
	world.RunSafe(func() { world.Camera.Snap(world.Player.Center()) })
	return NewTerminalRenderer(screen), screen, ctx
}

// cellAt returns the rune and style drawn at (x, y)
func cellAt(t *testing.T, screen tcell.SimulationScreen, x, y int) (rune, tcell.Style) {
	t.Helper()
	cells, w, h := screen.GetContents()
	if x < 0 || y < 0 || x >= w || y >= h {
		t.Fatalf("Cell (%d,%d) outside %dx%d", x, y, w, h)
	}
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' ', c.Style
	}
	return c.Runes[0], c.Style
}

// rowText returns the runes of one row as a string
func rowText(screen tcell.SimulationScreen, y int) string {
	cells, w, _ := screen.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(c.Runes[0])
	}
	return b.String()
}

// screenText joins every row
func screenText(screen tcell.SimulationScreen) string {
	_, _, h := screen.GetContents()
	rows := make([]string, h)
	for y := range rows {
		rows[y] = rowText(screen, y)
	}
	return strings.Join(rows, "\n")
}

// expectedCell projects a world point the same way the renderer does
func expectedCell(ctx *engine.GameContext, p vmath.Vec2) (int, int) {
	var cam vmath.Vec2
	ctx.World.Read(func() { cam = ctx.World.Camera.Pos })
	return int((p.X - cam.X) / constants.CellWidth), int((p.Y - cam.Y) / constants.CellHeight)
}

func TestPlayerDrawnAtCameraProjection(t *testing.T) {
	r, screen, ctx := newTestRenderer(t)
	r.RenderFrame(ctx)

	x, y := expectedCell(ctx, ctx.World.Player.Pos)
	ch, style := cellAt(t, screen, x, y)
	if ch != '@' {
		t.Fatalf("Expected '@' at (%d,%d), got %q", x, y, ch)
	}
	fg, _, _ := style.Decompose()
	if fg != RgbPlayer {
		t.Errorf("Expected player color, got %v", fg)
	}

	// 40x40 world units cover 4x2 cells
	if ch, _ := cellAt(t, screen, x+3, y+1); ch != '@' {
		t.Errorf("Expected player to cover 4x2 cells, got %q at far corner", ch)
	}
	if ch, _ := cellAt(t, screen, x+4, y); ch == '@' {
		t.Error("Player drawn wider than its hitbox")
	}

	// Health bar sits on the row above
	if ch, _ := cellAt(t, screen, x, y-1); ch != '▀' {
		t.Errorf("Expected health bar above player, got %q", ch)
	}
}

func TestEnemiesAndItemsUseTheirGlyphs(t *testing.T) {
	r, screen, ctx := newTestRenderer(t)
	w := ctx.World

	var goblin *components.Enemy
	w.RunSafe(func() {
		p := w.Player.Pos
		goblin = w.AddMonster(components.SpeciesGoblin, vmath.Vec2{X: p.X - 100, Y: p.Y})
		w.AddItem(components.ItemGold, vmath.Vec2{X: p.X + 100, Y: p.Y})
	})
	r.RenderFrame(ctx)

	gx, gy := expectedCell(ctx, goblin.Pos)
	if ch, style := cellAt(t, screen, gx, gy); ch != 'g' {
		t.Errorf("Expected goblin glyph, got %q", ch)
	} else if fg, _, _ := style.Decompose(); fg != RgbGoblin {
		t.Errorf("Expected goblin color, got %v", fg)
	}

	ix, iy := expectedCell(ctx, vmath.Vec2{X: w.Player.Pos.X + 100, Y: w.Player.Pos.Y})
	if ch, _ := cellAt(t, screen, ix, iy); ch != '$' {
		t.Errorf("Expected gold glyph, got %q", ch)
	}
}

func TestOffscreenEntitiesClipped(t *testing.T) {
	r, screen, ctx := newTestRenderer(t)
	w := ctx.World
	w.RunSafe(func() {
		w.AddMonster(components.SpeciesOrc, vmath.Vec2{X: 0, Y: 0})
		w.AddMonster(components.SpeciesOrc, vmath.Vec2{X: constants.WorldWidth - 40, Y: constants.WorldHeight - 40})
	})

	r.RenderFrame(ctx)

	for y := 0; y < testRows-constants.HUDRows; y++ {
		if strings.ContainsRune(rowText(screen, y), 'O') {
			t.Fatalf("Monsters outside the view should not be drawn, row %d: %q", y, rowText(screen, y))
		}
	}
}

func TestHUDLine(t *testing.T) {
	r, screen, ctx := newTestRenderer(t)
	w := ctx.World
	w.RunSafe(func() {
		w.Player.Gold = 123
		w.Player.Potions = 2
		w.Status = "Slime used Poison Spit!"
	})

	r.RenderFrame(ctx)

	hud := rowText(screen, testRows-2)
	for _, want := range []string{"HP 100/100", "ATK 15", "GOLD 123", "LV 1", "POT 2"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
	if strings.Contains(hud, "BOSS") {
		t.Error("Boss badge shown with no boss")
	}

	if status := rowText(screen, testRows-1); !strings.Contains(status, "Poison Spit") {
		t.Errorf("Status line %q missing message", status)
	}
}

func TestHUDShowsBossHealth(t *testing.T) {
	r, screen, ctx := newTestRenderer(t)
	w := ctx.World
	w.RunSafe(func() { w.AddBoss(vmath.Vec2{X: 10, Y: 10}) })

	r.RenderFrame(ctx)

	hud := rowText(screen, testRows-2)
	if !strings.Contains(hud, "BOSS 500/500") {
		t.Errorf("HUD %q missing boss health", hud)
	}
}

func TestPanels(t *testing.T) {
	tests := []struct {
		name  string
		setup func(ctx *engine.GameContext)
		want  []string
	}{
		{
			name:  "shop",
			setup: func(ctx *engine.GameContext) { ctx.SetMode(engine.ModeShop) },
			want:  []string{"SHOP", "1. Healing Potion", "Gold: 0"},
		},
		{
			name: "dex hides undiscovered",
			setup: func(ctx *engine.GameContext) {
				ctx.World.RunSafe(func() { ctx.World.Dex.RecordDefeat(components.SpeciesSlime) })
				ctx.SetMode(engine.ModeDex)
			},
			want: []string{"BESTIARY", "Slime", "defeated   1", "???"},
		},
		{
			name: "game over",
			setup: func(ctx *engine.GameContext) {
				ctx.World.RunSafe(func() { ctx.World.GameOver = true })
			},
			want: []string{"GAME OVER", "Level 1", "r restart"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, screen, ctx := newTestRenderer(t)
			tt.setup(ctx)
			r.RenderFrame(ctx)

			text := screenText(screen)
			for _, want := range tt.want {
				if !strings.Contains(text, want) {
					t.Errorf("Expected %q on screen", want)
				}
			}
		})
	}
}

func TestTinyScreenDoesNotPanic(t *testing.T) {
	r, screen, ctx := newTestRenderer(t)
	screen.SetSize(3, 1)
	ctx.SetMode(engine.ModeShop)

	r.RenderFrame(ctx)
}

func TestHealthColorEndpoints(t *testing.T) {
	if HealthColor(1) != RgbHealthFull {
		t.Error("Full health should use the full color")
	}
	if HealthColor(0) != RgbHealthEmpty {
		t.Error("Zero health should use the empty color")
	}
	if HealthColor(-1) != RgbHealthEmpty || HealthColor(2) != RgbHealthFull {
		t.Error("Ratios outside 0..1 should clamp")
	}
}

func TestFadeReachesBackground(t *testing.T) {
	if fade(RgbGold, 0) != RgbGold {
		t.Error("Fresh effect should keep its color")
	}
	if fade(RgbGold, 1) != RgbBackground {
		t.Error("Finished effect should match the background")
	}
}
