package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sprite-quest/components"
	"github.com/lixenwraith/sprite-quest/constants"
	"github.com/lixenwraith/sprite-quest/engine"
	"github.com/lixenwraith/sprite-quest/vmath"
)

// groundSpacing is the world distance between ground markers
const groundSpacing = 100.0

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int

	// viewRows is the number of rows showing the world
	viewRows int
	// cam is the camera origin for the frame being drawn
	cam vmath.Vec2

	defaultStyle tcell.Style
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{
		screen:       screen,
		defaultStyle: tcell.StyleDefault.Background(RgbBackground),
	}
}

// RenderFrame renders the entire game frame under the world read lock
func (r *TerminalRenderer) RenderFrame(ctx *engine.GameContext) {
	r.screen.Clear()
	r.width, r.height = r.screen.Size()
	r.viewRows = r.height - constants.HUDRows
	if r.viewRows < 0 {
		r.viewRows = 0
	}
	r.screen.Fill(' ', r.defaultStyle)

	mode := ctx.Mode()
	world := ctx.World
	world.Read(func() {
		r.cam = world.Camera.Pos

		r.drawGround()
		r.drawItems(world)
		r.drawEnemies(world)
		r.drawPlayer(world)
		r.drawProjectiles(world)
		r.drawEffects(world)

		r.drawHUD(world.SnapshotLocked(), mode)
		r.drawStatus(world.Status, mode)

		switch {
		case world.GameOver:
			r.drawGameOver(world)
		case mode == engine.ModeShop:
			r.drawShop(world)
		case mode == engine.ModeDex:
			r.drawDex(world)
		}
	})

	r.screen.Show()
}

// toCell maps a world point to a screen cell
func (r *TerminalRenderer) toCell(p vmath.Vec2) (int, int) {
	x := int(math.Floor((p.X - r.cam.X) / constants.CellWidth))
	y := int(math.Floor((p.Y - r.cam.Y) / constants.CellHeight))
	return x, y
}

// cellSpan returns the half-open cell range covered by a world rect; every
// rect covers at least one cell
func (r *TerminalRenderer) cellSpan(rect vmath.Rect) (x0, y0, x1, y1 int) {
	x0, y0 = r.toCell(vmath.Vec2{X: rect.X, Y: rect.Y})
	x1 = int(math.Ceil((rect.X + rect.W - r.cam.X) / constants.CellWidth))
	y1 = int(math.Ceil((rect.Y + rect.H - r.cam.Y) / constants.CellHeight))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return
}

// setView writes one cell if it lies inside the world viewport
func (r *TerminalRenderer) setView(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.width || y >= r.viewRows {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

// fillRect paints a world rect with a glyph
func (r *TerminalRenderer) fillRect(rect vmath.Rect, ch rune, style tcell.Style) {
	x0, y0, x1, y1 := r.cellSpan(rect)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.setView(x, y, ch, style)
		}
	}
}

// drawHealthBar draws a bar on the row above rect
func (r *TerminalRenderer) drawHealthBar(rect vmath.Rect, hp, maxHP int) {
	if maxHP <= 0 {
		return
	}
	x0, y0, x1, _ := r.cellSpan(rect)
	width := x1 - x0
	ratio := float64(hp) / float64(maxHP)
	filled := int(math.Ceil(ratio * float64(width)))
	if hp <= 0 {
		filled = 0
	}

	full := r.defaultStyle.Foreground(HealthColor(ratio))
	empty := r.defaultStyle.Foreground(RgbDim)
	for i := 0; i < width; i++ {
		if i < filled {
			r.setView(x0+i, y0-1, '▀', full)
		} else {
			r.setView(x0+i, y0-1, '▀', empty)
		}
	}
}

func (r *TerminalRenderer) drawGround() {
	style := r.defaultStyle.Foreground(RgbGround)
	for y := 0; y < r.viewRows; y++ {
		wy := r.cam.Y + float64(y)*constants.CellHeight
		if math.Mod(wy, groundSpacing) >= constants.CellHeight {
			continue
		}
		for x := 0; x < r.width; x++ {
			wx := r.cam.X + float64(x)*constants.CellWidth
			if wx >= constants.WorldWidth || wy >= constants.WorldHeight {
				continue
			}
			if math.Mod(wx, groundSpacing) < constants.CellWidth {
				r.screen.SetContent(x, y, '·', nil, style)
			}
		}
	}
}

func (r *TerminalRenderer) drawItems(world *engine.World) {
	for _, it := range world.Items {
		if it.Collected {
			continue
		}
		ch, color := '!', RgbPotion
		if it.Kind == components.ItemGold {
			ch, color = '$', RgbGold
		}
		r.fillRect(it.Bounds(), ch, r.defaultStyle.Foreground(color).Bold(true))
	}
}

func (r *TerminalRenderer) drawEnemies(world *engine.World) {
	for _, m := range world.Monsters {
		r.fillRect(m.Bounds(), SpeciesGlyph(m.Species), r.defaultStyle.Foreground(SpeciesColor(m.Species)))
		r.drawHealthBar(m.Bounds(), m.HP, m.MaxHP)
	}
	if b := world.Boss; b != nil {
		r.fillRect(b.Bounds(), SpeciesGlyph(b.Species), r.defaultStyle.Foreground(SpeciesColor(b.Species)).Bold(true))
		r.drawHealthBar(b.Bounds(), b.HP, b.MaxHP)
	}
}

func (r *TerminalRenderer) drawPlayer(world *engine.World) {
	p := world.Player
	r.fillRect(p.Bounds(), '@', r.defaultStyle.Foreground(RgbPlayer).Bold(true))
	r.drawHealthBar(p.Bounds(), p.HP, p.MaxHP)
}

func (r *TerminalRenderer) drawProjectiles(world *engine.World) {
	style := r.defaultStyle.Foreground(RgbProjectile)
	for _, pr := range world.Projectiles {
		x, y := r.toCell(pr.Bounds().Center())
		r.setView(x, y, '•', style)
	}
}

func (r *TerminalRenderer) drawEffects(world *engine.World) {
	for _, fx := range world.Effects {
		ch, color := EffectLook(fx.Kind)
		x, y := r.toCell(fx.Pos)
		r.setView(x, y, ch, r.defaultStyle.Foreground(fade(color, fx.Progress())))
	}
}

// drawHUD draws the stats line below the viewport
func (r *TerminalRenderer) drawHUD(s engine.HUDSnapshot, mode engine.GameMode) {
	y := r.height - 2
	if y < 0 {
		return
	}
	hudStyle := tcell.StyleDefault.Foreground(RgbStatusText).Background(RgbHUDBg)
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, y, ' ', nil, hudStyle)
	}

	text := fmt.Sprintf(" HP %d/%d  ATK %d  GOLD %d  LV %d  EXP %d/%d  POT %d ",
		s.HP, s.MaxHP, s.Attack, s.Gold, s.Level, s.Exp, s.ExpToNext, s.Potions)
	x := r.drawText(0, y, text, hudStyle)

	if s.BossMaxHP > 0 {
		bossStyle := tcell.StyleDefault.Foreground(RgbStatusBar).Background(RgbBossBg)
		r.drawText(x+1, y, fmt.Sprintf(" BOSS %d/%d ", s.BossHP, s.BossMaxHP), bossStyle)
	}

	if mode != engine.ModePlaying {
		tag := fmt.Sprintf(" %s ", mode)
		r.drawText(r.width-len(tag), y, tag, tcell.StyleDefault.Foreground(RgbStatusText).Background(RgbStatusBar))
	}
}

// drawStatus draws the last status message on the bottom row
func (r *TerminalRenderer) drawStatus(status string, mode engine.GameMode) {
	y := r.height - 1
	if y < 0 {
		return
	}
	style := r.defaultStyle.Foreground(RgbStatusBar)
	if status == "" && mode == engine.ModePlaying {
		status = "wasd move  f attack  q area  e potion  b shop  m dex"
		style = r.defaultStyle.Foreground(RgbDim)
	}
	r.drawText(1, y, status, style)
}

// drawText writes s starting at x and returns the column after the last rune
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= r.width {
			break
		}
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
	return x
}
