package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sprite-quest/engine"
)

// panel is a centered box; lines are drawn top to bottom inside the border
type panel struct {
	title string
	lines []panelLine
}

type panelLine struct {
	text  string
	style tcell.Style
}

func (p *panel) add(text string, style tcell.Style) {
	p.lines = append(p.lines, panelLine{text: text, style: style})
}

// drawPanel draws p centered over the viewport, clipped to the screen
func (r *TerminalRenderer) drawPanel(p *panel) {
	inner := len([]rune(p.title)) + 2
	for _, l := range p.lines {
		if n := len([]rune(l.text)); n > inner {
			inner = n
		}
	}
	w := inner + 4
	h := len(p.lines) + 4

	x0 := (r.width - w) / 2
	y0 := (r.viewRows - h) / 2
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}

	bg := tcell.StyleDefault.Background(RgbPanelBg)
	edge := bg.Foreground(RgbPanelEdge)
	for y := y0; y < y0+h && y < r.height; y++ {
		for x := x0; x < x0+w && x < r.width; x++ {
			ch := ' '
			switch {
			case (y == y0 || y == y0+h-1) && (x == x0 || x == x0+w-1):
				ch = '+'
			case y == y0 || y == y0+h-1:
				ch = '─'
			case x == x0 || x == x0+w-1:
				ch = '│'
			}
			r.screen.SetContent(x, y, ch, nil, edge)
		}
	}

	r.drawText(x0+(w-len([]rune(p.title)))/2, y0+1, p.title, bg.Foreground(RgbGold).Bold(true))
	for i, l := range p.lines {
		r.drawText(x0+2, y0+3+i, l.text, l.style.Background(RgbPanelBg))
	}
}

// drawShop lists purchasable items with their slot keys
func (r *TerminalRenderer) drawShop(world *engine.World) {
	p := &panel{title: "SHOP"}
	text := tcell.StyleDefault.Foreground(RgbStatusBar)
	dim := tcell.StyleDefault.Foreground(RgbDim)

	gold := world.Player.Gold
	for i, item := range world.Bestiary.Shop {
		style := text
		if item.Price > gold {
			style = dim
		}
		p.add(fmt.Sprintf("%d. %-16s %4d G", i+1, item.Name, item.Price), style)
	}
	p.add("", text)
	p.add(fmt.Sprintf("Gold: %d", gold), tcell.StyleDefault.Foreground(RgbGold))
	p.add("1-5 buy  b/Esc close  m dex", dim)
	r.drawPanel(p)
}

// drawDex lists every species; undiscovered ones stay hidden
func (r *TerminalRenderer) drawDex(world *engine.World) {
	p := &panel{title: "BESTIARY"}
	text := tcell.StyleDefault.Foreground(RgbStatusBar)
	dim := tcell.StyleDefault.Foreground(RgbDim)

	entries := append(append([]*engine.DexEntry{}, world.Dex.Monsters...), world.Dex.Bosses...)
	for _, e := range entries {
		if !e.Discovered {
			p.add("???", dim)
			continue
		}
		skills := make([]string, 0, len(e.Skills))
		for _, sk := range e.Skills {
			skills = append(skills, world.Bestiary.SkillName(sk))
		}
		p.add(fmt.Sprintf("%-10s defeated %3d  %s",
			world.Bestiary.DisplayName(e.Species), e.Defeated, strings.Join(skills, ", ")),
			text.Foreground(SpeciesColor(e.Species)))
	}
	p.add("", text)
	p.add("m/Esc close  b shop", dim)
	r.drawPanel(p)
}

// drawGameOver shows final stats and the restart hint
func (r *TerminalRenderer) drawGameOver(world *engine.World) {
	p := &panel{title: "GAME OVER"}
	pl := world.Player
	text := tcell.StyleDefault.Foreground(RgbStatusBar)
	p.add(fmt.Sprintf("Level %d  Gold %d", pl.Level, pl.Gold), text)
	p.add("", text)
	p.add("r restart  Ctrl-Q quit", tcell.StyleDefault.Foreground(RgbDim))
	r.drawPanel(p)
}
