package modes

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sprite-quest/components"
	"github.com/lixenwraith/sprite-quest/constants"
	"github.com/lixenwraith/sprite-quest/engine"
	"github.com/lixenwraith/sprite-quest/events"
)

// Muter toggles sound output; *audio.SoundManager implements it
type Muter interface {
	ToggleMute() bool
}

// InputHandler translates terminal events into input state and game events
type InputHandler struct {
	ctx   *engine.GameContext
	muter Muter

	// lastButtons tracks mouse state so a held button fires once
	lastButtons tcell.ButtonMask
}

// NewInputHandler creates a new input handler; muter may be nil
func NewInputHandler(ctx *engine.GameContext, muter Muter) *InputHandler {
	return &InputHandler{
		ctx:   ctx,
		muter: muter,
	}
}

// HandleEvent processes a tcell event and returns false if the game should exit
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKeyEvent(ev)
	case *tcell.EventMouse:
		h.handleMouseEvent(ev)
	case *tcell.EventResize:
		w, hgt := ev.Size()
		h.ctx.HandleResize(w, hgt)
	}
	return true
}

// handleKeyEvent processes keyboard events
func (h *InputHandler) handleKeyEvent(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlQ, tcell.KeyCtrlC:
		return false
	case tcell.KeyCtrlS:
		if h.muter != nil {
			h.ctx.IsMuted.Store(h.muter.ToggleMute())
		}
		return true
	case tcell.KeyEscape:
		if h.ctx.Mode() != engine.ModePlaying {
			h.ctx.SetMode(engine.ModePlaying)
		}
		return true
	}

	switch h.ctx.Mode() {
	case engine.ModeShop:
		h.handleShopMode(ev)
	case engine.ModeDex:
		h.handleDexMode(ev)
	default:
		h.handlePlayingMode(ev)
	}
	return true
}

// handlePlayingMode handles movement and actions
func (h *InputHandler) handlePlayingMode(ev *tcell.EventKey) {
	if h.ctx.IsGameOver() {
		if ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R') {
			h.ctx.PushEvent(events.EventGameReset, nil)
		}
		return
	}

	if dir, ok := directionFor(ev); ok {
		h.ctx.World.Input.Press(dir, constants.KeyHoldWindow)
		return
	}
	if ev.Key() != tcell.KeyRune {
		return
	}

	switch ev.Rune() {
	case 'f', 'F':
		h.ctx.PushEvent(events.EventAttackRequest, nil)
	case 'q', 'Q':
		h.ctx.PushEvent(events.EventAreaAttackRequest, nil)
	case 'e', 'E':
		h.ctx.PushEvent(events.EventPotionRequest, nil)
	case 'b', 'B':
		h.ctx.SetMode(engine.ModeShop)
	case 'm', 'M':
		h.ctx.SetMode(engine.ModeDex)
	}
}

// handleShopMode handles purchases by slot number
func (h *InputHandler) handleShopMode(ev *tcell.EventKey) {
	if ev.Key() != tcell.KeyRune {
		return
	}
	r := ev.Rune()
	switch {
	case r == 'b' || r == 'B':
		h.ctx.SetMode(engine.ModePlaying)
	case r == 'm' || r == 'M':
		h.ctx.SetMode(engine.ModeDex)
	case r >= '1' && r <= '9':
		shop := h.ctx.World.Bestiary.Shop
		if slot := int(r - '1'); slot < len(shop) {
			h.ctx.PushEvent(events.EventPurchaseRequest, &events.PurchaseRequestPayload{Key: shop[slot].Key})
		}
	}
}

// handleDexMode only navigates away
func (h *InputHandler) handleDexMode(ev *tcell.EventKey) {
	if ev.Key() != tcell.KeyRune {
		return
	}
	switch ev.Rune() {
	case 'm', 'M':
		h.ctx.SetMode(engine.ModePlaying)
	case 'b', 'B':
		h.ctx.SetMode(engine.ModeShop)
	}
}

// handleMouseEvent fires an attack on a left-button press
func (h *InputHandler) handleMouseEvent(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && h.lastButtons&tcell.Button1 == 0
	h.lastButtons = buttons

	if !pressed || h.ctx.Mode() != engine.ModePlaying || h.ctx.IsGameOver() {
		return
	}
	h.ctx.PushEvent(events.EventAttackRequest, nil)
}

// directionFor maps arrows and WASD to a movement direction
func directionFor(ev *tcell.EventKey) (components.Direction, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return components.DirUp, true
	case tcell.KeyDown:
		return components.DirDown, true
	case tcell.KeyLeft:
		return components.DirLeft, true
	case tcell.KeyRight:
		return components.DirRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return components.DirUp, true
		case 's', 'S':
			return components.DirDown, true
		case 'a', 'A':
			return components.DirLeft, true
		case 'd', 'D':
			return components.DirRight, true
		}
	}
	return 0, false
}
