package terminal

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/skyfire/engine"
	"github.com/lixenwraith/skyfire/input"
)

// InputHandler translates tcell events into lifecycle signals and a per-tick intent
type InputHandler struct {
	ctx      *engine.GameContext
	bindings map[string]input.Action
	latch    *input.HoldLatch
	view     func() Viewport
	mouse    bool

	pointerDown bool
	pointerX    float64
}

// NewInputHandler resolves the keymap and creates a handler. view supplies the current
// screen mapping for mouse coordinates
func NewInputHandler(ctx *engine.GameContext, keys input.KeyMap, hold, repeat time.Duration, mouse bool, view func() Viewport) (*InputHandler, error) {
	bindings, err := keys.Bindings()
	if err != nil {
		return nil, fmt.Errorf("terminal keymap: %w", err)
	}
	return &InputHandler{
		ctx:      ctx,
		bindings: bindings,
		latch:    input.NewHoldLatch(hold, repeat),
		view:     view,
		mouse:    mouse,
		pointerX: ctx.Input.PointerX,
	}, nil
}

// HandleEvent processes a tcell event and returns false if the game should exit
func (h *InputHandler) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev, now)
	case *tcell.EventMouse:
		if h.mouse {
			h.handleMouse(ev)
		}
	}
	return true
}

func (h *InputHandler) handleKey(ev *tcell.EventKey, now time.Time) bool {
	action := h.bindings[KeyName(ev)]
	switch action {
	case input.ActionQuit:
		return false
	case input.ActionBegin:
		if !h.ctx.State.Running() {
			h.latch.Clear()
			h.ctx.Begin()
		}
	case input.ActionLeft, input.ActionRight, input.ActionShoot:
		h.latch.Press(action, now)
	}
	return true
}

func (h *InputHandler) handleMouse(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		h.pointerDown = false
		return
	}
	col, _ := ev.Position()
	h.pointerX = h.view().FieldX(col)
	if !h.pointerDown {
		log.Printf("pointer down at x=%.0f", h.pointerX)
	}
	h.pointerDown = true
	if !h.ctx.State.Running() {
		h.ctx.Start()
	}
}

// Intent returns the input snapshot for a tick at now
func (h *InputHandler) Intent(now time.Time) input.Intent {
	return input.Intent{
		Left:        h.latch.Held(input.ActionLeft, now),
		Right:       h.latch.Held(input.ActionRight, now),
		Shoot:       h.latch.Held(input.ActionShoot, now),
		PointerDown: h.pointerDown,
		PointerX:    h.pointerX,
	}
}
