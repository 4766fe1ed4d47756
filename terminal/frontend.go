package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/skyfire/engine"
	"github.com/lixenwraith/skyfire/input"
	"github.com/lixenwraith/skyfire/render"
	"github.com/lixenwraith/skyfire/vmath"
)

// Options configures a terminal frontend
type Options struct {
	Keys input.KeyMap
	// Hold is the latch window of a fresh key press, Repeat the window refreshed by
	// auto-repeat; zero Repeat reuses Hold
	Hold   time.Duration
	Repeat time.Duration
	Mouse  bool
	// Stars drives the backdrop; nil disables it
	Stars vmath.Source
}

// Frontend binds a tcell screen to a session: events in, frames out.
// All methods must be called from one goroutine
type Frontend struct {
	screen tcell.Screen
	canvas *ScreenCanvas
	input  *InputHandler
	loop   *engine.Loop
}

// NewFrontend wires canvas, render pipeline, input handler and loop driver for ctx
func NewFrontend(screen tcell.Screen, ctx *engine.GameContext, opts Options) (*Frontend, error) {
	canvas := NewScreenCanvas(screen)

	var stars *render.StarField
	if opts.Stars != nil {
		stars = render.NewStarField(opts.Stars)
	}
	orch := render.NewSceneOrchestrator(canvas, stars)

	handler, err := NewInputHandler(ctx, opts.Keys, opts.Hold, opts.Repeat, opts.Mouse, canvas.Viewport)
	if err != nil {
		return nil, err
	}

	return &Frontend{
		screen: screen,
		canvas: canvas,
		input:  handler,
		loop:   engine.NewLoop(ctx, orch),
	}, nil
}

// HandleEvent processes one event; false means quit
func (f *Frontend) HandleEvent(ev tcell.Event, now time.Time) bool {
	if _, ok := ev.(*tcell.EventResize); ok {
		f.canvas.Resize()
		f.screen.Sync()
		return true
	}
	return f.input.HandleEvent(ev, now)
}

// Frame advances the session to now and draws it
func (f *Frontend) Frame(now time.Time) {
	f.loop.Tick(now, f.input.Intent(now))
}

// Loop exposes the driver for frame statistics
func (f *Frontend) Loop() *engine.Loop {
	return f.loop
}
