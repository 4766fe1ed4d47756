package engine

import (
	"time"

	"github.com/lixenwraith/skyfire/constants"
	"github.com/lixenwraith/skyfire/input"
)

// Renderer is the presentation stage. It reads the session and must not mutate it
type Renderer interface {
	Render(ctx *GameContext)
}

// Loop drives a session from host timestamps: clamp dt, update if running, then render
type Loop struct {
	ctx      *GameContext
	renderer Renderer

	last    time.Time
	started bool
	frames  uint64
}

// NewLoop creates a driver. renderer may be nil for hosts that draw from their own callback
func NewLoop(ctx *GameContext, renderer Renderer) *Loop {
	return &Loop{
		ctx:      ctx,
		renderer: renderer,
	}
}

// ClampDelta bounds a raw frame delta to [0, MaxDeltaSeconds]; NaN and negatives become 0
func ClampDelta(raw float64) float64 {
	if !(raw > 0) {
		return 0
	}
	return min(raw, constants.MaxDeltaSeconds)
}

// Advance runs the update half of a tick and returns the dt applied
// The first call after construction establishes the time base and steps with dt 0
func (l *Loop) Advance(now time.Time, in input.Intent) float64 {
	dt := 0.0
	if l.started {
		dt = ClampDelta(now.Sub(l.last).Seconds())
	}
	l.last = now
	l.started = true

	l.ctx.Update(dt, in)
	return dt
}

// Tick runs one full frame: update then render. Rendering happens even when not running
func (l *Loop) Tick(now time.Time, in input.Intent) float64 {
	dt := l.Advance(now, in)
	l.render()
	return dt
}

// Step runs one frame with an explicit delta, bypassing timestamps
func (l *Loop) Step(dt float64, in input.Intent) {
	l.ctx.Update(ClampDelta(dt), in)
	l.render()
}

// Frames returns the number of frames rendered
func (l *Loop) Frames() uint64 {
	return l.frames
}

func (l *Loop) render() {
	l.frames++
	if l.renderer != nil {
		l.renderer.Render(l.ctx)
	}
}
