package render

import (
	"github.com/lixenwraith/skyfire/engine"
)

type layerEntry struct {
	layer    Layer
	priority RenderPriority
}

// Orchestrator coordinates the render pipeline: snapshot, scroll stars, draw layers, present.
// It implements engine.Renderer
type Orchestrator struct {
	canvas Canvas
	stars  *StarField
	frame  Frame
	layers []layerEntry
}

// NewOrchestrator creates an empty pipeline over the canvas
func NewOrchestrator(canvas Canvas, stars *StarField) *Orchestrator {
	return &Orchestrator{
		canvas: canvas,
		stars:  stars,
		layers: make([]layerEntry, 0, 8),
	}
}

// NewSceneOrchestrator creates a pipeline with the standard scene layers registered
func NewSceneOrchestrator(canvas Canvas, stars *StarField) *Orchestrator {
	o := NewOrchestrator(canvas, stars)
	o.Register(LayerFunc(drawBackground), PriorityBackground)
	o.Register(LayerFunc(drawPlayer), PriorityPlayer)
	o.Register(LayerFunc(drawProjectiles), PriorityProjectiles)
	o.Register(LayerFunc(drawEnemies), PriorityEnemies)
	o.Register(LayerFunc(drawParticles), PriorityParticles)
	o.Register(LayerFunc(drawHUD), PriorityHUD)
	o.Register(LayerFunc(drawBanner), PriorityOverlay)
	return o
}

// Register adds a layer at the specified priority. Maintains sorted order via insertion sort,
// equal priorities keep registration order
func (o *Orchestrator) Register(l Layer, priority RenderPriority) {
	pos := len(o.layers)
	for i, e := range o.layers {
		if priority < e.priority {
			pos = i
			break
		}
	}

	o.layers = append(o.layers, layerEntry{})
	copy(o.layers[pos+1:], o.layers[pos:])
	o.layers[pos] = layerEntry{layer: l, priority: priority}
}

// Frame returns the most recent snapshot
func (o *Orchestrator) Frame() *Frame {
	return &o.frame
}

// Render draws one frame of ctx. The star field scrolls on every call, running or not
func (o *Orchestrator) Render(ctx *engine.GameContext) {
	if o.stars != nil {
		o.stars.Advance()
	}
	o.frame.Snapshot(ctx)
	o.frame.Stars = o.stars

	for _, e := range o.layers {
		e.layer.Draw(&o.frame, o.canvas)
	}
	o.canvas.Present()
}

var _ engine.Renderer = (*Orchestrator)(nil)
