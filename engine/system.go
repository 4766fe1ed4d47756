package engine

// System is one stage of the per-tick update pipeline
// Systems run in ascending Priority order; equal priorities keep registration order
type System interface {
	Priority() int
	Update(ctx *GameContext, dt float64)
}

// AddSystem inserts s keeping the pipeline sorted by priority
func (ctx *GameContext) AddSystem(s System) {
	pos := len(ctx.systems)
	for i, e := range ctx.systems {
		if s.Priority() < e.Priority() {
			pos = i
			break
		}
	}

	ctx.systems = append(ctx.systems, nil)
	copy(ctx.systems[pos+1:], ctx.systems[pos:])
	ctx.systems[pos] = s
}

// Systems returns a copy of the pipeline in execution order
func (ctx *GameContext) Systems() []System {
	out := make([]System, len(ctx.systems))
	copy(out, ctx.systems)
	return out
}
