package systems

import (
	"math/rand/v2"

	"github.com/lixenwraith/skyfire/components"
	"github.com/lixenwraith/skyfire/constants"
	"github.com/lixenwraith/skyfire/engine"
)

// scriptedSource replays a fixed sequence of draws, cycling when exhausted
type scriptedSource struct {
	values []float64
	next   int
}

func (s *scriptedSource) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// newRunningContext creates a started session with the given systems only
func newRunningContext(src interface{ Float64() float64 }, sys ...engine.System) *engine.GameContext {
	if src == nil {
		src = rand.New(rand.NewPCG(42, 1337))
	}
	ctx := engine.NewGameContext(src)
	for _, s := range sys {
		ctx.AddSystem(s)
	}
	ctx.Start()
	return ctx
}

// enemyOnPlayer returns a weak enemy overlapping the ship's home position
func enemyOnPlayer(ctx *engine.GameContext) *components.Enemy {
	e := components.NewEnemy(ctx.Player.X+1, 0, constants.WeakHP, constants.WeakScore)
	e.Y = ctx.Player.Y - 12
	return e
}
