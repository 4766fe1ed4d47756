// Package window runs a session in a desktop window through ebiten
package window

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/skyfire/constants"
	"github.com/lixenwraith/skyfire/engine"
	"github.com/lixenwraith/skyfire/input"
	"github.com/lixenwraith/skyfire/render"
	"github.com/lixenwraith/skyfire/vmath"
)

// Game adapts a session to ebiten.Game: Update advances with wall time, Draw renders the
// latest state
type Game struct {
	ctx    *engine.GameContext
	loop   *engine.Loop
	orch   *render.Orchestrator
	canvas *ImageCanvas
	keys   map[input.Action][]ebiten.Key
	clock  engine.TimeProvider

	pointerX float64
	touchIDs []ebiten.TouchID
}

// NewGame wires a session to the window. stars may be nil to disable the backdrop
func NewGame(ctx *engine.GameContext, km input.KeyMap, stars vmath.Source) (*Game, error) {
	keys, err := ResolveKeys(km)
	if err != nil {
		return nil, err
	}

	canvas := NewImageCanvas()
	var sf *render.StarField
	if stars != nil {
		sf = render.NewStarField(stars)
	}

	return &Game{
		ctx:      ctx,
		loop:     engine.NewLoop(ctx, nil),
		orch:     render.NewSceneOrchestrator(canvas, sf),
		canvas:   canvas,
		keys:     keys,
		clock:    engine.NewMonotonicTimeProvider(),
		pointerX: constants.FieldWidth / 2,
	}, nil
}

func (g *Game) Update() error {
	if g.justPressed(input.ActionQuit) {
		return ebiten.Termination
	}
	if g.justPressed(input.ActionBegin) && !g.ctx.State.Running() {
		g.ctx.Begin()
	}

	g.loop.Advance(g.clock.Now(), g.poll())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Target(screen)
	g.orch.Render(g.ctx)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return constants.FieldWidth, constants.FieldHeight
}

// poll samples keyboard, mouse and touch into an intent. A fresh press starts an idle session
func (g *Game) poll() input.Intent {
	in := input.Intent{
		Left:  g.pressed(input.ActionLeft),
		Right: g.pressed(input.ActionRight),
		Shoot: g.pressed(input.ActionShoot),
	}

	pressedNow := false
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, _ := ebiten.CursorPosition()
		g.pointerX = float64(x)
		in.PointerDown = true
		pressedNow = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	}

	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	if len(g.touchIDs) > 0 {
		x, _ := ebiten.TouchPosition(g.touchIDs[0])
		g.pointerX = float64(x)
		in.PointerDown = true
		if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
			pressedNow = true
		}
	}

	if pressedNow && !g.ctx.State.Running() {
		g.ctx.Start()
	}

	in.PointerX = g.pointerX
	return in
}

func (g *Game) pressed(a input.Action) bool {
	for _, k := range g.keys[a] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (g *Game) justPressed(a input.Action) bool {
	for _, k := range g.keys[a] {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// Run opens the window and blocks until it closes
func Run(g *Game, title string, scale float64) error {
	ebiten.SetWindowSize(int(constants.FieldWidth*scale), int(constants.FieldHeight*scale))
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(ebiten.DefaultTPS)
	// RunGame maps ebiten.Termination to a nil error
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	log.Printf("window closed (score=%d)", g.ctx.State.Score)
	return nil
}
