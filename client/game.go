package client

import (
	"fmt"
	"log"
	"strings"

	"github.com/ConnorK747/RetroGame/utils"
	"github.com/ConnorK747/RetroGame/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type Game struct {
	*Assets
	world    *world.World
	renderer *Renderer
	keys     keyState
	debug    bool
	width    int
	height   int
}

func NewGame(w *world.World, assets *Assets, cfg utils.UIConfig) *Game {
	return &Game{
		Assets:   assets,
		world:    w,
		renderer: NewRenderer(),
		keys:     keyboard,
		debug:    cfg.Debug,
		width:    cfg.Viewport.X,
		height:   cfg.Viewport.Y,
	}
}

func (g *Game) Update() error {
	if g.keys.quit() {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}

	g.handleEvents(g.world.Step(g.keys.input()))
	return nil
}

func (g *Game) handleEvents(events []world.Event) {
	p := g.world.Player
	for _, e := range events {
		switch e.Kind {
		case world.EventJump, world.EventBufferedJump:
			g.Play("jump")
		case world.EventLand:
			g.Play("land")
		case world.EventBump:
			g.Play("bump")
		case world.EventFell:
			log.Printf("%s fell at (%0.0f,%0.0f) on tick %d", p.ID, e.Coords.X, e.Coords.Y, e.Tick)
			g.Play("fell")
		case world.EventGoal:
			log.Printf("%s reached the flag on tick %d", p.ID, e.Tick)
			g.Play("goal")
		}
	}
}

func (g *Game) debugString() string {
	p := g.world.Player
	return strings.Join([]string{
		fmt.Sprintf("Version: %s, TPS: %0.02f, FPS: %0.02f", strings.TrimSpace(Version), ebiten.ActualTPS(), ebiten.ActualFPS()),
		p.ID,
		fmt.Sprintf("pos (%0.1f,%0.1f) vel (%0.1f,%0.1f) ground %v", p.Coords.X, p.Coords.Y, p.Velocity.X, p.Velocity.Y, p.OnGround),
		fmt.Sprintf("hold %d/%d buffer %d/%d camera %0.0f", p.JumpHoldTime, p.JumpHoldMax, p.JumpBufferTime, p.JumpBufferMax, g.world.Camera.Offset),
	}, "\n")
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen, g.world)
	if g.debug {
		ebitenutil.DebugPrint(screen, g.debugString())
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.width, g.height
}
