// Command ledtris runs the LED falling-block game in an ebiten window.
package main

import (
	"errors"
	"flag"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/ledtris/config"
	"github.com/plus3/ledtris/debugui"
	debugui_ebiten "github.com/plus3/ledtris/debugui/ebiten"
	"github.com/plus3/ledtris/game"
	"github.com/plus3/ledtris/highscore"
	"github.com/plus3/ledtris/loop"
)

const title = "LEDtris"

// App implements ebiten.Game.
type App struct {
	engine    *game.Engine
	scheduler *loop.Scheduler
	input     *InputSystem
	renderer  *Renderer
	step      time.Duration

	imgui   *debugui_ebiten.ImguiBackend
	overlay *debugui.Overlay
}

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	log.Printf("seed %d, high score file %s", seed, cfg.HighScorePath)

	app := newApp(cfg, seed)
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

func newApp(cfg config.Config, seed uint64) *App {
	layout := NewLayout(cfg.CellSize, game.DefaultWidth, game.DefaultHeight)
	width, height := layout.ScreenSize()

	timer := loop.NewDropTimer(nil)
	app := &App{
		scheduler: loop.NewScheduler(),
		renderer:  &Renderer{Layout: layout},
		step:      time.Second / time.Duration(cfg.TPS),
	}

	app.engine = game.NewEngine(
		game.WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))),
		game.WithTimer(timer),
		game.WithHighScoreStore(highscore.NewFileStore(cfg.HighScorePath)),
		game.WithListener(app.onEvent),
	)
	timer.SetTick(func() { app.engine.Tick() })

	app.input = &InputSystem{Keys: keyboard{}, Engine: app.engine}
	app.scheduler.Register(app.input)
	app.scheduler.Register(timer)

	ebiten.SetTPS(cfg.TPS)
	if cfg.Debug {
		app.imgui = debugui_ebiten.NewImguiBackend(title, width, height)
		app.overlay = debugui.NewOverlay(app.engine, timer, app.scheduler)
		app.overlay.Visible = true
		app.input.Captured = app.overlay.WantsKeyboard
		app.input.ToggleDebug = app.overlay.Toggle
		app.scheduler.Register(&debugui.ImguiSystem{Overlay: app.overlay})
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle(title)
	}
	return app
}

func (a *App) onEvent(ev game.Event) {
	if !ev.Has(game.EventGameOver) {
		return
	}
	log.Printf("game over: score %d, level %d, lines %d", a.engine.Score(), a.engine.Level(), a.engine.Lines())
	if err := a.engine.PersistErr(); err != nil {
		log.Printf("saving high score: %v", err)
	}
}

func (a *App) Update() error {
	if a.imgui != nil {
		a.imgui.BeginFrame()
	}
	a.scheduler.Once(a.step)
	if a.imgui != nil {
		a.imgui.EndFrame()
	}

	if a.input.Quit() {
		return ebiten.Termination
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.Draw(screen, a.engine.Snapshot())
	if a.imgui != nil {
		a.imgui.Draw(screen)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.imgui != nil {
		a.imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return a.renderer.Layout.ScreenSize()
}
