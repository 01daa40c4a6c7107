// cmd/game/main.go
package main

import (
	"flag"
	"go-missile-defense/internal/app"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/defs"
	"go-missile-defense/internal/state"
	"go-missile-defense/pkg/render/ebitenrender"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

// Update вызывается ebiten 60 раз в секунду; один вызов — один кадр симуляции.
func (a *AppGame) Update() error {
	a.stateMachine.Update()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(ebitenrender.NewSurface(screen))
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func loadLibrary(dir string) *defs.Library {
	lib, err := defs.LoadAll(dir)
	if err != nil {
		log.Printf("Failed to load definitions from %s, using built-in defaults: %v", dir, err)
		return defs.Default()
	}
	return lib
}

func main() {
	// --- Флаги командной строки ---
	devMode := flag.Bool("dev", false, "Start directly in the game state for development")
	flag.Parse()

	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	if *devMode {
		settings.StartInMenu = false
	}

	lib := loadLibrary(settings.DataDir)
	ctx := &state.Context{
		Input: ebitenrender.Input{},
		NewGame: func() *app.Game {
			return app.NewGame(lib, settings.Seed)
		},
	}

	sm := state.NewStateMachine()
	state.Boot(sm, ctx, settings.StartInMenu)

	ebiten.SetTPS(ebiten.DefaultTPS)
	ebiten.SetWindowSize(int(config.ScreenWidth*settings.WindowScale), int(config.ScreenHeight*settings.WindowScale))
	ebiten.SetWindowTitle("Missile Defense")
	if err := ebiten.RunGame(&AppGame{stateMachine: sm}); err != nil {
		log.Fatal(err)
	}
}
