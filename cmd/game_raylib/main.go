// cmd/game_raylib/main.go
package main

import (
	"flag"
	"go-missile-defense/internal/app"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/defs"
	"go-missile-defense/internal/state"
	"go-missile-defense/pkg/render/rlrender"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	devMode := flag.Bool("dev", false, "Start directly in the game state for development")
	flag.Parse()

	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	if *devMode {
		settings.StartInMenu = false
	}

	lib, err := defs.LoadAll(settings.DataDir)
	if err != nil {
		log.Printf("Failed to load definitions from %s, using built-in defaults: %v", settings.DataDir, err)
		lib = defs.Default()
	}

	// --- Инициализация Raylib ---
	scale := float32(settings.WindowScale)
	rl.InitWindow(int32(config.ScreenWidth*scale), int32(config.ScreenHeight*scale), "Missile Defense")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(0) // Escape — пауза, а не выход
	rl.SetMouseScale(1/scale, 1/scale)

	ctx := &state.Context{
		Input: rlrender.Input{},
		NewGame: func() *app.Game {
			return app.NewGame(lib, settings.Seed)
		},
	}
	sm := state.NewStateMachine()
	state.Boot(sm, ctx, settings.StartInMenu)

	camera := rl.Camera2D{Zoom: scale}
	surface := rlrender.Surface{}

	// --- Главный цикл игры ---
	for !rl.WindowShouldClose() {
		sm.Update()

		rl.BeginDrawing()
		rl.BeginMode2D(camera)
		sm.Draw(surface)
		rl.EndMode2D()
		rl.EndDrawing()
	}
}
