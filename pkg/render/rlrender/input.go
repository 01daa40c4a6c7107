package rlrender

import rl "github.com/gen2brain/raylib-go/raylib"

// Input читает мышь и клавиатуру raylib.
type Input struct{}

func (Input) CursorPosition() (float64, float64) {
	p := rl.GetMousePosition()
	return float64(p.X), float64(p.Y)
}

func (Input) FirePressed() bool {
	return rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

func (Input) StartPressed() bool {
	return rl.IsKeyPressed(rl.KeySpace) || rl.IsKeyPressed(rl.KeyEnter)
}

func (Input) PausePressed() bool {
	return rl.IsKeyPressed(rl.KeyP) || rl.IsKeyPressed(rl.KeyEscape)
}

func (Input) RestartPressed() bool {
	return rl.IsKeyPressed(rl.KeyR)
}
