// internal/ui/pause_button.go
package ui

import (
	"go-missile-defense/pkg/render"
	"image/color"
	"math"
)

const pausePulseFrames = 20

// PauseButton — кнопка паузы в углу экрана.
type PauseButton struct {
	X, Y       float32
	Size       float32
	PauseColor color.Color
	PlayColor  color.Color
	pulseFrame int
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

// IsClicked проверяет попадание точки в круг кнопки.
func (b *PauseButton) IsClicked(x, y float64) bool {
	dx := x - float64(b.X)
	dy := y - float64(b.Y)
	return dx*dx+dy*dy <= float64(b.Size*b.Size)*2
}

// Press запускает анимацию нажатия.
func (b *PauseButton) Press() {
	b.pulseFrame = pausePulseFrames
}

func (b *PauseButton) Update() {
	if b.pulseFrame > 0 {
		b.pulseFrame--
	}
}

// Draw рисует «пауза» в игре и «play», когда игра на паузе.
func (b *PauseButton) Draw(screen render.Surface, paused bool) {
	scale := 1.0
	if b.pulseFrame > 0 {
		scale += 0.3 * math.Exp(-float64(pausePulseFrames-b.pulseFrame)/3)
	}
	size := b.Size * float32(scale)

	if paused {
		// Треугольник (play)
		x0, y0 := b.X-size, b.Y-size*1.2
		x1, y1 := b.X-size, b.Y+size*1.2
		x2, y2 := b.X+size, b.Y
		screen.StrokeLine(x0, y0, x1, y1, 2, b.PlayColor)
		screen.StrokeLine(x1, y1, x2, y2, 2, b.PlayColor)
		screen.StrokeLine(x2, y2, x0, y0, 2, b.PlayColor)
		return
	}

	// Два прямоугольника (pause)
	width := size * 0.6
	height := size * 2.0
	spacing := size * 0.4
	screen.FillRect(b.X-width-spacing/2, b.Y-height/2, width, height, b.PauseColor)
	screen.FillRect(b.X+spacing/2, b.Y-height/2, width, height, b.PauseColor)
}
