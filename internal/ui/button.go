// internal/ui/button.go
package ui

import (
	"go-missile-defense/pkg/render"
	"image/color"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	X, Y, W, H float32
	Text       string
	TextColor  color.Color
	BgColor    color.Color
	HoverColor color.Color
}

// NewButton создает новую кнопку с центром в (cx, cy).
func NewButton(cx, cy, w, h float32, text string) *Button {
	return &Button{
		X:          cx - w/2,
		Y:          cy - h/2,
		W:          w,
		H:          h,
		Text:       text,
		TextColor:  color.RGBA{0, 0, 0, 255},
		BgColor:    color.RGBA{200, 200, 200, 255},
		HoverColor: color.RGBA{150, 150, 150, 255},
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y float64) bool {
	return float32(x) >= b.X && float32(x) <= b.X+b.W &&
		float32(y) >= b.Y && float32(y) <= b.Y+b.H
}

// Draw отрисовывает кнопку. hover — указатель над кнопкой.
func (b *Button) Draw(screen render.Surface, hover bool) {
	bg := b.BgColor
	if hover {
		bg = b.HoverColor
	}
	screen.FillRect(b.X, b.Y, b.W, b.H, bg)
	screen.StrokeLine(b.X, b.Y, b.X+b.W, b.Y, 2, color.White)
	screen.StrokeLine(b.X, b.Y+b.H, b.X+b.W, b.Y+b.H, 2, color.White)
	screen.StrokeLine(b.X, b.Y, b.X, b.Y+b.H, 2, color.White)
	screen.StrokeLine(b.X+b.W, b.Y, b.X+b.W, b.Y+b.H, 2, color.White)

	tx := int(b.X+b.W/2) - TextWidth(b.Text)/2
	ty := int(b.Y+b.H/2) - LineHeight/2
	screen.Text(b.Text, tx, ty, b.TextColor)
}
