// internal/ui/text.go
package ui

import (
	"go-missile-defense/pkg/render"
	"image/color"
)

// Размеры глифа растрового шрифта 7x13. Оба фронтенда рисуют им HUD.
const (
	CharWidth  = 7
	LineHeight = 13
)

// TextWidth — ширина строки в пикселях.
func TextWidth(s string) int {
	return len([]rune(s)) * CharWidth
}

// DrawCenteredText рисует строку с центром по x.
func DrawCenteredText(screen render.Surface, s string, cx, y int, c color.Color) {
	screen.Text(s, cx-TextWidth(s)/2, y, c)
}

// DrawOutlinedText рисует строку с обводкой толщиной thickness.
func DrawOutlinedText(screen render.Surface, s string, x, y, thickness int, fg, outline color.Color) {
	for dy := -thickness; dy <= thickness; dy++ {
		for dx := -thickness; dx <= thickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			screen.Text(s, x+dx, y+dy, outline)
		}
	}
	screen.Text(s, x, y, fg)
}
