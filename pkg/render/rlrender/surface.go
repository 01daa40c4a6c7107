// Package rlrender реализует render.Surface поверх raylib.
// Вызывать только между rl.BeginDrawing и rl.EndDrawing.
package rlrender

import (
	"go-missile-defense/pkg/render"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var _ render.Surface = Surface{}

// FontSize — размер встроенного шрифта raylib.
const FontSize = 13

// Surface рисует в текущий кадр окна raylib.
type Surface struct{}

func (Surface) Fill(c color.Color) {
	rl.ClearBackground(colorToRL(c))
}

func (Surface) FillRect(x, y, w, h float32, c color.Color) {
	rl.DrawRectangleV(rl.NewVector2(x, y), rl.NewVector2(w, h), colorToRL(c))
}

func (Surface) FillCircle(cx, cy, r float32, c color.Color) {
	if r <= 0 {
		return
	}
	rl.DrawCircleV(rl.NewVector2(cx, cy), r, colorToRL(c))
}

func (Surface) StrokeCircle(cx, cy, r, width float32, c color.Color) {
	if r <= 0 {
		return
	}
	rl.DrawRing(rl.NewVector2(cx, cy), r-width/2, r+width/2, 0, 360, 36, colorToRL(c))
}

func (Surface) StrokeLine(x0, y0, x1, y1, width float32, c color.Color) {
	rl.DrawLineEx(rl.NewVector2(x0, y0), rl.NewVector2(x1, y1), width, colorToRL(c))
}

func (Surface) Text(s string, x, y int, c color.Color) {
	rl.DrawText(s, int32(x), int32(y), FontSize, colorToRL(c))
}

// colorToRL преобразует стандартный color.Color в rl.Color
func colorToRL(c color.Color) rl.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return rl.NewColor(n.R, n.G, n.B, n.A)
}
