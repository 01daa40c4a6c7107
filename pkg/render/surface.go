package render

import "image/color"

// Surface — растровая поверхность, на которую рисует игра.
// Координаты совпадают с координатами игровых сущностей.
type Surface interface {
	Fill(c color.Color)
	FillRect(x, y, w, h float32, c color.Color)
	FillCircle(cx, cy, r float32, c color.Color)
	StrokeCircle(cx, cy, r, width float32, c color.Color)
	StrokeLine(x0, y0, x1, y1, width float32, c color.Color)
	Text(s string, x, y int, c color.Color)
}
