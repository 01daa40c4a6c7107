// Package ebitenrender реализует render.Surface поверх ebiten.
package ebitenrender

import (
	"go-missile-defense/pkg/render"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var _ render.Surface = (*Surface)(nil)

// Surface рисует примитивы в *ebiten.Image.
type Surface struct {
	Screen *ebiten.Image
	Face   text.Face
}

// NewSurface оборачивает кадр ebiten. Шрифт по умолчанию — basicfont 7x13.
func NewSurface(screen *ebiten.Image) *Surface {
	return &Surface{
		Screen: screen,
		Face:   DefaultFace,
	}
}

// DefaultFace — растровый шрифт, не требующий файлов.
var DefaultFace text.Face = text.NewGoXFace(basicfont.Face7x13)

func (s *Surface) Fill(c color.Color) {
	s.Screen.Fill(c)
}

func (s *Surface) FillRect(x, y, w, h float32, c color.Color) {
	vector.DrawFilledRect(s.Screen, x, y, w, h, c, true)
}

func (s *Surface) FillCircle(cx, cy, r float32, c color.Color) {
	if r <= 0 {
		return
	}
	vector.DrawFilledCircle(s.Screen, cx, cy, r, c, true)
}

func (s *Surface) StrokeCircle(cx, cy, r, width float32, c color.Color) {
	if r <= 0 {
		return
	}
	vector.StrokeCircle(s.Screen, cx, cy, r, width, c, true)
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float32, c color.Color) {
	vector.StrokeLine(s.Screen, x0, y0, x1, y1, width, c, true)
}

// Text рисует строку; (x, y) — левый верхний угол.
func (s *Surface) Text(str string, x, y int, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.Screen, str, s.Face, op)
}
