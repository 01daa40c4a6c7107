// pkg/render/color.go
package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// FadeFactor — множитель прозрачности за один кадр.
const FadeFactor = 0.985

// ErrMalformedColor возвращается, если строку не удалось разобрать как rgb()/rgba().
var ErrMalformedColor = errors.New("malformed color")

var alphaPattern = regexp.MustCompile(`,(\d\.\d+)\)`)

// RGBA — цвет с непрозрачностью в диапазоне [0, 1].
// Все эффекты частиц хранят цвет в этом виде и гасят альфу каждый кадр.
type RGBA struct {
	R, G, B uint8
	A       float64
}

// RGBA реализует color.Color.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA переводит цвет в непредумноженный image/color.
func (c RGBA) NRGBA() color.NRGBA {
	a := math.Max(0, math.Min(1, c.A))
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(a * 255))}
}

// Fade уменьшает альфу в FadeFactor раз с округлением до 3 знаков.
func (c RGBA) Fade() RGBA {
	c.A = math.Round(c.A*FadeFactor*1000) / 1000
	if c.A < 0 {
		c.A = 0
	}
	return c
}

// WithAlpha возвращает копию цвета с заданной альфой.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// String форматирует цвет как rgba(r,g,b,a).
func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// MarshalText нужен для json-определений.
func (c RGBA) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText разбирает строки вида rgba(...) и rgb(...).
func (c *RGBA) UnmarshalText(text []byte) error {
	parsed, err := ParseRGBA(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseRGBA разбирает "rgba(r,g,b,a)" или "rgb(r,g,b)".
func ParseRGBA(s string) (RGBA, error) {
	s = strings.TrimSpace(s)
	var body string
	var want int
	switch {
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		body, want = s[len("rgba("):len(s)-1], 4
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		body, want = s[len("rgb("):len(s)-1], 3
	default:
		return RGBA{}, fmt.Errorf("%w: %q", ErrMalformedColor, s)
	}

	parts := strings.Split(body, ",")
	if len(parts) != want {
		return RGBA{}, fmt.Errorf("%w: %q", ErrMalformedColor, s)
	}

	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return RGBA{}, fmt.Errorf("%w: channel %d of %q", ErrMalformedColor, i, s)
		}
		ch[i] = uint8(v)
	}

	c := RGBA{R: ch[0], G: ch[1], B: ch[2], A: 1}
	if want == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return RGBA{}, fmt.Errorf("%w: alpha of %q", ErrMalformedColor, s)
		}
		c.A = a
	}
	return c, nil
}

// FadeColorString гасит альфу в строке rgba(...). Если альфа в строке не найдена,
// строка возвращается без изменений: цвет просто перестаёт тускнеть.
func FadeColorString(s string) string {
	match := alphaPattern.FindStringSubmatch(s)
	if match == nil {
		return s
	}
	a, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return s
	}
	reduced := math.Round(a*FadeFactor*1000) / 1000
	return alphaPattern.ReplaceAllString(s, ","+strconv.FormatFloat(reduced, 'f', -1, 64)+")")
}

// RandomRGBA возвращает случайный непрозрачный цвет.
func RandomRGBA(rng interface{ Intn(n int) int }) RGBA {
	return RGBA{
		R: uint8(rng.Intn(255)),
		G: uint8(rng.Intn(255)),
		B: uint8(rng.Intn(255)),
		A: 1,
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
