package ui

import (
	"go-missile-defense/internal/config"
	"go-missile-defense/pkg/render"
	"image/color"
	"strings"
)

// TierIndicator отображает уровень сложности римскими цифрами.
type TierIndicator struct {
	X, Y             int
	Color            color.Color
	OutlineColor     color.Color
	OutlineThickness int
}

// NewTierIndicator создает индикатор с центром по x.
func NewTierIndicator(x, y int) *TierIndicator {
	return &TierIndicator{
		X:                x,
		Y:                y,
		Color:            config.TextLightColor,
		OutlineColor:     config.BackgroundColor,
		OutlineThickness: 1,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw ничего не рисует на нулевом уровне.
func (i *TierIndicator) Draw(screen render.Surface, tier int) {
	if tier <= 0 {
		return
	}
	text := toRoman(tier)
	textColor := i.Color
	if tier%5 == 0 {
		textColor = config.HealthLowColor
	}
	DrawOutlinedText(screen, text, i.X-TextWidth(text)/2, i.Y, i.OutlineThickness, textColor, i.OutlineColor)
}
