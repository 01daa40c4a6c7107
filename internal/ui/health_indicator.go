// internal/ui/health_indicator.go
package ui

import (
	"go-missile-defense/internal/config"
	"go-missile-defense/pkg/render"
	"image/color"
	"strconv"
)

const (
	HealthBarWidth  = 160
	HealthBarHeight = 12
	HealthSegments  = 10
)

// HealthIndicator отображает здоровье города полосой из сегментов.
type HealthIndicator struct {
	X, Y float32
}

// NewHealthIndicator создает новый индикатор здоровья.
func NewHealthIndicator(x, y float32) *HealthIndicator {
	return &HealthIndicator{X: x, Y: y}
}

// Draw рисует полосу. Меньше половины здоровья — полоса красная.
func (i *HealthIndicator) Draw(screen render.Surface, health, maxHealth int) {
	screen.FillRect(i.X, i.Y, HealthBarWidth, HealthBarHeight, config.HealthBackColor)

	ratio := 0.0
	if maxHealth > 0 {
		ratio = float64(health) / float64(maxHealth)
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	var fill color.Color = config.HealthColor
	if health*2 < maxHealth {
		fill = config.HealthLowColor
	}
	screen.FillRect(i.X, i.Y, float32(HealthBarWidth*ratio), HealthBarHeight, fill)

	// Разделители сегментов
	step := float32(HealthBarWidth) / HealthSegments
	for j := 1; j < HealthSegments; j++ {
		x := i.X + float32(j)*step
		screen.StrokeLine(x, i.Y, x, i.Y+HealthBarHeight, 1, config.HealthBackColor)
	}

	label := strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
	screen.Text(label, int(i.X)+HealthBarWidth+8, int(i.Y), config.TextLightColor)
}
