// internal/ui/ammo_indicator.go
package ui

import (
	"go-missile-defense/internal/config"
	"go-missile-defense/pkg/render"
	"math"
)

const (
	ammoPulseFrames = 20
	ammoSpacing     = 6
)

// AmmoIndicator показывает доступные противоракеты кружками.
// После выстрела кружки коротко пульсируют.
type AmmoIndicator struct {
	X, Y       float32
	Radius     float32
	lastAmmo   int
	pulseFrame int
}

func NewAmmoIndicator(x, y, radius float32) *AmmoIndicator {
	return &AmmoIndicator{X: x, Y: y, Radius: radius, lastAmmo: -1}
}

// Update отслеживает изменения боезапаса. Вызывается раз в кадр.
func (i *AmmoIndicator) Update(ammo int) {
	if i.lastAmmo >= 0 && ammo < i.lastAmmo {
		i.pulseFrame = ammoPulseFrames
	}
	i.lastAmmo = ammo
	if i.pulseFrame > 0 {
		i.pulseFrame--
	}
}

func (i *AmmoIndicator) Draw(screen render.Surface, ammo, total int) {
	scale := 1.0 + 0.3*math.Exp(-float64(ammoPulseFrames-i.pulseFrame)/3)
	if i.pulseFrame == 0 {
		scale = 1
	}
	r := i.Radius * float32(scale)

	for j := 0; j < total; j++ {
		cx := i.X + float32(j)*(i.Radius*2+ammoSpacing) + i.Radius
		c := config.AmmoEmptyColor
		if j < ammo {
			c = config.AmmoColor
		}
		screen.FillCircle(cx, i.Y, r, c)
		screen.StrokeCircle(cx, i.Y, r, 1, config.TextLightColor)
	}
}
