// internal/ui/turret.go
package ui

import (
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/utils"
	"go-missile-defense/pkg/render"
)

// Turret рисует купол турели и ствол, повёрнутый к указателю.
type Turret struct {
	Base utils.Point
}

func NewTurret(base utils.Point) *Turret {
	return &Turret{Base: base}
}

// Muzzle — конец ствола при прицеливании в aim.
// Если указатель совпадает с основанием, ствол смотрит вверх.
func (t *Turret) Muzzle(aim utils.Point) utils.Point {
	tip, err := utils.AdjustedTurretPos(t.Base, aim, config.TurretLength)
	if err != nil {
		return utils.Point{X: t.Base.X, Y: t.Base.Y - config.TurretLength}
	}
	return tip
}

func (t *Turret) Draw(screen render.Surface, aim utils.Point) {
	tip := t.Muzzle(aim)
	screen.StrokeLine(float32(t.Base.X), float32(t.Base.Y), float32(tip.X), float32(tip.Y), config.TurretWidth, config.GunColor)
	screen.FillCircle(float32(t.Base.X), float32(t.Base.Y), config.TurretRadius, config.TurretColor)
}
