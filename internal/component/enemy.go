// internal/component/enemy.go
package component

import (
	"go-missile-defense/internal/types"
	"go-missile-defense/internal/utils"
	"go-missile-defense/pkg/render"
)

// Enemy — вражеский снаряд, падающий на город.
type Enemy struct {
	ID       types.EntityID
	DefID    string // ID варианта из enemies.json
	Start    utils.Point
	Target   utils.Point
	Pos      utils.Point // Текущая интерполированная позиция
	Traveled float64
	Speed    float64
	Size     float64 // Диаметр
	Damage   int
	Color    render.RGBA
	Trail    render.RGBA
	Dead     bool
}

// Radius — радиус круга столкновения.
func (e *Enemy) Radius() float64 {
	return e.Size / 2
}
