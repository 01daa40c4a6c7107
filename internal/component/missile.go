// internal/component/missile.go
package component

import (
	"go-missile-defense/internal/types"
	"go-missile-defense/internal/utils"
)

// Missile — противоракета игрока, летящая от ствола турели к точке клика.
type Missile struct {
	ID       types.EntityID
	Start    utils.Point // Точка вылета (конец ствола)
	Target   utils.Point // Точка подрыва
	Pos      utils.Point // Текущая позиция на пути
	Traveled float64     // Пройденное расстояние
	Speed    float64     // Пикселей за кадр
	Dead     bool
}
