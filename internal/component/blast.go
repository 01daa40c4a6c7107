// internal/component/blast.go
package component

import (
	"go-missile-defense/internal/types"
	"go-missile-defense/internal/utils"
)

// Blast — расширяющийся, а затем сжимающийся круговой взрыв.
// Используется и для защитных взрывов противоракет, и для пожаров в городе.
type Blast struct {
	ID        types.EntityID
	Center    utils.Point // Копия точки цели ракеты, не меняется
	Jitter    utils.Point // Смещение отрисовки, на столкновения не влияет
	Radius    float64
	MaxRadius float64
	Growth    float64 // Скорость изменения радиуса за кадр
	Dir       float64 // +1 растёт, -1 сжимается
	Dead      bool
}

// NewBlast создаёт взрыв нулевого радиуса в точке center.
func NewBlast(id types.EntityID, center utils.Point, maxRadius, growth float64) Blast {
	return Blast{
		ID:        id,
		Center:    center,
		MaxRadius: maxRadius,
		Growth:    growth,
		Dir:       1,
	}
}

// Advance изменяет радиус на один кадр. Возвращает true, когда взрыв рассеялся.
// Радиус не бывает отрицательным, направление меняется с +1 на -1 только один раз.
func (b *Blast) Advance() bool {
	b.Radius += b.Dir * b.Growth
	if b.Dir > 0 && b.Radius >= b.MaxRadius {
		b.Radius = b.MaxRadius
		b.Dir = -1
	}
	if b.Radius <= 0 {
		b.Radius = 0
		return true
	}
	return false
}
