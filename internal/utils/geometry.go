// internal/utils/geometry.go
package utils

import (
	"errors"
	"math"
)

// ErrZeroLengthPath — путь, у которого начало совпадает с целью.
var ErrZeroLengthPath = errors.New("zero-length path")

// Point — точка в экранных координатах.
type Point struct {
	X, Y float64
}

// Distance возвращает евклидово расстояние между двумя точками.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// PointOnPath возвращает позицию на отрезке start→target после прохождения
// traveled пикселей. beyond == true, когда пройдено не меньше длины отрезка.
// Для отрезка нулевой длины возвращается ErrZeroLengthPath.
func PointOnPath(start, target Point, traveled float64) (Point, bool, error) {
	length := Distance(start, target)
	if length == 0 {
		return start, false, ErrZeroLengthPath
	}

	t := traveled / length
	pos := Point{
		X: Lerp(start.X, target.X, t),
		Y: Lerp(start.Y, target.Y, t),
	}
	return pos, t >= 1.0, nil
}

// AdjustedTurretPos возвращает точку на расстоянии length от base в сторону target.
// Используется и для ствола турели, и для точки вылета ракеты.
func AdjustedTurretPos(base, target Point, length float64) (Point, error) {
	dist := Distance(base, target)
	if dist == 0 {
		return base, ErrZeroLengthPath
	}

	mult := length / dist
	return Point{
		X: base.X - (base.X-target.X)*mult,
		Y: base.Y - (base.Y-target.Y)*mult,
	}, nil
}

// OutsideBounds проверяет, лежит ли точка вне прямоугольника [0,w]×[0,h].
func OutsideBounds(p Point, w, h float64) bool {
	return p.X < 0 || p.X > w || p.Y < 0 || p.Y > h
}
