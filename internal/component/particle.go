// internal/component/particle.go
package component

import (
	"go-missile-defense/internal/utils"
	"go-missile-defense/pkg/render"
)

// Particle — частица взрыва при уничтожении врага.
type Particle struct {
	Pos    utils.Point
	VX, VY float64
	AY     float64 // Ускорение вниз
	Size   float64
	Color  render.RGBA
	Frames int // Сколько кадров осталось
	Dead   bool
}

// Smoke — струйка дыма над местом попадания.
type Smoke struct {
	Pos    utils.Point
	VX, VY float64
	Size   float64
	Color  render.RGBA
	Frames int
	Dead   bool
}
