// internal/defs/enemies.go
package defs

import "go-missile-defense/pkg/render"

// Идентификаторы вариантов вражеских снарядов.
const (
	EnemyBasic  = "ENEMY_BASIC"
	EnemySpeedy = "ENEMY_SPEEDY"
	EnemyLarge  = "ENEMY_LARGE"
)

// EnemyDefinition holds all the static data for a specific enemy projectile variant.
type EnemyDefinition struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Speed  float64      `json:"speed"`  // пикселей за кадр до бонуса сложности
	Size   float64      `json:"size"`   // диаметр
	Damage int          `json:"damage"` // урон городу в процентах здоровья
	Color  render.RGBA  `json:"color"`
	Trail  *render.RGBA `json:"trail,omitempty"`
}

// TrailColor возвращает цвет следа; по умолчанию — основной цвет с альфой 0.4.
func (d EnemyDefinition) TrailColor() render.RGBA {
	if d.Trail != nil {
		return *d.Trail
	}
	return d.Color.WithAlpha(0.4)
}
