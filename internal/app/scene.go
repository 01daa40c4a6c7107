package app

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/utils"
)

// BuildCity строит силуэт города вдоль земли. Место под турелью остаётся пустым.
// При одинаковом seed результат одинаковый.
func BuildCity(rng *utils.PRNGService, base utils.Point) []component.Building {
	groundY := float64(config.ScreenHeight - config.GroundHeight)
	slot := (float64(config.ScreenWidth) - 2*config.CityMarginX) / config.BuildingCount

	buildings := make([]component.Building, 0, config.BuildingCount)
	for i := 0; i < config.BuildingCount; i++ {
		width := slot * rng.Between(0.55, 0.85)
		height := rng.Between(config.BuildingMinHeight, config.BuildingMaxHeight)
		x := config.CityMarginX + float64(i)*slot + (slot-width)/2

		if x+width > base.X-config.TurretRadius && x < base.X+config.TurretRadius {
			continue
		}
		buildings = append(buildings, component.Building{
			X:      x,
			Y:      groundY - height,
			Width:  width,
			Height: height,
		})
	}
	return buildings
}
