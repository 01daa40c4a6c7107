package defs

import "go-missile-defense/pkg/render"

// Default возвращает встроенный набор определений.
// Совпадает с assets/data/*.json.
func Default() *Library {
	return &Library{
		Enemies: map[string]EnemyDefinition{
			EnemyBasic: {
				ID: EnemyBasic, Name: "Basic", Speed: 1.0, Size: 10, Damage: 10,
				Color: render.RGBA{R: 255, G: 60, B: 60, A: 1},
			},
			EnemySpeedy: {
				ID: EnemySpeedy, Name: "Speedy", Speed: 1.8, Size: 6, Damage: 5,
				Color: render.RGBA{R: 255, G: 220, B: 60, A: 1},
			},
			EnemyLarge: {
				ID: EnemyLarge, Name: "Large", Speed: 0.6, Size: 18, Damage: 20,
				Color: render.RGBA{R: 200, G: 60, B: 255, A: 1},
			},
		},
		Difficulty: DifficultyDefinition{
			MilestoneDivisor:  5,
			BaseSpawnChance:   0.01,
			SpawnChanceStep:   0.004,
			MaxSpawnChance:    0.08,
			SpeedStep:         0.15,
			BasePopulationCap: 3,
			SpawnTables: []SpawnTable{
				{MinTier: 0, Entries: []SpawnEntry{{EnemyID: EnemyBasic, Weight: 100}}},
				{MinTier: 1, Entries: []SpawnEntry{
					{EnemyID: EnemyBasic, Weight: 80},
					{EnemyID: EnemySpeedy, Weight: 20},
				}},
				{MinTier: 4, Entries: []SpawnEntry{
					{EnemyID: EnemyBasic, Weight: 60},
					{EnemyID: EnemySpeedy, Weight: 20},
					{EnemyID: EnemyLarge, Weight: 20},
				}},
			},
		},
	}
}
