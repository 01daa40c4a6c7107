// internal/defs/types.go
package defs

// DifficultyDefinition описывает кривую сложности.
// Все приросты применяются за каждый уровень (tier) и не убывают.
type DifficultyDefinition struct {
	MilestoneDivisor  int          `json:"milestone_divisor"`
	BaseSpawnChance   float64      `json:"base_spawn_chance"`   // вероятность спавна за кадр на уровне 0
	SpawnChanceStep   float64      `json:"spawn_chance_step"`   // прирост вероятности за уровень
	MaxSpawnChance    float64      `json:"max_spawn_chance"`    // 0 — без ограничения
	SpeedStep         float64      `json:"speed_step"`          // прирост скорости за уровень
	BasePopulationCap int          `json:"base_population_cap"` // максимум живых врагов на уровне 0
	SpawnTables       []SpawnTable `json:"spawn_tables"`
}

// TableFor возвращает таблицу спавна с наибольшим MinTier, не превышающим tier.
func (d DifficultyDefinition) TableFor(tier int) (SpawnTable, bool) {
	var best SpawnTable
	found := false
	for _, table := range d.SpawnTables {
		if table.MinTier <= tier && (!found || table.MinTier > best.MinTier) {
			best = table
			found = true
		}
	}
	return best, found
}
