// internal/system/difficulty.go
package system

import (
	"go-missile-defense/internal/defs"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/utils"
	"log"
	"math"
)

// DifficultyDirector переводит счёт в уровень сложности.
// Уровень = lastMilestone / MilestoneDivisor, где lastMilestone обновляется,
// только когда счёт — положительное кратное делителя и больше прошлой вехи.
// Все параметры спавна — функции уровня, поэтому прирост применяется ровно один раз.
type DifficultyDirector struct {
	def             defs.DifficultyDefinition
	eventDispatcher *event.Dispatcher
	lastMilestone   int
	tier            int
}

func NewDifficultyDirector(def defs.DifficultyDefinition, eventDispatcher *event.Dispatcher) *DifficultyDirector {
	if def.MilestoneDivisor <= 0 {
		panic("milestone divisor must be positive")
	}
	return &DifficultyDirector{
		def:             def,
		eventDispatcher: eventDispatcher,
	}
}

// Advance обновляет веху по текущему счёту и возвращает уровень.
func (d *DifficultyDirector) Advance(score int) int {
	div := d.def.MilestoneDivisor
	if score <= 0 || score%div != 0 || score <= d.lastMilestone {
		return d.tier
	}

	d.lastMilestone = score
	newTier := d.lastMilestone / div
	if newTier > d.tier {
		from := d.tier
		d.tier = newTier
		log.Printf("Difficulty tier %d -> %d at score %d", from, newTier, score)
		if d.eventDispatcher != nil {
			d.eventDispatcher.Dispatch(event.Event{
				Type: event.TierUp,
				Data: event.TierUpData{From: from, To: newTier, Score: score},
			})
		}
	}
	return d.tier
}

func (d *DifficultyDirector) Tier() int {
	return d.tier
}

func (d *DifficultyDirector) LastMilestone() int {
	return d.lastMilestone
}

// SpawnChance — вероятность появления врага в текущем кадре.
func (d *DifficultyDirector) SpawnChance() float64 {
	chance := d.def.BaseSpawnChance + float64(d.tier)*d.def.SpawnChanceStep
	if d.def.MaxSpawnChance > 0 {
		chance = math.Min(chance, d.def.MaxSpawnChance)
	}
	return chance
}

// SpeedBonus — прибавка к базовой скорости варианта.
func (d *DifficultyDirector) SpeedBonus() float64 {
	return float64(d.tier) * d.def.SpeedStep
}

// PopulationCap — максимум одновременно летящих врагов.
func (d *DifficultyDirector) PopulationCap() int {
	return d.def.BasePopulationCap + d.tier
}

// ChooseVariant выбирает вариант врага по таблице текущего уровня.
func (d *DifficultyDirector) ChooseVariant(rng *utils.PRNGService) string {
	table, ok := d.def.TableFor(d.tier)
	if !ok {
		return ""
	}
	return rng.ChooseWeighted(table.Entries)
}
