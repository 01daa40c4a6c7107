// internal/system/progression.go
package system

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/utils"
)

// ProgressionSystem ведёт счёт и здоровье города.
// Счёт только растёт, попадания по городу отнимают лишь здоровье.
type ProgressionSystem struct {
	progress *component.Progress
}

func NewProgressionSystem(progress *component.Progress) *ProgressionSystem {
	return &ProgressionSystem{progress: progress}
}

func (s *ProgressionSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyDefeated:
		s.progress.Score += config.ScorePerEnemy
	case event.CityHit:
		if data, ok := e.Data.(event.CityHitData); ok {
			s.Damage(data.Damage)
		}
	}
}

// Damage снимает здоровье, не опуская его ниже нуля.
func (s *ProgressionSystem) Damage(amount int) {
	s.progress.Health = utils.ClampInt(s.progress.Health-amount, 0, config.MaxHealth)
}
