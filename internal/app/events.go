package app

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/event"
	"log"
)

// GameEventListener пишет в лог события, важные для сессии.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.CityHit:
		if data, ok := e.Data.(event.CityHitData); ok {
			log.Printf("City hit by %s at (%.0f, %.0f): -%d, health %d",
				data.EnemyID, data.X, data.Y, data.Damage, l.game.Progress.Health)
		}
	case event.PhaseChanged:
		if phase, ok := e.Data.(component.Phase); ok {
			log.Printf("Phase -> %s (frame %d, score %d)", phase, l.game.World.Frame, l.game.Progress.Score)
		}
	}
}
