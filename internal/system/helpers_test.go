package system

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/defs"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/utils"
	"testing"
)

type testEnv struct {
	world      *entity.World
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService
	lib        *defs.Library
	director   *DifficultyDirector
	progress   *component.Progress
	events     []event.Event
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		world:      entity.NewWorld(),
		dispatcher: event.NewDispatcher(),
		rng:        utils.NewPRNGService(42),
		lib:        defs.Default(),
		progress:   &component.Progress{Health: config.MaxHealth},
	}
	env.director = NewDifficultyDirector(env.lib.Difficulty, env.dispatcher)

	rec := event.ListenerFunc(func(e event.Event) { env.events = append(env.events, e) })
	for _, typ := range []event.EventType{event.MissileFired, event.BlastStarted, event.EnemySpawned,
		event.EnemyDefeated, event.CityHit, event.TierUp} {
		env.dispatcher.Subscribe(typ, rec)
	}
	progression := NewProgressionSystem(env.progress)
	env.dispatcher.Subscribe(event.EnemyDefeated, progression)
	env.dispatcher.Subscribe(event.CityHit, progression)
	return env
}

func (env *testEnv) count(typ event.EventType) int {
	n := 0
	for _, e := range env.events {
		if e.Type == typ {
			n++
		}
	}
	return n
}

func liveBlast(center utils.Point, radius float64) component.Blast {
	b := component.NewBlast(0, center, config.BlastMaxRadius, config.BlastGrowthRate)
	b.Radius = radius
	return b
}
