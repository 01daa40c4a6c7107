// internal/app/game.go
package app

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/defs"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/system"
	"go-missile-defense/internal/utils"
	"go-missile-defense/pkg/render"
)

// Game holds one game session: entity stores, progress and the systems
// that advance them. A finished session stays in GameOver; restart creates
// a new Game.
type Game struct {
	World           *entity.World
	Progress        *component.Progress
	Library         *defs.Library
	Rng             *utils.PRNGService
	EventDispatcher *event.Dispatcher
	Difficulty      *system.DifficultyDirector

	BlastSystem       *system.BlastSystem
	MissileSystem     *system.MissileSystem
	EnemySystem       *system.EnemySystem
	ParticleSystem    *system.ParticleSystem
	CityEffectSystem  *system.CityEffectSystem
	ProgressionSystem *system.ProgressionSystem
	RenderSystem      *system.RenderSystem

	Base utils.Point // Основание турели
	Aim  utils.Point // Последняя позиция указателя

	phase    component.Phase
	commands []Command
}

// NewGame initializes a new session. seed == 0 picks a time-based seed.
func NewGame(library *defs.Library, seed int64) *Game {
	if library == nil {
		panic("library cannot be nil")
	}

	world := entity.NewWorld()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)
	base := utils.Point{X: config.ScreenWidth / 2, Y: config.ScreenHeight - config.GroundHeight}

	g := &Game{
		World:           world,
		Progress:        &component.Progress{Health: config.MaxHealth},
		Library:         library,
		Rng:             rng,
		EventDispatcher: eventDispatcher,
		Base:            base,
		Aim:             utils.Point{X: base.X, Y: base.Y - 2*config.TurretLength},
		phase:           component.NotStarted,
	}
	g.Difficulty = system.NewDifficultyDirector(library.Difficulty, eventDispatcher)
	g.BlastSystem = system.NewBlastSystem(world, rng)
	g.MissileSystem = system.NewMissileSystem(world, eventDispatcher, base)
	g.EnemySystem = system.NewEnemySystem(world, eventDispatcher, rng, library, g.Difficulty)
	g.ParticleSystem = system.NewParticleSystem(world, rng)
	g.CityEffectSystem = system.NewCityEffectSystem(world, rng)
	g.ProgressionSystem = system.NewProgressionSystem(g.Progress)
	g.RenderSystem = system.NewRenderSystem(world)

	world.Buildings = BuildCity(rng, base)

	// Порядок подписки важен: сначала счёт и здоровье, потом эффекты и лог
	eventDispatcher.Subscribe(event.EnemyDefeated, g.ProgressionSystem)
	eventDispatcher.Subscribe(event.CityHit, g.ProgressionSystem)
	eventDispatcher.Subscribe(event.EnemyDefeated, g.ParticleSystem)
	eventDispatcher.Subscribe(event.CityHit, g.CityEffectSystem)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.CityHit, listener)
	eventDispatcher.Subscribe(event.PhaseChanged, listener)

	return g
}

// Update applies queued input and advances one frame while running.
func (g *Game) Update() {
	g.drainCommands()
	if g.phase == component.Running {
		g.Step()
	}
}

// Step advances the simulation by exactly one frame.
func (g *Game) Step() {
	g.World.Sweep()
	g.World.Frame++

	g.Progress.Tier = g.Difficulty.Advance(g.Progress.Score)
	g.BlastSystem.Update()
	g.MissileSystem.Update()
	g.EnemySystem.Update()
	g.ParticleSystem.Update()
	g.CityEffectSystem.Update()

	if g.Progress.Health <= 0 {
		g.setPhase(component.GameOver)
	}
}

// Draw рисует мир. Интерфейс рисуется поверх в состояниях.
func (g *Game) Draw(screen render.Surface) {
	screen.Fill(config.BackgroundColor)
	g.RenderSystem.Draw(screen)
}

// Start переводит NotStarted в Running. В остальных фазах ничего не делает.
func (g *Game) Start() {
	if g.phase == component.NotStarted {
		g.setPhase(component.Running)
	}
}

// TogglePause переключает Running и Paused.
func (g *Game) TogglePause() {
	switch g.phase {
	case component.Running:
		g.setPhase(component.Paused)
	case component.Paused:
		g.setPhase(component.Running)
	}
}

func (g *Game) Phase() component.Phase {
	return g.phase
}

func (g *Game) IsPaused() bool {
	return g.phase == component.Paused
}

func (g *Game) IsOver() bool {
	return g.phase == component.GameOver
}

func (g *Game) AmmoLeft() int {
	return g.MissileSystem.AmmoLeft()
}

func (g *Game) setPhase(phase component.Phase) {
	if g.phase == phase {
		return
	}
	g.phase = phase
	g.EventDispatcher.Dispatch(event.Event{Type: event.PhaseChanged, Data: phase})
}
