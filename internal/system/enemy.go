// internal/system/enemy.go
package system

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/defs"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/utils"
	"log"
)

// EnemySystem спавнит вражеские снаряды и двигает их к городу.
type EnemySystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	library         *defs.Library
	director        *DifficultyDirector
	width, groundY  float64
}

func NewEnemySystem(world *entity.World, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, library *defs.Library, director *DifficultyDirector) *EnemySystem {
	return &EnemySystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		library:         library,
		director:        director,
		width:           config.ScreenWidth,
		groundY:         config.ScreenHeight - config.GroundHeight,
	}
}

func (s *EnemySystem) Update() {
	s.trySpawn()
	s.advance()
}

func (s *EnemySystem) trySpawn() {
	if s.world.LiveEnemies() >= s.director.PopulationCap() {
		return
	}
	if !s.rng.Chance(s.director.SpawnChance()) {
		return
	}
	s.Spawn(s.director.ChooseVariant(s.rng))
}

// Spawn создаёт врага варианта defID в случайной точке у верхнего края.
func (s *EnemySystem) Spawn(defID string) bool {
	def, ok := s.library.Enemy(defID)
	if !ok {
		log.Printf("Error: Enemy definition not found for ID: %s", defID)
		return false
	}

	start := utils.Point{
		X: s.rng.Between(config.EnemySpawnMarginX, s.width-config.EnemySpawnMarginX),
		Y: 0,
	}
	s.world.Enemies = append(s.world.Enemies, component.Enemy{
		ID:     s.world.NewEntity(),
		DefID:  def.ID,
		Start:  start,
		Target: s.pickTarget(),
		Pos:    start,
		Speed:  def.Speed + s.director.SpeedBonus(),
		Size:   def.Size,
		Damage: def.Damage,
		Color:  def.Color,
		Trail:  def.TrailColor(),
	})
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: def.ID})
	return true
}

// pickTarget выбирает крышу случайного здания, а без зданий — точку на земле.
func (s *EnemySystem) pickTarget() utils.Point {
	if n := len(s.world.Buildings); n > 0 {
		x, y := s.world.Buildings[s.rng.Intn(n)].Roof()
		return utils.Point{X: x, Y: y}
	}
	return utils.Point{
		X: s.rng.Between(config.CityMarginX, s.width-config.CityMarginX),
		Y: s.groundY,
	}
}

// advance двигает врагов и разрешает исходы. Попадание по городу проверяется
// первым; попавший враг уже не может быть уничтожен в том же кадре.
// Проверка уничтожения идёт по позиции после перемещения.
func (s *EnemySystem) advance() {
	for i := range s.world.Enemies {
		e := &s.world.Enemies[i]
		if e.Dead {
			continue
		}

		e.Traveled += e.Speed
		pos, beyond, err := utils.PointOnPath(e.Start, e.Target, e.Traveled)
		if err != nil {
			e.Dead = true
			continue
		}
		e.Pos = pos

		if beyond {
			e.Pos = e.Target
			e.Dead = true
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.CityHit,
				Data: event.CityHitData{EnemyID: e.DefID, Damage: e.Damage, X: e.Pos.X, Y: e.Pos.Y},
			})
			continue
		}

		if IsDefeated(e, s.world.Blasts) {
			e.Dead = true
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.EnemyDefeated,
				Data: event.EnemyDefeatedData{EnemyID: e.DefID, X: e.Pos.X, Y: e.Pos.Y},
			})
		}
	}
}
