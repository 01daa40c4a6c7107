// internal/system/missile.go
package system

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/utils"
	"log"
)

// MissileSystem запускает противоракеты и ведёт их до точки подрыва.
type MissileSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	base            utils.Point
}

func NewMissileSystem(world *entity.World, eventDispatcher *event.Dispatcher, base utils.Point) *MissileSystem {
	return &MissileSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		base:            base,
	}
}

// AmmoLeft — сколько ракет можно запустить прямо сейчас.
// Ракета возвращается в боезапас только после того, как её взрыв рассеется.
func (s *MissileSystem) AmmoLeft() int {
	left := config.AbmTotal - s.world.LiveMissiles() - s.world.LiveBlasts()
	if left < 0 {
		return 0
	}
	return left
}

// Fire запускает ракету в точку target. Команда молча игнорируется,
// если боезапас исчерпан или путь вырожден.
func (s *MissileSystem) Fire(target utils.Point) bool {
	if s.AmmoLeft() <= 0 {
		return false
	}

	start, err := utils.AdjustedTurretPos(s.base, target, config.TurretLength)
	if err != nil {
		log.Printf("fire at %v ignored: %v", target, err)
		return false
	}
	if _, _, err := utils.PointOnPath(start, target, 0); err != nil {
		log.Printf("fire at %v ignored: %v", target, err)
		return false
	}

	id := s.world.NewEntity()
	s.world.Missiles = append(s.world.Missiles, component.Missile{
		ID:     id,
		Start:  start,
		Target: target,
		Pos:    start,
		Speed:  config.AbmSpeed,
	})
	s.eventDispatcher.Dispatch(event.Event{Type: event.MissileFired, Data: id})
	return true
}

func (s *MissileSystem) Update() {
	for i := range s.world.Missiles {
		m := &s.world.Missiles[i]
		if m.Dead {
			continue
		}

		m.Traveled += m.Speed
		pos, beyond, err := utils.PointOnPath(m.Start, m.Target, m.Traveled)
		if err != nil {
			m.Dead = true
			continue
		}
		m.Pos = pos

		if beyond {
			m.Pos = m.Target
			m.Dead = true
			s.detonate(m)
		}
	}
}

// detonate превращает долетевшую ракету в защитный взрыв.
// Точка цели копируется во взрыв: ракета будет удалена на следующем кадре.
func (s *MissileSystem) detonate(m *component.Missile) {
	id := s.world.NewEntity()
	s.world.Blasts = append(s.world.Blasts, component.NewBlast(id, m.Target, config.BlastMaxRadius, config.BlastGrowthRate))
	s.eventDispatcher.Dispatch(event.Event{Type: event.BlastStarted, Data: id})
}
