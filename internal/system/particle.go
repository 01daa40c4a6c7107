// internal/system/particle.go
package system

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/utils"
	"go-missile-defense/pkg/render"
)

// ParticleSystem управляет взрывами уничтожения врагов.
type ParticleSystem struct {
	world *entity.World
	rng   *utils.PRNGService
}

func NewParticleSystem(world *entity.World, rng *utils.PRNGService) *ParticleSystem {
	return &ParticleSystem{world: world, rng: rng}
}

func (s *ParticleSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyDefeated {
		return
	}
	data, ok := e.Data.(event.EnemyDefeatedData)
	if !ok {
		return
	}
	s.Burst(utils.Point{X: data.X, Y: data.Y}, config.ExplosionCount)
}

// Burst добавляет n частиц одного случайного цвета в точке pos.
func (s *ParticleSystem) Burst(pos utils.Point, n int) {
	color := render.RandomRGBA(s.rng)
	for i := 0; i < n; i++ {
		s.world.Particles = append(s.world.Particles, component.Particle{
			Pos:    pos,
			VX:     s.rng.Between(-config.ExplosionSpeed, config.ExplosionSpeed),
			VY:     s.rng.Between(-config.ExplosionSpeed, config.ExplosionSpeed),
			AY:     config.ExplosionGravity,
			Size:   config.ExplosionSize,
			Color:  color,
			Frames: config.ExplosionLifeFrames,
		})
	}
}

func (s *ParticleSystem) Update() {
	for i := range s.world.Particles {
		p := &s.world.Particles[i]
		if p.Dead {
			continue
		}

		p.Pos.X += p.VX
		p.VY += p.AY // ускоряется к земле
		p.Pos.Y += p.VY
		p.Color = p.Color.Fade()
		p.Size *= config.ExplosionShrink
		p.Frames--

		if p.Frames <= 0 || utils.OutsideBounds(p.Pos, config.ScreenWidth, config.ScreenHeight) {
			p.Dead = true
		}
	}
}
