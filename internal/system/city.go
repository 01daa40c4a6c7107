// internal/system/city.go
package system

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/utils"
	"go-missile-defense/pkg/render"
)

var smokeColor = render.RGBA{
	R: config.SmokeColor.R,
	G: config.SmokeColor.G,
	B: config.SmokeColor.B,
	A: 0.8,
}

// CityEffectSystem управляет пожарами и дымом в местах попадания по городу.
type CityEffectSystem struct {
	world *entity.World
	rng   *utils.PRNGService
}

func NewCityEffectSystem(world *entity.World, rng *utils.PRNGService) *CityEffectSystem {
	return &CityEffectSystem{world: world, rng: rng}
}

func (s *CityEffectSystem) OnEvent(e event.Event) {
	if e.Type != event.CityHit {
		return
	}
	data, ok := e.Data.(event.CityHitData)
	if !ok {
		return
	}
	s.Ignite(utils.Point{X: data.X, Y: data.Y})
}

// Ignite зажигает пожар и добавляет точку дыма.
func (s *CityEffectSystem) Ignite(at utils.Point) {
	s.world.Fires = append(s.world.Fires, component.NewBlast(s.world.NewEntity(), at, config.FireMaxRadius, config.FireGrowthRate))

	s.world.SmokeSources = append(s.world.SmokeSources, at)
	if extra := len(s.world.SmokeSources) - config.MaxSmokeSources; extra > 0 {
		s.world.SmokeSources = append([]utils.Point(nil), s.world.SmokeSources[extra:]...)
	}
}

func (s *CityEffectSystem) Update() {
	for i := range s.world.Fires {
		f := &s.world.Fires[i]
		if f.Dead {
			continue
		}
		if f.Advance() {
			f.Dead = true
		}
	}

	for _, src := range s.world.SmokeSources {
		if s.rng.Chance(config.SmokeSpawnChance) {
			s.puff(src)
		}
	}

	for i := range s.world.Smoke {
		p := &s.world.Smoke[i]
		if p.Dead {
			continue
		}

		p.Pos.X += p.VX
		p.Pos.Y += p.VY
		p.Size *= config.SmokeGrowth
		p.Color = p.Color.Fade()
		p.Frames--

		if p.Frames <= 0 || utils.OutsideBounds(p.Pos, config.ScreenWidth, config.ScreenHeight) {
			p.Dead = true
		}
	}
}

func (s *CityEffectSystem) puff(src utils.Point) {
	s.world.Smoke = append(s.world.Smoke, component.Smoke{
		Pos: utils.Point{
			X: src.X + s.rng.Between(-config.SmokeSourceJitterX, config.SmokeSourceJitterX),
			Y: src.Y,
		},
		VX:     s.rng.Between(-config.SmokeDrift, config.SmokeDrift),
		VY:     -s.rng.Between(config.SmokeRiseMin, config.SmokeRiseMax),
		Size:   config.SmokeSize,
		Color:  smokeColor,
		Frames: config.SmokeMinFrames + s.rng.Intn(config.SmokeMaxFrames-config.SmokeMinFrames+1),
	})
}
