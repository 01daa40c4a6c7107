// internal/system/render.go
package system

import (
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
	"go-missile-defense/pkg/render"
)

// RenderSystem рисует сущности. Помеченные Dead сущности рисуются тоже:
// это их последний кадр перед удалением.
type RenderSystem struct {
	world *entity.World
}

func NewRenderSystem(world *entity.World) *RenderSystem {
	return &RenderSystem{world: world}
}

func (s *RenderSystem) Draw(screen render.Surface) {
	s.drawCity(screen)

	// Сначала дым и пожары, чтобы снаряды были поверх
	for _, p := range s.world.Smoke {
		screen.FillCircle(float32(p.Pos.X), float32(p.Pos.Y), float32(p.Size/2), p.Color)
	}
	for _, f := range s.world.Fires {
		screen.FillCircle(float32(f.Center.X), float32(f.Center.Y), float32(f.Radius), config.FireColor)
	}

	for _, e := range s.world.Enemies {
		screen.StrokeLine(float32(e.Start.X), float32(e.Start.Y), float32(e.Pos.X), float32(e.Pos.Y), config.EnemyTrailWidth, e.Trail)
		screen.FillCircle(float32(e.Pos.X), float32(e.Pos.Y), float32(e.Radius()), e.Color)
	}

	for _, m := range s.world.Missiles {
		screen.StrokeLine(float32(m.Start.X), float32(m.Start.Y), float32(m.Pos.X), float32(m.Pos.Y), 1, config.AbmTrailColor)
		screen.FillCircle(float32(m.Pos.X), float32(m.Pos.Y), config.AbmRadius, config.AbmColor)
	}

	for _, b := range s.world.Blasts {
		x := float32(b.Center.X + b.Jitter.X)
		y := float32(b.Center.Y + b.Jitter.Y)
		screen.FillCircle(x, y, float32(b.Radius), config.BlastColor)
		screen.StrokeCircle(x, y, float32(b.Radius), 2, config.BlastRingColor)
	}

	for _, p := range s.world.Particles {
		half := float32(p.Size / 2)
		screen.FillRect(float32(p.Pos.X)-half, float32(p.Pos.Y)-half, float32(p.Size), float32(p.Size), p.Color)
	}
}

func (s *RenderSystem) drawCity(screen render.Surface) {
	groundY := float32(config.ScreenHeight - config.GroundHeight)
	screen.FillRect(0, groundY, config.ScreenWidth, config.GroundHeight, config.GroundColor)

	shade := render.DarkenColor(config.BuildingColor)
	for _, b := range s.world.Buildings {
		screen.FillRect(float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), config.BuildingColor)
		screen.FillRect(float32(b.X+b.Width*0.75), float32(b.Y), float32(b.Width*0.25), float32(b.Height), shade)
		for wy := b.Y + 6; wy < b.Y+b.Height-6; wy += 10 {
			screen.FillRect(float32(b.X+4), float32(wy), 3, 3, config.WindowColor)
		}
	}
}
