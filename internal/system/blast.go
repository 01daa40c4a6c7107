// internal/system/blast.go
package system

import (
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/utils"
)

// BlastSystem растит и сжимает защитные взрывы.
type BlastSystem struct {
	world *entity.World
	rng   *utils.PRNGService
}

func NewBlastSystem(world *entity.World, rng *utils.PRNGService) *BlastSystem {
	return &BlastSystem{world: world, rng: rng}
}

func (s *BlastSystem) Update() {
	for i := range s.world.Blasts {
		b := &s.world.Blasts[i]
		if b.Dead {
			continue
		}
		if b.Advance() {
			b.Dead = true
			continue
		}
		b.Jitter = utils.Point{
			X: s.rng.Between(-config.BlastJitter, config.BlastJitter),
			Y: s.rng.Between(-config.BlastJitter, config.BlastJitter),
		}
	}
}
