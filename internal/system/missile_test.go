package system

import (
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/utils"
	"math"
	"testing"
)

func TestFireStartsAtTurretTip(t *testing.T) {
	env := newTestEnv(t)
	base := utils.Point{X: 200, Y: 550}
	ms := NewMissileSystem(env.world, env.dispatcher, base)

	target := utils.Point{X: 300, Y: 150}
	if !ms.Fire(target) {
		t.Fatal("Fire returned false")
	}
	m := env.world.Missiles[0]

	if d := utils.Distance(base, m.Start); math.Abs(d-config.TurretLength) > 1e-9 {
		t.Errorf("start is %v from base, want %v", d, config.TurretLength)
	}
	// Точка вылета лежит на луче base→target.
	cross := (m.Start.X-base.X)*(target.Y-base.Y) - (m.Start.Y-base.Y)*(target.X-base.X)
	if math.Abs(cross) > 1e-6 {
		t.Errorf("start %v is not on the line toward %v", m.Start, target)
	}
	if m.Start.Y >= base.Y {
		t.Errorf("start %v points away from target", m.Start)
	}
	if env.count(event.MissileFired) != 1 {
		t.Error("MissileFired not dispatched")
	}
}

func TestFireRejectsDegenerateGeometry(t *testing.T) {
	env := newTestEnv(t)
	base := utils.Point{X: 200, Y: 550}
	ms := NewMissileSystem(env.world, env.dispatcher, base)

	if ms.Fire(base) {
		t.Error("fire at turret base must be ignored")
	}
	if ms.Fire(utils.Point{X: 200, Y: 550 - config.TurretLength}) {
		t.Error("fire at turret tip must be ignored")
	}
	if len(env.world.Missiles) != 0 {
		t.Errorf("got %d missiles, want 0", len(env.world.Missiles))
	}
}

func TestFireRespectsAmmoCap(t *testing.T) {
	env := newTestEnv(t)
	ms := NewMissileSystem(env.world, env.dispatcher, utils.Point{X: 400, Y: 560})

	fired := 0
	for i := 0; i < config.AbmTotal+3; i++ {
		if ms.Fire(utils.Point{X: float64(100 + i*40), Y: 100}) {
			fired++
		}
	}
	if fired != config.AbmTotal {
		t.Errorf("fired %d, want %d", fired, config.AbmTotal)
	}
	if ms.AmmoLeft() != 0 {
		t.Errorf("AmmoLeft = %d, want 0", ms.AmmoLeft())
	}
}

func TestMissileBecomesBlastAndAmmoRecoversAfterDissipation(t *testing.T) {
	env := newTestEnv(t)
	ms := NewMissileSystem(env.world, env.dispatcher, utils.Point{X: 400, Y: 560})
	bs := NewBlastSystem(env.world, env.rng)

	target := utils.Point{X: 400, Y: 300}
	if !ms.Fire(target) {
		t.Fatal("Fire returned false")
	}

	sawBlast := false
	for frame := 0; frame < 1000; frame++ {
		env.world.Sweep()
		bs.Update()
		ms.Update()

		used := env.world.LiveMissiles() + env.world.LiveBlasts()
		if used > config.AbmTotal {
			t.Fatalf("frame %d: ammo invariant broken: %d", frame, used)
		}
		if env.world.LiveBlasts() == 1 {
			sawBlast = true
			if env.world.LiveMissiles() != 0 {
				t.Fatalf("frame %d: missile still live after detonation", frame)
			}
			if ms.AmmoLeft() != config.AbmTotal-1 {
				t.Fatalf("frame %d: ammo recovered before blast dissipated", frame)
			}
			if c := env.world.Blasts[len(env.world.Blasts)-1].Center; c != target {
				t.Fatalf("blast center %v, want %v", c, target)
			}
		}
		if sawBlast && used == 0 {
			if ms.AmmoLeft() != config.AbmTotal {
				t.Errorf("AmmoLeft = %d after dissipation, want %d", ms.AmmoLeft(), config.AbmTotal)
			}
			return
		}
	}
	t.Fatal("blast never dissipated")
}

func TestMissileArrivesOnSchedule(t *testing.T) {
	env := newTestEnv(t)
	ms := NewMissileSystem(env.world, env.dispatcher, utils.Point{X: 400, Y: 560})
	ms.Fire(utils.Point{X: 400, Y: 300})

	// 260 - 90 = 170 пикселей при скорости 8: 22 кадра в полёте, подрыв на 22-м.
	path := 260.0 - config.TurretLength
	frames := int(math.Ceil(path / config.AbmSpeed))
	for i := 0; i < frames-1; i++ {
		ms.Update()
	}
	if env.world.Missiles[0].Dead {
		t.Fatalf("missile detonated early")
	}
	ms.Update()
	if !env.world.Missiles[0].Dead || len(env.world.Blasts) != 1 {
		t.Fatalf("missile should have detonated on frame %d", frames)
	}
	if env.world.Missiles[0].Pos != env.world.Missiles[0].Target {
		t.Errorf("final position %v, want target", env.world.Missiles[0].Pos)
	}
}
