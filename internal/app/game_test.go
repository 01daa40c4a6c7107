package app

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/defs"
	"go-missile-defense/internal/utils"
	"math"
	"testing"
)

func newRunningGame(t *testing.T) *Game {
	t.Helper()
	g := NewGame(defs.Default(), 7)
	g.QueueStart()
	g.Update()
	if g.Phase() != component.Running {
		t.Fatalf("phase = %s after start", g.Phase())
	}
	return g
}

func TestPhaseTransitions(t *testing.T) {
	tests := []struct {
		name  string
		queue func(g *Game)
		want  component.Phase
	}{
		{"idle", func(g *Game) {}, component.NotStarted},
		{"pause before start is ignored", func(g *Game) { g.QueueTogglePause() }, component.NotStarted},
		{"start", func(g *Game) { g.QueueStart() }, component.Running},
		{"start twice", func(g *Game) { g.QueueStart(); g.QueueStart() }, component.Running},
		{"pause", func(g *Game) { g.QueueStart(); g.QueueTogglePause() }, component.Paused},
		{"resume", func(g *Game) { g.QueueStart(); g.QueueTogglePause(); g.QueueTogglePause() }, component.Running},
		{"start while paused", func(g *Game) { g.QueueStart(); g.QueueTogglePause(); g.QueueStart() }, component.Paused},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGame(defs.Default(), 1)
			tt.queue(g)
			g.Update()
			if g.Phase() != tt.want {
				t.Errorf("phase = %s, want %s", g.Phase(), tt.want)
			}
		})
	}
}

func TestNotStartedDoesNotStep(t *testing.T) {
	g := NewGame(defs.Default(), 1)
	for i := 0; i < 100; i++ {
		g.QueueFire(100, 100)
		g.Update()
	}
	if g.World.Frame != 0 || len(g.World.Missiles) != 0 || len(g.World.Enemies) != 0 {
		t.Errorf("simulation advanced before start: frame %d", g.World.Frame)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newRunningGame(t)
	g.QueueFire(300, 200)
	for i := 0; i < 30; i++ {
		g.Update()
	}
	g.QueueTogglePause()
	g.Update()

	frame := g.World.Frame
	missiles := append([]component.Missile(nil), g.World.Missiles...)
	enemies := append([]component.Enemy(nil), g.World.Enemies...)
	progress := *g.Progress

	for i := 0; i < 200; i++ {
		g.QueueFire(500, 200)
		g.Update()
	}

	if g.World.Frame != frame {
		t.Errorf("frame moved during pause: %d -> %d", frame, g.World.Frame)
	}
	if len(g.World.Missiles) != len(missiles) || len(g.World.Enemies) != len(enemies) {
		t.Fatal("stores changed during pause")
	}
	for i := range missiles {
		if g.World.Missiles[i] != missiles[i] {
			t.Errorf("missile %d changed during pause", i)
		}
	}
	for i := range enemies {
		if g.World.Enemies[i] != enemies[i] {
			t.Errorf("enemy %d changed during pause", i)
		}
	}
	if *g.Progress != progress {
		t.Errorf("progress changed during pause: %+v -> %+v", progress, *g.Progress)
	}
}

func TestFireAppliedAtStepBoundary(t *testing.T) {
	g := newRunningGame(t)
	g.QueueFire(300, 200)
	if len(g.World.Missiles) != 0 {
		t.Fatal("fire must wait for the next update")
	}
	g.Update()
	if g.World.LiveMissiles() != 1 {
		t.Fatalf("live missiles = %d, want 1", g.World.LiveMissiles())
	}
}

func TestFireIgnoredWhenAmmoExhausted(t *testing.T) {
	g := newRunningGame(t)
	for i := 0; i < config.AbmTotal+3; i++ {
		g.QueueFire(float64(100+i*50), 150)
	}
	g.Update()

	if got := g.World.LiveMissiles(); got != config.AbmTotal {
		t.Errorf("live missiles = %d, want %d", got, config.AbmTotal)
	}
	if g.AmmoLeft() != 0 {
		t.Errorf("ammo left = %d, want 0", g.AmmoLeft())
	}
}

func TestGameOverWhenHealthDepleted(t *testing.T) {
	g := newRunningGame(t)
	g.Progress.Health = 3
	g.World.Enemies = append(g.World.Enemies, component.Enemy{
		ID:     g.World.NewEntity(),
		Start:  utils.Point{X: 100, Y: 560},
		Target: utils.Point{X: 100, Y: 565},
		Pos:    utils.Point{X: 100, Y: 560},
		Speed:  10,
		Size:   4,
		Damage: 5,
	})

	g.Update()

	if g.Progress.Health != 0 {
		t.Errorf("health = %d, want 0", g.Progress.Health)
	}
	if g.Phase() != component.GameOver {
		t.Fatalf("phase = %s, want GameOver", g.Phase())
	}

	frame := g.World.Frame
	g.QueueStart()
	g.QueueTogglePause()
	g.Update()
	if g.Phase() != component.GameOver {
		t.Errorf("game over must be terminal, got %s", g.Phase())
	}
	if g.World.Frame != frame {
		t.Error("simulation advanced after game over")
	}
}

func TestLongRunInvariants(t *testing.T) {
	g := newRunningGame(t)
	rng := utils.NewPRNGService(99)

	lastScore := 0
	for frame := 0; frame < 20000 && !g.IsOver(); frame++ {
		if frame%15 == 0 {
			g.QueueFire(rng.Between(0, config.ScreenWidth), rng.Between(40, 450))
		}
		g.Update()

		if h := g.Progress.Health; h < 0 || h > config.MaxHealth {
			t.Fatalf("frame %d: health %d out of range", frame, h)
		}
		if a := g.AmmoLeft(); a < 0 || a > config.AbmTotal {
			t.Fatalf("frame %d: ammo %d out of range", frame, a)
		}
		if n := g.World.LiveMissiles() + g.World.LiveBlasts(); n > config.AbmTotal {
			t.Fatalf("frame %d: %d missiles and blasts in flight", frame, n)
		}
		if g.Progress.Score < lastScore {
			t.Fatalf("frame %d: score went down %d -> %d", frame, lastScore, g.Progress.Score)
		}
		lastScore = g.Progress.Score

		for _, b := range g.World.Blasts {
			if b.Radius < 0 || b.Radius > config.BlastMaxRadius {
				t.Fatalf("frame %d: blast radius %v", frame, b.Radius)
			}
		}
		for _, p := range g.World.Particles {
			if p.Color.A < 0 || p.Color.A > 1 {
				t.Fatalf("frame %d: particle alpha %v", frame, p.Color.A)
			}
		}
	}
}

func TestSameSeedSameSession(t *testing.T) {
	run := func() *Game {
		g := newRunningGame(t)
		for i := 0; i < 600; i++ {
			if i%40 == 0 {
				g.QueueFire(float64(100+i%700), 200)
			}
			g.Update()
		}
		return g
	}
	a, b := run(), run()

	if *a.Progress != *b.Progress || len(a.World.Enemies) != len(b.World.Enemies) {
		t.Fatalf("sessions diverged: %+v vs %+v", *a.Progress, *b.Progress)
	}
	for i := range a.World.Enemies {
		if a.World.Enemies[i] != b.World.Enemies[i] {
			t.Errorf("enemy %d differs", i)
		}
	}
}

func TestBuildCity(t *testing.T) {
	base := utils.Point{X: config.ScreenWidth / 2, Y: config.ScreenHeight - config.GroundHeight}
	a := BuildCity(utils.NewPRNGService(5), base)
	b := BuildCity(utils.NewPRNGService(5), base)

	if len(a) == 0 || len(a) != len(b) {
		t.Fatalf("got %d and %d buildings", len(a), len(b))
	}
	groundY := float64(config.ScreenHeight - config.GroundHeight)
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("building %d differs for the same seed", i)
		}
		if math.Abs(a[i].Y+a[i].Height-groundY) > 1e-9 {
			t.Errorf("building %d does not stand on the ground", i)
		}
		if a[i].X+a[i].Width > base.X-config.TurretRadius && a[i].X < base.X+config.TurretRadius {
			t.Errorf("building %d overlaps the turret", i)
		}
	}
}
