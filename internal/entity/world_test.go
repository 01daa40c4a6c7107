package entity

import (
	"go-missile-defense/internal/component"
	"testing"
)

func TestSweepKeepsOrderAndDropsDead(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 6; i++ {
		w.Enemies = append(w.Enemies, component.Enemy{ID: w.NewEntity(), Dead: i%2 == 0})
	}
	// Два подряд мёртвых — классический случай пропуска элемента при удалении во время обхода.
	w.Enemies[1].Dead = true

	w.Sweep()

	var ids []uint64
	for _, e := range w.Enemies {
		ids = append(ids, uint64(e.ID))
	}
	want := []uint64{4, 6}
	if len(ids) != len(want) {
		t.Fatalf("got ids %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("got ids %v, want %v", ids, want)
		}
	}
}

func TestLiveCountsIgnoreDead(t *testing.T) {
	w := NewWorld()
	w.Missiles = []component.Missile{{}, {Dead: true}, {}}
	w.Blasts = []component.Blast{{Dead: true}, {}}
	w.Enemies = []component.Enemy{{Dead: true}}

	if got := w.LiveMissiles(); got != 2 {
		t.Errorf("LiveMissiles = %d, want 2", got)
	}
	if got := w.LiveBlasts(); got != 1 {
		t.Errorf("LiveBlasts = %d, want 1", got)
	}
	if got := w.LiveEnemies(); got != 0 {
		t.Errorf("LiveEnemies = %d, want 0", got)
	}
}

func TestSweepAllocatesFreshSlice(t *testing.T) {
	w := NewWorld()
	w.Particles = []component.Particle{{Size: 1}, {Size: 2, Dead: true}, {Size: 3}}
	old := w.Particles

	w.Sweep()
	w.Particles[0].Size = 99

	if old[0].Size != 1 {
		t.Error("sweep must not reuse the previous backing array")
	}
}

func TestNewEntityIsMonotonic(t *testing.T) {
	w := NewWorld()
	prev := w.NewEntity()
	for i := 0; i < 100; i++ {
		id := w.NewEntity()
		if id <= prev {
			t.Fatalf("id %d not greater than %d", id, prev)
		}
		prev = id
	}
}
