// internal/entity/world.go
package entity

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/types"
	"go-missile-defense/internal/utils"
)

// World — единственный владелец всех хранилищ сущностей.
// Каждое хранилище — упорядоченный срез сущностей одного вида.
// Сущности, помеченные Dead, остаются в срезе до следующего Sweep,
// чтобы рендер успел нарисовать их последний кадр.
type World struct {
	Frame  uint64
	NextID types.EntityID

	Missiles  []component.Missile
	Blasts    []component.Blast // Защитные взрывы противоракет
	Enemies   []component.Enemy
	Particles []component.Particle // Взрывы уничтожения врагов
	Fires     []component.Blast    // Пожары в местах попадания
	Smoke     []component.Smoke

	SmokeSources []utils.Point // Точки попадания, над которыми идёт дым
	Buildings    []component.Building
}

func NewWorld() *World {
	return &World{
		NextID: 1,
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// Sweep удаляет сущности, помеченные в прошлом кадре.
func (w *World) Sweep() {
	w.Missiles = compact(w.Missiles, func(m *component.Missile) bool { return !m.Dead })
	w.Blasts = compact(w.Blasts, func(b *component.Blast) bool { return !b.Dead })
	w.Enemies = compact(w.Enemies, func(e *component.Enemy) bool { return !e.Dead })
	w.Particles = compact(w.Particles, func(p *component.Particle) bool { return !p.Dead })
	w.Fires = compact(w.Fires, func(f *component.Blast) bool { return !f.Dead })
	w.Smoke = compact(w.Smoke, func(s *component.Smoke) bool { return !s.Dead })
}

// LiveMissiles — число противоракет в полёте.
func (w *World) LiveMissiles() int {
	n := 0
	for i := range w.Missiles {
		if !w.Missiles[i].Dead {
			n++
		}
	}
	return n
}

// LiveBlasts — число ещё не рассеявшихся защитных взрывов.
func (w *World) LiveBlasts() int {
	n := 0
	for i := range w.Blasts {
		if !w.Blasts[i].Dead {
			n++
		}
	}
	return n
}

// LiveEnemies — число врагов в полёте.
func (w *World) LiveEnemies() int {
	n := 0
	for i := range w.Enemies {
		if !w.Enemies[i].Dead {
			n++
		}
	}
	return n
}

// Clear очищает все динамические хранилища. Здания остаются.
func (w *World) Clear() {
	w.Missiles = nil
	w.Blasts = nil
	w.Enemies = nil
	w.Particles = nil
	w.Fires = nil
	w.Smoke = nil
	w.SmokeSources = nil
}

// compact собирает выжившие сущности в новый срез, сохраняя порядок.
// Новый срез нужен, чтобы рендер не держал ссылки на перезаписанные элементы.
func compact[T any](items []T, keep func(*T) bool) []T {
	out := make([]T, 0, len(items))
	for i := range items {
		if keep(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}
