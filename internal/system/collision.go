// internal/system/collision.go
package system

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/utils"
)

// FindDefeatingBlast возвращает индекс первого живого взрыва, накрывающего врага.
// Враг — круг радиуса Size/2 с центром в текущей позиции, взрыв — круг
// с центром в точке цели ракеты.
func FindDefeatingBlast(enemy *component.Enemy, blasts []component.Blast) (int, bool) {
	r := enemy.Radius()
	for i := range blasts {
		b := &blasts[i]
		if b.Dead {
			continue
		}
		if utils.Distance(enemy.Pos, b.Center) < r+b.Radius {
			return i, true
		}
	}
	return -1, false
}

// IsDefeated сообщает, уничтожен ли враг хотя бы одним взрывом.
func IsDefeated(enemy *component.Enemy, blasts []component.Blast) bool {
	_, ok := FindDefeatingBlast(enemy, blasts)
	return ok
}
