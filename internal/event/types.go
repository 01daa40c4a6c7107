// internal/event/types.go
package event

const (
	MissileFired  EventType = "MissileFired"  // Противоракета запущена
	BlastStarted  EventType = "BlastStarted"  // Противоракета подорвана
	EnemySpawned  EventType = "EnemySpawned"  // Новый вражеский снаряд
	EnemyDefeated EventType = "EnemyDefeated" // Враг уничтожен взрывом
	CityHit       EventType = "CityHit"       // Враг долетел до города
	TierUp        EventType = "TierUp"        // Выросла сложность
	PhaseChanged  EventType = "PhaseChanged"  // Старт, пауза, конец игры
)

// EnemyDefeatedData — данные события EnemyDefeated.
type EnemyDefeatedData struct {
	EnemyID string
	X, Y    float64
}

// CityHitData — данные события CityHit.
type CityHitData struct {
	EnemyID string
	Damage  int
	X, Y    float64
}

// TierUpData — данные события TierUp.
type TierUpData struct {
	From, To int
	Score    int
}
