// internal/defs/spawn_tables.go
package defs

// SpawnEntry представляет одну запись в таблице спавна.
// EnemyID - это ID варианта врага, а Weight - его "вес" или относительный шанс появления.
type SpawnEntry struct {
	EnemyID string `json:"enemy_id"`
	Weight  int    `json:"weight"`
}

// SpawnTable определяет набор вариантов врагов, доступных начиная с MinTier.
type SpawnTable struct {
	MinTier int          `json:"min_tier"`
	Entries []SpawnEntry `json:"entries"`
}
