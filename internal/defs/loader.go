// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Library хранит все загруженные определения.
type Library struct {
	Enemies    map[string]EnemyDefinition
	Difficulty DifficultyDefinition
}

// Enemy возвращает определение по ID.
func (l *Library) Enemy(id string) (EnemyDefinition, bool) {
	def, ok := l.Enemies[id]
	return def, ok
}

// Validate проверяет согласованность определений.
func (l *Library) Validate() error {
	if len(l.Enemies) == 0 {
		return errors.New("no enemy definitions")
	}
	for id, def := range l.Enemies {
		if def.Speed <= 0 || def.Size <= 0 {
			return fmt.Errorf("enemy %s: speed and size must be positive", id)
		}
		if def.Damage < 0 {
			return fmt.Errorf("enemy %s: negative damage", id)
		}
	}

	d := l.Difficulty
	if d.MilestoneDivisor <= 0 {
		return errors.New("milestone_divisor must be positive")
	}
	if d.BasePopulationCap < 0 {
		return errors.New("base_population_cap must not be negative")
	}
	if _, ok := d.TableFor(0); !ok {
		return errors.New("no spawn table for tier 0")
	}
	for _, table := range d.SpawnTables {
		for _, entry := range table.Entries {
			if _, ok := l.Enemies[entry.EnemyID]; !ok {
				return fmt.Errorf("spawn table %d references unknown enemy %s", table.MinTier, entry.EnemyID)
			}
		}
	}
	return nil
}

// LoadEnemyDefinitions reads the enemy configuration file.
func LoadEnemyDefinitions(path string) (map[string]EnemyDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	library := make(map[string]EnemyDefinition, len(enemyDefs))
	for _, def := range enemyDefs {
		library[def.ID] = def
	}
	return library, nil
}

// LoadDifficultyDefinition reads the difficulty curve file.
func LoadDifficultyDefinition(path string) (DifficultyDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return DifficultyDefinition{}, fmt.Errorf("failed to read difficulty file: %w", err)
	}

	var def DifficultyDefinition
	if err := json.Unmarshal(file, &def); err != nil {
		return DifficultyDefinition{}, fmt.Errorf("failed to unmarshal difficulty: %w", err)
	}
	return def, nil
}

// LoadAll загружает enemies.json и difficulty.json из каталога dir.
func LoadAll(dir string) (*Library, error) {
	enemies, err := LoadEnemyDefinitions(filepath.Join(dir, "enemies.json"))
	if err != nil {
		return nil, err
	}
	difficulty, err := LoadDifficultyDefinition(filepath.Join(dir, "difficulty.json"))
	if err != nil {
		return nil, err
	}

	lib := &Library{Enemies: enemies, Difficulty: difficulty}
	if err := lib.Validate(); err != nil {
		return nil, fmt.Errorf("invalid definitions in %s: %w", dir, err)
	}

	log.Printf("Loaded %d enemy definitions, %d spawn tables", len(lib.Enemies), len(lib.Difficulty.SpawnTables))
	return lib, nil
}
