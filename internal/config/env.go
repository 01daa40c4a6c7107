package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Settings — параметры запуска, которые можно переопределить через окружение или .env.
type Settings struct {
	Seed        int64   // ABM_SEED, 0 — случайный
	DataDir     string  // ABM_DATA_DIR
	StartInMenu bool    // ABM_START_IN_MENU
	WindowScale float64 // ABM_WINDOW_SCALE
}

// DefaultSettings возвращает значения по умолчанию.
func DefaultSettings() Settings {
	return Settings{
		Seed:        0,
		DataDir:     "assets/data",
		StartInMenu: true,
		WindowScale: 1.0,
	}
}

// LoadSettings читает необязательные .env-файлы и затем переменные окружения.
// Отсутствие файлов не считается ошибкой.
func LoadSettings(envFiles ...string) (Settings, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	s := DefaultSettings()
	if v, ok := os.LookupEnv("ABM_SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Settings{}, fmt.Errorf("ABM_SEED: %w", err)
		}
		s.Seed = seed
	}
	if v, ok := os.LookupEnv("ABM_DATA_DIR"); ok && v != "" {
		s.DataDir = v
	}
	if v, ok := os.LookupEnv("ABM_START_IN_MENU"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Settings{}, fmt.Errorf("ABM_START_IN_MENU: %w", err)
		}
		s.StartInMenu = b
	}
	if v, ok := os.LookupEnv("ABM_WINDOW_SCALE"); ok {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Settings{}, fmt.Errorf("ABM_WINDOW_SCALE: %w", err)
		}
		if scale <= 0 {
			return Settings{}, fmt.Errorf("ABM_WINDOW_SCALE must be positive, got %v", scale)
		}
		s.WindowScale = scale
	}
	return s, nil
}
