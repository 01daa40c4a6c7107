// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	GroundHeight = 30 // Высота полосы земли под городом

	// Турель
	TurretRadius = 40.0
	TurretLength = 90.0
	TurretWidth  = 20.0

	// Противоракеты (ABM)
	AbmTotal        = 5   // Максимум ракет + взрывов одновременно
	AbmSpeed        = 8.0 // пикселей за кадр
	AbmRadius       = 3.0
	BlastMaxRadius  = 50.0
	BlastGrowthRate = 1.0 // пикселей радиуса за кадр
	BlastJitter     = 2.0 // дрожание отрисовки взрыва

	// Здоровье и счёт
	MaxHealth     = 100
	ScorePerEnemy = 1

	// Частицы уничтожения
	ExplosionCount      = 35   // Частиц на одно уничтожение
	ExplosionSpeed      = 4.0  // Максимальная начальная скорость по каждой оси
	ExplosionGravity    = 0.04 // Ускорение вниз, пикселей/кадр²
	ExplosionSize       = 4.0
	ExplosionShrink     = 0.98 // Множитель размера за кадр
	ExplosionLifeFrames = 90

	// Эффекты попадания по городу
	FireMaxRadius      = 30.0
	FireGrowthRate     = 1.5
	SmokeSpawnChance   = 0.3 // Вероятность новой струйки дыма за кадр на каждую точку попадания
	SmokeMinFrames     = 40
	SmokeMaxFrames     = 100
	SmokeRiseMin       = 0.3
	SmokeRiseMax       = 1.0
	SmokeDrift         = 0.3
	SmokeSize          = 6.0
	SmokeGrowth        = 1.01
	MaxSmokeSources    = 16 // Старые точки попадания перестают дымить
	SmokeSourceJitterX = 6.0

	// Город
	BuildingCount     = 12
	BuildingMinHeight = 20.0
	BuildingMaxHeight = 70.0
	CityMarginX       = 40.0
	EnemySpawnMarginX = 20.0

	EnemyTrailWidth = 1.5
)

var (
	BackgroundColor = color.RGBA{19, 24, 98, 255}
	GroundColor     = color.RGBA{40, 70, 40, 255}
	BuildingColor   = color.RGBA{90, 90, 110, 255}
	WindowColor     = color.RGBA{230, 210, 120, 255}
	TurretColor     = color.RGBA{153, 37, 147, 255}
	GunColor        = color.RGBA{5, 227, 34, 255}
	AbmColor        = color.RGBA{240, 240, 240, 255}
	AbmTrailColor   = color.RGBA{240, 240, 240, 90}
	BlastColor      = color.RGBA{255, 255, 255, 200}
	BlastRingColor  = color.RGBA{255, 200, 80, 255}
	FireColor       = color.RGBA{255, 110, 20, 220}
	SmokeColor      = color.RGBA{80, 80, 80, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 128}
	HealthColor     = color.RGBA{50, 205, 50, 255}
	HealthLowColor  = color.RGBA{220, 60, 60, 255}
	HealthBackColor = color.RGBA{20, 20, 30, 255}
	AmmoColor       = color.RGBA{240, 240, 240, 255}
	AmmoEmptyColor  = color.RGBA{60, 60, 70, 255}
)
