// internal/ui/hud.go
package ui

import (
	"fmt"
	"go-missile-defense/internal/app"
	"go-missile-defense/internal/config"
	"go-missile-defense/pkg/render"
)

// HUD собирает все индикаторы игрового экрана.
type HUD struct {
	Turret      *Turret
	Health      *HealthIndicator
	Ammo        *AmmoIndicator
	Tier        *TierIndicator
	Milestone   *MilestoneIndicator
	PauseButton *PauseButton
}

func NewHUD(game *app.Game) *HUD {
	return &HUD{
		Turret:      NewTurret(game.Base),
		Health:      NewHealthIndicator(12, 12),
		Ammo:        NewAmmoIndicator(12, 44, 6),
		Tier:        NewTierIndicator(config.ScreenWidth/2, 12),
		Milestone:   NewMilestoneIndicator(config.ScreenWidth/2-59, 30),
		PauseButton: NewPauseButton(config.ScreenWidth-24, 24, 8, config.TextLightColor, config.HealthColor),
	}
}

// Update обновляет анимации индикаторов. Вызывается раз в кадр.
func (h *HUD) Update(game *app.Game) {
	h.Ammo.Update(game.AmmoLeft())
	h.PauseButton.Update()
}

func (h *HUD) Draw(screen render.Surface, game *app.Game) {
	h.Turret.Draw(screen, game.Aim)

	p := game.Progress
	h.Health.Draw(screen, p.Health, config.MaxHealth)
	h.Ammo.Draw(screen, game.AmmoLeft(), config.AbmTotal)
	h.Tier.Draw(screen, p.Tier)
	h.Milestone.Draw(screen, p.Score, game.Difficulty.LastMilestone(), game.Library.Difficulty.MilestoneDivisor)
	h.PauseButton.Draw(screen, game.IsPaused())

	score := fmt.Sprintf("SCORE %d", p.Score)
	screen.Text(score, config.ScreenWidth-48-TextWidth(score), 18, config.TextLightColor)
}
