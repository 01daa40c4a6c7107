// internal/ui/overlay.go
package ui

import (
	"go-missile-defense/internal/config"
	"go-missile-defense/pkg/render"
)

// DrawOverlay затемняет экран и пишет заголовок с подсказками по центру.
func DrawOverlay(screen render.Surface, title string, lines ...string) {
	screen.FillRect(0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor)

	cx := config.ScreenWidth / 2
	y := config.ScreenHeight/2 - LineHeight*(len(lines)+2)/2
	DrawOutlinedText(screen, title, cx-TextWidth(title)/2, y, 1, config.TextLightColor, config.BackgroundColor)
	y += LineHeight * 2
	for _, line := range lines {
		DrawCenteredText(screen, line, cx, y, config.TextLightColor)
		y += LineHeight + 4
	}
}
