// internal/ui/milestone_indicator.go
package ui

import (
	"go-missile-defense/internal/config"
	"go-missile-defense/pkg/render"
	"image/color"
)

// MilestoneIndicator показывает, сколько осталось до следующей вехи сложности.
type MilestoneIndicator struct {
	X, Y float32
}

const (
	milestoneBarWidth  = 118
	milestoneBarHeight = 8
	borderWidth        = 1
)

var milestoneFill = color.RGBA{70, 100, 120, 220}

func NewMilestoneIndicator(x, y float32) *MilestoneIndicator {
	return &MilestoneIndicator{X: x, Y: y}
}

// Draw рисует заполнение (score - lastMilestone) / divisor.
func (i *MilestoneIndicator) Draw(screen render.Surface, score, lastMilestone, divisor int) {
	x0, y0 := i.X, i.Y
	x1, y1 := i.X+milestoneBarWidth, i.Y+milestoneBarHeight
	screen.StrokeLine(x0, y0, x1, y0, borderWidth, config.TextLightColor)
	screen.StrokeLine(x0, y1, x1, y1, borderWidth, config.TextLightColor)
	screen.StrokeLine(x0, y0, x0, y1, borderWidth, config.TextLightColor)
	screen.StrokeLine(x1, y0, x1, y1, borderWidth, config.TextLightColor)

	fillRatio := 0.0
	if divisor > 0 {
		fillRatio = float64(score-lastMilestone) / float64(divisor)
	}
	if fillRatio < 0 {
		fillRatio = 0
	}
	if fillRatio > 1.0 {
		fillRatio = 1.0
	}
	fillWidth := float32(float64(milestoneBarWidth-borderWidth*2) * fillRatio)
	if fillWidth > 0 {
		screen.FillRect(x0+borderWidth, y0+borderWidth, fillWidth, milestoneBarHeight-borderWidth*2, milestoneFill)
	}
}
