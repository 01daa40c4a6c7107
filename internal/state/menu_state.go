// internal/state/menu_state.go
package state

import (
	"go-missile-defense/internal/app"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/ui"
	"go-missile-defense/pkg/render"
)

// MenuState — стартовый экран. Сессия уже создана и ждёт старта.
type MenuState struct {
	sm          *StateMachine
	ctx         *Context
	game        *app.Game
	startButton *ui.Button
	hover       bool
}

func NewMenuState(sm *StateMachine, ctx *Context) *MenuState {
	return &MenuState{
		sm:          sm,
		ctx:         ctx,
		game:        ctx.NewGame(),
		startButton: ui.NewButton(config.ScreenWidth/2, config.ScreenHeight/2+60, 120, 32, "START"),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update() {
	x, y := m.ctx.Input.CursorPosition()
	m.hover = m.startButton.Contains(x, y)

	if m.ctx.Input.StartPressed() || (m.hover && m.ctx.Input.FirePressed()) {
		m.game.QueueStart()
		m.sm.SetState(NewGameState(m.sm, m.ctx, m.game))
	}
}

func (m *MenuState) Draw(screen render.Surface) {
	m.game.Draw(screen)
	ui.DrawOverlay(screen, "MISSILE DEFENSE",
		"Click to launch an interceptor",
		"P - pause   R - restart")
	m.startButton.Draw(screen, m.hover)
}

func (m *MenuState) Exit() {}
