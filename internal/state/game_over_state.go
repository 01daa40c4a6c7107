// internal/state/game_over_state.go
package state

import (
	"fmt"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/ui"
	"go-missile-defense/pkg/render"
)

// GameOverState — финальный экран. Завершённая сессия больше не шагает,
// новая игра создаёт новую сессию.
type GameOverState struct {
	sm            *StateMachine
	ctx           *Context
	previousState *GameState
	restartButton *ui.Button
	hover         bool
}

func NewGameOverState(sm *StateMachine, ctx *Context, prevState *GameState) *GameOverState {
	return &GameOverState{
		sm:            sm,
		ctx:           ctx,
		previousState: prevState,
		restartButton: ui.NewButton(config.ScreenWidth/2, config.ScreenHeight/2+70, 120, 32, "RESTART"),
	}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update() {
	in := s.ctx.Input
	x, y := in.CursorPosition()
	s.hover = s.restartButton.Contains(x, y)

	if in.RestartPressed() || in.StartPressed() || (s.hover && in.FirePressed()) {
		StartNewGame(s.sm, s.ctx)
	}
}

func (s *GameOverState) Draw(screen render.Surface) {
	s.previousState.Draw(screen)
	p := s.previousState.Game().Progress
	ui.DrawOverlay(screen, "GAME OVER",
		fmt.Sprintf("Score %d   Tier %d", p.Score, p.Tier),
		"Space or R - play again")
	s.restartButton.Draw(screen, s.hover)
}

func (s *GameOverState) Exit() {}
