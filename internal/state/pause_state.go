// internal/state/pause_state.go
package state

import (
	"go-missile-defense/internal/ui"
	"go-missile-defense/pkg/render"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState держит сессию на паузе. Симуляция не шагает: Game.Update
// в фазе Paused только разбирает очередь команд.
type PauseState struct {
	sm            *StateMachine
	ctx           *Context
	previousState *GameState
}

func NewPauseState(sm *StateMachine, ctx *Context, prevState *GameState) *PauseState {
	return &PauseState{
		sm:            sm,
		ctx:           ctx,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update() {
	in := s.ctx.Input
	x, y := in.CursorPosition()
	game := s.previousState.Game()

	if in.RestartPressed() {
		StartNewGame(s.sm, s.ctx)
		return
	}

	unpause := in.PausePressed() || in.StartPressed() ||
		(in.FirePressed() && s.previousState.hud.PauseButton.IsClicked(x, y))
	if unpause {
		s.previousState.togglePause()
	}

	game.QueueAim(x, y)
	game.Update()
	s.previousState.hud.Update(game)

	if !game.IsPaused() {
		s.sm.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen render.Surface) {
	s.previousState.Draw(screen)
	ui.DrawOverlay(screen, "PAUSED", "P - resume", "R - restart")
}

func (s *PauseState) Exit() {}
