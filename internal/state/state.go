// internal/state/state.go
package state

import (
	"go-missile-defense/internal/app"
	"go-missile-defense/pkg/render"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update()
	Draw(screen render.Surface)
	Exit()
}

// Input — ввод игрока за текущий кадр. Реализуется фронтендом.
type Input interface {
	CursorPosition() (float64, float64)
	FirePressed() bool    // Клик основной кнопкой
	StartPressed() bool   // Space / Enter
	PausePressed() bool   // P / Escape
	RestartPressed() bool // R
}

// Context — общие зависимости состояний.
type Context struct {
	Input Input
	// NewGame создаёт новую сессию в фазе NotStarted.
	NewGame func() *app.Game
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Current возвращает текущее состояние.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update() {
	if sm.current != nil {
		sm.current.Update()
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen render.Surface) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// StartNewGame создаёт сессию, запускает её и переключает машину на игру.
func StartNewGame(sm *StateMachine, ctx *Context) *GameState {
	game := ctx.NewGame()
	game.QueueStart()
	gs := NewGameState(sm, ctx, game)
	sm.SetState(gs)
	return gs
}

// Boot выбирает начальное состояние: меню или сразу игра.
func Boot(sm *StateMachine, ctx *Context, startInMenu bool) {
	if startInMenu {
		sm.SetState(NewMenuState(sm, ctx))
		return
	}
	StartNewGame(sm, ctx)
}
