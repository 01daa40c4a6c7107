// internal/state/game_state.go
package state

import (
	"go-missile-defense/internal/app"
	"go-missile-defense/internal/ui"
	"go-missile-defense/pkg/render"
)

// GameState — состояние игры
type GameState struct {
	sm   *StateMachine
	ctx  *Context
	game *app.Game
	hud  *ui.HUD
}

func NewGameState(sm *StateMachine, ctx *Context, game *app.Game) *GameState {
	return &GameState{
		sm:   sm,
		ctx:  ctx,
		game: game,
		hud:  ui.NewHUD(game),
	}
}

func (g *GameState) Game() *app.Game {
	return g.game
}

func (g *GameState) Enter() {}

func (g *GameState) Update() {
	in := g.ctx.Input
	x, y := in.CursorPosition()
	g.game.QueueAim(x, y)

	switch {
	case in.RestartPressed():
		StartNewGame(g.sm, g.ctx)
		return
	case in.PausePressed():
		g.togglePause()
	case in.FirePressed():
		if g.hud.PauseButton.IsClicked(x, y) {
			g.togglePause()
		} else {
			g.game.QueueFire(x, y)
		}
	}

	g.game.Update()
	g.hud.Update(g.game)

	switch {
	case g.game.IsOver():
		g.sm.SetState(NewGameOverState(g.sm, g.ctx, g))
	case g.game.IsPaused():
		g.sm.SetState(NewPauseState(g.sm, g.ctx, g))
	}
}

func (g *GameState) togglePause() {
	g.hud.PauseButton.Press()
	g.game.QueueTogglePause()
}

func (g *GameState) Draw(screen render.Surface) {
	g.game.Draw(screen)
	g.hud.Draw(screen, g.game)
}

func (g *GameState) Exit() {}
