package app

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/utils"
)

// CommandKind — тип команды игрока.
type CommandKind int

const (
	CmdStart CommandKind = iota
	CmdTogglePause
	CmdFire
	CmdAim
)

// Command — команда игрока. Обработчики ввода только ставят команды в очередь,
// Game применяет их на границе кадра.
type Command struct {
	Kind   CommandKind
	Target utils.Point // Для CmdFire и CmdAim
}

func (g *Game) QueueStart() {
	g.commands = append(g.commands, Command{Kind: CmdStart})
}

func (g *Game) QueueTogglePause() {
	g.commands = append(g.commands, Command{Kind: CmdTogglePause})
}

func (g *Game) QueueFire(x, y float64) {
	g.commands = append(g.commands, Command{Kind: CmdFire, Target: utils.Point{X: x, Y: y}})
}

func (g *Game) QueueAim(x, y float64) {
	g.commands = append(g.commands, Command{Kind: CmdAim, Target: utils.Point{X: x, Y: y}})
}

// drainCommands применяет накопленные команды в порядке поступления.
func (g *Game) drainCommands() {
	for _, cmd := range g.commands {
		switch cmd.Kind {
		case CmdStart:
			g.Start()
		case CmdTogglePause:
			g.TogglePause()
		case CmdFire:
			if g.phase == component.Running {
				g.MissileSystem.Fire(cmd.Target)
			}
		case CmdAim:
			g.Aim = cmd.Target
		}
	}
	g.commands = g.commands[:0]
}
