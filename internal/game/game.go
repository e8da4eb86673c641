// Package game runs one interactive session: it reads terminal events,
// feeds them to an engine as commands and redraws after every change.
package game

import (
	"context"
	"fmt"
	"log/slog"

	"goblin-warparty/internal/engine"
	"goblin-warparty/internal/geom"
	"goblin-warparty/internal/render"
	"goblin-warparty/internal/turn"

	"github.com/gdamore/tcell/v2"
)

// Game is the top-level orchestrator for one screen and one world.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	engine   *engine.Engine
	logger   *slog.Logger
	cursor   geom.Point

	// Persist saves the world on quit and removes the save once the
	// player has died.
	Persist bool
}

// New wires a game to an initialised screen.
func New(screen tcell.Screen, eng *engine.Engine, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	screen.EnableMouse()
	return &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		engine:   eng,
		logger:   logger,
	}
}

// Run is the main loop. It returns when the player quits or ctx is done.
// The screen is left open; the caller owns it.
func (g *Game) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		_ = g.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	g.engine.RunUntilInput()
	for {
		g.draw()
		switch ev := g.screen.PollEvent().(type) {
		case nil:
			return g.finish()
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer.Resize()
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return g.finish()
			}
		case *tcell.EventKey:
			in := keyToInput(ev, g.engine.State())
			if in.quit {
				return g.finish()
			}
			g.apply(in)
		case *tcell.EventMouse:
			g.click(ev)
		}
	}
}

func (g *Game) draw() {
	if g.engine.State() == turn.ShowTargeting {
		g.renderer.SetCursor(&g.cursor)
	} else {
		g.renderer.SetCursor(nil)
	}
	g.renderer.DrawFrame(g.engine)
}

// apply hands one command to the engine and runs the world until the
// player is asked again.
func (g *Game) apply(in input) {
	if in.cursor != (geom.Point{}) {
		g.cursor = g.cursor.Add(in.cursor.X, in.cursor.Y)
		return
	}
	if in.cmd.Action == engine.ActionNone {
		return
	}
	if in.cmd.Action == engine.ActionTarget {
		in.cmd.Target = g.cursor
	}
	if g.engine.Handle(in.cmd) == turn.ShowTargeting {
		if in.cmd.Action == engine.ActionSelect {
			g.cursor = g.engine.Res.PlayerPos
		}
		return
	}
	g.engine.RunUntilInput()
}

// click fires a targeted item at the clicked cell.
func (g *Game) click(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 || g.engine.State() != turn.ShowTargeting {
		return
	}
	sx, sy := ev.Position()
	g.cursor = g.renderer.Camera().ScreenToWorld(sx, sy)
	g.apply(input{cmd: engine.Command{Action: engine.ActionTarget}})
}

// finish persists or discards the world as configured.
func (g *Game) finish() error {
	if !g.Persist {
		return nil
	}
	if g.engine.PlayerDead() {
		if err := g.engine.DiscardSave(); err != nil {
			return fmt.Errorf("discarding save: %w", err)
		}
		return nil
	}
	if err := g.engine.Save(); err != nil {
		return fmt.Errorf("saving on quit: %w", err)
	}
	return nil
}
