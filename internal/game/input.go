package game

import (
	"strings"

	"goblin-warparty/internal/engine"
	"goblin-warparty/internal/geom"
	"goblin-warparty/internal/render"
	"goblin-warparty/internal/turn"

	"github.com/gdamore/tcell/v2"
)

// input is what one key press asks of the session.
type input struct {
	cmd    engine.Command
	cursor geom.Point // targeting cursor movement
	quit   bool
}

// direction maps movement keys to a cardinal step.
func direction(ev *tcell.EventKey) (geom.Point, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return geom.Point{Y: -1}, true
	case tcell.KeyDown:
		return geom.Point{Y: 1}, true
	case tcell.KeyRight:
		return geom.Point{X: 1}, true
	case tcell.KeyLeft:
		return geom.Point{X: -1}, true
	}
	if ev.Key() != tcell.KeyRune {
		return geom.Point{}, false
	}
	switch ev.Rune() {
	case 'k', 'K', '8':
		return geom.Point{Y: -1}, true
	case 'j', 'J', '2':
		return geom.Point{Y: 1}, true
	case 'l', 'L', '6':
		return geom.Point{X: 1}, true
	case 'h', 'H', '4':
		return geom.Point{X: -1}, true
	}
	return geom.Point{}, false
}

// keyToInput translates a key event for the given run state. Letters select
// backpack slots while a menu is open and are commands otherwise.
func keyToInput(ev *tcell.EventKey, state turn.RunState) input {
	switch ev.Key() {
	case tcell.KeyPgUp:
		return input{cmd: engine.Command{Action: engine.ActionScrollLog, DY: 1}}
	case tcell.KeyPgDn:
		return input{cmd: engine.Command{Action: engine.ActionScrollLog, DY: -1}}
	case tcell.KeyCtrlC:
		return input{quit: true}
	}

	switch state {
	case turn.ShowInventory, turn.ShowDropItem:
		if ev.Key() == tcell.KeyEscape {
			return input{cmd: engine.Command{Action: engine.ActionCancel}}
		}
		if ev.Key() == tcell.KeyRune {
			if i := strings.IndexRune(render.MenuKeys, ev.Rune()); i >= 0 {
				return input{cmd: engine.Command{Action: engine.ActionSelect, Index: i}}
			}
		}
		return input{}

	case turn.ShowTargeting:
		switch ev.Key() {
		case tcell.KeyEscape:
			return input{cmd: engine.Command{Action: engine.ActionCancel}}
		case tcell.KeyEnter:
			return input{cmd: engine.Command{Action: engine.ActionTarget}}
		}
		if d, ok := direction(ev); ok {
			return input{cursor: d}
		}
		return input{}
	}

	if d, ok := direction(ev); ok {
		return input{cmd: engine.Command{Action: engine.ActionMove, DX: d.X, DY: d.Y}}
	}
	if ev.Key() == tcell.KeyEscape {
		return input{quit: true}
	}
	switch ev.Rune() {
	case '.', 'w', '5':
		return input{cmd: engine.Command{Action: engine.ActionWait}}
	case ',', 'g':
		return input{cmd: engine.Command{Action: engine.ActionPickUp}}
	case 'i', 'I':
		return input{cmd: engine.Command{Action: engine.ActionInventory}}
	case 'd', 'D':
		return input{cmd: engine.Command{Action: engine.ActionDropMenu}}
	case 'q', 'Q':
		return input{quit: true}
	}
	return input{}
}
