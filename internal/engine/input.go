package engine

import (
	"goblin-warparty/internal/component"
	"goblin-warparty/internal/geom"
	"goblin-warparty/internal/turn"
)

// Action is a player command independent of any key binding.
type Action uint8

const (
	ActionNone Action = iota
	ActionMove
	ActionWait
	ActionPickUp
	ActionInventory
	ActionDropMenu
	ActionSelect
	ActionTarget
	ActionCancel
	ActionScrollLog
)

// Command is one player input. Fields not used by the action are ignored.
type Command struct {
	Action Action
	DX, DY int        // ActionMove; DY alone for ActionScrollLog
	Index  int        // ActionSelect: position in Backpack()
	Target geom.Point // ActionTarget
}

// Handle applies a command in one of the input states and returns the new
// state. Commands that spend a turn move the engine to PlayerTurn; the
// caller then runs RunUntilInput.
func (e *Engine) Handle(cmd Command) turn.RunState {
	if cmd.Action == ActionScrollLog {
		e.Log.Scroll(cmd.DY)
		return e.state
	}
	switch e.state {
	case turn.AwaitingInput:
		e.state = e.handleAwaiting(cmd)
	case turn.ShowInventory:
		e.state = e.handleInventory(cmd)
	case turn.ShowDropItem:
		e.state = e.handleDrop(cmd)
	case turn.ShowTargeting:
		e.state = e.handleTargeting(cmd)
	}
	e.Res.RunState = e.state
	return e.state
}

func (e *Engine) handleAwaiting(cmd Command) turn.RunState {
	if e.PlayerDead() {
		return turn.AwaitingInput
	}
	switch cmd.Action {
	case ActionMove:
		if e.MovePlayer(cmd.DX, cmd.DY) {
			return turn.PlayerTurn
		}
	case ActionWait:
		e.Wait()
		return turn.PlayerTurn
	case ActionPickUp:
		if e.PickUp() {
			return turn.PlayerTurn
		}
	case ActionInventory:
		return turn.ShowInventory
	case ActionDropMenu:
		return turn.ShowDropItem
	}
	return turn.AwaitingInput
}

func (e *Engine) handleInventory(cmd Command) turn.RunState {
	switch cmd.Action {
	case ActionCancel:
		return turn.AwaitingInput
	case ActionSelect:
		items := e.Backpack()
		if cmd.Index < 0 || cmd.Index >= len(items) {
			return turn.ShowInventory
		}
		item := items[cmd.Index]
		if c := e.World.Get(item, component.CRanged); c != nil {
			e.target = targeting{item: item, reach: c.(component.Ranged).Range}
			return turn.ShowTargeting
		}
		e.UseItem(item, nil)
		return turn.PlayerTurn
	}
	return turn.ShowInventory
}

func (e *Engine) handleDrop(cmd Command) turn.RunState {
	switch cmd.Action {
	case ActionCancel:
		return turn.AwaitingInput
	case ActionSelect:
		items := e.Backpack()
		if cmd.Index < 0 || cmd.Index >= len(items) {
			return turn.ShowDropItem
		}
		e.DropItem(items[cmd.Index])
		return turn.PlayerTurn
	}
	return turn.ShowDropItem
}

func (e *Engine) handleTargeting(cmd Command) turn.RunState {
	switch cmd.Action {
	case ActionCancel:
		e.target = targeting{}
		return turn.AwaitingInput
	case ActionTarget:
		if !e.InReach(cmd.Target, e.target.reach) {
			e.Log.Add("That target is out of reach.")
			return turn.ShowTargeting
		}
		p := cmd.Target
		e.UseItem(e.target.item, &p)
		e.target = targeting{}
		return turn.PlayerTurn
	}
	return turn.ShowTargeting
}
