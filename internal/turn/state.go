// Package turn decides which actors act next. Actors are ordered by their
// time-score; the player, the world clock and on-screen actors act alone,
// while runs of off-screen actors are granted their turns in bulk.
package turn

// RunState is the externally visible control state of the game loop.
type RunState uint8

const (
	PreRun RunState = iota
	DecideTurn
	AwaitingInput
	PlayerTurn
	WorldTurn
	ShowInventory
	ShowDropItem
	ShowTargeting
)

var runStateNames = [...]string{
	PreRun:        "pre-run",
	DecideTurn:    "decide-turn",
	AwaitingInput: "awaiting-input",
	PlayerTurn:    "player-turn",
	WorldTurn:     "world-turn",
	ShowInventory: "show-inventory",
	ShowDropItem:  "show-drop-item",
	ShowTargeting: "show-targeting",
}

func (s RunState) String() string {
	if int(s) < len(runStateNames) {
		return runStateNames[s]
	}
	return "unknown"
}

// IsTurn reports whether the state resolves actions, as opposed to waiting
// on the player or showing a menu.
func (s RunState) IsTurn() bool {
	switch s {
	case PreRun, PlayerTurn, WorldTurn:
		return true
	}
	return false
}

// IsMenu reports whether the state is one of the UI sub-states.
func (s RunState) IsMenu() bool {
	switch s {
	case ShowInventory, ShowDropItem, ShowTargeting:
		return true
	}
	return false
}
