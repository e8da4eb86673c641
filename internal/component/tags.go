package component

import "goblin-warparty/internal/ecs"

const (
	CPlayer     ecs.ComponentType = 10
	CMonster    ecs.ComponentType = 11
	CBlocksTile ecs.ComponentType = 12
	CIsVisible  ecs.ComponentType = 13
	CItem       ecs.ComponentType = 14
	CConsumable ecs.ComponentType = 15
)

// Player marks the player-controlled actor.
type Player struct{}

func (Player) Type() ecs.ComponentType { return CPlayer }

// Monster marks actors driven by the monster decision maker.
type Monster struct{}

func (Monster) Type() ecs.ComponentType { return CMonster }

// BlocksTile marks an actor whose cell is blocked for movement.
type BlocksTile struct{}

func (BlocksTile) Type() ecs.ComponentType { return CBlocksTile }

// IsVisible is rebuilt on every player viewshed recomputation and never saved.
type IsVisible struct{}

func (IsVisible) Type() ecs.ComponentType { return CIsVisible }

// Item marks an entity that can be picked up.
type Item struct{}

func (Item) Type() ecs.ComponentType { return CItem }

// Consumable items are deleted after a use that had an effect.
type Consumable struct{}

func (Consumable) Type() ecs.ComponentType { return CConsumable }
