package engine

import "goblin-warparty/internal/system"

// Pipeline is an ordered list of resolvers run once per turn.
type Pipeline []system.Resolver

// DefaultPipeline is the fixed resolution order. The trailing indexing and
// visibility passes leave content and IsVisible current for the scheduler
// and for the next player command.
func DefaultPipeline() Pipeline {
	return Pipeline{
		system.MapIndexing{},
		system.Visibility{},
		system.GlobalTurn{},
		system.MonsterDecision{},
		system.Movement{},
		system.MeleeCombat{},
		system.Wait{},
		system.ItemPickup{},
		system.ItemUse{},
		system.ItemDrop{},
		system.Damage{},
		system.DeleteTheDead{},
		system.MapIndexing{},
		system.Visibility{},
	}
}

// Run executes every resolver in order.
func (p Pipeline) Run(ctx *system.Context) {
	for _, r := range p {
		r.Run(ctx)
	}
}

// Names lists the resolvers in order.
func (p Pipeline) Names() []string {
	names := make([]string, len(p))
	for i, r := range p {
		names[i] = r.Name()
	}
	return names
}
