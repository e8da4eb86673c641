package factory

import (
	"testing"

	"goblin-warparty/internal/component"
	"goblin-warparty/internal/config"
	"goblin-warparty/internal/ecs"
	"goblin-warparty/internal/gamemap"
	"goblin-warparty/internal/generate"
	"goblin-warparty/internal/rng"
)

func TestNewPlayerComponents(t *testing.T) {
	w := ecs.NewWorld()
	cfg := config.Default()
	id := NewPlayer(w, 5, 3, cfg)

	if !w.Alive(id) {
		t.Fatal("player entity must be alive")
	}
	if p := w.Get(id, component.CPosition).(component.Position); p.X != 5 || p.Y != 3 {
		t.Errorf("position = (%d,%d); want (5,3)", p.X, p.Y)
	}
	stats := w.Get(id, component.CCombatStats).(component.CombatStats)
	if stats.HP != 30 || stats.MaxHP != 30 || stats.Defense != 2 || stats.Power != 5 {
		t.Errorf("stats = %+v; want 30/30 def 2 pow 5", stats)
	}
	for _, ct := range []ecs.ComponentType{
		component.CPlayer, component.CViewshed, component.CTakesTurn,
		component.CCanMove, component.CCanMelee, component.CRenderable, component.CName,
	} {
		if !w.Has(id, ct) {
			t.Errorf("player missing component %d", ct)
		}
	}
	if w.Has(id, component.CBlocksTile) {
		t.Error("player must not block its tile")
	}
	if !w.Get(id, component.CViewshed).(component.Viewshed).Dirty {
		t.Error("a new viewshed must start dirty")
	}
}

func TestNewMonsters(t *testing.T) {
	cfg := config.Default()
	tests := []struct {
		name string
		make func(*ecs.World) ecs.EntityID
	}{
		{"Orc", func(w *ecs.World) ecs.EntityID { return NewOrc(w, 2, 2, cfg) }},
		{"Goblin", func(w *ecs.World) ecs.EntityID { return NewGoblin(w, 2, 2, cfg) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			id := tt.make(w)
			if got := w.Get(id, component.CName).(component.Name).Name; got != tt.name {
				t.Errorf("name = %q; want %q", got, tt.name)
			}
			stats := w.Get(id, component.CCombatStats).(component.CombatStats)
			if stats.HP != 16 || stats.Defense != 1 || stats.Power != 4 {
				t.Errorf("stats = %+v; want 16 hp def 1 pow 4", stats)
			}
			if !w.Has(id, component.CMonster) || !w.Has(id, component.CBlocksTile) {
				t.Error("monsters must be tagged and block their tile")
			}
			if r := w.Get(id, component.CViewshed).(component.Viewshed).Range; r != 8 {
				t.Errorf("sight = %d; want 8", r)
			}
			if c := w.Get(id, component.CCanMove).(component.CanMove).TimeCost; c != cfg.MoveCost {
				t.Errorf("move cost = %d; want %d", c, cfg.MoveCost)
			}
		})
	}
}

func TestItems(t *testing.T) {
	items := config.Default().Items
	w := ecs.NewWorld()

	potion := NewHealthPotion(w, 1, 1, items)
	if h := w.Get(potion, component.CProvidesHealing).(component.ProvidesHealing).Amount; h != 8 {
		t.Errorf("potion heals %d; want 8", h)
	}
	if w.Has(potion, component.CRanged) {
		t.Error("potions are self-targeted")
	}

	fireball := NewFireballScroll(w, 1, 1, items)
	if !w.Has(fireball, component.CAreaOfEffect) || !w.Has(fireball, component.CRanged) {
		t.Error("fireball needs a range and an area")
	}

	confusion := NewConfusionScroll(w, 1, 1, items)
	if turns := w.Get(confusion, component.CCausesConfusion).(component.CausesConfusion).Turns; turns != items.ConfusionTurns {
		t.Errorf("confusion lasts %d; want %d", turns, items.ConfusionTurns)
	}

	missile := NewMagicMissileScroll(w, 1, 1, items)
	for _, id := range []ecs.EntityID{potion, fireball, confusion, missile} {
		if !w.Has(id, component.CItem) || !w.Has(id, component.CConsumable) {
			t.Errorf("item %d must be a consumable item", id)
		}
	}
}

func TestRandomItemCoversEveryKind(t *testing.T) {
	items := config.Default().Items
	r := rng.New(4)
	seen := map[string]bool{}
	for range 200 {
		w := ecs.NewWorld()
		id := NewRandomItem(w, r, 0, 0, items)
		seen[w.Get(id, component.CName).(component.Name).Name] = true
	}
	for _, name := range []string{"Health Potion", "Magic Missile Scroll", "Fireball Scroll", "Confusion Scroll"} {
		if !seen[name] {
			t.Errorf("never rolled %s", name)
		}
	}
}

func TestSpawnMap(t *testing.T) {
	cfg := config.Default()
	for seed := int64(0); seed < 5; seed++ {
		r := rng.New(seed)
		m := generate.Generate(generate.FromConfig(cfg.Map, r))
		w := ecs.NewWorld()
		player := SpawnMap(w, m, r, cfg)

		globals := w.Query(component.CGlobalTurn)
		if len(globals) != 1 || globals[0] >= player {
			t.Fatalf("seed %d: want exactly one clock created before the player, got %v", seed, globals)
		}

		sx, sy := m.Rooms[0].Center()
		if p := w.Get(player, component.CPosition).(component.Position); p.X != sx || p.Y != sy {
			t.Errorf("seed %d: player at (%d,%d); want first room centre (%d,%d)", seed, p.X, p.Y, sx, sy)
		}

		occupied := map[[2]int]bool{}
		for _, id := range w.Query(component.CPosition) {
			p := w.Get(id, component.CPosition).(component.Position)
			if m.At(p.X, p.Y) != gamemap.TileFloor {
				t.Errorf("seed %d: entity %d spawned in a wall at (%d,%d)", seed, id, p.X, p.Y)
			}
			if occupied[[2]int{p.X, p.Y}] {
				t.Errorf("seed %d: two entities spawned at (%d,%d)", seed, p.X, p.Y)
			}
			occupied[[2]int{p.X, p.Y}] = true
		}
	}
}
