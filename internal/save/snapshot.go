// Package save persists a world to a YAML file and rebuilds it. Transient
// state (intents, turn markers, visibility markers, the content index) is
// never written; it is recomputed on the first tick after a load.
package save

import (
	"errors"
	"fmt"
	"strings"

	"goblin-warparty/internal/component"
	"goblin-warparty/internal/ecs"
	"goblin-warparty/internal/gamelog"
	"goblin-warparty/internal/gamemap"
	"goblin-warparty/internal/system"
)

// Version is bumped whenever the file layout changes incompatibly.
const Version = 1

var (
	ErrNoSave       = errors.New("no saved game")
	ErrBadSnapshot  = errors.New("malformed snapshot")
	ErrWrongVersion = errors.New("unsupported save version")
)

const (
	wallGlyph     = '#'
	floorGlyph    = '.'
	revealedGlyph = 'x'
	hiddenGlyph   = '-'
)

// Snapshot is the on-disk form of a world.
type Snapshot struct {
	Version   int              `yaml:"version"`
	Seed      int64            `yaml:"seed"`
	Map       MapRecord        `yaml:"map"`
	Resources system.Resources `yaml:"resources"`
	Entities  []EntityRecord   `yaml:"entities"`
	Log       []gamelog.Entry  `yaml:"log"`
}

// MapRecord stores tiles and the revealed layer one row per string.
type MapRecord struct {
	Width    int            `yaml:"width"`
	Height   int            `yaml:"height"`
	Tiles    []string       `yaml:"tiles"`
	Revealed []string       `yaml:"revealed"`
	Rooms    []gamemap.Rect `yaml:"rooms"`
}

// EntityRecord holds every persistent facet of one entity.
type EntityRecord struct {
	ID ecs.EntityID `yaml:"id"`

	Position    *component.Position    `yaml:"position,omitempty"`
	Renderable  *component.Renderable  `yaml:"renderable,omitempty"`
	Name        *component.Name        `yaml:"name,omitempty"`
	CombatStats *component.CombatStats `yaml:"combat_stats,omitempty"`
	Viewshed    *component.Viewshed    `yaml:"viewshed,omitempty"`
	TakesTurn   *component.TakesTurn   `yaml:"takes_turn,omitempty"`
	CanMove     *component.CanMove     `yaml:"can_move,omitempty"`
	CanMelee    *component.CanMelee    `yaml:"can_melee,omitempty"`
	Confusion   *component.Confusion   `yaml:"confusion,omitempty"`

	Player     *component.Player     `yaml:"player,omitempty"`
	Monster    *component.Monster    `yaml:"monster,omitempty"`
	GlobalTurn *component.GlobalTurn `yaml:"global_turn,omitempty"`
	BlocksTile *component.BlocksTile `yaml:"blocks_tile,omitempty"`

	Item            *component.Item            `yaml:"item,omitempty"`
	Consumable      *component.Consumable      `yaml:"consumable,omitempty"`
	InBackpack      *component.InBackpack      `yaml:"in_backpack,omitempty"`
	ProvidesHealing *component.ProvidesHealing `yaml:"provides_healing,omitempty"`
	InflictsDamage  *component.InflictsDamage  `yaml:"inflicts_damage,omitempty"`
	Ranged          *component.Ranged          `yaml:"ranged,omitempty"`
	AreaOfEffect    *component.AreaOfEffect    `yaml:"area_of_effect,omitempty"`
	CausesConfusion *component.CausesConfusion `yaml:"causes_confusion,omitempty"`
}

// get copies the facet of type t from w into *dst when present.
func get[T ecs.Component](w *ecs.World, id ecs.EntityID, t ecs.ComponentType, dst **T) {
	if c := w.Get(id, t); c != nil {
		v := c.(T)
		*dst = &v
	}
}

// put adds *src to w when it was saved.
func put[T ecs.Component](w *ecs.World, id ecs.EntityID, src *T) {
	if src != nil {
		w.Add(id, *src)
	}
}

func capture(w *ecs.World, id ecs.EntityID) EntityRecord {
	r := EntityRecord{ID: id}
	get(w, id, component.CPosition, &r.Position)
	get(w, id, component.CRenderable, &r.Renderable)
	get(w, id, component.CName, &r.Name)
	get(w, id, component.CCombatStats, &r.CombatStats)
	get(w, id, component.CViewshed, &r.Viewshed)
	get(w, id, component.CTakesTurn, &r.TakesTurn)
	get(w, id, component.CCanMove, &r.CanMove)
	get(w, id, component.CCanMelee, &r.CanMelee)
	get(w, id, component.CConfusion, &r.Confusion)
	get(w, id, component.CPlayer, &r.Player)
	get(w, id, component.CMonster, &r.Monster)
	get(w, id, component.CGlobalTurn, &r.GlobalTurn)
	get(w, id, component.CBlocksTile, &r.BlocksTile)
	get(w, id, component.CItem, &r.Item)
	get(w, id, component.CConsumable, &r.Consumable)
	get(w, id, component.CInBackpack, &r.InBackpack)
	get(w, id, component.CProvidesHealing, &r.ProvidesHealing)
	get(w, id, component.CInflictsDamage, &r.InflictsDamage)
	get(w, id, component.CRanged, &r.Ranged)
	get(w, id, component.CAreaOfEffect, &r.AreaOfEffect)
	get(w, id, component.CCausesConfusion, &r.CausesConfusion)
	return r
}

func (r EntityRecord) restore(w *ecs.World) {
	w.RestoreEntity(r.ID)
	put(w, r.ID, r.Position)
	put(w, r.ID, r.Renderable)
	put(w, r.ID, r.Name)
	put(w, r.ID, r.CombatStats)
	if r.Viewshed != nil {
		vs := *r.Viewshed
		vs.Dirty = true
		w.Add(r.ID, vs)
	}
	put(w, r.ID, r.TakesTurn)
	put(w, r.ID, r.CanMove)
	put(w, r.ID, r.CanMelee)
	put(w, r.ID, r.Confusion)
	put(w, r.ID, r.Player)
	put(w, r.ID, r.Monster)
	put(w, r.ID, r.GlobalTurn)
	put(w, r.ID, r.BlocksTile)
	put(w, r.ID, r.Item)
	put(w, r.ID, r.Consumable)
	put(w, r.ID, r.InBackpack)
	put(w, r.ID, r.ProvidesHealing)
	put(w, r.ID, r.InflictsDamage)
	put(w, r.ID, r.Ranged)
	put(w, r.ID, r.AreaOfEffect)
	put(w, r.ID, r.CausesConfusion)
}

// Capture records the persistent state of a world.
func Capture(w *ecs.World, m *gamemap.GameMap, res system.Resources, log []gamelog.Entry, seed int64) Snapshot {
	s := Snapshot{
		Version:   Version,
		Seed:      seed,
		Resources: res,
		Log:       log,
		Map: MapRecord{
			Width:  m.Width,
			Height: m.Height,
			Rooms:  append([]gamemap.Rect(nil), m.Rooms...),
		},
	}
	var tiles, revealed strings.Builder
	for y := 0; y < m.Height; y++ {
		tiles.Reset()
		revealed.Reset()
		for x := 0; x < m.Width; x++ {
			idx := m.Idx(x, y)
			if m.Tiles[idx] == gamemap.TileFloor {
				tiles.WriteByte(floorGlyph)
			} else {
				tiles.WriteByte(wallGlyph)
			}
			if m.Revealed[idx] {
				revealed.WriteByte(revealedGlyph)
			} else {
				revealed.WriteByte(hiddenGlyph)
			}
		}
		s.Map.Tiles = append(s.Map.Tiles, tiles.String())
		s.Map.Revealed = append(s.Map.Revealed, revealed.String())
	}
	for _, id := range w.Entities() {
		s.Entities = append(s.Entities, capture(w, id))
	}
	return s
}

// Restore rebuilds the world and map described by s. Every viewshed comes
// back dirty and the content index empty.
func (s Snapshot) Restore() (*ecs.World, *gamemap.GameMap, error) {
	if s.Version != Version {
		return nil, nil, fmt.Errorf("%w: %d", ErrWrongVersion, s.Version)
	}
	mr := s.Map
	if mr.Width <= 0 || mr.Height <= 0 || len(mr.Tiles) != mr.Height || len(mr.Revealed) != mr.Height {
		return nil, nil, fmt.Errorf("%w: map is %dx%d with %d tile rows", ErrBadSnapshot, mr.Width, mr.Height, len(mr.Tiles))
	}

	m := gamemap.New(mr.Width, mr.Height)
	for y := 0; y < mr.Height; y++ {
		if len(mr.Tiles[y]) != mr.Width || len(mr.Revealed[y]) != mr.Width {
			return nil, nil, fmt.Errorf("%w: row %d has the wrong width", ErrBadSnapshot, y)
		}
		for x := 0; x < mr.Width; x++ {
			switch mr.Tiles[y][x] {
			case floorGlyph:
				m.Set(x, y, gamemap.TileFloor)
			case wallGlyph:
			default:
				return nil, nil, fmt.Errorf("%w: unknown tile %q at (%d,%d)", ErrBadSnapshot, mr.Tiles[y][x], x, y)
			}
			m.Revealed[m.Idx(x, y)] = mr.Revealed[y][x] == revealedGlyph
		}
	}
	m.Rooms = append(m.Rooms, mr.Rooms...)
	m.RecomputeBlocked()

	w := ecs.NewWorld()
	for _, r := range s.Entities {
		if r.ID == ecs.NilEntity {
			return nil, nil, fmt.Errorf("%w: entity with nil id", ErrBadSnapshot)
		}
		r.restore(w)
	}
	return w, m, nil
}
