package save

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goblin-warparty/internal/component"
	"goblin-warparty/internal/config"
	"goblin-warparty/internal/ecs"
	"goblin-warparty/internal/factory"
	"goblin-warparty/internal/gamelog"
	"goblin-warparty/internal/generate"
	"goblin-warparty/internal/rng"
	"goblin-warparty/internal/system"
)

func newWorld(t *testing.T) (*ecs.World, *system.Resources, Snapshot) {
	t.Helper()
	cfg := config.Default()
	r := rng.New(12)
	m := generate.Generate(generate.FromConfig(cfg.Map, r))
	w := ecs.NewWorld()
	player := factory.SpawnMap(w, m, r, cfg)
	pos := w.Get(player, component.CPosition).(component.Position)

	potion := factory.NewHealthPotion(w, 0, 0, cfg.Items)
	w.Remove(potion, component.CPosition)
	w.Add(potion, component.InBackpack{Owner: player})
	w.Add(player, component.Confusion{TurnsRemaining: 2})
	w.Add(player, component.WantsToTakeTurn{})
	m.Revealed[m.Idx(pos.X, pos.Y)] = true

	res := &system.Resources{Player: player, PlayerPos: pos.Point()}
	res.Clock.TimeScore = 300
	log := []gamelog.Entry{{Message: "Welcome", Count: 2}}
	return w, res, Capture(w, m, *res, log, 77)
}

func TestCaptureRestoreRoundTrip(t *testing.T) {
	w, res, snap := newWorld(t)
	path := filepath.Join(t.TempDir(), "save.yaml")

	require.NoError(t, Write(path, snap))
	require.True(t, Exists(path))
	loaded, err := Read(path)
	require.NoError(t, err)

	w2, m2, err := loaded.Restore()
	require.NoError(t, err)

	assert.Equal(t, int64(77), loaded.Seed)
	assert.Equal(t, res.Player, loaded.Resources.Player)
	assert.Equal(t, res.PlayerPos, loaded.Resources.PlayerPos)
	assert.Equal(t, uint32(300), loaded.Resources.Clock.TimeScore)
	assert.Equal(t, []gamelog.Entry{{Message: "Welcome", Count: 2}}, loaded.Log)

	assert.Equal(t, w.Entities(), w2.Entities())
	for _, id := range w.Entities() {
		for _, ct := range []ecs.ComponentType{
			component.CPosition, component.CCombatStats, component.CName,
			component.CTakesTurn, component.CInBackpack, component.CConfusion,
			component.CProvidesHealing, component.CRenderable,
		} {
			assert.Equal(t, w.Get(id, ct), w2.Get(id, ct), "entity %d component %d", id, ct)
		}
	}

	p := res.PlayerPos
	assert.True(t, m2.IsRevealed(p.X, p.Y))
	assert.Empty(t, m2.ContentAt(p.X, p.Y), "content is rebuilt by the first tick")
	next := w2.CreateEntity()
	assert.Greater(t, next, w.Entities()[len(w.Entities())-1], "new IDs continue past restored ones")
}

func TestRestoreDropsTransientState(t *testing.T) {
	_, res, snap := newWorld(t)
	w2, _, err := snap.Restore()
	require.NoError(t, err)

	assert.False(t, w2.Has(res.Player, component.CWantsToTakeTurn))
	for _, id := range w2.Query(component.CViewshed) {
		vs := w2.Get(id, component.CViewshed).(component.Viewshed)
		assert.True(t, vs.Dirty, "entity %d", id)
		assert.Empty(t, vs.VisibleTiles)
	}
}

func TestRestoreRejectsBadSnapshots(t *testing.T) {
	_, _, good := newWorld(t)
	tests := []struct {
		name   string
		mutate func(*Snapshot)
		want   error
	}{
		{"version", func(s *Snapshot) { s.Version = 99 }, ErrWrongVersion},
		{"missing rows", func(s *Snapshot) { s.Map.Tiles = s.Map.Tiles[1:] }, ErrBadSnapshot},
		{"short row", func(s *Snapshot) { s.Map.Tiles[0] = "#" }, ErrBadSnapshot},
		{"unknown tile", func(s *Snapshot) {
			row := []byte(s.Map.Tiles[1])
			row[1] = '?'
			s.Map.Tiles[1] = string(row)
		}, ErrBadSnapshot},
		{"nil entity", func(s *Snapshot) { s.Entities = append(s.Entities, EntityRecord{}) }, ErrBadSnapshot},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := good
			s.Map.Tiles = append([]string(nil), good.Map.Tiles...)
			s.Entities = append([]EntityRecord(nil), good.Entities...)
			tt.mutate(&s)
			_, _, err := s.Restore()
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "none.yaml"))
	assert.ErrorIs(t, err, ErrNoSave)
}

func TestDelete(t *testing.T) {
	_, _, snap := newWorld(t)
	path := filepath.Join(t.TempDir(), "save.yaml")
	require.NoError(t, Write(path, snap))

	require.NoError(t, Delete(path))
	assert.False(t, Exists(path))
	assert.NoError(t, Delete(path), "deleting twice is fine")
}

func TestCaptureMapRows(t *testing.T) {
	_, _, snap := newWorld(t)
	require.Len(t, snap.Map.Tiles, snap.Map.Height)
	for _, row := range snap.Map.Tiles {
		assert.Len(t, row, snap.Map.Width)
	}
	assert.Equal(t, byte(wallGlyph), snap.Map.Tiles[0][0])
}
