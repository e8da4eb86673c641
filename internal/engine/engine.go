// Package engine drives one world: it owns the state machine that alternates
// between waiting for the player, running the resolver pipeline and asking
// the scheduler who acts next.
package engine

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"goblin-warparty/internal/config"
	"goblin-warparty/internal/ecs"
	"goblin-warparty/internal/factory"
	"goblin-warparty/internal/gamelog"
	"goblin-warparty/internal/gamemap"
	"goblin-warparty/internal/generate"
	"goblin-warparty/internal/rng"
	"goblin-warparty/internal/save"
	"goblin-warparty/internal/system"
	"goblin-warparty/internal/turn"
)

// maxSteps bounds RunUntilInput. A world where every actor pays for its
// actions never comes near it.
const maxSteps = 100_000

// Engine is one running world. It is not safe for concurrent use.
type Engine struct {
	World *ecs.World
	Map   *gamemap.GameMap
	Log   *gamelog.Log
	Res   *system.Resources

	cfg      config.Game
	rand     *rng.Random
	logger   *slog.Logger
	pipeline Pipeline
	ctx      *system.Context
	state    turn.RunState
	target   targeting
}

type targeting struct {
	item  ecs.EntityID
	reach int
}

// New generates a fresh world from cfg.
func New(cfg config.Game, logger *slog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rng.New(seed)
	m := generate.Generate(generate.FromConfig(cfg.Map, r))
	w := ecs.NewWorld()
	player := factory.SpawnMap(w, m, r, cfg)

	e := newEngine(cfg, w, m, r, logger)
	e.Res.Player = player
	e.Res.PlayerPos = positionOf(w, player)
	e.Log.Add("Welcome to Goblin War Party!")
	e.logger.Info("world created", "seed", seed, "rooms", len(m.Rooms), "entities", len(w.Entities()))
	return e, nil
}

// Restore rebuilds an engine from a snapshot. The world resumes in PreRun so
// the first step recomputes every derived index.
func Restore(cfg config.Game, snap save.Snapshot, logger *slog.Logger) (*Engine, error) {
	w, m, err := snap.Restore()
	if err != nil {
		return nil, fmt.Errorf("restoring world: %w", err)
	}
	e := newEngine(cfg, w, m, rng.New(snap.Seed), logger)
	*e.Res = snap.Resources
	e.Res.RunState = turn.PreRun
	e.Log.Restore(snap.Log)
	if !w.Alive(e.Res.Player) {
		return nil, fmt.Errorf("restoring world: %w: player %d missing", save.ErrBadSnapshot, e.Res.Player)
	}
	e.logger.Info("world restored", "entities", len(w.Entities()))
	return e, nil
}

func newEngine(cfg config.Game, w *ecs.World, m *gamemap.GameMap, r *rng.Random, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Engine{
		World:    w,
		Map:      m,
		Log:      gamelog.New(logger),
		Res:      &system.Resources{},
		cfg:      cfg,
		rand:     r,
		logger:   logger,
		pipeline: DefaultPipeline(),
		state:    turn.PreRun,
	}
	e.ctx = &system.Context{
		World:  w,
		Map:    m,
		Rand:   r,
		Log:    e.Log,
		Logger: logger,
		Res:    e.Res,
	}
	return e
}

// State returns the current run state.
func (e *Engine) State() turn.RunState { return e.state }

// NeedsInput reports whether the engine is waiting on a player command.
func (e *Engine) NeedsInput() bool {
	return e.state == turn.AwaitingInput || e.state.IsMenu()
}

// Step performs one transition of a state that needs no input.
func (e *Engine) Step() turn.RunState {
	switch e.state {
	case turn.PreRun, turn.PlayerTurn, turn.WorldTurn:
		e.Res.RunState = e.state
		e.pipeline.Run(e.ctx)
		e.state = turn.DecideTurn
	case turn.DecideTurn:
		batch, next := turn.Schedule(e.World, &e.Res.Clock)
		e.logger.Debug("turn decided", "next", next.String(), "batch", len(batch))
		e.state = next
	}
	e.Res.RunState = e.state
	return e.state
}

// RunUntilInput steps until a player command is needed.
func (e *Engine) RunUntilInput() turn.RunState {
	for i := 0; !e.NeedsInput(); i++ {
		if i == maxSteps {
			e.logger.Warn("world did not yield to the player", "steps", maxSteps)
			break
		}
		e.Step()
	}
	return e.state
}

// Checkpoint captures the world for saving and reseeds the live random
// stream with the saved seed, so a game continued after the checkpoint
// plays out exactly like the same save loaded later.
func (e *Engine) Checkpoint() save.Snapshot {
	seed := e.rand.Rand().Int63()
	e.rand = rng.New(seed)
	e.ctx.Rand = e.rand
	return save.Capture(e.World, e.Map, *e.Res, slices.Clone(e.Log.Entries()), seed)
}

// Save writes the world to the configured save path.
func (e *Engine) Save() error {
	if err := save.Write(e.cfg.SavePath, e.Checkpoint()); err != nil {
		return err
	}
	e.logger.Info("game saved", "path", e.cfg.SavePath)
	return nil
}

// DiscardSave removes the save file, used once the player has died.
func (e *Engine) DiscardSave() error {
	return save.Delete(e.cfg.SavePath)
}
