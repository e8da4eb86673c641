// goblin-warparty is a turn-based roguelike played in the terminal.
//
// Usage:
//
//	goblin-warparty [-config game.yaml] [-new] [-log goblin.log]
//
// The world is saved on quit and resumed on the next start.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"goblin-warparty/internal/config"
	"goblin-warparty/internal/engine"
	"goblin-warparty/internal/game"
	"goblin-warparty/internal/save"

	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", "game.yaml", "Path to the YAML game config (defaults apply if absent)")
	fresh := flag.Bool("new", false, "Ignore any saved game and start a new world")
	logPath := flag.String("log", "", "Write diagnostics to this file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *configPath, *logPath, *fresh); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath, logPath string, fresh bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// The terminal belongs to the game, so diagnostics go to a file or nowhere.
	var out io.Writer = io.Discard
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: cfg.Level()}))

	eng, err := openWorld(cfg, logger, fresh)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	g := game.New(screen, eng, logger)
	g.Persist = cfg.SavePath != ""
	return g.Run(ctx)
}

// openWorld resumes the saved world when there is one, or builds a new one.
func openWorld(cfg config.Game, logger *slog.Logger, fresh bool) (*engine.Engine, error) {
	if fresh || cfg.SavePath == "" {
		return engine.New(cfg, logger)
	}
	snap, err := save.Read(cfg.SavePath)
	if errors.Is(err, save.ErrNoSave) {
		return engine.New(cfg, logger)
	}
	if err != nil {
		return nil, err
	}
	return engine.Restore(cfg, snap, logger)
}
