// goblin-warparty-server hosts one private world per SSH session. Build:
//
//	go build -o goblin-warparty-server ./cmd/server
//
// Usage:
//
//	./goblin-warparty-server [-config server.yaml] [-port 2222]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"
	"unicode"
	"unicode/utf8"

	"goblin-warparty/internal/config"
	"goblin-warparty/internal/engine"
	"goblin-warparty/internal/game"
	internalssh "goblin-warparty/internal/ssh"

	gossh "github.com/gliderlabs/ssh"
	"github.com/oklog/ulid/v2"
	xssh "golang.org/x/crypto/ssh"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

const shutdownTimeout = 5 * time.Second

func main() {
	configPath := flag.String("config", "server.yaml", "Path to the YAML server config (defaults apply if absent)")
	port := flag.Int("port", 0, "Override the configured SSH port")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *configPath, *port); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string, port int) error {
	cfg, err := config.LoadServer(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if port != 0 {
		cfg.Port = port
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Game.Level()}))
	slog.SetDefault(logger)

	signer, err := loadOrCreateHostKey(cfg.HostKeyPath, logger)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	h := newHost(gctx, cfg, logger)
	srv := &gossh.Server{
		Addr:        net.JoinHostPort(cfg.BindAddress, strconv.Itoa(cfg.Port)),
		Handler:     h.handle,
		PtyCallback: func(gossh.Context, gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{signer},
	}

	g.Go(func() error {
		logger.Info("listening", "addr", srv.Addr, "max_sessions", cfg.MaxSessions)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
			return fmt.Errorf("ssh server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			return errors.Join(fmt.Errorf("shutdown: %w", err), srv.Close())
		}
		return nil
	})
	return g.Wait()
}

// host runs one engine per SSH session, up to the configured limit.
type host struct {
	ctx    context.Context
	cfg    config.Server
	logger *slog.Logger
	slots  *semaphore.Weighted
}

func newHost(ctx context.Context, cfg config.Server, logger *slog.Logger) *host {
	return &host{
		ctx:    ctx,
		cfg:    cfg,
		logger: logger,
		slots:  semaphore.NewWeighted(int64(max(1, cfg.MaxSessions))),
	}
}

// sessionConfig is the per-session world config. Remote worlds are never
// written to the server's save file.
func (h *host) sessionConfig() config.Game {
	cfg := h.cfg.Game
	cfg.SavePath = ""
	return cfg
}

// handle is the gliderlabs handler for one connection. It blocks for the
// lifetime of the game so the session stays open.
func (h *host) handle(s gossh.Session) {
	log := h.logger.With(
		"session", ulid.Make().String(),
		"user", sanitizeName(s.User()),
		"remote", s.RemoteAddr().String(),
	)
	if !h.slots.TryAcquire(1) {
		fmt.Fprintln(s, "The war party is full. Try again later.")
		log.Warn("session rejected", "reason", "server full")
		return
	}
	defer h.slots.Release(1)

	screen, err := internalssh.NewScreen(s)
	if errors.Is(err, internalssh.ErrNoPty) {
		fmt.Fprintf(s, "This game needs a terminal. Connect with: ssh -t -p %d <host>\n", h.cfg.Port)
		return
	}
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		log.Error("screen setup failed", "err", err)
		return
	}
	defer screen.Fini()

	eng, err := engine.New(h.sessionConfig(), log)
	if err != nil {
		log.Error("world creation failed", "err", err)
		return
	}

	ctx, cancel := context.WithCancel(h.ctx)
	defer cancel()
	stop := context.AfterFunc(s.Context(), cancel)
	defer stop()

	log.Info("session started")
	if err := game.New(screen, eng, log).Run(ctx); err != nil {
		log.Error("session failed", "err", err)
	}
	log.Info("session ended", "player_dead", eng.PlayerDead(), "time_score", eng.Res.Clock.TimeScore)
}

// maxNameBytes bounds user names copied into logs.
const maxNameBytes = 16

// sanitizeName strips control characters from a client-supplied name and
// truncates it to maxNameBytes without splitting a rune.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsControl(r) || r == utf8.RuneError {
			continue
		}
		if b.Len()+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, logger *slog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		signer, err := xssh.ParsePrivateKey(data)
		if err == nil {
			logger.Info("loaded host key", "path", path)
			return signer, nil
		}
		logger.Warn("host key unreadable, generating a new one", "path", path, "err", err)
	}

	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generating host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("creating signer: %w", err)
	}

	block, err := xssh.MarshalPrivateKey(key, "goblin-warparty server")
	if err != nil {
		return nil, fmt.Errorf("encoding host key: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		logger.Warn("host key not persisted", "path", path, "err", err)
		return signer, nil
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
		logger.Warn("host key not persisted", "path", path, "err", err)
		return signer, nil
	}
	logger.Info("generated host key", "path", path)
	return signer, nil
}
