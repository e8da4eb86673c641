package ssh

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// ErrNoPty is returned for sessions opened without a terminal.
var ErrNoPty = errors.New("session has no pty")

// DefaultTerm is used when the client's TERM is missing or not allowed.
const DefaultTerm = "xterm-256color"

// allowedTerms lists the terminal types tcell ships descriptions for. A
// client-supplied TERM is only ever looked up from this set.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"xterm-color":           true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"rxvt-unicode-256color": true,
	"linux":                 true,
	"vt100":                 true,
	"vt102":                 true,
	"ansi":                  true,
}

// TermFor picks the terminal type for a session from its pty request,
// then its environment, falling back to DefaultTerm.
func TermFor(pty gossh.Pty, environ []string) string {
	if allowedTerms[pty.Term] {
		return pty.Term
	}
	for _, env := range environ {
		if name, ok := strings.CutPrefix(env, "TERM="); ok && allowedTerms[name] {
			return name
		}
	}
	return DefaultTerm
}

// tcell resolves the terminal description through the TERM variable of
// this process, so concurrent screen creation is serialised.
var termMu sync.Mutex

// NewScreen builds and initialises a tcell screen for s. The caller must
// call Fini on the returned screen.
func NewScreen(s gossh.Session) (tcell.Screen, error) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, ErrNoPty
	}
	tty := NewSessionTty(s, pty, winCh)

	termMu.Lock()
	prev, had := os.LookupEnv("TERM")
	_ = os.Setenv("TERM", TermFor(pty, s.Environ()))
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	if had {
		_ = os.Setenv("TERM", prev)
	} else {
		_ = os.Unsetenv("TERM")
	}
	termMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initialising screen: %w", err)
	}
	return screen, nil
}
