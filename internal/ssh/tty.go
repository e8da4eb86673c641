// Package ssh adapts gliderlabs SSH sessions into tcell screens so each
// remote player gets a private terminal onto their own world.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// Fallback size for clients that report a zero window.
const (
	defaultCols = 80
	defaultRows = 24
)

// SessionTty implements tcell.Tty on top of one SSH session channel.
type SessionTty struct {
	session gossh.Session
	winCh   <-chan gossh.Window

	mu       sync.Mutex
	window   gossh.Window
	onResize func()
	watching bool
}

// NewSessionTty wraps s. pty carries the initial window; winCh delivers
// later resizes and is closed by gliderlabs when the session ends.
func NewSessionTty(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *SessionTty {
	return &SessionTty{session: s, window: pty.Window, winCh: winCh}
}

func (t *SessionTty) Read(b []byte) (int, error)  { return t.session.Read(b) }
func (t *SessionTty) Write(b []byte) (int, error) { return t.session.Write(b) }

// Close is a no-op; the session handler closes the channel when it returns.
func (t *SessionTty) Close() error { return nil }

func (t *SessionTty) Start() error { return nil }
func (t *SessionTty) Stop() error  { return nil }
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the most recent client window size.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return windowSize(t.window), nil
}

func windowSize(w gossh.Window) tcell.WindowSize {
	ws := tcell.WindowSize{Width: w.Width, Height: w.Height}
	if ws.Width <= 0 || ws.Height <= 0 {
		ws.Width, ws.Height = defaultCols, defaultRows
	}
	return ws
}

// NotifyResize registers cb for window changes. The first call starts the
// goroutine that drains winCh; it exits when the session closes the channel.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onResize = cb
	start := !t.watching && t.winCh != nil
	t.watching = true
	t.mu.Unlock()

	if start {
		go t.watch()
	}
}

func (t *SessionTty) watch() {
	for win := range t.winCh {
		t.mu.Lock()
		t.window = win
		cb := t.onResize
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}
