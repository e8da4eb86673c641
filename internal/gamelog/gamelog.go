// Package gamelog is the player-facing message log. Newest entries come
// first; a message identical to the newest one bumps its repeat counter.
package gamelog

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// Entry is one line of the log.
type Entry struct {
	Message string `yaml:"message"`
	Count   int    `yaml:"count"`
}

func (e Entry) String() string {
	if e.Count <= 1 {
		return e.Message
	}
	return fmt.Sprintf("%s (x%d)", e.Message, e.Count)
}

// MaxEntries bounds the log; older entries are dropped.
const MaxEntries = 100

// Log is append-only from the core's point of view.
type Log struct {
	entries      []Entry
	displayIndex int
	logger       *slog.Logger
}

// New returns an empty log that mirrors lines to logger at debug level.
// A nil logger disables mirroring.
func New(logger *slog.Logger) *Log {
	return &Log{logger: logger}
}

// Add appends msg, collapsing it into the newest entry when identical.
func (l *Log) Add(msg string) {
	if l.logger != nil {
		l.logger.Debug("game log", "message", msg)
	}
	if len(l.entries) > 0 && l.entries[0].Message == msg {
		l.entries[0].Count++
		return
	}
	l.entries = slices.Insert(l.entries, 0, Entry{Message: msg, Count: 1})
	l.trim()
}

// trim drops entries past MaxEntries and keeps the scroll position in range.
func (l *Log) trim() {
	if len(l.entries) > MaxEntries {
		l.entries = l.entries[:MaxEntries]
	}
	l.displayIndex = max(0, min(len(l.entries)-1, l.displayIndex))
}

// Addf formats and adds a message.
func (l *Log) Addf(format string, args ...any) {
	l.Add(fmt.Sprintf(format, args...))
}

// Entries returns the entries newest first.
func (l *Log) Entries() []Entry {
	return l.entries
}

// Restore replaces the log contents, used when loading a save.
func (l *Log) Restore(entries []Entry) {
	l.entries = slices.Clone(entries)
	l.displayIndex = 0
	l.trim()
}

// Visible returns up to n entries starting at the scroll position.
func (l *Log) Visible(n int) []Entry {
	if l.displayIndex >= len(l.entries) {
		return nil
	}
	end := min(len(l.entries), l.displayIndex+n)
	return l.entries[l.displayIndex:end]
}

// Scroll moves the display index by delta, clamped to the entry range.
func (l *Log) Scroll(delta int) {
	l.displayIndex = max(0, min(len(l.entries)-1, l.displayIndex+delta))
}

// DisplayIndex is the current scroll position.
func (l *Log) DisplayIndex() int {
	return l.displayIndex
}

// Contains reports whether any entry's message contains substr.
func (l *Log) Contains(substr string) bool {
	for _, e := range l.entries {
		if strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
