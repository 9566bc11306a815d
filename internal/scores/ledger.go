// Package scores keeps the hall of fame: a bounded, score-ordered list of
// (name, score) entries persisted through a Saver.
package scores

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// DefaultCapacity is the number of entries kept when none is configured.
const DefaultCapacity = 10

// Entry is one line of the hall of fame.
type Entry struct {
	Name  string
	Score int
}

// String formats the entry as "name:score".
func (e Entry) String() string {
	return fmt.Sprintf("%s:%d", e.Name, e.Score)
}

// Saver persists the ledger. Load returns the stored entries in any order.
type Saver interface {
	Load() ([]Entry, error)
	Save(entries []Entry) error
}

// Options configures a Ledger.
type Options struct {
	Capacity int         // DefaultCapacity when zero
	Logger   *log.Logger // nil discards logs
}

// Ledger is the in-memory hall of fame. It is safe for concurrent use so
// that several sessions can share one ledger.
type Ledger struct {
	mu       sync.Mutex
	capacity int
	entries  []Entry // sorted by score, descending; ties in insertion order
	saver    Saver
	logger   *log.Logger
}

// NewLedger creates a ledger and loads its entries from saver. A nil saver
// keeps the ledger in memory only. Unreadable or corrupt storage yields an
// empty ledger.
func NewLedger(saver Saver, opts Options) *Ledger {
	capacity := opts.Capacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	l := &Ledger{capacity: capacity, saver: saver, logger: logger}
	if saver == nil {
		return l
	}

	loaded, err := saver.Load()
	if err != nil {
		logger.Warn("discarding unreadable scores", "err", err)
		return l
	}
	for _, e := range loaded {
		l.insert(e)
	}
	return l
}

// Capacity returns the maximum number of entries.
func (l *Ledger) Capacity() int {
	return l.capacity
}

// Qualifies reports whether score would enter the hall of fame: it does
// when the ledger has room or when score beats the lowest kept score.
func (l *Ledger) Qualifies(score int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.qualifies(score)
}

func (l *Ledger) qualifies(score int) bool {
	if len(l.entries) < l.capacity {
		return true
	}
	return score > l.entries[len(l.entries)-1].Score
}

// Add records a score and persists the ledger. It returns the 1-based rank
// of the new entry, or 0 when the score did not qualify. A new entry goes
// after existing entries with an equal score.
func (l *Ledger) Add(name string, score int) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.qualifies(score) {
		return 0, nil
	}
	rank := l.insert(Entry{Name: sanitizeName(name), Score: score})
	l.logger.Info("new high score", "name", name, "score", score, "rank", rank)

	if l.saver == nil {
		return rank, nil
	}
	if err := l.saver.Save(slices.Clone(l.entries)); err != nil {
		return rank, fmt.Errorf("scores: save: %w", err)
	}
	return rank, nil
}

// insert places e before the first strictly lower score and truncates the
// ledger to capacity. It returns e's 1-based rank, or 0 if it fell off.
func (l *Ledger) insert(e Entry) int {
	i := slices.IndexFunc(l.entries, func(x Entry) bool { return x.Score < e.Score })
	if i < 0 {
		i = len(l.entries)
	}
	l.entries = slices.Insert(l.entries, i, e)
	if len(l.entries) > l.capacity {
		l.entries = l.entries[:l.capacity]
	}
	if i >= l.capacity {
		return 0
	}
	return i + 1
}

// Entries returns a copy of the entries, best first.
func (l *Ledger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.entries)
}

// Lines returns the entries formatted as "name:score", best first.
func (l *Ledger) Lines() []string {
	entries := l.Entries()
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.String()
	}
	return lines
}

// sanitizeName strips characters the file format uses as separators.
func sanitizeName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case ',', '\n', '\r':
			return -1
		}
		return r
	}, name)
	return strings.TrimSpace(name)
}
