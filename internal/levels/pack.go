// Package levels provides level packs: ordered lists of brick maps read
// from embedded files or from a directory on disk.
package levels

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoLevels is returned when a pack source contains no level files.
var ErrNoLevels = errors.New("levels: pack has no levels")

// Level is one brick map. Each row is a line of the source file without its
// line terminator.
type Level struct {
	Name string
	Rows []string
}

// Pack is an ordered list of levels. Play cycles back to the first level
// after the last one.
type Pack struct {
	Name        string
	Description string
	Levels      []Level
}

// Len returns the number of levels.
func (p Pack) Len() int {
	return len(p.Levels)
}

// Level returns the level at index i, wrapping around the pack.
func (p Pack) Level(i int) Level {
	if len(p.Levels) == 0 {
		return Level{}
	}
	i %= len(p.Levels)
	if i < 0 {
		i += len(p.Levels)
	}
	return p.Levels[i]
}

// Validate checks that the pack has levels and that every level has rows.
// Cell-level validation belongs to the game, which knows the cell alphabet.
func (p Pack) Validate() error {
	if len(p.Levels) == 0 {
		return fmt.Errorf("%w: %s", ErrNoLevels, p.Name)
	}
	for _, l := range p.Levels {
		if len(l.Rows) == 0 {
			return fmt.Errorf("levels: %s/%s is empty", p.Name, l.Name)
		}
	}
	return nil
}

// SplitRows splits level file content into rows, dropping "\r\n" or "\n"
// terminators and a final empty line.
func SplitRows(data string) []string {
	data = strings.ReplaceAll(data, "\r\n", "\n")
	data = strings.TrimSuffix(data, "\n")
	if data == "" {
		return nil
	}
	return strings.Split(data, "\n")
}
