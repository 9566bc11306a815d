// Package wallbreaker implements the wallbreaker game: a ball bouncing among
// a paddle and a wall of bricks, driven by the collision World.
package wallbreaker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/wallbreaker/internal/collision"
)

// Cell characters of a level map.
//
//	' '        empty
//	'U'        unbreakable brick
//	'1'..'9'   breakable brick that takes that many hits
//	> 'P'      poisoned brick taking char - 'P' + 1 hits, so 'Q' takes 2
//	           and 'R' takes 3; 'U' is checked first
const (
	CellEmpty       = ' '
	CellUnbreakable = 'U'
	poisonBase      = 'P'
)

// Level grid errors. They are wrapped in a *LevelError.
var (
	ErrEmptyLevel      = errors.New("level has no rows")
	ErrRaggedRow       = errors.New("row is shorter than the first row")
	ErrUnknownCell     = errors.New("unknown cell character")
	ErrZeroDurability  = errors.New("breakable brick with zero hits")
	ErrNoScoringBricks = errors.New("level has no breakable bricks")
)

// LevelError reports where a level map is malformed. Row and Col are
// zero-based; Col is -1 for errors about a whole row or level.
type LevelError struct {
	Level string
	Row   int
	Col   int
	Err   error
}

func (e *LevelError) Error() string {
	switch {
	case e.Row < 0:
		return fmt.Sprintf("level %s: %v", e.Level, e.Err)
	case e.Col < 0:
		return fmt.Sprintf("level %s: row %d: %v", e.Level, e.Row+1, e.Err)
	default:
		return fmt.Sprintf("level %s: row %d, column %d: %v", e.Level, e.Row+1, e.Col+1, e.Err)
	}
}

func (e *LevelError) Unwrap() error {
	return e.Err
}

// Brick is one non-empty cell of a grid.
type Brick struct {
	Col, Row int
	Kind     collision.Kind
	Hits     int // remaining hits; 0 for unbreakable bricks
}

// Grid is a parsed level map.
type Grid struct {
	Name   string
	Cols   int
	Rows   int
	Bricks []Brick // in row-major order
}

// Scoring returns the number of bricks that must disappear to win.
func (g *Grid) Scoring() int {
	n := 0
	for _, b := range g.Bricks {
		if b.Kind.Scoring() {
			n++
		}
	}
	return n
}

// ParseGrid parses a level map. The first row fixes the grid width; a
// shorter row is an error, and characters past the width of a longer row
// are ignored.
func ParseGrid(name string, rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, &LevelError{Level: name, Row: -1, Col: -1, Err: ErrEmptyLevel}
	}

	grid := &Grid{Name: name, Rows: len(rows)}
	for r, line := range rows {
		line = strings.TrimRight(line, "\r\n")
		cells := []rune(line)
		if r == 0 {
			grid.Cols = len(cells)
			if grid.Cols == 0 {
				return nil, &LevelError{Level: name, Row: -1, Col: -1, Err: ErrEmptyLevel}
			}
		}
		if len(cells) < grid.Cols {
			return nil, &LevelError{Level: name, Row: r, Col: -1, Err: ErrRaggedRow}
		}

		for c := 0; c < grid.Cols; c++ {
			brick, ok, err := parseCell(cells[c])
			if err != nil {
				return nil, &LevelError{Level: name, Row: r, Col: c, Err: err}
			}
			if !ok {
				continue
			}
			brick.Col, brick.Row = c, r
			grid.Bricks = append(grid.Bricks, brick)
		}
	}

	if grid.Scoring() == 0 {
		return nil, &LevelError{Level: name, Row: -1, Col: -1, Err: ErrNoScoringBricks}
	}
	return grid, nil
}

// parseCell decodes one character. ok is false for an empty cell.
func parseCell(ch rune) (Brick, bool, error) {
	switch {
	case ch == CellEmpty:
		return Brick{}, false, nil
	case ch == CellUnbreakable:
		return Brick{Kind: collision.KindUnbreakable}, true, nil
	case ch == '0':
		return Brick{}, false, ErrZeroDurability
	case ch >= '1' && ch <= '9':
		return Brick{Kind: collision.KindBreakable, Hits: int(ch - '0')}, true, nil
	case ch > poisonBase:
		return Brick{Kind: collision.KindPoisoned, Hits: int(ch-poisonBase) + 1}, true, nil
	default:
		return Brick{}, false, fmt.Errorf("%w %q", ErrUnknownCell, ch)
	}
}
