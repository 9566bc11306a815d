package collision

import (
	"math"
	"slices"

	"github.com/vovakirdan/wallbreaker/internal/core"
)

// DefaultQueryRadius is the neighborhood radius, in cells, used when a
// World is created without an explicit radius.
const DefaultQueryRadius = 3

// Board describes the grid laid over the playfield. Cell (0, 0) has its
// top-left corner at Origin. Positions above or left of Origin, or past the
// last row or column, belong to no cell.
type Board struct {
	Origin     core.Point
	CellW      float64
	CellH      float64
	Cols, Rows int
}

// Valid reports whether the board has a positive cell size and extent.
func (b Board) Valid() bool {
	return b.CellW > 0 && b.CellH > 0 && b.Cols > 0 && b.Rows > 0
}

// Cell is a grid coordinate.
type Cell struct {
	Col, Row int
}

// SpatialIndex buckets static bodies by grid cell so that collision queries
// touch only nearby candidates.
type SpatialIndex struct {
	board   Board
	buckets map[Cell][]Handle
	cells   map[Handle]Cell
}

// NewSpatialIndex creates an empty index over board.
func NewSpatialIndex(board Board) *SpatialIndex {
	return &SpatialIndex{
		board:   board,
		buckets: make(map[Cell][]Handle),
		cells:   make(map[Handle]Cell),
	}
}

// Board returns the grid the index was built over.
func (ix *SpatialIndex) Board() Board {
	return ix.board
}

// CellAt maps a world position to its cell. It returns false for positions
// outside the board, including the banner strip above Origin.
func (ix *SpatialIndex) CellAt(p core.Point) (Cell, bool) {
	b := ix.board
	if !b.Valid() || p.X < b.Origin.X || p.Y < b.Origin.Y {
		return Cell{}, false
	}
	col := int(math.Floor((p.X - b.Origin.X) / b.CellW))
	row := int(math.Floor((p.Y - b.Origin.Y) / b.CellH))
	if col >= b.Cols || row >= b.Rows {
		return Cell{}, false
	}
	return Cell{Col: col, Row: row}, true
}

// nearestCell maps any finite position to the closest cell on the board.
func (ix *SpatialIndex) nearestCell(p core.Point) Cell {
	b := ix.board
	col := math.Floor((p.X - b.Origin.X) / b.CellW)
	row := math.Floor((p.Y - b.Origin.Y) / b.CellH)
	return Cell{
		Col: int(core.ClampF(col, 0, float64(b.Cols-1))),
		Row: int(core.ClampF(row, 0, float64(b.Rows-1))),
	}
}

// Insert buckets h at the cell containing p. A body already present is
// moved. Insert returns false, leaving h unindexed, when p is off the board.
func (ix *SpatialIndex) Insert(h Handle, p core.Point) bool {
	cell, ok := ix.CellAt(p)
	if !ok {
		return false
	}
	ix.Remove(h)
	ix.buckets[cell] = append(ix.buckets[cell], h)
	ix.cells[h] = cell
	return true
}

// Remove drops h from the index. Removing an unindexed handle is a no-op.
func (ix *SpatialIndex) Remove(h Handle) {
	cell, ok := ix.cells[h]
	if !ok {
		return
	}
	delete(ix.cells, h)
	bucket := ix.buckets[cell]
	if i := slices.Index(bucket, h); i >= 0 {
		bucket = slices.Delete(bucket, i, i+1)
	}
	if len(bucket) == 0 {
		delete(ix.buckets, cell)
		return
	}
	ix.buckets[cell] = bucket
}

// Contains reports whether h is indexed.
func (ix *SpatialIndex) Contains(h Handle) bool {
	_, ok := ix.cells[h]
	return ok
}

// Len returns the number of indexed bodies.
func (ix *SpatialIndex) Len() int {
	return len(ix.cells)
}

// Query returns the indexed bodies whose cell lies within radius cells of
// any cell touched by area. Corners that fall off the board are clamped to
// the nearest edge cell first. The result is sorted by handle.
func (ix *SpatialIndex) Query(area core.Perimeter, radius int) []Handle {
	if !ix.board.Valid() || !area.Valid() || len(ix.cells) == 0 {
		return nil
	}
	if radius < 0 {
		radius = 0
	}

	lo := ix.nearestCell(area.TopLeft)
	hi := ix.nearestCell(area.BottomRight)
	minCol := core.Clamp(lo.Col-radius, 0, ix.board.Cols-1)
	maxCol := core.Clamp(hi.Col+radius, 0, ix.board.Cols-1)
	minRow := core.Clamp(lo.Row-radius, 0, ix.board.Rows-1)
	maxRow := core.Clamp(hi.Row+radius, 0, ix.board.Rows-1)

	var found []Handle
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			found = append(found, ix.buckets[Cell{Col: col, Row: row}]...)
		}
	}
	slices.Sort(found)
	return found
}
