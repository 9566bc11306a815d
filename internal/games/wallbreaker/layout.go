package wallbreaker

import (
	"math"

	"github.com/vovakirdan/wallbreaker/internal/collision"
	"github.com/vovakirdan/wallbreaker/internal/config"
	"github.com/vovakirdan/wallbreaker/internal/core"
)

// Layout maps a grid onto the playfield. All values are world units.
type Layout struct {
	Width, Height float64 // whole playfield
	Banner        float64 // strip at the top kept for the score banner

	Cols, Rows     int
	BrickW, BrickH float64
}

// NewLayout splits the brick area of the screen evenly among the grid cells.
func NewLayout(screen config.ScreenConfig, g *Grid) Layout {
	field := screen.Height - screen.BannerHeight
	return Layout{
		Width:  screen.Width,
		Height: screen.Height,
		Banner: screen.BannerHeight,
		Cols:   g.Cols,
		Rows:   g.Rows,
		BrickW: screen.Width / float64(g.Cols),
		BrickH: screen.BrickArea * field / float64(g.Rows),
	}
}

// BrickAt returns the top-left corner of the brick in cell (col, row).
func (l Layout) BrickAt(col, row int) core.Point {
	return core.Pt(float64(col)*l.BrickW, l.Banner+float64(row)*l.BrickH)
}

// BrickShape returns the local outline shared by every brick.
func (l Layout) BrickShape() core.Perimeter {
	return core.LocalRect(l.BrickW, l.BrickH)
}

// Board returns the spatial index grid: one cell per brick, extended down
// to the bottom of the screen so the paddle area is covered too.
func (l Layout) Board() collision.Board {
	rows := l.Rows
	if l.BrickH > 0 {
		rows = int(math.Ceil((l.Height - l.Banner) / l.BrickH))
	}
	return collision.Board{
		Origin: core.Pt(0, l.Banner),
		CellW:  l.BrickW,
		CellH:  l.BrickH,
		Cols:   l.Cols,
		Rows:   max(rows, l.Rows),
	}
}

// MaxBallSpeed caps the ball so one tick never moves it further than a
// fraction of the smallest brick side.
func (l Layout) MaxBallSpeed(divisor float64) float64 {
	if divisor <= 0 {
		return 0
	}
	return math.Max(math.Min(l.BrickW, l.BrickH)/divisor, 1)
}
