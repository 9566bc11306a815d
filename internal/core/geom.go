// Package core provides fundamental types shared by the wallbreaker packages.
// It has no terminal or audio dependencies so that game logic stays pure and
// testable.
package core

import "math"

// Point is a position or displacement in world units.
// World units are the virtual pixels of the configured playfield; the
// platform layer scales them to terminal cells.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale multiplies both components by f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Perimeter is an axis-aligned rectangle described by two corners.
// Y grows downwards, so TopLeft.Y <= BottomRight.Y for a valid perimeter.
type Perimeter struct {
	TopLeft     Point
	BottomRight Point
}

// RectAt returns the perimeter of a w x h rectangle whose top-left is at p.
func RectAt(p Point, w, h float64) Perimeter {
	return Perimeter{TopLeft: p, BottomRight: Point{X: p.X + w, Y: p.Y + h}}
}

// LocalRect returns a w x h perimeter anchored at the origin.
func LocalRect(w, h float64) Perimeter {
	return RectAt(Point{}, w, h)
}

// Left returns the x-coordinate of the left edge.
func (r Perimeter) Left() float64 { return r.TopLeft.X }

// Right returns the x-coordinate of the right edge.
func (r Perimeter) Right() float64 { return r.BottomRight.X }

// Top returns the y-coordinate of the top edge.
func (r Perimeter) Top() float64 { return r.TopLeft.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (r Perimeter) Bottom() float64 { return r.BottomRight.Y }

// Width returns the horizontal extent.
func (r Perimeter) Width() float64 { return r.BottomRight.X - r.TopLeft.X }

// Height returns the vertical extent.
func (r Perimeter) Height() float64 { return r.BottomRight.Y - r.TopLeft.Y }

// Valid reports whether both corners are finite and correctly ordered.
func (r Perimeter) Valid() bool {
	for _, v := range []float64{r.TopLeft.X, r.TopLeft.Y, r.BottomRight.X, r.BottomRight.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return r.TopLeft.X <= r.BottomRight.X && r.TopLeft.Y <= r.BottomRight.Y
}

// Translate moves the perimeter by the given offset.
func (r Perimeter) Translate(by Point) Perimeter {
	return Perimeter{TopLeft: r.TopLeft.Add(by), BottomRight: r.BottomRight.Add(by)}
}

// Center returns the midpoint of the rectangle.
func (r Perimeter) Center() Point {
	return Point{X: (r.TopLeft.X + r.BottomRight.X) / 2, Y: (r.TopLeft.Y + r.BottomRight.Y) / 2}
}

// Corners returns the four corners: top-left, top-right, bottom-left, bottom-right.
func (r Perimeter) Corners() [4]Point {
	return [4]Point{
		r.TopLeft,
		{X: r.BottomRight.X, Y: r.TopLeft.Y},
		{X: r.TopLeft.X, Y: r.BottomRight.Y},
		r.BottomRight,
	}
}

// Intersects reports whether the two rectangles overlap on both axes.
// Intervals are closed: rectangles sharing only an edge or a corner intersect.
func (r Perimeter) Intersects(other Perimeter) bool {
	if r.Right() < other.Left() || other.Right() < r.Left() {
		return false
	}
	if r.Bottom() < other.Top() || other.Bottom() < r.Top() {
		return false
	}
	return true
}

// Contains reports whether p lies inside or on the border of r.
func (r Perimeter) Contains(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Top() && p.Y <= r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
