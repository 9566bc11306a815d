package core

import "testing"

func TestPerimeterIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Perimeter
		expected bool
	}{
		{
			name:     "overlapping",
			a:        RectAt(Pt(0, 0), 10, 10),
			b:        RectAt(Pt(5, 5), 10, 10),
			expected: true,
		},
		{
			name:     "disjoint horizontal",
			a:        RectAt(Pt(0, 0), 10, 10),
			b:        RectAt(Pt(15, 0), 10, 10),
			expected: false,
		},
		{
			name:     "disjoint vertical",
			a:        RectAt(Pt(0, 0), 10, 10),
			b:        RectAt(Pt(0, 15), 10, 10),
			expected: false,
		},
		{
			name:     "shared vertical edge",
			a:        RectAt(Pt(0, 0), 10, 10),
			b:        RectAt(Pt(10, 0), 10, 10),
			expected: true,
		},
		{
			name:     "shared horizontal edge",
			a:        RectAt(Pt(0, 0), 10, 10),
			b:        RectAt(Pt(0, 10), 10, 10),
			expected: true,
		},
		{
			name:     "shared corner",
			a:        RectAt(Pt(0, 0), 10, 10),
			b:        RectAt(Pt(10, 10), 10, 10),
			expected: true,
		},
		{
			name:     "just apart",
			a:        RectAt(Pt(0, 0), 10, 10),
			b:        RectAt(Pt(10.001, 0), 10, 10),
			expected: false,
		},
		{
			name:     "contained",
			a:        RectAt(Pt(0, 0), 20, 20),
			b:        RectAt(Pt(5, 5), 5, 5),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() not symmetric: reversed = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestPerimeterTranslate(t *testing.T) {
	r := LocalRect(10, 4).Translate(Pt(3, 7))

	if r.Left() != 3 || r.Top() != 7 || r.Right() != 13 || r.Bottom() != 11 {
		t.Errorf("Translate() = %+v", r)
	}
	if r.Width() != 10 || r.Height() != 4 {
		t.Errorf("size = %vx%v, expected 10x4", r.Width(), r.Height())
	}
	if c := r.Center(); c != Pt(8, 9) {
		t.Errorf("Center() = %+v, expected (8, 9)", c)
	}
}

func TestPerimeterCorners(t *testing.T) {
	c := RectAt(Pt(1, 2), 3, 4).Corners()
	expected := [4]Point{Pt(1, 2), Pt(4, 2), Pt(1, 6), Pt(4, 6)}
	if c != expected {
		t.Errorf("Corners() = %v, expected %v", c, expected)
	}
}

func TestPerimeterValid(t *testing.T) {
	if !RectAt(Pt(0, 0), 0, 0).Valid() {
		t.Error("zero-size rectangle should be valid")
	}
	inverted := Perimeter{TopLeft: Pt(5, 5), BottomRight: Pt(0, 0)}
	if inverted.Valid() {
		t.Error("inverted rectangle should be invalid")
	}
}

func TestPerimeterContains(t *testing.T) {
	r := RectAt(Pt(0, 0), 10, 10)
	if !r.Contains(Pt(10, 10)) {
		t.Error("border point should be contained")
	}
	if r.Contains(Pt(10.5, 3)) {
		t.Error("outside point should not be contained")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
	if got := ClampF(2.5, 0, 1); got != 1 {
		t.Errorf("ClampF(2.5, 0, 1) = %v, expected 1", got)
	}
}
