package collision

import "fmt"

// AxisResponse is the bounce along one velocity axis.
type AxisResponse struct {
	// Hit is true when the mover must invert this velocity component.
	Hit bool

	// Depth is the signed penetration depth on the axis. For the horizontal
	// axis it is positive when the mover struck the right face of the other
	// body. For the vertical axis it is positive when the mover struck the
	// top face.
	Depth float64
}

// Response tells a mover how to bounce. Either axis, both or neither may
// be set.
type Response struct {
	Horizontal AxisResponse // invert the horizontal velocity component
	Vertical   AxisResponse // invert the vertical velocity component
}

// Empty reports whether no axis is set.
func (r Response) Empty() bool {
	return !r.Horizontal.Hit && !r.Vertical.Hit
}

// Merge returns the union of both responses. When both set an axis the
// depth of r wins.
func (r Response) Merge(o Response) Response {
	if !r.Horizontal.Hit {
		r.Horizontal = o.Horizontal
	}
	if !r.Vertical.Hit {
		r.Vertical = o.Vertical
	}
	return r
}

func (r Response) String() string {
	switch {
	case r.Horizontal.Hit && r.Vertical.Hit:
		return fmt.Sprintf("both(%.2f, %.2f)", r.Horizontal.Depth, r.Vertical.Depth)
	case r.Horizontal.Hit:
		return fmt.Sprintf("horizontal(%.2f)", r.Horizontal.Depth)
	case r.Vertical.Hit:
		return fmt.Sprintf("vertical(%.2f)", r.Vertical.Depth)
	default:
		return "none"
	}
}

// HorizontalResponse reports whether r inverts the horizontal velocity
// component, and the signed depth it carries.
func HorizontalResponse(r Response) (bool, float64) {
	return r.Horizontal.Hit, r.Horizontal.Depth
}

// VerticalResponse reports whether r inverts the vertical velocity
// component, and the signed depth it carries.
func VerticalResponse(r Response) (bool, float64) {
	return r.Vertical.Hit, r.Vertical.Depth
}
