package collision

import (
	"math"

	"github.com/vovakirdan/wallbreaker/internal/core"
)

// tunnelSteps is how many half-velocity steps are probed ahead of a mover
// that was already colliding on the previous check.
const tunnelSteps = 5

// contact holds the four penetration depths between a mover and one target.
type contact struct {
	target Handle
	area   core.Perimeter
	left   float64 // mover's left edge inside the target's right face
	right  float64 // mover's right edge inside the target's left face
	top    float64 // mover's bottom edge inside the target's top face
	bottom float64 // mover's top edge inside the target's bottom face
}

func penetration(mover, target core.Perimeter) contact {
	return contact{
		area:   target,
		left:   target.Right() - mover.Left(),
		right:  mover.Right() - target.Left(),
		top:    mover.Bottom() - target.Top(),
		bottom: target.Bottom() - mover.Top(),
	}
}

func (c contact) xDepth() float64 {
	if c.left <= c.right {
		return c.left
	}
	return -c.right
}

func (c contact) yDepth() float64 {
	if c.top <= c.bottom {
		return c.top
	}
	return -c.bottom
}

// classify picks the bounce axis for a single contact: the axis with the
// shallower penetration. Equal depths are a corner hit, resolved by trying
// which velocity flip takes the mover out of the target.
func classify(c contact, mover core.Perimeter, velocity core.Point) Response {
	h := math.Min(c.left, c.right)
	v := math.Min(c.top, c.bottom)
	switch {
	case h < v:
		return Response{Horizontal: AxisResponse{Hit: true, Depth: c.xDepth()}}
	case v < h:
		return Response{Vertical: AxisResponse{Hit: true, Depth: c.yDepth()}}
	}

	current := mover.Translate(velocity.Scale(-1))
	flips := [...]struct{ h, v bool }{{true, false}, {false, true}, {true, true}}
	for _, f := range flips {
		step := velocity
		if f.h {
			step.X = -step.X
		}
		if f.v {
			step.Y = -step.Y
		}
		if !current.Translate(step).Intersects(c.area) {
			return Response{
				Horizontal: AxisResponse{Hit: f.h, Depth: c.xDepth()},
				Vertical:   AxisResponse{Hit: f.v, Depth: c.yDepth()},
			}
		}
	}
	return Response{
		Horizontal: AxisResponse{Hit: true, Depth: c.xDepth()},
		Vertical:   AxisResponse{Hit: true, Depth: c.yDepth()},
	}
}

// narrow tests a mover against one candidate. A mover that was colliding on
// its previous check ignores targets it would leave within a few
// half-steps along its velocity, so it does not bounce twice off the same
// face.
func (w *World) narrow(e *entry, mover core.Perimeter, target Handle) (contact, bool) {
	area := w.CollisionPerimeter(target)
	if !mover.Intersects(area) {
		return contact{}, false
	}
	if e.body.Colliding {
		for i := 1; i <= tunnelSteps; i++ {
			ahead := mover.Translate(e.body.Velocity.Scale(float64(i) / 2))
			if !ahead.Intersects(area) {
				return contact{}, false
			}
		}
	}
	c := penetration(mover, area)
	c.target = target
	return c, true
}

// aggregate combines the contacts of a mover that overlaps several bodies
// at once. An axis whose faces point in opposite directions across the
// contacts means the mover straddles a seam between flush bodies, so that
// axis is cancelled. If nothing survives, the other axis of the primary
// contact is used instead.
func aggregate(contacts []contact, mover core.Perimeter, velocity core.Point) Response {
	primary := classify(contacts[0], mover, velocity)
	union := primary
	var posX, negX, posY, negY bool
	for i, c := range contacts {
		if i > 0 {
			union = union.Merge(classify(c, mover, velocity))
		}
		if math.Signbit(c.xDepth()) {
			negX = true
		} else {
			posX = true
		}
		if math.Signbit(c.yDepth()) {
			negY = true
		} else {
			posY = true
		}
	}

	hCancel := posX && negX
	vCancel := posY && negY
	out := union
	if hCancel {
		out.Horizontal = AxisResponse{}
	}
	if vCancel {
		out.Vertical = AxisResponse{}
	}
	if !out.Empty() {
		return out
	}

	switch {
	case hCancel && !vCancel:
		out.Vertical = AxisResponse{Hit: true, Depth: contacts[0].yDepth()}
	case vCancel && !hCancel:
		out.Horizontal = AxisResponse{Hit: true, Depth: contacts[0].xDepth()}
	default:
		out = primary
	}
	return out
}

// check runs the broad and narrow phases for one mover and updates its
// Colliding flag. It returns the response and the primary struck body.
func (w *World) check(h Handle) (Response, Handle, bool) {
	e := w.mustSubscribed(h)
	mover := e.shape.Translate(e.body.Pending())

	var contacts []contact
	for _, other := range w.QueryNeighborhood(mover) {
		if other == h {
			continue
		}
		if c, ok := w.narrow(e, mover, other); ok {
			contacts = append(contacts, c)
		}
	}
	if len(contacts) == 0 {
		e.body.Colliding = false
		return Response{}, NoHandle, false
	}

	var resp Response
	if len(contacts) == 1 {
		resp = classify(contacts[0], mover, e.body.Velocity)
	} else {
		resp = aggregate(contacts, mover, e.body.Velocity)
	}
	e.body.Colliding = true

	target := contacts[0].target
	w.logger.Debug("collision",
		"mover", h, "kind", e.body.Kind,
		"target", target, "target_kind", w.bodies[target].body.Kind,
		"contacts", len(contacts), "response", resp)
	return resp, target, true
}

// CheckForCollision tests the subscribed mover h against its neighborhood
// at its pending position. On a collision the struck body is bumped and the
// mover's response is returned; the mover itself is not notified. It panics
// when h is not subscribed.
func (w *World) CheckForCollision(h Handle) (Response, bool) {
	resp, target, ok := w.check(h)
	if !ok {
		return Response{}, false
	}
	w.dispatch(Bump{Target: target, Other: h, Response: resp, Struck: true})
	return resp, true
}

// InformAboutToMove checks every mover, in handle order, against the state
// before anyone moves. Struck bodies are bumped as their collision is
// found. Movers receive their own bump after all checks, and bodies
// unsubscribed along the way leave the registry only at the end, so every
// mover sees the same snapshot.
func (w *World) InformAboutToMove() {
	w.batching = true
	var hits []Bump
	for _, h := range w.Movers() {
		if !w.Subscribed(h) {
			continue
		}
		resp, target, ok := w.check(h)
		if !ok {
			continue
		}
		w.dispatch(Bump{Target: target, Other: h, Response: resp, Struck: true})
		hits = append(hits, Bump{Target: h, Other: target, Response: resp})
	}
	for _, b := range hits {
		w.dispatch(b)
	}
	w.batching = false
	w.flushLeaving()
}
