// Package collision holds the physical world of a wallbreaker level: the
// body arena, the spatial index over static bodies and the collision engine
// that turns overlaps into bounce responses.
package collision

import (
	"fmt"
	"math"

	"github.com/vovakirdan/wallbreaker/internal/core"
)

// Handle identifies a body in a World's arena. Handles are assigned in
// creation order and never reused within a World.
type Handle int

// NoHandle is the zero value for "no body".
const NoHandle Handle = -1

// Kind tags the variant of a body.
type Kind int

const (
	KindUnbreakable Kind = iota // static, never disappears
	KindBreakable               // static, scores, must disappear to win
	KindPoisoned                // static, costs points, not required to win
	KindPaddle                  // moving, player controlled
	KindBall                    // moving
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindUnbreakable:
		return "unbreakable"
	case KindBreakable:
		return "breakable"
	case KindPoisoned:
		return "poisoned"
	case KindPaddle:
		return "paddle"
	case KindBall:
		return "ball"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Moving reports whether bodies of this kind have a velocity.
func (k Kind) Moving() bool {
	return k == KindPaddle || k == KindBall
}

// Scoring reports whether bodies of this kind must all disappear before the
// level is won.
func (k Kind) Scoring() bool {
	return k == KindBreakable
}

// Destructible reports whether bodies of this kind lose durability on bumps.
func (k Kind) Destructible() bool {
	return k == KindBreakable || k == KindPoisoned
}

// Body is one physical object of the world.
type Body struct {
	Kind Kind

	// Position is the top-left corner of the body in world units.
	Position core.Point

	// Shape is the body outline relative to Position.
	Shape core.Perimeter

	// Velocity is the displacement applied on the next move. Zero for
	// static bodies.
	Velocity core.Point

	// MaxSpeed caps each velocity component in magnitude. Zero means no cap.
	MaxSpeed float64

	// Durability is the number of bumps left for destructible bodies.
	Durability int

	// Colliding is true when the last collision check of this mover found
	// a collision. It drives the anti-tunneling heuristic.
	Colliding bool
}

// Perimeter returns the body outline at its current position.
func (b *Body) Perimeter() core.Perimeter {
	return b.Shape.Translate(b.Position)
}

// Pending returns the position the body will occupy after its next move.
func (b *Body) Pending() core.Point {
	if !b.Kind.Moving() {
		return b.Position
	}
	return b.Position.Add(b.Velocity)
}

// ClampSpeed limits each velocity component to MaxSpeed in magnitude.
func (b *Body) ClampSpeed() {
	if b.MaxSpeed <= 0 {
		return
	}
	b.Velocity.X = math.Copysign(math.Min(math.Abs(b.Velocity.X), b.MaxSpeed), b.Velocity.X)
	b.Velocity.Y = math.Copysign(math.Min(math.Abs(b.Velocity.Y), b.MaxSpeed), b.Velocity.Y)
}

// Move applies the velocity to the position.
func (b *Body) Move() {
	b.Position = b.Position.Add(b.Velocity)
}
