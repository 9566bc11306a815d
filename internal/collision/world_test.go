package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/wallbreaker/internal/core"
)

// recorder collects bumps and world events. With destroy set it behaves
// like a brick: every strike costs one durability and a worn out body
// leaves the world.
type recorder struct {
	bumps   []Bump
	score   int
	wins    int
	destroy bool
}

func (r *recorder) Bumped(w *World, b Bump) {
	r.bumps = append(r.bumps, b)
	if !r.destroy || !b.Struck {
		return
	}
	body := w.Body(b.Target)
	if !body.Kind.Destructible() {
		return
	}
	body.Durability--
	w.AddScore(5)
	if body.Durability <= 0 {
		w.Unsubscribe(b.Target)
	}
}

func (r *recorder) AddScore(delta int) { r.score += delta }
func (r *recorder) Won()              { r.wins++ }

func (r *recorder) bumpsFor(h Handle) []Bump {
	var out []Bump
	for _, b := range r.bumps {
		if b.Target == h {
			out = append(out, b)
		}
	}
	return out
}

func newTestWorld(r *recorder) *World {
	return NewWorld(Config{Board: testBoard()}, r, r)
}

func brick(kind Kind, x, y float64, durability int) Body {
	return Body{
		Kind:       kind,
		Position:   core.Pt(x, y),
		Shape:      core.LocalRect(100, 20),
		Durability: durability,
	}
}

func ball(x, y, vx, vy float64) Body {
	return Body{
		Kind:     KindBall,
		Position: core.Pt(x, y),
		Shape:    core.LocalRect(10, 10),
		Velocity: core.Pt(vx, vy),
	}
}

func TestSubscribeTracksScoringBodies(t *testing.T) {
	r := &recorder{}
	w := newTestWorld(r)

	b1 := w.Add(brick(KindBreakable, 0, 50, 1))
	b2 := w.Add(brick(KindBreakable, 100, 50, 1))
	p := w.Add(brick(KindPoisoned, 200, 50, 1))
	u := w.Add(brick(KindUnbreakable, 300, 50, 0))
	m := w.Add(ball(0, 400, 1, 1))

	assert.Equal(t, 2, w.Remaining(), "only breakable bricks must disappear")
	assert.Equal(t, []Handle{m}, w.Movers())

	w.Unsubscribe(p)
	w.Unsubscribe(u)
	assert.Zero(t, r.wins)

	w.Unsubscribe(b1)
	assert.Zero(t, r.wins)
	w.Unsubscribe(b2)
	assert.Equal(t, 1, r.wins)
	assert.True(t, w.Won())

	// Idempotent, and the win never fires twice.
	w.Unsubscribe(b2)
	w.Unsubscribe(b1)
	assert.Equal(t, 1, r.wins)
	assert.Zero(t, w.Remaining())
	assert.False(t, w.Subscribed(b1))
}

func TestSubscribeTwiceIsNoop(t *testing.T) {
	w := newTestWorld(&recorder{})
	h := w.Add(brick(KindBreakable, 0, 50, 1))
	w.SubscribeStatic(h)
	assert.Equal(t, 1, w.Remaining())

	m := w.Add(ball(0, 400, 0, 0))
	w.SubscribeMoving(m)
	assert.Equal(t, []Handle{m}, w.Movers())
}

func TestQueriesOnUnknownBodiesPanic(t *testing.T) {
	w := newTestWorld(&recorder{})
	spawned := w.Spawn(ball(0, 400, 1, 1))

	assert.Panics(t, func() { w.CheckForCollision(spawned) })
	assert.Panics(t, func() { w.CheckForCollision(Handle(99)) })
	assert.Panics(t, func() { w.Perimeter(NoHandle) })

	w.SubscribeMoving(spawned)
	w.Unsubscribe(spawned)
	assert.Panics(t, func() { w.CollisionPerimeter(spawned) })
}

func TestQueryNeighborhoodIncludesMovers(t *testing.T) {
	w := newTestWorld(&recorder{})
	near := w.Add(brick(KindBreakable, 0, 50, 1))
	far := w.Add(brick(KindBreakable, 900, 630, 1))
	paddle := w.Add(Body{Kind: KindPaddle, Position: core.Pt(800, 700), Shape: core.LocalRect(150, 8)})
	m := w.Add(ball(20, 80, 1, 1))

	got := w.QueryNeighborhood(w.CollisionPerimeter(m))
	assert.Contains(t, got, near)
	assert.NotContains(t, got, far)
	assert.Contains(t, got, paddle)
	assert.Contains(t, got, m)
	assert.IsIncreasing(t, got)
}

func TestEachSkipsUnsubscribed(t *testing.T) {
	w := newTestWorld(&recorder{})
	a := w.Add(brick(KindBreakable, 0, 50, 1))
	b := w.Add(brick(KindBreakable, 100, 50, 1))
	w.Spawn(brick(KindBreakable, 200, 50, 1))
	w.Unsubscribe(a)

	var seen []Handle
	w.Each(func(h Handle, _ *Body) { seen = append(seen, h) })
	require.Equal(t, []Handle{b}, seen)
}

func TestAddScoreForwardsToListener(t *testing.T) {
	r := &recorder{}
	w := newTestWorld(r)
	w.AddScore(100)
	w.AddScore(-10)
	assert.Equal(t, 90, r.score)
}
