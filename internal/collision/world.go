package collision

import (
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wallbreaker/internal/core"
)

// Bump is delivered to a Bumper whenever a body takes part in a collision.
type Bump struct {
	// Target is the body receiving the notification.
	Target Handle

	// Other is the body Target collided with.
	Other Handle

	// Response is the bounce computed for the mover of the pair.
	Response Response

	// Struck is true when Target was hit by the mover Other, and false when
	// Target is the mover itself.
	Struck bool
}

// Bumper reacts to bumps. Implementations usually dispatch on the kind of
// b.Target and may unsubscribe bodies, add score or play sounds.
type Bumper interface {
	Bumped(w *World, b Bump)
}

// Listener receives world-level events.
type Listener interface {
	// AddScore applies a score delta, positive or negative.
	AddScore(delta int)

	// Won is called once, when the last scoring body disappears.
	Won()
}

// Config configures a World.
type Config struct {
	Board       Board
	QueryRadius int         // neighborhood radius in cells, DefaultQueryRadius when zero
	Logger      *log.Logger // nil discards logs
}

type entry struct {
	body       Body
	shape      core.Perimeter // cached at subscription
	subscribed bool
	leaving    bool // unsubscribed during a batch, removed once it ends
}

// World owns every body of a level and the registry of which of them take
// part in collisions.
type World struct {
	radius   int
	logger   *log.Logger
	bumper   Bumper
	listener Listener

	bodies        []*entry
	index         *SpatialIndex
	movers        []Handle // sorted
	mustDisappear map[Handle]struct{}
	won           bool

	batching bool
	leaving  []Handle
}

// NewWorld creates an empty world. bumper and listener may be nil.
func NewWorld(cfg Config, bumper Bumper, listener Listener) *World {
	radius := cfg.QueryRadius
	if radius <= 0 {
		radius = DefaultQueryRadius
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &World{
		radius:        radius,
		logger:        logger,
		bumper:        bumper,
		listener:      listener,
		index:         NewSpatialIndex(cfg.Board),
		mustDisappear: make(map[Handle]struct{}),
	}
}

// Spawn adds b to the arena without subscribing it.
func (w *World) Spawn(b Body) Handle {
	h := Handle(len(w.bodies))
	w.bodies = append(w.bodies, &entry{body: b})
	return h
}

// Add spawns b and subscribes it according to its kind.
func (w *World) Add(b Body) Handle {
	h := w.Spawn(b)
	if b.Kind.Moving() {
		w.SubscribeMoving(h)
	} else {
		w.SubscribeStatic(h)
	}
	return h
}

// Body returns the body behind h, or nil for an unknown handle. The pointer
// stays valid for the lifetime of the World.
func (w *World) Body(h Handle) *Body {
	e := w.lookup(h)
	if e == nil {
		return nil
	}
	return &e.body
}

func (w *World) lookup(h Handle) *entry {
	if h < 0 || int(h) >= len(w.bodies) {
		return nil
	}
	return w.bodies[h]
}

// mustSubscribed returns the entry of a subscribed body. Asking the engine
// about a body it does not know is a programming error.
func (w *World) mustSubscribed(h Handle) *entry {
	e := w.lookup(h)
	if e == nil || !e.subscribed {
		panic(fmt.Sprintf("collision: body %d is not subscribed", h))
	}
	return e
}

// SubscribeStatic registers a static body: its shape is cached, it is
// indexed at its center and, when its kind scores, it joins the set of
// bodies that must disappear. Subscribing twice is a no-op.
func (w *World) SubscribeStatic(h Handle) {
	e := w.lookup(h)
	if e == nil || e.subscribed {
		return
	}
	e.subscribed = true
	e.shape = e.body.Shape

	center := e.shape.Translate(e.body.Position).Center()
	if !w.index.Insert(h, center) {
		w.logger.Warn("static body outside the board", "handle", h, "kind", e.body.Kind, "x", center.X, "y", center.Y)
	}
	if e.body.Kind.Scoring() {
		w.mustDisappear[h] = struct{}{}
	}
}

// SubscribeMoving registers a moving body. Movers are not indexed: every
// collision query considers all of them.
func (w *World) SubscribeMoving(h Handle) {
	e := w.lookup(h)
	if e == nil || e.subscribed {
		return
	}
	e.subscribed = true
	e.shape = e.body.Shape
	if i, found := slices.BinarySearch(w.movers, h); !found {
		w.movers = slices.Insert(w.movers, i, h)
	}
}

// Unsubscribe removes h from collision tracking. It is idempotent. When the
// last body that must disappear goes, the listener's Won fires, at most once
// per World. Inside InformAboutToMove the removal is deferred until every
// mover has been checked.
func (w *World) Unsubscribe(h Handle) {
	e := w.lookup(h)
	if e == nil || !e.subscribed || e.leaving {
		return
	}
	if w.batching {
		e.leaving = true
		w.leaving = append(w.leaving, h)
		return
	}
	w.remove(h)
}

func (w *World) remove(h Handle) {
	e := w.bodies[h]
	e.subscribed = false
	e.leaving = false
	w.index.Remove(h)
	if i, found := slices.BinarySearch(w.movers, h); found {
		w.movers = slices.Delete(w.movers, i, i+1)
	}

	if _, ok := w.mustDisappear[h]; !ok {
		return
	}
	delete(w.mustDisappear, h)
	if len(w.mustDisappear) == 0 && !w.won {
		w.won = true
		w.logger.Info("all scoring bricks cleared")
		if w.listener != nil {
			w.listener.Won()
		}
	}
}

func (w *World) flushLeaving() {
	leaving := w.leaving
	w.leaving = nil
	for _, h := range leaving {
		w.remove(h)
	}
}

// Subscribed reports whether h currently takes part in collisions.
func (w *World) Subscribed(h Handle) bool {
	e := w.lookup(h)
	return e != nil && e.subscribed && !e.leaving
}

// Remaining returns how many scoring bodies still have to disappear.
func (w *World) Remaining() int {
	return len(w.mustDisappear)
}

// Won reports whether the win has fired.
func (w *World) Won() bool {
	return w.won
}

// Movers returns the subscribed moving bodies in handle order.
func (w *World) Movers() []Handle {
	return slices.Clone(w.movers)
}

// Each calls fn for every subscribed body in handle order.
func (w *World) Each(fn func(h Handle, b *Body)) {
	for i, e := range w.bodies {
		if e.subscribed && !e.leaving {
			fn(Handle(i), &e.body)
		}
	}
}

// AddScore forwards a score delta to the listener.
func (w *World) AddScore(delta int) {
	if w.listener != nil && delta != 0 {
		w.listener.AddScore(delta)
	}
}

// Perimeter returns the outline of a subscribed body at its current position.
func (w *World) Perimeter(h Handle) core.Perimeter {
	e := w.mustSubscribed(h)
	return e.shape.Translate(e.body.Position)
}

// CollisionPerimeter returns the outline of a subscribed body at the
// position it will occupy after its next move, using the shape cached at
// subscription.
func (w *World) CollisionPerimeter(h Handle) core.Perimeter {
	e := w.mustSubscribed(h)
	return e.shape.Translate(e.body.Pending())
}

// QueryNeighborhood returns the collision candidates for area: indexed
// static bodies near it plus every moving body, sorted by handle.
func (w *World) QueryNeighborhood(area core.Perimeter) []Handle {
	found := w.index.Query(area, w.radius)
	found = append(found, w.movers...)
	slices.Sort(found)
	return found
}

func (w *World) dispatch(b Bump) {
	if w.bumper == nil {
		return
	}
	w.bumper.Bumped(w, b)
}
