package wallbreaker

import (
	"math"

	"github.com/vovakirdan/wallbreaker/internal/collision"
	"github.com/vovakirdan/wallbreaker/internal/core"
)

// bumpFunc is the reaction of one body kind to a bump.
type bumpFunc func(l *Level, w *collision.World, body *collision.Body, b collision.Bump)

// behaviours maps every kind to its reaction. Bricks only react to balls:
// the paddle never reaches the brick area, and a brick bump is meant to
// cost or earn points for the ball that made it.
var behaviours = map[collision.Kind]bumpFunc{
	collision.KindUnbreakable: bumpUnbreakable,
	collision.KindBreakable:   bumpBreakable,
	collision.KindPoisoned:    bumpPoisoned,
	collision.KindPaddle:      bumpPaddle,
	collision.KindBall:        bumpBall,
}

// wearPolicy describes how a destructible brick scores and sounds.
type wearPolicy struct {
	bump, destroyed           int
	bumpSound, destroyedSound core.Sound
}

// Bumped implements collision.Bumper.
func (l *Level) Bumped(w *collision.World, b collision.Bump) {
	body := w.Body(b.Target)
	if body == nil {
		return
	}
	if fn, ok := behaviours[body.Kind]; ok {
		fn(l, w, body, b)
	}
}

func struckByBall(w *collision.World, b collision.Bump) bool {
	if !b.Struck {
		return false
	}
	other := w.Body(b.Other)
	return other != nil && other.Kind == collision.KindBall
}

func bumpUnbreakable(l *Level, w *collision.World, _ *collision.Body, b collision.Bump) {
	if struckByBall(w, b) {
		l.sounds.Play(core.SoundUnbreakableBump)
	}
}

func bumpBreakable(l *Level, w *collision.World, body *collision.Body, b collision.Bump) {
	s := l.scoring
	l.wear(w, body, b, wearPolicy{
		bump:           s.BreakableBump,
		destroyed:      s.BreakableDestroyed,
		bumpSound:      core.SoundBrickBump,
		destroyedSound: core.SoundBrickDestroyed,
	})
}

func bumpPoisoned(l *Level, w *collision.World, body *collision.Body, b collision.Bump) {
	s := l.scoring
	l.wear(w, body, b, wearPolicy{
		bump:           s.PoisonedBump,
		destroyed:      s.PoisonedDestroyed,
		bumpSound:      core.SoundPoisonBump,
		destroyedSound: core.SoundPoisonDestroyed,
	})
}

// wear scores a bump on a destructible brick and removes it once its
// durability runs out.
func (l *Level) wear(w *collision.World, body *collision.Body, b collision.Bump, p wearPolicy) {
	if !struckByBall(w, b) {
		return
	}
	w.AddScore(p.bump)
	if body.Durability > 0 {
		body.Durability--
	}
	if body.Durability > 0 {
		l.sounds.Play(p.bumpSound)
		return
	}
	w.AddScore(p.destroyed)
	w.Unsubscribe(b.Target)
	l.sounds.Play(p.destroyedSound)
	l.logger.Debug("brick destroyed", "handle", b.Target, "kind", body.Kind)
}

// bumpPaddle rewards a ball landing on the top face of the paddle.
func bumpPaddle(l *Level, w *collision.World, _ *collision.Body, b collision.Bump) {
	if !struckByBall(w, b) {
		return
	}
	if b.Response.Vertical.Hit && !math.Signbit(b.Response.Vertical.Depth) {
		w.AddScore(l.scoring.PaddleBump)
	}
	l.sounds.Play(core.SoundPaddleBump)
}

// bumpBall stores the response of the ball's own collision check; it is
// applied on the next ball move. Responses delivered because something else
// ran into the ball are dropped: the ball's own check already covers the
// same contact.
func bumpBall(l *Level, _ *collision.World, _ *collision.Body, b collision.Bump) {
	if b.Struck {
		return
	}
	l.ball.pending = l.ball.pending.Merge(b.Response)
}
