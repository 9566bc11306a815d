package wallbreaker

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wallbreaker/internal/collision"
	"github.com/vovakirdan/wallbreaker/internal/config"
	"github.com/vovakirdan/wallbreaker/internal/core"
)

type ball struct {
	h       collision.Handle
	pending collision.Response // bounce to apply on the next move
}

type paddle struct {
	h      collision.Handle
	dir    int // -1 left, 1 right, 0 idle
	idle   int // ticks since the last key repeat
	target *float64
}

// Level is one grid brought to life: the collision World holding its bricks,
// the paddle and the ball.
type Level struct {
	grid   *Grid
	layout Layout
	world  *collision.World

	ball   ball
	paddle paddle

	ballCfg   config.BallConfig
	paddleCfg config.PaddleConfig
	scoring   config.ScoringConfig

	sounds core.SoundPlayer
	logger *log.Logger
}

type levelEnv struct {
	cfg      config.WallbreakerConfig
	sounds   core.SoundPlayer
	listener collision.Listener
	logger   *log.Logger
}

// newLevel builds the world for grid. paddleX is the left edge of the
// paddle, carried over from the previous level.
func newLevel(grid *Grid, env levelEnv, paddleX float64) *Level {
	cfg := env.cfg
	layout := NewLayout(cfg.Screen, grid)
	l := &Level{
		grid:      grid,
		layout:    layout,
		ballCfg:   cfg.Ball,
		paddleCfg: cfg.Paddle,
		scoring:   cfg.Scoring,
		sounds:    env.sounds,
		logger:    env.logger.With("level", grid.Name),
	}
	l.world = collision.NewWorld(collision.Config{
		Board:       layout.Board(),
		QueryRadius: cfg.Gameplay.QueryRadius,
		Logger:      l.logger,
	}, l, env.listener)

	shape := layout.BrickShape()
	for _, b := range grid.Bricks {
		l.world.Add(collision.Body{
			Kind:       b.Kind,
			Position:   layout.BrickAt(b.Col, b.Row),
			Shape:      shape,
			Durability: b.Hits,
		})
	}

	paddleX = core.ClampF(paddleX, 0, layout.Width-cfg.Paddle.Width)
	l.paddle.h = l.world.Add(collision.Body{
		Kind:     collision.KindPaddle,
		Position: core.Pt(paddleX, layout.Height-cfg.Paddle.Height),
		Shape:    core.LocalRect(cfg.Paddle.Width, cfg.Paddle.Height),
		MaxSpeed: cfg.Paddle.MaxSpeed,
	})
	l.ball.h = l.world.Add(collision.Body{
		Kind:     collision.KindBall,
		Shape:    core.LocalRect(cfg.Ball.Size, cfg.Ball.Size),
		MaxSpeed: layout.MaxBallSpeed(cfg.Ball.MaxSpeedDivisor),
	})
	l.placeBall()

	l.logger.Debug("level built", "bricks", len(grid.Bricks), "scoring", grid.Scoring(),
		"brick_w", layout.BrickW, "brick_h", layout.BrickH)
	return l
}

// World exposes the collision world of the level.
func (l *Level) World() *collision.World {
	return l.world
}

// Layout returns the geometry of the level.
func (l *Level) Layout() Layout {
	return l.layout
}

// Grid returns the map the level was built from.
func (l *Level) Grid() *Grid {
	return l.grid
}

// Ball returns the ball body.
func (l *Level) Ball() *collision.Body {
	return l.world.Body(l.ball.h)
}

// Paddle returns the paddle body.
func (l *Level) Paddle() *collision.Body {
	return l.world.Body(l.paddle.h)
}

// placeBall parks the still ball on the top center of the paddle.
func (l *Level) placeBall() {
	p := l.Paddle().Perimeter()
	b := l.Ball()
	size := b.Shape.Width()
	b.Position = core.Pt(p.Left()+(p.Width()-size)/2, p.Top()-b.Shape.Height())
	b.Velocity = core.Point{}
	b.Colliding = false
	l.ball.pending = collision.Response{}
}

// launch sends the parked ball up and to the right.
func (l *Level) launch() {
	b := l.Ball()
	speed := l.ballCfg.Speed
	b.Velocity = core.Pt(speed, -speed)
	b.ClampSpeed()
}

// steer starts or keeps the paddle moving towards dir.
func (l *Level) steer(dir int) {
	b := l.Paddle()
	if dir != l.paddle.dir {
		l.paddle.dir = dir
		b.Velocity.X = float64(dir) * l.paddleCfg.KeySpeed
	}
	l.paddle.idle = 0
}

// stop halts the paddle.
func (l *Level) stop() {
	l.paddle.dir = 0
	l.paddle.idle = 0
	l.Paddle().Velocity.X = 0
}

// pointAt makes the paddle center follow the pointer on the next move.
func (l *Level) pointAt(x float64) {
	w := l.paddleCfg.Width
	target := core.ClampF(x-w/2, 0, l.layout.Width-w)
	l.paddle.target = &target
	l.paddle.dir = 0
	l.Paddle().Velocity.X = target - l.Paddle().Position.X
}

// idleTick counts a tick without a key repeat and stops the paddle once the
// key is considered released.
func (l *Level) idleTick() {
	if l.paddle.dir == 0 {
		return
	}
	l.paddle.idle++
	if l.paddle.idle >= l.paddleCfg.KeyHoldTicks {
		l.stop()
	}
}

// movePaddle moves the paddle, keeping it on screen, then accelerates it
// for the next tick.
func (l *Level) movePaddle() {
	b := l.Paddle()
	b.Move()
	b.Position.X = core.ClampF(b.Position.X, 0, l.layout.Width-b.Shape.Width())

	if l.paddle.target != nil {
		l.paddle.target = nil
		b.Velocity.X = 0
		return
	}
	if math.Abs(b.Velocity.X) < b.Shape.Width()/2 {
		b.Velocity.X *= l.paddleCfg.Acceleration
	}
	b.ClampSpeed()
}

// moveBall applies the pending bounce and the screen edges, moves the ball
// and accelerates it for the next tick. It reports whether the ball left
// through the bottom edge.
func (l *Level) moveBall() bool {
	b := l.Ball()
	resp := l.ball.pending
	l.ball.pending = collision.Response{}
	if bounce(b, resp, l.layout.Width, l.layout.Height) {
		return true
	}
	b.Move()
	accelerate(b, l.ballCfg.Acceleration)
	return false
}

// bounce turns the velocity of b away from whatever it ran into: the faces
// named in resp and the left, right and top screen edges. It reports
// whether the next move would take b past the bottom edge.
func bounce(b *collision.Body, resp collision.Response, width, height float64) bool {
	next := b.Perimeter().Translate(b.Velocity)
	if next.Bottom() > height {
		return true
	}

	if resp.Horizontal.Hit {
		// positive depth: the right face of the other body was hit
		b.Velocity.X = away(b.Velocity.X, !math.Signbit(resp.Horizontal.Depth))
	}
	if resp.Vertical.Hit {
		// positive depth: the top face of the other body was hit
		b.Velocity.Y = away(b.Velocity.Y, math.Signbit(resp.Vertical.Depth))
	}

	switch {
	case next.Left() < 0:
		b.Velocity.X = math.Abs(b.Velocity.X)
	case next.Right() > width:
		b.Velocity.X = -math.Abs(b.Velocity.X)
	}
	if next.Top() < 0 {
		b.Velocity.Y = math.Abs(b.Velocity.Y)
	}
	return false
}

// away returns v pointing in the positive direction when positive is set,
// in the negative one otherwise.
func away(v float64, positive bool) float64 {
	if positive {
		return math.Abs(v)
	}
	return -math.Abs(v)
}

// accelerate speeds up each component still below half the body size, then
// applies the speed cap.
func accelerate(b *collision.Body, factor float64) {
	half := b.Shape.Width() / 2
	if math.Abs(b.Velocity.X) < half {
		b.Velocity.X *= factor
	}
	if math.Abs(b.Velocity.Y) < b.Shape.Height()/2 {
		b.Velocity.Y *= factor
	}
	b.ClampSpeed()
}

// Remaining returns how many scoring bricks are left.
func (l *Level) Remaining() int {
	return l.world.Remaining()
}
