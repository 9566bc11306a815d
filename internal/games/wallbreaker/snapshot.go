package wallbreaker

import (
	"math"

	"github.com/vovakirdan/wallbreaker/internal/collision"
)

// Snapshot is a flat view of the session used for determinism checks and
// debugging. Positions are stored as float bits so that equal snapshots
// mean bit-identical worlds.
type Snapshot struct {
	Tick       uint64
	State      State
	Score      int
	Balls      int
	LevelIndex int
	Remaining  int

	BallX, BallY, BallVX, BallVY uint64
	PaddleX, PaddleVX            uint64

	// Each subscribed brick is 3 ints: handle, kind, durability.
	BrickData []int
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	ball := s.level.Ball()
	paddle := s.level.Paddle()

	var bricks []int
	s.level.world.Each(func(h collision.Handle, b *collision.Body) {
		if b.Kind.Moving() {
			return
		}
		bricks = append(bricks, int(h), int(b.Kind), b.Durability)
	})

	return Snapshot{
		Tick:       s.tick,
		State:      s.state,
		Score:      s.score,
		Balls:      s.balls,
		LevelIndex: s.levelIndex,
		Remaining:  s.level.Remaining(),
		BallX:      math.Float64bits(ball.Position.X),
		BallY:      math.Float64bits(ball.Position.Y),
		BallVX:     math.Float64bits(ball.Velocity.X),
		BallVY:     math.Float64bits(ball.Velocity.Y),
		PaddleX:    math.Float64bits(paddle.Position.X),
		PaddleVX:   math.Float64bits(paddle.Velocity.X),
		BrickData:  bricks,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.State)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Balls)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelIndex) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Remaining)  //#nosec G115 -- hash computation
	h = h*31 + snap.BallX
	h = h*31 + snap.BallY
	h = h*31 + snap.BallVX
	h = h*31 + snap.BallVY
	h = h*31 + snap.PaddleX
	h = h*31 + snap.PaddleVX

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
