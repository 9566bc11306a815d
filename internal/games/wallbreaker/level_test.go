package wallbreaker

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/wallbreaker/internal/collision"
	"github.com/vovakirdan/wallbreaker/internal/config"
	"github.com/vovakirdan/wallbreaker/internal/core"
)

type soundLog struct{ played []core.Sound }

func (s *soundLog) Play(snd core.Sound) { s.played = append(s.played, snd) }

type events struct{ score, wins int }

func (e *events) AddScore(d int) { e.score += d }
func (e *events) Won()           { e.wins++ }

func testLevel(t *testing.T, rows ...string) (*Level, *events, *soundLog) {
	t.Helper()
	g, err := ParseGrid("test", rows)
	require.NoError(t, err)
	ev := &events{}
	sounds := &soundLog{}
	env := levelEnv{
		cfg:      config.DefaultWallbreakerConfig(),
		sounds:   sounds,
		listener: ev,
		logger:   log.New(io.Discard),
	}
	return newLevel(g, env, 425), ev, sounds
}

func ballBody(x, y, vx, vy float64) *collision.Body {
	return &collision.Body{
		Kind:     collision.KindBall,
		Position: core.Pt(x, y),
		Shape:    core.LocalRect(10, 10),
		Velocity: core.Pt(vx, vy),
	}
}

func TestBounceTopEdge(t *testing.T) {
	b := ballBody(100, 0, 5, -5)
	lost := bounce(b, collision.Response{}, 1000, 800)
	assert.False(t, lost)
	assert.Equal(t, core.Pt(5, 5), b.Velocity)
}

func TestBounceSideEdges(t *testing.T) {
	b := ballBody(0, 400, -5, 5)
	bounce(b, collision.Response{}, 1000, 800)
	assert.Equal(t, core.Pt(5, 5), b.Velocity)

	b = ballBody(988, 400, 5, 5)
	bounce(b, collision.Response{}, 1000, 800)
	assert.Equal(t, core.Pt(-5, 5), b.Velocity)
}

func TestBounceBottomLosesBall(t *testing.T) {
	b := ballBody(100, 788, 5, 5)
	assert.True(t, bounce(b, collision.Response{}, 1000, 800))
}

func TestBounceResponseFaces(t *testing.T) {
	tests := []struct {
		name string
		v    core.Point
		resp collision.Response
		want core.Point
	}{
		{
			name: "top face",
			v:    core.Pt(3, 5),
			resp: collision.Response{Vertical: collision.AxisResponse{Hit: true, Depth: 2}},
			want: core.Pt(3, -5),
		},
		{
			name: "bottom face",
			v:    core.Pt(3, -5),
			resp: collision.Response{Vertical: collision.AxisResponse{Hit: true, Depth: -2}},
			want: core.Pt(3, 5),
		},
		{
			name: "left face",
			v:    core.Pt(5, 3),
			resp: collision.Response{Horizontal: collision.AxisResponse{Hit: true, Depth: -1}},
			want: core.Pt(-5, 3),
		},
		{
			name: "right face",
			v:    core.Pt(-5, 3),
			resp: collision.Response{Horizontal: collision.AxisResponse{Hit: true, Depth: 1}},
			want: core.Pt(5, 3),
		},
		{
			name: "already leaving",
			v:    core.Pt(3, -5),
			resp: collision.Response{Vertical: collision.AxisResponse{Hit: true, Depth: 2}},
			want: core.Pt(3, -5),
		},
		{
			name: "corner",
			v:    core.Pt(5, 5),
			resp: collision.Response{
				Horizontal: collision.AxisResponse{Hit: true, Depth: -1},
				Vertical:   collision.AxisResponse{Hit: true, Depth: 1},
			},
			want: core.Pt(-5, -5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := ballBody(400, 400, tt.v.X, tt.v.Y)
			bounce(b, tt.resp, 1000, 800)
			assert.Equal(t, tt.want, b.Velocity)
		})
	}
}

func TestAccelerate(t *testing.T) {
	b := ballBody(0, 0, 2, -2)
	accelerate(b, 1.5)
	assert.Equal(t, core.Pt(3, -3), b.Velocity)

	// at half the ball size and above the speed holds
	b = ballBody(0, 0, 5, -6)
	accelerate(b, 1.5)
	assert.Equal(t, core.Pt(5, -6), b.Velocity)

	b = ballBody(0, 0, 4, -4)
	b.MaxSpeed = 5
	accelerate(b, 1.5)
	assert.Equal(t, core.Pt(5, -5), b.Velocity)
}

func TestLevelLayout(t *testing.T) {
	l, _, _ := testLevel(t, "11", "UU")
	layout := l.Layout()

	assert.Equal(t, 500.0, layout.BrickW)
	assert.Equal(t, 0.75*750/2, layout.BrickH)
	assert.Equal(t, core.Pt(500, 50+layout.BrickH), layout.BrickAt(1, 1))

	board := layout.Board()
	assert.Equal(t, core.Pt(0, 50), board.Origin)
	assert.Equal(t, 3, board.Rows)

	paddle := l.Paddle().Perimeter()
	ball := l.Ball().Perimeter()
	assert.Equal(t, 792.0, paddle.Top())
	assert.Equal(t, paddle.Top(), ball.Bottom())
	assert.InDelta(t, paddle.Center().X, ball.Center().X, 1e-9)
}

func TestMaxBallSpeed(t *testing.T) {
	assert.Equal(t, 10.0, Layout{BrickW: 150, BrickH: 300}.MaxBallSpeed(15))
	assert.Equal(t, 1.0, Layout{BrickW: 10, BrickH: 10}.MaxBallSpeed(15))
	assert.Zero(t, Layout{BrickW: 10, BrickH: 10}.MaxBallSpeed(0))
}

func TestBallDestroysBrick(t *testing.T) {
	l, ev, sounds := testLevel(t, "1U")
	brickBottom := l.Layout().Banner + l.Layout().BrickH

	ball := l.Ball()
	ball.Position = core.Pt(100, brickBottom+0.5)
	ball.Velocity = core.Pt(0, -5)

	l.World().InformAboutToMove()

	assert.Equal(t, 5+100, ev.score)
	assert.Equal(t, 1, ev.wins)
	assert.Zero(t, l.Remaining())
	assert.Contains(t, sounds.played, core.SoundBrickDestroyed)

	assert.False(t, l.moveBall())
	assert.Equal(t, 5.0, ball.Velocity.Y)
}

func TestBrickWearsDown(t *testing.T) {
	l, ev, sounds := testLevel(t, "3")
	brickBottom := l.Layout().Banner + l.Layout().BrickH

	ball := l.Ball()
	ball.Position = core.Pt(100, brickBottom+0.5)
	ball.Velocity = core.Pt(0, -5)
	l.World().InformAboutToMove()

	assert.Equal(t, 5, ev.score)
	assert.Zero(t, ev.wins)
	assert.Equal(t, []core.Sound{core.SoundBrickBump}, sounds.played)

	var durability int
	l.World().Each(func(_ collision.Handle, b *collision.Body) {
		if b.Kind == collision.KindBreakable {
			durability = b.Durability
		}
	})
	assert.Equal(t, 2, durability)
}

func TestPoisonedBrickCostsPoints(t *testing.T) {
	l, ev, sounds := testLevel(t, "Q", "1")
	brickBottom := l.Layout().Banner + l.Layout().BrickH

	ball := l.Ball()
	ball.Position = core.Pt(100, brickBottom-20)
	ball.Velocity = core.Pt(0, -5)
	for range 2 {
		ball.Colliding = false
		l.World().InformAboutToMove()
	}

	assert.Equal(t, -10-10-200, ev.score)
	assert.Equal(t, []core.Sound{core.SoundPoisonBump, core.SoundPoisonDestroyed}, sounds.played)
	assert.Zero(t, ev.wins, "poisoned bricks are not needed to win")
	assert.Equal(t, 1, l.Remaining())
}

func TestPaddleRewardsLanding(t *testing.T) {
	l, ev, sounds := testLevel(t, "1")
	paddle := l.Paddle().Perimeter()

	ball := l.Ball()
	ball.Position = core.Pt(paddle.Center().X, paddle.Top()-12)
	ball.Velocity = core.Pt(0, 5)
	l.World().InformAboutToMove()

	assert.Equal(t, 10, ev.score)
	assert.Equal(t, []core.Sound{core.SoundPaddleBump}, sounds.played)

	assert.False(t, l.moveBall())
	assert.Equal(t, -5.0, ball.Velocity.Y)
}

func TestPaddleSteering(t *testing.T) {
	l, _, _ := testLevel(t, "1")
	cfg := config.DefaultWallbreakerConfig().Paddle
	paddle := l.Paddle()
	x0 := paddle.Position.X

	l.steer(1)
	l.movePaddle()
	assert.Equal(t, x0+cfg.KeySpeed, paddle.Position.X)
	assert.InDelta(t, cfg.KeySpeed*cfg.Acceleration, paddle.Velocity.X, 1e-9)

	for range cfg.KeyHoldTicks {
		l.idleTick()
	}
	assert.Zero(t, paddle.Velocity.X)

	l.steer(-1)
	for range 1000 {
		l.movePaddle()
	}
	assert.Zero(t, paddle.Position.X, "paddle stops at the left edge")
	assert.LessOrEqual(t, -paddle.Velocity.X, cfg.MaxSpeed)
}

func TestPaddleFollowsPointer(t *testing.T) {
	l, _, _ := testLevel(t, "1")
	paddle := l.Paddle()

	l.pointAt(300)
	l.movePaddle()
	assert.Equal(t, 300-paddle.Shape.Width()/2, paddle.Position.X)
	assert.Zero(t, paddle.Velocity.X)

	l.pointAt(5000)
	l.movePaddle()
	assert.Equal(t, 1000-paddle.Shape.Width(), paddle.Position.X)
}
