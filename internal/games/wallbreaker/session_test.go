package wallbreaker

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/wallbreaker/internal/config"
	"github.com/vovakirdan/wallbreaker/internal/core"
	"github.com/vovakirdan/wallbreaker/internal/levels"
	"github.com/vovakirdan/wallbreaker/internal/scores"
)

type runLog struct{ runs []RunResult }

func (r *runLog) RecordRun(run RunResult) error {
	r.runs = append(r.runs, run)
	return nil
}

func testPack() levels.Pack {
	return levels.Pack{
		Name: "test",
		Levels: []levels.Level{
			{Name: "one", Rows: []string{"1"}},
			{Name: "two", Rows: []string{"11"}},
		},
	}
}

func newTestSession(t *testing.T, ledger *scores.Ledger) (*Session, *runLog, *soundLog) {
	t.Helper()
	if ledger == nil {
		ledger = scores.NewLedger(nil, scores.Options{})
	}
	runs := &runLog{}
	sounds := &soundLog{}
	s, err := NewSession(Options{
		Config:   config.DefaultWallbreakerConfig(),
		Pack:     testPack(),
		Ledger:   ledger,
		Sounds:   sounds,
		Recorder: runs,
	})
	require.NoError(t, err)
	return s, runs, sounds
}

// loseBall drops the ball below the paddle and runs one tick.
func loseBall(s *Session) {
	ball := s.Level().Ball()
	ball.Position = core.Pt(10, 795)
	ball.Velocity = core.Pt(0, 10)
	s.Step(core.NewInputFrame())
}

func advance(s *Session) StepResult {
	in := core.NewInputFrame()
	in.Set(core.ActionAdvance)
	return s.Step(in)
}

func TestNewSession(t *testing.T) {
	s, _, _ := newTestSession(t, nil)

	assert.Equal(t, StateReplayWait, s.State())
	assert.Equal(t, 3, s.Balls())
	assert.Zero(t, s.Score())
	assert.Zero(t, s.LevelIndex())
	assert.Equal(t, 2, s.Levels())
	assert.NotEmpty(t, s.RunID())
	assert.Equal(t, core.Point{}, s.Level().Ball().Velocity)
}

func TestNewSessionErrors(t *testing.T) {
	_, err := NewSession(Options{Config: config.DefaultWallbreakerConfig(), Pack: testPack()})
	assert.ErrorIs(t, err, ErrNoLedger)

	bad := levels.Pack{Name: "bad", Levels: []levels.Level{{Name: "zero", Rows: []string{"10"}}}}
	_, err = NewSession(Options{
		Config: config.DefaultWallbreakerConfig(),
		Pack:   bad,
		Ledger: scores.NewLedger(nil, scores.Options{}),
	})
	assert.ErrorIs(t, err, ErrZeroDurability)

	_, err = NewSession(Options{
		Config: config.DefaultWallbreakerConfig(),
		Pack:   levels.Pack{Name: "empty"},
		Ledger: scores.NewLedger(nil, scores.Options{}),
	})
	assert.ErrorIs(t, err, levels.ErrNoLevels)
}

func TestBallRidesPaddleUntilLaunch(t *testing.T) {
	s, _, sounds := newTestSession(t, nil)

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	for range 5 {
		s.Step(in)
	}
	paddle := s.Level().Paddle().Perimeter()
	ball := s.Level().Ball().Perimeter()
	assert.InDelta(t, paddle.Center().X, ball.Center().X, 1e-9)
	assert.Equal(t, paddle.Top(), ball.Bottom())

	res := advance(s)
	assert.Equal(t, StatePlaying, res.State)
	assert.Equal(t, core.Pt(5, -5), s.Level().Ball().Velocity)
	assert.Contains(t, sounds.played, core.SoundBallLaunch)
}

func TestLosingBalls(t *testing.T) {
	s, runs, _ := newTestSession(t, nil)
	advance(s)

	loseBall(s)
	assert.Equal(t, StateReplayWait, s.State())
	assert.Equal(t, 2, s.Balls())
	assert.Contains(t, s.Message(), "You have another 2 ball(s)")

	advance(s)
	loseBall(s)
	assert.Equal(t, 1, s.Balls())

	advance(s)
	loseBall(s)
	assert.Zero(t, s.Balls())
	assert.Equal(t, StateAskingName, s.State(), "an empty hall of fame takes any score")
	assert.Empty(t, runs.runs)

	s.SetPlayerName("ann")
	advance(s)
	assert.Equal(t, StateShowingScore, s.State())
	assert.Equal(t, 1, s.LastRank())
	assert.Equal(t, []scores.Entry{{Name: "ann", Score: 0}}, s.Ledger().Entries())
	require.Len(t, runs.runs, 1)
	assert.Equal(t, "ann", runs.runs[0].Name)
	assert.Equal(t, s.RunID(), runs.runs[0].RunID)

	firstRun := s.RunID()
	advance(s)
	assert.Equal(t, StatePlaying, s.State())
	assert.Equal(t, 3, s.Balls())
	assert.Zero(t, s.Score())
	assert.Zero(t, s.LevelIndex())
	assert.NotEqual(t, firstRun, s.RunID())
}

func TestGameOverWithoutHallOfFame(t *testing.T) {
	ledger := scores.NewLedger(nil, scores.Options{Capacity: 1})
	_, err := ledger.Add("best", 1000)
	require.NoError(t, err)

	s, runs, sounds := newTestSession(t, ledger)
	for range 3 {
		advance(s)
		loseBall(s)
	}

	assert.Equal(t, StateRestartWait, s.State())
	assert.Contains(t, sounds.played, core.SoundGameLost)
	require.Len(t, runs.runs, 1)
	assert.Empty(t, runs.runs[0].Name)
	assert.Equal(t, "test", runs.runs[0].Pack)

	advance(s)
	assert.Equal(t, StatePlaying, s.State())
	assert.Equal(t, 3, s.Balls())
}

func TestClearingLevel(t *testing.T) {
	s, _, sounds := newTestSession(t, nil)
	advance(s)

	layout := s.Level().Layout()
	ball := s.Level().Ball()
	ball.Position = core.Pt(100, layout.Banner+layout.BrickH+0.5)
	ball.Velocity = core.Pt(0, -5)

	res := s.Step(core.NewInputFrame())
	assert.Equal(t, StateNextLevelWait, res.State)
	assert.Equal(t, 105, res.Score)
	assert.Contains(t, sounds.played, core.SoundNextLevel)
	assert.Equal(t, core.Point{}, s.Level().Ball().Velocity)

	advance(s)
	assert.Equal(t, StatePlaying, s.State())
	assert.Equal(t, 1, s.LevelIndex())
	assert.Equal(t, "two", s.Level().Grid().Name)
	assert.Equal(t, 105, s.Score())
	assert.Equal(t, 3, s.Balls(), "balls are refilled on a new level")
}

func TestLevelsWrapAround(t *testing.T) {
	s, _, _ := newTestSession(t, nil)
	s.nextLevel()
	s.nextLevel()
	assert.Zero(t, s.LevelIndex())
	assert.Equal(t, "one", s.Level().Grid().Name)
}

func TestPaddleCarriesOverLevels(t *testing.T) {
	s, _, _ := newTestSession(t, nil)
	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	for range 10 {
		s.Step(in)
	}
	x := s.Level().Paddle().Position.X

	s.nextLevel()
	assert.Equal(t, x, s.Level().Paddle().Position.X)
}

func TestPointerInput(t *testing.T) {
	s, _, _ := newTestSession(t, nil)
	s.Resize(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	in := core.NewInputFrame()
	in.PointAt(40)
	s.Step(in)

	want := (40.5)*1000.0/80 - 75
	assert.InDelta(t, want, s.Level().Paddle().Position.X, 1e-9)
}

func TestReloadPack(t *testing.T) {
	s, _, _ := newTestSession(t, nil)

	bad := levels.Pack{Name: "bad", Levels: []levels.Level{{Name: "x", Rows: []string{"1#"}}}}
	err := s.ReloadPack(bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCell))
	assert.Equal(t, "test", s.PackName())

	good := levels.Pack{Name: "solo", Levels: []levels.Level{{Name: "only", Rows: []string{"9"}}}}
	require.NoError(t, s.ReloadPack(good))
	assert.Equal(t, "solo", s.PackName())
	assert.Equal(t, "one", s.Level().Grid().Name, "current level is kept")

	s.nextLevel()
	assert.Equal(t, "only", s.Level().Grid().Name)
}

func TestSessionDeterminism(t *testing.T) {
	pack, err := levels.Get(levels.DefaultPack)
	require.NoError(t, err)

	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 10 || i%150 == 0:
			inputs[i].Set(core.ActionAdvance)
		case i%40 < 20:
			inputs[i].Set(core.ActionRight)
		default:
			inputs[i].Set(core.ActionLeft)
		}
	}

	run := func() Snapshot {
		s, err := NewSession(Options{
			Config: config.DefaultWallbreakerConfig(),
			Pack:   pack,
			Ledger: scores.NewLedger(nil, scores.Options{}),
		})
		require.NoError(t, err)
		for _, in := range inputs {
			s.Step(in)
		}
		return s.Snapshot()
	}

	snap1 := run()
	snap2 := run()
	assert.Equal(t, snap1.Hash(), snap2.Hash())
	assert.Equal(t, snap1, snap2)
	assert.Equal(t, uint64(len(inputs)), snap1.Tick)
}

func TestRender(t *testing.T) {
	s, _, _ := newTestSession(t, nil)
	screen := core.NewScreen(80, 24)
	s.Render(screen)

	assert.Contains(t, screen.Row(0), "Score: 0")
	assert.Contains(t, screen.Row(0), "Balls: 3")
	assert.Contains(t, screen.String(), "Press space or left click to start!")
	assert.Contains(t, screen.String(), string(PaddleChar))

	small := core.NewScreen(20, 8)
	s.Render(small)
	assert.Contains(t, small.String(), "too small")
}
