package wallbreaker

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/wallbreaker/internal/config"
	"github.com/vovakirdan/wallbreaker/internal/core"
	"github.com/vovakirdan/wallbreaker/internal/levels"
	"github.com/vovakirdan/wallbreaker/internal/scores"
)

// State is a state of the game flow.
type State int

const (
	StateReplayWait    State = iota // ball lost, balls left: waiting to relaunch
	StateRestartWait                // game over without a hall of fame entry
	StateNextLevelWait              // level cleared
	StatePlaying
	StateAskingName  // game over with a qualifying score
	StateShowingScore
)

func (s State) String() string {
	switch s {
	case StateReplayWait:
		return "replay-wait"
	case StateRestartWait:
		return "restart-wait"
	case StateNextLevelWait:
		return "next-level-wait"
	case StatePlaying:
		return "playing"
	case StateAskingName:
		return "asking-name"
	case StateShowingScore:
		return "showing-score"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Waiting reports whether the state shows a message and waits for the
// advance signal.
func (s State) Waiting() bool {
	return s == StateReplayWait || s == StateRestartWait || s == StateNextLevelWait
}

// RunResult describes a finished game.
type RunResult struct {
	RunID string
	Pack  string
	Level int // zero-based index of the level the game ended on
	Name  string
	Score int
}

// RunRecorder keeps a history of finished games.
type RunRecorder interface {
	RecordRun(r RunResult) error
}

// Options configures a Session.
type Options struct {
	Config   config.WallbreakerConfig
	Pack     levels.Pack
	Ledger   *scores.Ledger   // required
	Sounds   core.SoundPlayer // nil plays nothing
	Recorder RunRecorder      // optional
	Logger   *log.Logger      // nil discards logs
}

// StepResult is returned by Step after each tick.
type StepResult struct {
	State State
	Score int
}

// Session runs a whole game: the level sequence, the ball count, the score
// and the hall of fame flow.
type Session struct {
	cfg      config.WallbreakerConfig
	packName string
	grids    []*Grid
	ledger   *scores.Ledger
	sounds   core.SoundPlayer
	recorder RunRecorder
	logger   *log.Logger

	state      State
	score      int
	balls      int
	levelIndex int
	level      *Level
	runID      string
	playerName string
	lastRank   int
	fresh      bool // no ball launched since the game started
	tick       uint64

	viewW int // screen columns, for pointer mapping
}

// ErrNoLedger is returned by NewSession without a ledger.
var ErrNoLedger = errors.New("wallbreaker: session needs a score ledger")

// NewSession parses every level of the pack and sets up the first one. The
// session starts in StateReplayWait with the ball on the paddle.
func NewSession(opts Options) (*Session, error) {
	if opts.Ledger == nil {
		return nil, ErrNoLedger
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	grids, err := parsePack(opts.Pack)
	if err != nil {
		return nil, err
	}

	s := &Session{
		cfg:      opts.Config,
		packName: opts.Pack.Name,
		grids:    grids,
		ledger:   opts.Ledger,
		sounds:   opts.Sounds,
		recorder: opts.Recorder,
		logger:   opts.Logger,
	}
	if s.sounds == nil {
		s.sounds = core.Mute{}
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	s.newGame()
	return s, nil
}

func parsePack(p levels.Pack) ([]*Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	grids := make([]*Grid, 0, p.Len())
	for _, lvl := range p.Levels {
		g, err := ParseGrid(lvl.Name, lvl.Rows)
		if err != nil {
			return nil, fmt.Errorf("pack %s: %w", p.Name, err)
		}
		grids = append(grids, g)
	}
	return grids, nil
}

// ReloadPack replaces the level sequence. The level in play is kept; the
// new maps apply from the next level built. On error the current pack
// stays in use.
func (s *Session) ReloadPack(p levels.Pack) error {
	grids, err := parsePack(p)
	if err != nil {
		s.logger.Warn("level pack rejected", "pack", p.Name, "err", err)
		return err
	}
	s.grids = grids
	s.packName = p.Name
	if s.levelIndex >= len(grids) {
		s.levelIndex = 0
	}
	s.logger.Info("level pack reloaded", "pack", p.Name, "levels", len(grids))
	return nil
}

// Resize tells the session how many screen columns the playfield spans.
func (s *Session) Resize(rt core.RuntimeConfig) {
	s.viewW = rt.ScreenW
}

// listener receives world events on behalf of the session.
type listener struct{ s *Session }

func (l listener) AddScore(delta int) { l.s.score += delta }
func (l listener) Won()               { l.s.levelWon() }

func (s *Session) env() levelEnv {
	return levelEnv{cfg: s.cfg, sounds: s.sounds, listener: listener{s}, logger: s.logger}
}

func (s *Session) buildLevel() {
	paddleX := (s.cfg.Screen.Width - s.cfg.Paddle.Width) / 2
	if s.level != nil {
		paddleX = s.level.Paddle().Position.X
	}
	s.level = newLevel(s.grids[s.levelIndex], s.env(), paddleX)
}

func (s *Session) newGame() {
	s.score = 0
	s.balls = s.cfg.Gameplay.Balls
	s.levelIndex = 0
	s.runID = uuid.NewString()
	s.lastRank = 0
	s.fresh = true
	s.buildLevel()
	s.setState(StateReplayWait)
	s.logger.Info("new game", "run", s.runID, "pack", s.packName)
}

func (s *Session) nextLevel() {
	s.levelIndex = (s.levelIndex + 1) % len(s.grids)
	s.balls = s.cfg.Gameplay.Balls
	s.buildLevel()
}

func (s *Session) setState(next State) {
	if s.state == next {
		return
	}
	s.logger.Debug("state", "from", s.state, "to", next)
	s.state = next
}

// launch puts the ball in play.
func (s *Session) launch() {
	s.fresh = false
	s.level.launch()
	s.setState(StatePlaying)
	s.sounds.Play(core.SoundBallLaunch)
}

func (s *Session) levelWon() {
	s.setState(StateNextLevelWait)
	s.sounds.Play(core.SoundNextLevel)
	s.logger.Info("level cleared", "level", s.level.grid.Name, "score", s.score)
}

func (s *Session) ballLost() {
	s.balls--
	s.level.placeBall()
	switch {
	case s.balls > 0:
		s.sounds.Play(core.SoundBallMissed)
		s.setState(StateReplayWait)
	case s.ledger.Qualifies(s.score):
		s.playerName = ""
		s.sounds.Play(core.SoundWallOfFame)
		s.setState(StateAskingName)
	default:
		s.sounds.Play(core.SoundGameLost)
		s.setState(StateRestartWait)
		s.record("")
	}
	s.logger.Info("ball lost", "balls", s.balls, "score", s.score, "state", s.state)
}

func (s *Session) record(name string) {
	if s.recorder == nil {
		return
	}
	err := s.recorder.RecordRun(RunResult{
		RunID: s.runID,
		Pack:  s.packName,
		Level: s.levelIndex,
		Name:  name,
		Score: s.score,
	})
	if err != nil {
		s.logger.Error("failed to record run", "run", s.runID, "err", err)
	}
}

// SetPlayerName sets the name entered while in StateAskingName.
func (s *Session) SetPlayerName(name string) {
	s.playerName = name
}

// Advance handles the advance signal: launch, next level, restart or the
// hall of fame steps, depending on the state.
func (s *Session) Advance() {
	switch s.state {
	case StateReplayWait:
		s.launch()
	case StateNextLevelWait:
		s.nextLevel()
		s.launch()
	case StateRestartWait, StateShowingScore:
		s.newGame()
		s.launch()
	case StateAskingName:
		rank, err := s.ledger.Add(s.playerName, s.score)
		if err != nil {
			s.logger.Error("failed to save hall of fame", "err", err)
		}
		s.lastRank = rank
		s.record(s.playerName)
		s.setState(StateShowingScore)
	case StatePlaying:
	}
}

// Step advances the game by one tick.
func (s *Session) Step(in core.InputFrame) StepResult {
	s.tick++
	l := s.level

	if s.state != StateAskingName {
		switch {
		case in.Has(core.ActionLeft):
			l.steer(-1)
		case in.Has(core.ActionRight):
			l.steer(1)
		case in.Has(core.ActionStop):
			l.stop()
		default:
			l.idleTick()
		}
		if in.Pointer != nil {
			l.pointAt(s.pointerX(*in.Pointer))
		}
	}

	if s.state == StatePlaying {
		l.world.InformAboutToMove()
	}
	if s.state == StatePlaying {
		if l.moveBall() {
			s.ballLost()
		}
	}
	l.movePaddle()
	if s.state != StatePlaying {
		l.placeBall()
	}

	if in.Has(core.ActionAdvance) {
		s.Advance()
	}
	return StepResult{State: s.state, Score: s.score}
}

// pointerX maps a screen column to the world x of its center.
func (s *Session) pointerX(col int) float64 {
	cols := s.viewW
	if cols <= 0 {
		return s.cfg.Screen.Width * (float64(col) + 0.5)
	}
	return (float64(col) + 0.5) * s.cfg.Screen.Width / float64(cols)
}

// State returns the current state.
func (s *Session) State() State { return s.state }

// Score returns the score of the game in progress.
func (s *Session) Score() int { return s.score }

// Balls returns how many balls are left, the one in play included.
func (s *Session) Balls() int { return s.balls }

// LevelIndex returns the zero-based index of the current level.
func (s *Session) LevelIndex() int { return s.levelIndex }

// Levels returns the number of levels in the pack.
func (s *Session) Levels() int { return len(s.grids) }

// Level returns the level in play.
func (s *Session) Level() *Level { return s.level }

// PackName returns the name of the level pack in use.
func (s *Session) PackName() string { return s.packName }

// RunID identifies the game in progress.
func (s *Session) RunID() string { return s.runID }

// PlayerName returns the name entered for the hall of fame.
func (s *Session) PlayerName() string { return s.playerName }

// LastRank returns the 1-based hall of fame rank of the last entry added, or
// 0 when it was not kept.
func (s *Session) LastRank() int { return s.lastRank }

// Ledger returns the hall of fame.
func (s *Session) Ledger() *scores.Ledger { return s.ledger }

// Tick returns the number of steps run.
func (s *Session) Tick() uint64 { return s.tick }

// Message returns the lines shown over the playfield in the current state.
func (s *Session) Message() []string {
	switch s.state {
	case StateReplayWait:
		if s.fresh {
			return []string{"Wallbreaker", s.level.grid.Name, "Press space or left click to start!"}
		}
		return []string{
			"You beginner, you lost :-)",
			fmt.Sprintf("You have another %d ball(s)", s.balls),
			"Press space or left click to start!",
		}
	case StateRestartWait:
		return []string{
			"No wall of fame for this time ...",
			"your score is far too low!",
			"Press space or left click to start!",
		}
	case StateNextLevelWait:
		return []string{
			"Well done :-)",
			"Next one will be much harder :-)",
			fmt.Sprintf("You have another %d ball(s)", s.cfg.Gameplay.Balls),
			"Press space or left click to start!",
		}
	case StateAskingName:
		return []string{"Enter your name:", "(Press enter when done):", s.playerName}
	case StateShowingScore:
		lines := s.ledger.Lines()
		return append(lines, "Press space or left click to continue!")
	default:
		return nil
	}
}
