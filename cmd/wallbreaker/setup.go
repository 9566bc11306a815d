package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/wallbreaker/internal/audio"
	"github.com/vovakirdan/wallbreaker/internal/config"
	"github.com/vovakirdan/wallbreaker/internal/core"
	"github.com/vovakirdan/wallbreaker/internal/platform/tui"
	"github.com/vovakirdan/wallbreaker/internal/scores"
	"github.com/vovakirdan/wallbreaker/internal/storage"
)

// setupOptions selects what a command needs besides config and scores.
type setupOptions struct {
	logToStderr bool // serve logs to the terminal, TUI play to log_file
	sound       bool
	history     bool // open the run history database
}

// app is everything a command runs on.
type app struct {
	cfg     config.WallbreakerConfig
	preset  config.DifficultyPreset
	env     tui.Env
	logger  *log.Logger
	closers []func()
}

func setup(opts setupOptions) (*app, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, preset: preset}
	if err := a.openLogger(opts.logToStderr); err != nil {
		return nil, err
	}

	var saver scores.Saver
	var store *storage.Store
	switch cfg.Scores.Backend {
	case config.BackendSQLite:
		store, err = storage.Open(cfg.Scores.Path)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.closers = append(a.closers, func() { store.Close() })
		saver = store
	default:
		fileSaver, err := scores.NewFileSaver(cfg.Scores.Path)
		if err != nil {
			a.Close()
			return nil, err
		}
		saver = fileSaver
		if opts.history {
			store = a.openHistory()
		}
	}

	a.env = tui.Env{
		Config: cfg,
		Ledger: scores.NewLedger(saver, scores.Options{Capacity: cfg.Gameplay.LedgerSize, Logger: a.logger}),
		Store:  store,
		Sounds: a.openSound(opts.sound),
		Logger: a.logger,
	}
	return a, nil
}

func (a *app) openLogger(toStderr bool) error {
	var w io.Writer = io.Discard
	switch {
	case toStderr:
		w = os.Stderr
	case a.cfg.LogFile != "":
		path := a.cfg.LogFile
		if path[0] == '~' {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("cannot expand log file path: %w", err)
			}
			path = filepath.Join(home, path[1:])
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		a.closers = append(a.closers, func() { f.Close() })
		w = f
	}

	a.logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "wallbreaker",
	})
	if os.Getenv("WALLBREAKER_DEBUG") != "" {
		a.logger.SetLevel(log.DebugLevel)
	}
	return nil
}

// openHistory opens the run history; the game still works without it.
func (a *app) openHistory() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		a.logger.Warn("could not open run history", "path", flagDBPath, "err", err)
		return nil
	}
	a.closers = append(a.closers, func() { store.Close() })
	return store
}

func (a *app) openSound(enabled bool) core.SoundPlayer {
	if !enabled || !a.cfg.Sound.Enabled {
		return core.Mute{}
	}
	player := audio.NewPlayer(a.cfg.Sound.Volume)
	if err := player.Initialize(); err != nil {
		a.logger.Warn("audio unavailable, playing silently", "err", err)
		return core.Mute{}
	}
	a.closers = append(a.closers, player.Close)
	return player
}

// Close releases resources in reverse order of acquisition.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
}
