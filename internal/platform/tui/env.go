package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wallbreaker/internal/config"
	"github.com/vovakirdan/wallbreaker/internal/core"
	"github.com/vovakirdan/wallbreaker/internal/games/wallbreaker"
	"github.com/vovakirdan/wallbreaker/internal/levels"
	"github.com/vovakirdan/wallbreaker/internal/scores"
	"github.com/vovakirdan/wallbreaker/internal/storage"
)

// Env holds what every game session is built from. Local play and SSH
// sessions share one Env, and so one hall of fame.
type Env struct {
	Config config.WallbreakerConfig
	Ledger *scores.Ledger
	Store  *storage.Store   // run history, optional
	Sounds core.SoundPlayer // nil plays nothing
	Logger *log.Logger      // nil discards logs
}

// Selection is what the player picked before a game.
type Selection struct {
	Pack       string // registered pack name, ignored when Dir is set
	Dir        string // directory pack
	Difficulty config.DifficultyPreset
}

func (e Env) logger() *log.Logger {
	if e.Logger == nil {
		return log.New(io.Discard)
	}
	return e.Logger
}

// LoadPack resolves the pack of sel.
func (e Env) LoadPack(sel Selection) (levels.Pack, error) {
	if sel.Dir != "" {
		return levels.LoadDir(sel.Dir)
	}
	name := sel.Pack
	if name == "" {
		name = e.Config.Levels.Pack
	}
	return levels.Get(name)
}

// NewSession builds a game session for sel.
func (e Env) NewSession(sel Selection) (*wallbreaker.Session, error) {
	pack, err := e.LoadPack(sel)
	if err != nil {
		return nil, err
	}
	cfg := e.Config
	config.ApplyPreset(&cfg, sel.Difficulty)

	opts := wallbreaker.Options{
		Config: cfg,
		Pack:   pack,
		Ledger: e.Ledger,
		Sounds: e.Sounds,
		Logger: e.logger(),
	}
	if e.Store != nil {
		opts.Recorder = storeRecorder{e.Store}
	}
	return wallbreaker.NewSession(opts)
}

// storeRecorder saves finished runs into the run history.
type storeRecorder struct{ store *storage.Store }

func (r storeRecorder) RecordRun(run wallbreaker.RunResult) error {
	return r.store.RecordRun(storage.Run{
		RunID: run.RunID,
		Pack:  run.Pack,
		Level: run.Level,
		Name:  run.Name,
		Score: run.Score,
	})
}
