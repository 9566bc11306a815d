package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wallbreaker/internal/config"
	"github.com/vovakirdan/wallbreaker/internal/core"
	"github.com/vovakirdan/wallbreaker/internal/games/wallbreaker"
	"github.com/vovakirdan/wallbreaker/internal/levels"
)

// maxNameLen bounds hall of fame names.
const maxNameLen = 20

// packChangedMsg carries a reloaded directory pack.
type packChangedMsg struct {
	pack levels.Pack
	err  error
}

// Model is the Bubble Tea model for running a wallbreaker session.
type Model struct {
	session  *wallbreaker.Session
	screen   *core.Screen
	config   core.RuntimeConfig
	input    core.InputFrame
	keys     *KeyMapper
	name     textinput.Model
	logger   *log.Logger
	watcher  *levels.Watcher
	packDir  string
	quitting bool
	back     bool
}

// NewModel creates a Bubble Tea model around session. watcher may be nil;
// when set, changes under packDir are loaded into the session.
func NewModel(session *wallbreaker.Session, cfg core.RuntimeConfig, watcher *levels.Watcher, packDir string, logger *log.Logger) Model {
	name := textinput.New()
	name.CharLimit = maxNameLen
	name.Prompt = ""
	name.Focus()

	session.Resize(cfg)
	if logger == nil {
		logger = log.Default()
	}
	return Model{
		session: session,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:  cfg,
		input:   core.NewInputFrame(),
		keys:    NewKeyMapper(),
		name:    name,
		logger:  logger,
		watcher: watcher,
		packDir: packDir,
	}
}

// Init starts the tick loop and, if set up, the pack watcher.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.watcher != nil {
		cmds = append(cmds, waitForPackChange(m.watcher, m.packDir))
	}
	return tea.Batch(cmds...)
}

// waitForPackChange blocks until the watcher reports a change, then loads
// the pack again.
func waitForPackChange(w *levels.Watcher, dir string) tea.Cmd {
	return func() tea.Msg {
		select {
		case _, ok := <-w.Events:
			if !ok {
				return nil
			}
			pack, err := levels.LoadDir(dir)
			return packChangedMsg{pack: pack, err: err}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return packChangedMsg{err: err}
		}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.session.State() != wallbreaker.StateAskingName {
			m.keys.MapMouseToFrame(msg, &m.input)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.session.Resize(m.config)
		return m, nil

	case TickMsg:
		return m.handleTick()

	case packChangedMsg:
		if msg.err != nil {
			m.logger.Warn("level pack reload failed", "dir", m.packDir, "err", msg.err)
		} else {
			_ = m.session.ReloadPack(msg.pack)
		}
		return m, waitForPackChange(m.watcher, m.packDir)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	if m.session.State() == wallbreaker.StateAskingName {
		return m.handleNameKey(msg)
	}

	if msg.String() == "esc" {
		m.back = true
		return m, tea.Quit
	}
	if m.keys.MapKeyToFrame(msg, &m.input) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleNameKey edits the hall of fame name; enter or escape confirms it.
func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter || msg.Type == tea.KeyEsc {
		m.session.SetPlayerName(m.name.Value())
		m.name.Reset()
		m.input.Set(core.ActionAdvance)
		return m, nil
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	m.session.SetPlayerName(m.name.Value())
	return m, cmd
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.session.Step(m.input)
	m.input.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.session.Render(m.screen)

	dir := filepath.Join(config.UserDir(), "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("wallbreaker_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}
	m.session.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to leave the game.
func (m Model) BackToMenu() bool {
	return m.back
}

// Run plays session in its own Bubble Tea program. It reports whether the
// player asked to go back to the menu instead of quitting.
func Run(session *wallbreaker.Session, cfg core.RuntimeConfig, sel Selection, watch bool, logger *log.Logger) (backToMenu bool, err error) {
	var watcher *levels.Watcher
	if watch && sel.Dir != "" {
		w, err := levels.NewWatcher(sel.Dir)
		if err != nil {
			return false, fmt.Errorf("watch %s: %w", sel.Dir, err)
		}
		defer w.Close()
		watcher = w
	}

	model := NewModel(session, cfg, watcher, sel.Dir, logger)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	return ok && m.BackToMenu(), nil
}
