package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/wallbreaker/internal/config"
	"github.com/vovakirdan/wallbreaker/internal/core"
)

type appScreen int

const (
	screenMenu appScreen = iota
	screenGame
	screenScores
)

// AppModel manages the full flow: menu -> game or scoreboard -> menu.
// It is the top-level model for SSH sessions and the local menu.
type AppModel struct {
	env        Env
	config     core.RuntimeConfig
	username   string
	sessionID  string
	difficulty config.DifficultyPreset
	screen     appScreen
	menu       MenuModel
	game       *Model
	scores     ScoreboardModel
	quitting   bool
}

// NewAppModel creates a new app model for username.
func NewAppModel(env Env, cfg core.RuntimeConfig, username string, preset config.DifficultyPreset) AppModel {
	return AppModel{
		env:        env,
		config:     cfg,
		username:   username,
		sessionID:  uuid.NewString(),
		difficulty: preset,
		menu:       NewMenuModel(cfg, env.Config.Levels.Pack, preset),
	}
}

// SessionID identifies this app session in logs.
func (m AppModel) SessionID() string {
	return m.sessionID
}

// Init initializes the app.
func (m AppModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the current screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

func (m AppModel) toMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.game = nil
	m.menu = NewMenuModel(m.config, m.env.Config.Levels.Pack, m.difficulty)
	return m, m.menu.Init()
}

// updateMenu handles updates when in menu mode.
func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		m.screen = screenScores
		m.scores = NewScoreboardModel(m.env.Ledger, m.env.Store, m.config.ScreenW, m.config.ScreenH)
		return m, m.scores.Init()
	}

	if sel := m.menu.Selected(); sel != nil {
		m.difficulty = sel.Difficulty
		session, err := m.env.NewSession(*sel)
		if err != nil {
			m.env.logger().Error("cannot start game", "user", m.username, "pack", sel.Pack, "err", err)
			return m.toMenu()
		}
		m.env.logger().Info("game started",
			"user", m.username,
			"session", m.sessionID,
			"pack", session.PackName(),
			"difficulty", sel.Difficulty,
		)

		game := NewModel(session, m.config, nil, "", m.env.logger())
		m.game = &game
		m.screen = screenGame
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		return m.toMenu()
	}

	return m, cmd
}

// updateScores handles updates when on the scoreboard.
func (m AppModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if scoresModel, ok := newModel.(ScoreboardModel); ok {
		m.scores = scoresModel
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		return m.toMenu()
	}

	return m, cmd
}

// View renders the current screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	}
	return m.menu.View()
}

// RunApp runs the menu driven app locally.
func RunApp(env Env, cfg core.RuntimeConfig, preset config.DifficultyPreset) error {
	p := tea.NewProgram(
		NewAppModel(env, cfg, "local", preset),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
