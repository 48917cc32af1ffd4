package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

// sessionScreen is what a remote session currently shows.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenScores
	screenMaze
)

// SessionModel drives one SSH connection through menu, best times and
// play inside a single Bubble Tea program.
type SessionModel struct {
	store    *storage.Store
	config   core.RuntimeConfig
	player   string
	id       string
	logger   *log.Logger
	screen   sessionScreen
	menu     MenuModel
	scores   ScoreboardModel
	game     registry.Game
	play     GameModel
	quitting bool
}

// NewSessionModel starts a session at the menu. Every session gets a
// random id that tags its log lines.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) SessionModel {
	id := uuid.NewString()
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return SessionModel{
		store:  store,
		config: cfg,
		player: player,
		id:     id,
		logger: logger.With("session", id, "user", player),
		menu:   NewMenuModel(store, cfg),
	}
}

// SessionID returns the id tagging this session's log lines.
func (m SessionModel) SessionID() string {
	return m.id
}

// Init implements tea.Model.
func (m SessionModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = ws.Width, ws.Height
	}

	switch m.screen {
	case screenScores:
		return m.updateScores(msg)
	case screenMaze:
		return m.updateMaze(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.menu.WantsScoreboard():
		m.scores = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScores
		return m, nil
	case m.menu.Selected() != nil:
		return m.startMaze(m.menu.Selected().GameID)
	}
	return m, cmd
}

// startMaze creates a fresh maze of the chosen variant with a new seed.
func (m SessionModel) startMaze(id string) (tea.Model, tea.Cmd) {
	game, err := registry.Create(id)
	if err != nil {
		m.logger.Error("cannot create maze", "variant", id, "error", err)
		return m.toMenu(), nil
	}

	m.config.Seed = time.Now().UnixNano()
	m.game = game
	m.play = NewGameModel(game, m.store, m.config, m.player, m.logger)
	m.screen = screenMaze
	m.logger.Info("maze started", "variant", id, "seed", m.config.Seed)
	return m, m.play.Init()
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	m.scores = next.(ScoreboardModel)

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		return m.toMenu(), nil
	}
	return m, cmd
}

func (m SessionModel) updateMaze(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.play.Update(msg)
	m.play = next.(GameModel)

	switch {
	case m.play.IsQuitting():
		m.leaveMaze()
		m.quitting = true
		return m, tea.Quit
	case m.play.BackToMenu():
		m.leaveMaze()
		return m.toMenu(), nil
	}
	return m, cmd
}

// leaveMaze records an unfinished run and releases the maze.
func (m *SessionModel) leaveMaze() {
	if m.game == nil {
		return
	}
	m.play.Finish()
	st := m.play.State()
	m.logger.Info("maze left", "variant", m.game.ID(), "won", st.Won, "elapsed", st.Elapsed)
	closeGame(m.game, m.logger)
	m.game = nil
}

// toMenu returns to a freshly loaded menu so new best times show.
func (m SessionModel) toMenu() SessionModel {
	m.menu = NewMenuModel(m.store, m.config)
	m.screen = screenMenu
	return m
}

// View implements tea.Model.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenScores:
		return m.scores.View()
	case screenMaze:
		return m.play.View()
	}
	return m.menu.View()
}
