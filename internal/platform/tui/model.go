package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

// GameModel is the Bubble Tea model that drives one game.
// It samples held keys into each frame, steps the game with the measured
// frame time, and records finished runs.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	player     string
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	gameState  core.GameState
	lastTick   time.Time
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current win has been recorded
}

// NewGameModel creates a new game model.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		player:     player,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame, now) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		m.backToMenu = true
		return m, nil
	}

	return m, nil
}

// handleResize processes window resize events.
// The maze survives a resize; only the viewport changes.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	in := m.inputFrame
	in.Move, in.Look = m.keyMapper.Sample(now)
	in.DT = frameDelta(m.lastTick, now, m.config.FrameDuration())
	m.lastTick = now

	result := m.game.Step(in)
	m.gameState = result.State

	// Record the run once per win
	if m.gameState.Won && !m.runSaved {
		m.saveRun(true)
		m.runSaved = true
	}
	if !m.gameState.Won {
		m.runSaved = false
	}

	// Clear actions for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// Finish records the maze in progress as abandoned when the player leaves.
func (m *GameModel) Finish() {
	st := m.gameState
	if st.Won || st.GameOver || st.Elapsed <= 0 {
		return
	}
	m.saveRun(false)
}

// saveRun stores the current run. Failures are logged and play continues.
func (m *GameModel) saveRun(won bool) {
	if m.store == nil {
		return
	}
	run := storage.Run{
		GameID:   m.game.ID(),
		Player:   m.player,
		Seed:     m.gameState.Seed,
		Size:     m.gameState.Size,
		Duration: m.gameState.Elapsed,
		Bumps:    m.gameState.Contacts,
		Won:      won,
	}
	id, err := m.store.SaveRun(run)
	if err != nil {
		m.logger.Error("could not save run", "err", err)
		return
	}
	m.logger.Debug("run saved", "id", id, "game", run.GameID, "duration", run.Duration, "won", won)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".maze", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "err", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state after the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// closeGame releases game resources such as the audio device.
func closeGame(game registry.Game, logger *log.Logger) {
	c, ok := game.(io.Closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil && logger != nil {
		logger.Warn("could not close game", "game", game.ID(), "err", err)
	}
}

// Run starts the Bubble Tea program for a single game.
// Back and quit both end the program.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) error {
	defer closeGame(game, logger)

	model := localModel{NewGameModel(game, store, cfg, player, logger)}
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if lm, ok := final.(localModel); ok {
		lm.Finish()
	}
	return err
}

// localModel ends the program when the player leaves the game.
type localModel struct {
	GameModel
}

func (m localModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.GameModel.Update(msg)
	if gm, ok := next.(GameModel); ok {
		m.GameModel = gm
	}
	if m.BackToMenu() {
		return m, tea.Quit
	}
	return m, cmd
}
