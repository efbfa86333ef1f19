package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/catjump/internal/core"
	"github.com/vovakirdan/catjump/internal/registry"
	"github.com/vovakirdan/catjump/internal/storage"
)

// runDetails is implemented by games that report more than a score.
type runDetails interface {
	Eaten() int
	SkinID() string
}

// configReporter is implemented by games that load a tunables file on Reset.
type configReporter interface {
	ConfigErr() error
}

// scoreSavedMsg reports the outcome of persisting a finished run.
type scoreSavedMsg struct {
	gameID string
	run    storage.Run
	err    error
}

// GameModel is the Bubble Tea model for playing one game mode.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	renderer   *screenRenderer
	store      *storage.Store
	config     core.RuntimeConfig
	logger     *log.Logger
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	width      int
	height     int
	canGoBack  bool // Whether B returns to a menu
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the score has been saved for current game over
}

// NewGameModel creates a new Bubble Tea model for the given game.
// A nil store disables persistence; a nil logger discards logs.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if store != nil {
		if high, err := store.HighScore(game.ID()); err != nil {
			logger.Warn("could not read high score", "mode", game.ID(), "error", err)
		} else {
			cfg.HighScore = max(cfg.HighScore, high)
		}
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := GameModel{
		game:       game,
		store:      store,
		config:     cfg,
		logger:     logger,
		renderer:   newScreenRenderer(),
		keyMapper:  NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.screenHeight())
	return m
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.resetGame()
	return tickCmd(m.config.TickInterval)
}

// resetGame starts a new run and reports tunables problems.
func (m *GameModel) resetGame() {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreSaved = false

	if cr, ok := m.game.(configReporter); ok && cr.ConfigErr() != nil {
		m.logger.Warn("using default tunables", "error", cr.ConfigErr())
	}
	m.logger.Debug("run started", "mode", m.game.ID(), "seed", m.config.Seed)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case scoreSavedMsg:
		if msg.err != nil {
			m.logger.Warn("could not save score", "mode", msg.gameID, "error", msg.err)
		} else {
			m.logger.Info("score saved", "mode", msg.gameID, "score", msg.run.Score, "level", msg.run.Level)
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()

	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.width, m.screenHeight())
		return m, nil
	case key.Matches(msg, keys.Back):
		if m.canGoBack && (m.gameState.GameOver || m.gameState.Paused) {
			m.backToMenu = true
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
// The game scales the world to any size, so the run continues.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, m.screenHeight())
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.HighScore = max(m.config.HighScore, m.gameState.Score)
		m.config.Seed = time.Now().UnixNano()
		m.resetGame()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickInterval)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	for _, e := range result.Events {
		m.logger.Debug("sound", "event", e, "mode", m.game.ID())
	}

	cmds := []tea.Cmd{tickCmd(m.config.TickInterval)}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.scoreSaved = true
		run := m.finishedRun()
		m.logger.Info("run finished", "mode", m.game.ID(), "score", run.Score, "level", run.Level, "eaten", run.Eaten)
		if m.store != nil && run.Score > 0 {
			cmds = append(cmds, saveRunCmd(m.store, m.game.ID(), run))
		}
	}

	m.inputFrame.Clear()
	return m, tea.Batch(cmds...)
}

// finishedRun summarises the current run for storage.
func (m GameModel) finishedRun() storage.Run {
	run := storage.Run{
		Score: m.gameState.Score,
		Level: m.gameState.Level,
	}
	if d, ok := m.game.(runDetails); ok {
		run.Eaten = d.Eaten()
		run.Skin = d.SkinID()
	}
	return run
}

// saveRunCmd persists a run off the update loop.
func saveRunCmd(store *storage.Store, gameID string, run storage.Run) tea.Cmd {
	return func() tea.Msg {
		_, err := store.SaveRun(gameID, run)
		return scoreSavedMsg{gameID: gameID, run: run, err: err}
	}
}

// screenHeight returns the rows left for the game above the help footer.
func (m GameModel) screenHeight() int {
	footer := 1
	if m.help.ShowAll {
		footer = 0
		for _, col := range m.keyMapper.Keys().FullHelp() {
			footer = max(footer, len(col))
		}
	}
	return max(m.height-footer, 1)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".catjump", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return m.renderer.Render(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state as of the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewGameModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
