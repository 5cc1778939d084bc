package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/game"
)

// RunStore persists the high score and finished runs.
type RunStore interface {
	game.KVStore
	SaveRun(sessionID string, score int) (string, error)
}

// Options configures a game Model.
type Options struct {
	Game    config.GameConfig
	Runtime core.RuntimeConfig

	Store  RunStore  // May be nil; nothing is persisted then
	Cues   game.Cues // May be nil for silence
	Logger *log.Logger
	Clock  core.Clock

	// Fullscreen reports whether the program starts on the alternate screen.
	Fullscreen bool

	// ScreenshotDir defaults to ~/.flappy/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model running one game session.
type Model struct {
	session  *game.Session
	renderer *game.Renderer
	screen   *core.Screen
	cfg      config.GameConfig
	runtime  core.RuntimeConfig

	keys   KeyMap
	help   help.Model
	logger *log.Logger

	fullscreen    bool
	screenshotDir string
	quitting      bool
}

// NewModel creates a model with a fresh session sized to the terminal.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	if rt.FrameRate <= 0 {
		rt.FrameRate = core.DefaultConfig().FrameRate
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	screen := core.NewScreen(rt.ScreenW, playRows(rt.ScreenH))
	w, h := opts.Game.Viewport.PlayfieldSize(screen.Width(), screen.Height())

	sessionOpts := []game.Option{
		game.WithSeed(rt.Seed),
		game.WithLogger(logger),
		game.WithClock(opts.Clock),
		game.WithCues(opts.Cues),
	}
	var session *game.Session
	if opts.Store != nil {
		sessionOpts = append(sessionOpts,
			game.WithStore(opts.Store),
			game.WithTransitionHook(func(_, to game.Mode) {
				if to == game.ModeGameOver {
					recordRun(opts.Store, logger, session.ID(), session.Sim().Score())
				}
			}),
		)
	}
	session = game.NewSession(opts.Game, w, h, sessionOpts...)

	dir := opts.ScreenshotDir
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, ".flappy", "screenshots")
		}
	}

	return Model{
		session:       session,
		renderer:      game.NewRenderer(opts.Game),
		screen:        screen,
		cfg:           opts.Game,
		runtime:       rt,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		logger:        logger.With("session", session.ID()),
		fullscreen:    opts.Fullscreen,
		screenshotDir: dir,
	}
}

// playRows returns the rows left for the playfield under the help footer.
func playRows(rows int) int {
	return max(rows-1, 1)
}

// recordRun saves a finished run. Failures are logged and dropped.
func recordRun(store RunStore, logger *log.Logger, sessionID string, score int) {
	if score <= 0 {
		return
	}
	id, err := store.SaveRun(sessionID, score)
	if err != nil {
		logger.Warn("could not save run", "score", score, "error", err)
		return
	}
	logger.Debug("run saved", "run", id, "score", score)
}

// Session returns the game session driven by this model.
func (m Model) Session() *game.Session {
	return m.session
}

// Fullscreen reports whether the model is on the alternate screen.
func (m Model) Fullscreen() bool {
	return m.fullscreen
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.runtime.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		// Update strictly before the View call that follows this message.
		m.session.Frame()
		return m, frameCmd(m.runtime.FrameRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionScreenshot:
		m.saveScreenshot()
	case core.ActionToggleFullscreen:
		return m.toggleFullscreen()
	case core.ActionExitFullscreen:
		if m.fullscreen {
			return m.toggleFullscreen()
		}
	case core.ActionFlap:
		m.session.Flap()
	}
	return m, nil
}

// handleMouse maps a left click to the fullscreen button or to a flap.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if game.FullscreenButton(m.screen.Width()).Contains(msg.X, msg.Y) {
		return m.toggleFullscreen()
	}
	if msg.Y < m.screen.Height() {
		m.session.Flap()
	}
	return m, nil
}

// toggleFullscreen switches between the alternate and the normal screen and
// asks for the terminal size, which re-renders through handleResize.
func (m Model) toggleFullscreen() (tea.Model, tea.Cmd) {
	m.fullscreen = !m.fullscreen
	m.logger.Debug("fullscreen toggled", "fullscreen", m.fullscreen, "mode", m.session.Mode())

	if m.fullscreen {
		return m, tea.Sequence(tea.EnterAltScreen, tea.WindowSize())
	}
	return m, tea.Sequence(tea.ExitAltScreen, tea.WindowSize())
}

// handleResize processes window resize events without resetting the game.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playRows(msg.Height))
	m.help.Width = msg.Width

	w, h := m.cfg.Viewport.PlayfieldSize(m.screen.Width(), m.screen.Height())
	m.session.Resize(w, h)
	return m, nil
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.renderer.Render(m.screen, m.session.Snapshot())

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "dir", m.screenshotDir, "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("flappy_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Render(m.screen, m.session.Snapshot())
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	programOpts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if opts.Fullscreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	_, err := tea.NewProgram(NewModel(opts), programOpts...).Run()
	return err
}
