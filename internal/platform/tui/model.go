package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/logging"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

func init() {
	registry.Register(registry.Frontend{
		ID:    registry.DefaultFrontend,
		Title: "Terminal UI (Bubble Tea)",
		Run:   Run,
	})
}

// Default terminal size until the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

type phase int

const (
	phaseTitle phase = iota
	phasePlaying
)

// Options configures the model beyond the game config.
type Options struct {
	Logger        *log.Logger
	Chime         *audio.Chime
	ScreenshotDir string // Empty disables ctrl+s
	SkipTitle     bool
}

// Model is the Bubble Tea model running one snake session.
type Model struct {
	game     *snake.Game
	cfg      core.RuntimeConfig
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	controls table.Model
	frame    core.InputFrame
	phase    phase
	width    int
	height   int
	opts     Options
	lastShot string // Path of the last screenshot
	quitting bool
}

// NewModel creates a model for a game built from cfg.
func NewModel(cfg core.RuntimeConfig, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	g := snake.New()
	g.Reset(cfg)

	keys := DefaultKeyMap()
	m := Model{
		game:     g,
		cfg:      cfg,
		screen:   core.NewScreen(defaultWidth, defaultHeight-1),
		keys:     keys,
		help:     help.New(),
		controls: controlsTable(keys),
		frame:    core.NewInputFrame(),
		width:    defaultWidth,
		height:   defaultHeight,
		opts:     opts,
	}
	if opts.SkipTitle {
		m.phase = phasePlaying
	}
	return m
}

// Init starts the tick loop when the title screen is skipped.
func (m Model) Init() tea.Cmd {
	if m.phase == phasePlaying {
		return tickCmd(m.cfg.TickRate)
	}
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.opts.Logger.Info("quit requested", "length", m.game.Snake().Len())
		return m, tea.Quit
	}

	if m.phase == phaseTitle {
		if msg.String() == "enter" || msg.String() == " " {
			m.phase = phasePlaying
			m.opts.Logger.Info("game started")
			return m, tickCmd(m.cfg.TickRate)
		}
		return m, nil
	}

	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	// Buffered until the next tick
	m.frame.Set(action)
	return m, nil
}

// handleResize processes window resize events. The board keeps its size;
// only the layout it is drawn with changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	// Last row is the help bar
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.phase != phasePlaying || m.quitting {
		return m, nil
	}

	result := m.game.Step(m.frame)
	if result.Reset {
		m.opts.Logger.Info("snake reset")
	}
	if result.Ate {
		m.opts.Logger.Debug("food eaten", "length", result.State.Length)
		m.opts.Chime.Eat()
	}

	// Clear input for next frame
	m.frame = core.NewInputFrame()

	// Continue ticking
	return m, tickCmd(m.cfg.TickRate)
}

// draw renders the HUD and the board into the screen buffer.
func (m Model) draw() {
	m.screen.Clear()
	m.screen.DrawHUD(m.game.Status())

	canvas := core.NewBoardCanvas(m.screen, m.game.Board(), core.HUDHeight)
	if !canvas.Fits() {
		m.screen.DrawTooSmall(m.game.Board())
		return
	}
	m.game.Render(canvas)

	if m.game.State().Paused {
		m.drawPaused(canvas)
	}
}

// drawPaused puts a small box in the middle of the board.
func (m Model) drawPaused(canvas *core.BoardCanvas) {
	const text = "PAUSED - press p"
	w, h := canvas.Size()
	boxW := len(text) + 4
	x := (m.screen.Width() - boxW) / 2
	y := core.HUDHeight + h/2 - 1
	if w < boxW {
		m.screen.DrawTextCentered(y+1, "PAUSED")
		return
	}
	m.screen.DrawBox(core.NewRect(x, y, boxW, 3))
	m.screen.DrawText(x+2, y+1, text)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	if m.opts.ScreenshotDir == "" {
		return
	}
	m.draw()

	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot failed", "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("snake_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "error", err)
		return
	}
	m.lastShot = path
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.phase == phaseTitle {
		return m.viewTitle()
	}

	m.draw()
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Game returns the running game.
func (m Model) Game() *snake.Game {
	return m.game
}

// Run plays one session in the terminal with Bubble Tea.
func Run(ctx context.Context, opts registry.Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	chime := audio.Open(opts.Sound, logger)
	defer chime.Close()

	shots := ""
	if dir := config.UserDir(); dir != "" {
		shots = filepath.Join(dir, "screenshots")
	}

	model := NewModel(opts.Config, Options{
		Logger:        logger,
		Chime:         chime,
		ScreenshotDir: shots,
	})

	logger.Info("starting", "driver", "tea",
		"board", fmt.Sprintf("%dx%d", opts.Config.Board.Width, opts.Config.Board.Height))

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		// Interrupted by a signal; not an error
		return nil
	}
	return err
}

// LastScreenshot returns the path of the last saved screenshot, if any.
func (m Model) LastScreenshot() string {
	return m.lastShot
}
