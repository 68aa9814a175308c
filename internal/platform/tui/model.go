package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-fx/internal/config"
	"github.com/vovakirdan/tui-fx/internal/core"
	"github.com/vovakirdan/tui-fx/internal/demo"
	"github.com/vovakirdan/tui-fx/internal/fx"
	"github.com/vovakirdan/tui-fx/internal/registry"
	"github.com/vovakirdan/tui-fx/internal/storage"
)

// resizeKey is the manager key of the fade played after a resize, so rapid
// resizes replace each other instead of stacking.
const resizeKey = "resize"

// Option configures a Model.
type Option func(*Model)

// WithStore persists the run journal and the counter in store.
func WithStore(store *storage.Store) Option {
	return func(m *Model) {
		m.store = store
	}
}

// WithLogger sets the logger for effect events.
func WithLogger(logger *log.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// WithRenderer sets the lipgloss renderer, e.g. one per SSH session.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(m *Model) {
		m.renderer = r
	}
}

// WithScreenshotDir sets where ctrl+s writes screenshots.
func WithScreenshotDir(dir string) Option {
	return func(m *Model) {
		m.screenshotDir = dir
	}
}

// WithoutCounterPersistence keeps the counter in memory only.
func WithoutCounterPersistence() Option {
	return func(m *Model) {
		m.ephemeral = true
	}
}

// Model is the Bubble Tea model of the effects demo.
// The last terminal row is reserved for the help bar.
type Model struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	panel   *demo.Counter
	screen  *core.Screen
	effects *fx.Manager
	journal *journal
	clock   *frameClock
	keys    KeyMap
	help    help.Model

	store         *storage.Store
	logger        *log.Logger
	renderer      *lipgloss.Renderer
	screenshotDir string
	ephemeral     bool

	inputFrame core.InputFrame
	state      core.AppState
	saved      uint8 // counter value last persisted
	quitting   bool
}

// NewModel creates the demo model for a terminal of w x h cells.
func NewModel(cfg config.Config, w, h int, opts ...Option) Model {
	m := Model{
		cfg:        cfg,
		panel:      demo.New().WithStyle(cfg.Palette.Colors().PanelStyle()),
		keys:       DefaultKeyMap(cfg.Bindings),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.renderer == nil {
		m.renderer = lipgloss.DefaultRenderer()
	}
	if m.screenshotDir == "" {
		m.screenshotDir = filepath.Join(config.Dir(), "screenshots")
	}

	m.runtime = cfg.Runtime(w, h)
	m.screen = core.NewScreen(w, max(h-1, 0))
	m.clock = &frameClock{fixed: m.runtime.FixedDelta}
	m.journal = newJournal(m.store, m.logger)
	m.effects = fx.NewManager(fx.WithCompletionHook(m.journal.finish))
	m.help.Width = w

	m.panel.Reset(m.runtime)

	if m.store != nil && !m.ephemeral {
		if v, err := m.store.LoadCounter(); err == nil {
			m.panel.SetValue(v)
			m.saved = v
		} else {
			m.logger.Warn("could not load counter", "error", err)
		}
	}
	m.state = m.panel.State()
	m.panel.Render(m.screen)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.FrameInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Effect and UI actions apply at once;
// counter changes and preset triggers wait for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, presetID := m.keys.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.persistCounter()
		return m, tea.Quit
	case core.ActionCancel:
		if hs := m.effects.Handles(); len(hs) > 0 {
			m.effects.Cancel(hs[len(hs)-1])
		}
		return m, nil
	case core.ActionClear:
		if n := m.effects.Clear(); n > 0 {
			m.logger.Info("effects cleared", "count", n)
		}
		return m, nil
	case core.ActionScreenshot:
		m.saveScreenshot()
		return m, nil
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case core.ActionNone:
		if presetID != "" {
			m.inputFrame.Trigger(presetID)
		}
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize processes window resize events and replays the fade-in over
// the new layout.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.help.Width = msg.Width

	e, err := registry.Build("fade-in", m.cfg, m.screen.Bounds())
	if err == nil {
		m.journal.start(m.effects.AddUnique(resizeKey, e), "fade-in")
	}
	return m, nil
}

// handleTick advances the demo by one frame: step the panel, start the
// requested presets, redraw the panel and overlay the effects.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	delta := m.clock.delta(now)

	result := m.panel.Step(m.inputFrame)
	m.state = result.State
	for _, id := range result.Triggers {
		m.trigger(id)
	}

	m.panel.Render(m.screen)
	m.journal.frame(delta)
	m.effects.Process(delta, m.screen, m.screen.Bounds())

	if m.state.Counter != m.saved {
		m.persistCounter()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.runtime.FrameInterval())
}

// trigger builds a preset over the whole screen and hands it to the manager.
func (m *Model) trigger(presetID string) {
	e, err := registry.Build(presetID, m.cfg, m.screen.Bounds())
	if err != nil {
		m.logger.Warn("cannot start preset", "preset", presetID, "error", err)
		return
	}
	m.journal.start(m.effects.Add(e), presetID)
}

// persistCounter saves the counter if it changed since the last save.
func (m *Model) persistCounter() {
	v := m.panel.Value()
	if m.store == nil || m.ephemeral || v == m.saved {
		return
	}
	if err := m.store.SaveCounter(v); err != nil {
		m.logger.Warn("could not save counter", "error", err)
		return
	}
	m.saved = v
}

// saveScreenshot saves the current frame, effects included, to a file.
func (m *Model) saveScreenshot() {
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(m.screenshotDir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("fxdemo_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the last processed frame and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreenWith(m.renderer, m.screen) + "\n" + m.help.View(m.keys)
}

// State returns the demo state as of the last tick.
func (m Model) State() core.AppState {
	return m.state
}

// ActiveEffects returns the number of effects still running.
func (m Model) ActiveEffects() int {
	return m.effects.Len()
}

// Screen returns the frame buffer.
func (m Model) Screen() *core.Screen {
	return m.screen
}

// Run starts the Bubble Tea program in the current terminal.
func Run(cfg config.Config, w, h int, opts ...Option) error {
	model := NewModel(cfg, w, h, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
