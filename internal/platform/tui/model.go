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

	"github.com/tommynicol/hexflap/internal/core"
	"github.com/tommynicol/hexflap/internal/session"
)

// helpRows is the space kept below the playfield for the key help.
const helpRows = 1

var (
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	pauseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

// Muter switches sound cues off and on at runtime.
type Muter interface {
	SetMuted(muted bool)
	Muted() bool
}

// Model is the Bubble Tea model that drives one session.
type Model struct {
	session  *session.Session
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	muter    Muter
	shotDir  string
	paused   bool
	quitting bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithMuter lets the mute key reach the sound player.
func WithMuter(m Muter) ModelOption {
	return func(model *Model) {
		model.muter = m
	}
}

// NewModel creates a Bubble Tea model for the given session.
func NewModel(sess *session.Session, cfg core.RuntimeConfig, logger *log.Logger, opts ...ModelOption) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	shotDir := ""
	if home, err := os.UserHomeDir(); err == nil {
		shotDir = filepath.Join(home, ".hexflap", "screenshots")
	}

	m := Model{
		session: sess,
		screen:  core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpRows, 0)),
		config:  cfg,
		keys:    KeyMapFor(sess.Game().ID()),
		help:    help.New(),
		logger:  logger,
		shotDir: shotDir,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.keys.Mute.SetEnabled(m.muter != nil)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-helpRows, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey latches game actions for the next tick. Platform keys act
// immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		return m, nil
	case key.Matches(msg, m.keys.Mute):
		m.muter.SetMuted(!m.muter.Muted())
		m.logger.Debug("sound toggled", "muted", m.muter.Muted())
		return m, nil
	}

	if m.paused {
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionNone && m.session.State().GameOver() {
		// Any key leaves the game-over screen
		action = core.ActionReset
	}
	m.session.Enqueue(action)
	return m, nil
}

// handleTick runs one session tick unless paused.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused {
		m.session.Tick()
	}
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() (string, error) {
	if m.shotDir == "" {
		return "", fmt.Errorf("no screenshot directory")
	}
	m.session.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", m.session.Game().ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("failed to write screenshot: %w", err)
	}
	return path, nil
}

// Paused reports whether the driver is holding ticks.
func (m Model) Paused() bool {
	return m.paused
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	if m.paused {
		m.screen.DrawTextCentered(m.screen.Height()/2, " PAUSED ", core.ColorSpark)
	}

	footer := helpStyle.Render(m.help.View(m.keys))
	if m.paused {
		footer = pauseStyle.Render("paused - press p to resume")
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// Run starts the Bubble Tea program for the session.
func Run(sess *session.Session, cfg core.RuntimeConfig, logger *log.Logger, opts ...ModelOption) error {
	p := tea.NewProgram(
		NewModel(sess, cfg, logger, opts...),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
