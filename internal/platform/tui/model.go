package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thinthought/spyke/internal/composition"
	"github.com/thinthought/spyke/internal/core"
	"github.com/thinthought/spyke/internal/scene"
)

// Model is the Bubble Tea model that runs a scene composition.
// It keeps the source document around so restart can rebuild the scene
// from scratch.
type Model struct {
	doc        composition.Document
	scene      *scene.Scene
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	paused     bool
	debug      bool
	quitting   bool
	backToMenu bool
	err        error
}

// NewModel creates a Bubble Tea model running the given composition.
func NewModel(doc composition.Document, cfg core.RuntimeConfig) (Model, error) {
	s, err := composition.Build(doc)
	if err != nil {
		return Model{}, fmt.Errorf("tui: cannot build scene: %w", err)
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	s.SetViewport(screen.Bounds())

	return Model{
		doc:        doc,
		scene:      s,
		screen:     screen,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}, nil
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
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionPause:
		m.paused = !m.paused
	case core.ActionDebug:
		m.debug = !m.debug
	case core.ActionRestart:
		return m.restart()
	case core.ActionBack:
		m.backToMenu = true
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The scene keeps running;
// only the viewport changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.scene.SetViewport(m.screen.Bounds())
	return m, nil
}

// handleTick advances the simulation by one fixed step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused || m.err != nil {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	dt := 1.0 / float64(m.config.TickRate)
	if err := m.scene.Update(m.inputFrame, dt); err != nil {
		m.err = err
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// restart rebuilds the scene from the source document.
func (m Model) restart() (tea.Model, tea.Cmd) {
	s, err := composition.Build(m.doc)
	if err != nil {
		m.err = fmt.Errorf("tui: cannot rebuild scene: %w", err)
		return m, nil
	}
	s.SetViewport(m.screen.Bounds())
	m.scene = s
	m.paused = false
	m.err = nil
	m.inputFrame.Clear()
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.scene.Render(m.screen)

	if m.debug {
		status := fmt.Sprintf("entities:%d environments:%d", m.scene.NumEntities(), m.scene.NumEnvironments())
		m.screen.DrawText(0, 0, status, core.ColorGray)
	}
	if m.paused {
		m.screen.DrawTextCentered(m.screen.Height()/2, "PAUSED", core.ColorBrightWhite)
	}
	if m.err != nil {
		m.screen.DrawText(0, m.screen.Height()-1, "error: "+m.err.Error(), core.ColorBrightRed)
	}

	return RenderScreen(m.screen)
}

// BackToMenu reports whether the player exited back to the menu rather
// than quitting outright.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting && !m.backToMenu
}

// Run starts the Bubble Tea program for the given composition.
func Run(doc composition.Document, cfg core.RuntimeConfig) error {
	model, err := NewModel(doc, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
