package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/thinthought/spyke/internal/storage"
)

// Browser layout constants
const (
	minWidthForDetail = 80 // Minimum width to show the detail sidebar
	detailWidth       = 28 // Width of the detail sidebar
)

// BrowserKeyMap defines the key bindings for the scene browser.
type BrowserKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Refresh key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Refresh, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Refresh},
		{k.Back, k.Quit},
	}
}

// DefaultBrowserKeyMap returns default key bindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	return BrowserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "refresh"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BrowserModel is the Bubble Tea model for the stored-scene browser.
// It lists saved compositions and shows a node-type breakdown for the
// highlighted one.
type BrowserModel struct {
	store      *storage.Store
	entries    []storage.SceneEntry
	table      table.Model
	help       help.Model
	keys       BrowserKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool // True if user pressed back (not quit)
	showDetail bool // Whether to show the detail sidebar
}

// NewBrowserModel creates a new scene browser model.
func NewBrowserModel(store *storage.Store, width, height int) BrowserModel {
	keys := DefaultBrowserKeyMap()
	h := help.New()
	h.ShowAll = false

	m := BrowserModel{
		store:      store,
		keys:       keys,
		help:       h,
		width:      width,
		height:     height,
		showDetail: width >= minWidthForDetail,
	}

	m.table = m.createTable()
	m.loadEntries()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *BrowserModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Scene", Width: 20},
		{Title: "Nodes", Width: 7},
		{Title: "Updated", Width: 18},
	}

	tableWidth := m.width - 4 // Margins
	if m.showDetail {
		tableWidth -= detailWidth + 3 // Sidebar + border + gap
	}
	if tableWidth > 50 {
		columns[0].Width = tableWidth - 30
		if columns[0].Width > 30 {
			columns[0].Width = 30
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-8), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadEntries loads the stored scene list and refreshes the table.
func (m *BrowserModel) loadEntries() {
	if m.store == nil {
		m.entries = nil
		m.updateTableRows()
		return
	}

	entries, err := m.store.ListScenes()
	if err != nil {
		m.entries = nil
	} else {
		m.entries = entries
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current entries.
func (m *BrowserModel) updateTableRows() {
	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{
			e.Name,
			fmt.Sprintf("%d", e.Nodes),
			e.UpdatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the browser model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Refresh):
			m.loadEntries()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showDetail = m.width >= minWidthForDetail
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m BrowserModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	b.WriteString(titleStyle.Render(centerText("SAVED SCENES", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showDetail {
		detailStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Width(detailWidth).
			Padding(0, 1)
		detailRendered := detailStyle.Render(m.renderDetail())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tableRendered, "  ", detailRendered))
	} else {
		b.WriteString(centerText(tableRendered, m.width))
	}

	// Help bar
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m BrowserModel) renderTableContent() string {
	if len(m.entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No scenes saved yet.\nUse 'spyke scenes save' to add one.")
	}

	return m.table.View()
}

// renderDetail renders the node-type breakdown for the highlighted scene.
func (m BrowserModel) renderDetail() string {
	var b strings.Builder
	b.WriteString("Contents\n")
	b.WriteString(strings.Repeat("-", detailWidth-4))
	b.WriteString("\n")

	cursor := m.table.Cursor()
	if m.store == nil || cursor < 0 || cursor >= len(m.entries) {
		return b.String()
	}

	doc, err := m.store.LoadScene(m.entries[cursor].Name)
	if err != nil {
		b.WriteString("(unreadable)")
		return b.String()
	}

	counts := make(map[string]int)
	for _, n := range doc.Nodes {
		counts[n.Type]++
	}
	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Strings(types)

	for _, t := range types {
		name := t
		maxLen := detailWidth - 8
		if len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		b.WriteString(fmt.Sprintf("%s x%d\n", name, counts[t]))
	}

	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m BrowserModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m BrowserModel) IsQuitting() bool {
	return m.quitting
}

// RunBrowser runs the scene browser screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunBrowser(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewBrowserModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(BrowserModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
