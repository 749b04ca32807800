// Package tui is the interactive PCP 360 dashboard: one screen per panel,
// each owning its view-state and fetching lazily the first time it is
// opened. Panels never share state; a slow response for one panel cannot
// touch another.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pcp360/internal/api"
	"pcp360/internal/demo"
	"pcp360/internal/panel"
)

type viewMode int

const (
	modeOverview viewMode = iota
	modeInsights
	modeCapacity
	modeBoard
	modePegging
)

// One result message per panel. Each carries the ticket of the request that
// produced it so stale responses are dropped on resolve.
type (
	summaryMsg struct {
		tk      panel.Ticket
		payload *api.DashboardSummary
		err     error
	}
	insightsMsg struct {
		tk      panel.Ticket
		payload *api.InsightsResponse
		err     error
	}
	capacityMsg struct {
		tk      panel.Ticket
		payload *api.CapacityIA
		err     error
	}
	boardMsg struct {
		tk      panel.Ticket
		payload *api.PlanningBoard
		err     error
	}
	peggingMsg struct {
		tk      panel.Ticket
		payload *api.PeggingLite
		err     error
	}
)

type Model struct {
	client api.Client

	mode   viewMode
	width  int
	height int

	overview *panel.Controller[*api.DashboardSummary]
	insights *panel.Controller[*api.InsightsResponse]
	capacity *panel.Controller[*api.CapacityIA]
	board    *panel.Controller[*api.PlanningBoard]
	pegging  *panel.Controller[*api.PeggingLite]

	insightsTable table.Model
	capacityTable table.Model
	peggingTable  table.Model
	detail        viewport.Model

	material textinput.Model
	editing  bool

	spin spinner.Model
	help help.Model
	keys keyMap
}

func Run(client api.Client) error {
	p := tea.NewProgram(NewModel(client), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func NewModel(client api.Client) Model {
	insightsTable := table.New(
		table.WithColumns(insightsColumns(80)),
		table.WithRows(nil),
		table.WithFocused(true),
	)
	insightsTable.SetStyles(minimalTableStyles())
	capacityTable := table.New(
		table.WithColumns(capacityColumns(80)),
		table.WithRows(nil),
		table.WithFocused(true),
	)
	capacityTable.SetStyles(minimalTableStyles())
	peggingTable := table.New(
		table.WithColumns(peggingColumns(80)),
		table.WithRows(nil),
		table.WithFocused(true),
	)
	peggingTable.SetStyles(minimalTableStyles())

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().AlignVertical(lipgloss.Top).Align(lipgloss.Left)

	ti := textinput.New()
	ti.Placeholder = "código do material"
	ti.CharLimit = 40
	ti.SetValue(demo.CanonicalMaterial)

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = lipgloss.NewStyle().Foreground(pcpAccent)

	return Model{
		client: client,
		mode:   modeOverview,

		overview: panel.New(panel.Options[*api.DashboardSummary]{
			Empty: func(s *api.DashboardSummary) bool {
				return s == nil || (len(s.Criticos) == 0 && len(s.OrdensCriticas) == 0)
			},
		}),
		insights: panel.New(panel.Options[*api.InsightsResponse]{
			Empty: func(r *api.InsightsResponse) bool { return r == nil || len(r.Insights) == 0 },
		}),
		capacity: panel.New(panel.Options[*api.CapacityIA]{
			Empty: func(c *api.CapacityIA) bool {
				return c == nil || c.TotalRecursos == 0 || len(c.Insights) == 0
			},
		}),
		board: panel.New(panel.Options[*api.PlanningBoard]{
			RequiresCode: true,
			Empty:        func(b *api.PlanningBoard) bool { return b == nil || len(b.Series.Labels) == 0 },
		}),
		pegging: panel.New(panel.Options[*api.PeggingLite]{
			RequiresCode: true,
			Fallback: func(code string) (*api.PeggingLite, bool) {
				p := demo.Pegging(code)
				return p, p != nil
			},
			Empty: func(p *api.PeggingLite) bool {
				return p == nil || p.SemOrdens || len(p.Ordens) == 0
			},
		}),

		insightsTable: insightsTable,
		capacityTable: capacityTable,
		peggingTable:  peggingTable,
		detail:        vp,
		material:      ti,
		spin:          sp,
		help:          help.New(),
		keys:          defaultKeyMap(),
	}
}

// Init fetches the overview immediately; every other panel waits until its
// screen is opened.
func (m Model) Init() tea.Cmd {
	return m.submitOverview()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.refreshAll()
		return m, nil

	case spinner.TickMsg:
		if !m.anyLoading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case summaryMsg:
		m.overview.Resolve(msg.tk, msg.payload, msg.err)
		m.refreshDetail()
		return m, nil

	case insightsMsg:
		st := m.insights.Resolve(msg.tk, msg.payload, msg.err)
		m.refreshInsights(st)
		return m, nil

	case capacityMsg:
		st := m.capacity.Resolve(msg.tk, msg.payload, msg.err)
		m.refreshCapacity(st)
		return m, nil

	case boardMsg:
		m.board.Resolve(msg.tk, msg.payload, msg.err)
		m.refreshDetail()
		return m, nil

	case peggingMsg:
		st := m.pegging.Resolve(msg.tk, msg.payload, msg.err)
		m.refreshPegging(st)
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			switch msg.String() {
			case "enter":
				m.editing = false
				m.material.Blur()
				return m, m.submitCurrent()
			case "esc":
				m.editing = false
				m.material.Blur()
				return m, nil
			default:
				var cmd tea.Cmd
				m.material, cmd = m.material.Update(msg)
				return m, cmd
			}
		}

		switch msg.String() {
		case "?":
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case "q", "ctrl+c":
			return m, tea.Quit

		case "1":
			return m, m.activate(modeOverview)
		case "2":
			return m, m.activate(modeInsights)
		case "3":
			return m, m.activate(modeCapacity)
		case "4":
			return m, m.activate(modeBoard)
		case "5":
			return m, m.activate(modePegging)

		case "e":
			if m.mode == modeBoard || m.mode == modePegging {
				m.editing = true
				return m, m.material.Focus()
			}

		case "enter":
			if m.mode == modeBoard || m.mode == modePegging {
				return m, m.submitCurrent()
			}

		case "r":
			return m, m.refreshCurrent()
		}
	}

	var cmd tea.Cmd
	switch m.mode {
	case modeOverview, modeBoard:
		m.detail, cmd = m.detail.Update(msg)
	case modeInsights:
		m.insightsTable, cmd = m.insightsTable.Update(msg)
	case modeCapacity:
		m.capacityTable, cmd = m.capacityTable.Update(msg)
	case modePegging:
		m.peggingTable, cmd = m.peggingTable.Update(msg)
	}
	return m, cmd
}

// activate switches screens and fetches the panel's data if it was never
// loaded. Pegging is the exception: it only fetches on explicit submit.
func (m *Model) activate(mode viewMode) tea.Cmd {
	m.mode = mode
	m.layout()
	m.applyFocus()

	var cmd tea.Cmd
	switch mode {
	case modeOverview:
		if m.overview.State().Phase == panel.Idle {
			cmd = m.submitOverview()
		}
	case modeInsights:
		if m.insights.State().Phase == panel.Idle {
			cmd = m.submitInsights()
		}
	case modeCapacity:
		if m.capacity.State().Phase == panel.Idle {
			cmd = m.submitCapacity()
		}
	case modeBoard:
		if m.board.State().Phase == panel.Idle {
			cmd = m.submitBoard()
		}
	}
	m.refreshDetail()
	return cmd
}

// refreshCurrent re-triggers whichever panel is on screen.
func (m *Model) refreshCurrent() tea.Cmd {
	switch m.mode {
	case modeOverview:
		return m.submitOverview()
	case modeInsights:
		return m.submitInsights()
	case modeCapacity:
		return m.submitCapacity()
	case modeBoard:
		return m.submitBoard()
	case modePegging:
		return m.submitPegging()
	}
	return nil
}

func (m *Model) submitCurrent() tea.Cmd {
	switch m.mode {
	case modeBoard:
		return m.submitBoard()
	case modePegging:
		return m.submitPegging()
	}
	return nil
}

func (m *Model) submitOverview() tea.Cmd {
	tk, ok := m.overview.Trigger("")
	if !ok {
		return nil
	}
	return tea.Batch(m.spin.Tick, m.fetchSummary(tk))
}

func (m *Model) submitInsights() tea.Cmd {
	tk, ok := m.insights.Trigger("")
	if !ok {
		return nil
	}
	return tea.Batch(m.spin.Tick, m.fetchInsights(tk))
}

func (m *Model) submitCapacity() tea.Cmd {
	tk, ok := m.capacity.Trigger("")
	if !ok {
		return nil
	}
	return tea.Batch(m.spin.Tick, m.fetchCapacity(tk))
}

func (m *Model) submitBoard() tea.Cmd {
	tk, ok := m.board.Trigger(m.material.Value())
	m.refreshDetail()
	if !ok {
		return nil
	}
	return tea.Batch(m.spin.Tick, m.fetchBoard(tk))
}

func (m *Model) submitPegging() tea.Cmd {
	tk, ok := m.pegging.Trigger(m.material.Value())
	if !ok {
		return nil
	}
	return tea.Batch(m.spin.Tick, m.fetchPegging(tk))
}

// Fetch commands run off the update loop; the client enforces the timeout.

func (m Model) fetchSummary(tk panel.Ticket) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		payload, err := c.Summary(context.Background())
		return summaryMsg{tk: tk, payload: payload, err: err}
	}
}

func (m Model) fetchInsights(tk panel.Ticket) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		payload, err := c.Insights(context.Background())
		return insightsMsg{tk: tk, payload: payload, err: err}
	}
}

func (m Model) fetchCapacity(tk panel.Ticket) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		payload, err := c.CapacityIA(context.Background())
		return capacityMsg{tk: tk, payload: payload, err: err}
	}
}

func (m Model) fetchBoard(tk panel.Ticket) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		payload, err := c.Board(context.Background(), tk.Code, 0)
		return boardMsg{tk: tk, payload: payload, err: err}
	}
}

func (m Model) fetchPegging(tk panel.Ticket) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		payload, err := c.Pegging(context.Background(), tk.Code)
		return peggingMsg{tk: tk, payload: payload, err: err}
	}
}

func (m Model) anyLoading() bool {
	return m.overview.State().Phase == panel.Loading ||
		m.insights.State().Phase == panel.Loading ||
		m.capacity.State().Phase == panel.Loading ||
		m.board.State().Phase == panel.Loading ||
		m.pegging.State().Phase == panel.Loading
}

func (m *Model) layout() {
	if m.height < 8 {
		m.height = 8
	}
	// header + tab bar + footer
	bodyH := m.height - 4
	if bodyH < 3 {
		bodyH = 3
	}
	innerW := m.width - 4
	if innerW < 10 {
		innerW = 10
	}
	// title + rule + hint above the component
	compH := bodyH - 3
	if compH < 3 {
		compH = 3
	}

	m.insightsTable.SetWidth(innerW)
	m.insightsTable.SetHeight(compH)
	safeSetColumns(&m.insightsTable, insightsColumns(innerW))

	m.capacityTable.SetWidth(innerW)
	m.capacityTable.SetHeight(compH)
	safeSetColumns(&m.capacityTable, capacityColumns(innerW))

	// Pegging reserves the material line and the summary line.
	m.peggingTable.SetWidth(innerW)
	m.peggingTable.SetHeight(maxInt(3, compH-3))
	safeSetColumns(&m.peggingTable, peggingColumns(innerW))

	m.detail.Width = innerW
	m.detail.Height = compH
	if m.mode == modeBoard {
		m.detail.Height = maxInt(3, compH-1)
	}

	m.material.Width = minInt(40, maxInt(10, innerW-20))

	m.applyFocus()
}

func (m *Model) applyFocus() {
	m.insightsTable.Blur()
	m.capacityTable.Blur()
	m.peggingTable.Blur()

	switch m.mode {
	case modeInsights:
		m.insightsTable.Focus()
	case modeCapacity:
		m.capacityTable.Focus()
	case modePegging:
		m.peggingTable.Focus()
	}
}

// --- Help / keymap -----------------------------------------------------------

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Panels  key.Binding
	Submit  key.Binding
	Edit    key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Panels: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "panels"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "fetch"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit material"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Panels, k.Submit, k.Edit, k.Refresh, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Panels},
		{k.Submit, k.Edit, k.Refresh},
		{k.Help, k.Quit},
	}
}

var _ help.KeyMap = keyMap{}

func (m Model) keysForMode() keyMap {
	k := m.keys
	material := m.mode == modeBoard || m.mode == modePegging
	k.Submit.SetEnabled(material)
	k.Edit.SetEnabled(material)
	return k
}
