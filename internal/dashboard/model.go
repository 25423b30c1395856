package dashboard

import (
	"fmt"
	"time"

	response "carrozzeria/internal/adapter/http/dto/response"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Controller is the part of a Subscription the board drives from key presses.
type Controller interface {
	Interval() time.Duration
	SetInterval(d time.Duration) time.Duration
	Pause()
	Resume()
	Paused() bool
	Refresh()
}

// SnapshotMsg carries one fetch result into the program.
type SnapshotMsg struct {
	Snapshot response.DashboardResponse
	Err      error
	At       time.Time
}

type keyMap struct {
	Refresh key.Binding
	Faster  key.Binding
	Slower  key.Binding
	Pause   key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Faster:  key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "faster")),
	Slower:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "slower")),
	Pause:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause/resume")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	totalsStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
	pausedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFB86C"))
	tableBorder  = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
	headerStyle  = table.DefaultStyles().Header.BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).BorderBottom(true).Bold(true)
	selectedRow  = table.DefaultStyles().Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	tableColumns = []table.Column{
		{Title: "Employee", Width: 20},
		{Title: "Role", Width: 9},
		{Title: "Status", Width: 9},
		{Title: "Orders", Width: 14},
		{Title: "Vehicles", Width: 22},
		{Title: "Time", Width: 7},
		{Title: "Cost", Width: 11},
	}
)

// Model is the Bubble Tea model of the live board.
type Model struct {
	ctrl     Controller
	table    table.Model
	snapshot *response.DashboardResponse
	err      error
	updated  time.Time
	quitting bool
}

func NewModel(ctrl Controller) Model {
	styles := table.DefaultStyles()
	styles.Header = headerStyle
	styles.Selected = selectedRow

	t := table.New(
		table.WithColumns(tableColumns),
		table.WithFocused(true),
		table.WithHeight(12),
		table.WithStyles(styles),
	)
	return Model{ctrl: ctrl, table: t}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SnapshotMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		snap := msg.Snapshot
		m.snapshot = &snap
		m.err = nil
		m.updated = msg.At
		m.table.SetRows(tableRows(snap))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.Refresh):
			m.ctrl.Refresh()
			return m, nil
		case key.Matches(msg, keys.Slower):
			m.ctrl.SetInterval(m.ctrl.Interval() + IntervalStep)
			return m, nil
		case key.Matches(msg, keys.Faster):
			m.ctrl.SetInterval(m.ctrl.Interval() - IntervalStep)
			return m, nil
		case key.Matches(msg, keys.Pause):
			if m.ctrl.Paused() {
				m.ctrl.Resume()
			} else {
				m.ctrl.Pause()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := titleStyle.Render("Carrozzeria labor board")
	header += helpStyle.Render(fmt.Sprintf("  every %s", m.ctrl.Interval()))
	if m.ctrl.Paused() {
		header += "  " + pausedStyle.Render("PAUSED")
	}

	body := helpStyle.Render("waiting for the first snapshot...")
	if m.snapshot != nil {
		body = tableBorder.Render(m.table.View()) + "\n" +
			totalsStyle.Render(totalsLine(*m.snapshot)) + "\n" +
			helpStyle.Render("updated "+m.updated.Format(time.TimeOnly))
	}
	if m.err != nil {
		body += "\n" + errorStyle.Render("fetch failed: "+m.err.Error())
	}

	help := helpStyle.Render(fmt.Sprintf("%s • %s • %s • %s • %s",
		keys.Refresh.Help().Key+" "+keys.Refresh.Help().Desc,
		keys.Slower.Help().Key+"/"+keys.Faster.Help().Key+" interval",
		keys.Pause.Help().Key+" "+keys.Pause.Help().Desc,
		"↑/↓ scroll",
		keys.Quit.Help().Key+" "+keys.Quit.Help().Desc))

	return header + "\n\n" + body + "\n\n" + help + "\n"
}

func tableRows(snap response.DashboardResponse) []table.Row {
	out := make([]table.Row, 0, len(snap.Employees))
	for _, r := range rows(snap) {
		out = append(out, table.Row{r.Name, r.Role, r.Status, r.Orders, r.Vehicles, r.Elapsed, r.Cost})
	}
	return out
}
