package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/arand/kharcha/internal/month"
	"github.com/arand/kharcha/internal/state"
)

type monthsState int

const (
	monthsStateBrowse monthsState = iota
	monthsStateConfirm
)

type MonthsModel struct {
	CommonModel
	svc *state.Service

	state monthsState
	table table.Model
	st    state.State
	form  *huh.Form

	status string

	formConfirm bool
}

func NewMonthsModel(svc *state.Service) MonthsModel {
	columns := []table.Column{
		{Title: "Month", Width: 10},
		{Title: "Income", Width: 14},
		{Title: "Spent", Width: 14},
		{Title: "Savings", Width: 14},
		{Title: "Completed", Width: 20},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return MonthsModel{svc: svc, table: t}
}

func (m MonthsModel) Title() string { return "Months" }

func (m MonthsModel) ShortHelp() string {
	if m.state == monthsStateConfirm {
		return "Enter: confirm | Esc: cancel"
	}

	return "Esc: back | c: complete current month"
}

func (m MonthsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m MonthsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case monthsLoadedMsg:
		m.st = msg.st
		m.refreshTable()

		return m, nil

	case monthCompletedMsg:
		m.state = monthsStateBrowse
		m.form = nil
		m.table.Focus()

		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.status = fmt.Sprintf("Month completed. Now tracking %s.", month.Label(msg.st.CurrentMonth))

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 12)
		return m, nil
	}

	switch m.state {
	case monthsStateBrowse:
		return m.updateBrowse(msg)
	case monthsStateConfirm:
		return m.updateConfirm(msg)
	}

	return m, nil
}

func (m MonthsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "c":
			return m.enterConfirmMode()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m MonthsModel) enterConfirmMode() (tea.Model, tea.Cmd) {
	m.formConfirm = false

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("confirm").
				Title(fmt.Sprintf("Complete %s?", month.Label(m.st.CurrentMonth))).
				Description("Expenses for this month become read-only and leftover lifestyle balance carries over.").
				Affirmative("Complete").
				Negative("Cancel").
				Value(&m.formConfirm),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = monthsStateConfirm
	m.table.Blur()

	return m, m.form.Init()
}

func (m MonthsModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = monthsStateBrowse
			m.form = nil
			m.table.Focus()

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if !m.formConfirm {
		m.state = monthsStateBrowse
		m.form = nil
		m.table.Focus()

		return m, nil
	}

	return m, m.completeCmd()
}

func (m MonthsModel) View() string {
	monthly := month.ExpensesIn(m.st.Expenses, m.st.CurrentMonth, time.Now())

	header := fmt.Sprintf(
		"Current month: %s  |  Spent so far: %s",
		activeStyle(month.Label(m.st.CurrentMonth)),
		FormatAmount(month.TotalSpent(monthly)),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state == monthsStateConfirm && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(54).
			Render(m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *MonthsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.st.Snapshots))
	for _, s := range m.st.Snapshots {
		rows = append(rows, table.Row{
			s.Month,
			FormatAmount(s.Income),
			FormatAmount(s.TotalSpent),
			FormatAmount(s.Savings),
			s.CompletedAt.Format("2006-01-02 15:04"),
		})
	}
	m.table.SetRows(rows)
}

// Messages

type monthsLoadedMsg struct {
	st state.State
}

func (m MonthsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return monthsLoadedMsg{st: m.svc.Current()}
	}
}

type monthCompletedMsg struct {
	st  state.State
	err error
}

func (m MonthsModel) completeCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		st, err := m.svc.CompleteMonth(ctx)

		return monthCompletedMsg{st: st, err: err}
	}
}
