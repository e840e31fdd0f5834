package view

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arand/kharcha/internal/budget"
	"github.com/arand/kharcha/internal/expense"
	"github.com/arand/kharcha/internal/insight"
	"github.com/arand/kharcha/internal/month"
	"github.com/arand/kharcha/internal/state"
)

var (
	headingStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle    = lipgloss.NewStyle().Faint(true)
	positiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

type DashboardModel struct {
	CommonModel
	svc *state.Service

	st       state.State
	insights []insight.Insight
	loading  bool
	err      error
}

func NewDashboardModel(svc *state.Service) DashboardModel {
	return DashboardModel{svc: svc, loading: true}
}

func (m DashboardModel) Title() string { return "Dashboard" }

func (m DashboardModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m DashboardModel) Init() tea.Cmd {
	return m.refreshCmd()
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardRefreshMsg:
		m.loading = false
		m.err = msg.err
		m.st = msg.st
		m.insights = msg.insights

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.refreshCmd()
		}
	}

	return m, nil
}

func (m DashboardModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading dashboard...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	b := m.st.Budget
	monthly := month.ExpensesIn(m.st.Expenses, m.st.CurrentMonth, time.Now())
	spent := budget.SpentByBucket(monthly)
	allocated := budget.Allocate(m.st.Income, m.st.Config)

	// Budget fields are remaining balances; the allocation split is
	// recomputed here for the allocated column.
	rows := []struct {
		label     string
		allocated int64
		spent     int64
		remaining int64
	}{
		{"Fixed Expenses", allocated.FixedExpenses, spent[expense.BucketFixedExpenses], b.FixedExpenses},
		{"Planned Savings", allocated.PlannedSavings, spent[expense.BucketPlannedSavings], b.PlannedSavings},
		{"Investments", allocated.InvestmentAllocation, spent[expense.BucketInvestmentAllocation], b.InvestmentAllocation},
		{"Lifestyle", allocated.LifestyleBalance, spent[expense.BucketLifestyleBalance], b.LifestyleBalance},
	}

	body := headingStyle.Render(month.Label(m.st.CurrentMonth)) + "\n\n"
	body += fmt.Sprintf("%s %s\n", labelStyle.Render("Monthly Income:"), FormatAmount(m.st.Income))
	body += fmt.Sprintf("%s %s\n\n", labelStyle.Render("Carryover:"), FormatAmount(m.st.CarryoverBalance))

	for _, row := range rows {
		style := positiveStyle
		if row.remaining < 0 {
			style = warningStyle
		}

		body += fmt.Sprintf("%-16s  %12s allocated  %12s spent  %s left\n",
			row.label,
			FormatAmount(row.allocated),
			FormatAmount(row.spent),
			style.Render(FormatAmount(row.remaining)),
		)
	}

	body += fmt.Sprintf("\n%s %s\n", labelStyle.Render("Daily safe to spend:"), headingStyle.Render(FormatAmount(b.DailySafeToSpend)))

	body += "\n" + headingStyle.Render("Insights") + "\n"
	for _, in := range m.insights {
		body += fmt.Sprintf("%s %s\n", toneBadge(in.Tone), in.Message)
	}

	return lipgloss.NewStyle().Padding(1).Render(body)
}

func toneBadge(tone insight.Tone) string {
	switch tone {
	case insight.TonePositive:
		return positiveStyle.Render("●")
	case insight.ToneWarning:
		return warningStyle.Render("●")
	default:
		return labelStyle.Render("●")
	}
}

type dashboardRefreshMsg struct {
	st       state.State
	insights []insight.Insight
	err      error
}

func (m DashboardModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		st, err := m.svc.Recalculate(ctx)
		if err != nil {
			return dashboardRefreshMsg{err: err}
		}

		insights := insight.Generate(insight.Params{
			Income:         st.Income,
			Config:         st.Config,
			Expenses:       st.Expenses,
			ReferenceMonth: st.CurrentMonth,
			Today:          time.Now(),
		})

		return dashboardRefreshMsg{st: st, insights: insights}
	}
}
