package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/arand/kharcha/cmd/tui/internal/view"
	"github.com/arand/kharcha/internal/config"
	"github.com/arand/kharcha/internal/goal"
	"github.com/arand/kharcha/internal/importer"
	"github.com/arand/kharcha/internal/state"
	"github.com/arand/kharcha/internal/storage"
)

type model struct {
	stateService *state.Service
	goalService  *goal.Service
	parser       *importer.Parser

	currentView View

	dashboardView view.DashboardModel
	expensesView  view.ExpensesModel
	monthsView    view.MonthsModel
	goalView      view.GoalModel
}

type View int

const (
	ViewMenu      View = 0
	ViewDashboard View = 1
	ViewExpenses  View = 2
	ViewMonths    View = 3
	ViewGoal      View = 4
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		slog.Error("failed to open storage", "error", err, "path", cfg.Storage.Path)
		os.Exit(1)
	}

	stateSvc := state.NewService(store)
	goalSvc := goal.NewService(store)
	parser := importer.NewParser()

	if err := stateSvc.Load(context.Background()); err != nil {
		slog.Error("failed to load state", "error", err)
		os.Exit(1)
	}

	return model{
		stateService:  stateSvc,
		goalService:   goalSvc,
		parser:        parser,
		currentView:   ViewMenu,
		dashboardView: view.NewDashboardModel(stateSvc),
		expensesView:  view.NewExpensesModel(stateSvc, parser),
		monthsView:    view.NewMonthsModel(stateSvc),
		goalView:      view.NewGoalModel(goalSvc, stateSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.stateService)

				return m, m.dashboardView.Init()
			case "2":
				m.currentView = ViewExpenses
				m.expensesView = view.NewExpensesModel(m.stateService, m.parser)

				return m, m.expensesView.Init()
			case "3":
				m.currentView = ViewMonths
				m.monthsView = view.NewMonthsModel(m.stateService)

				return m, m.monthsView.Init()
			case "4":
				m.currentView = ViewGoal
				m.goalView = view.NewGoalModel(m.goalService, m.stateService)

				return m, m.goalView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewExpenses:
		var newModel tea.Model
		newModel, cmd = m.expensesView.Update(msg)
		m.expensesView = newModel.(view.ExpensesModel)
	case ViewMonths:
		var newModel tea.Model
		newModel, cmd = m.monthsView.Update(msg)
		m.monthsView = newModel.(view.MonthsModel)
	case ViewGoal:
		var newModel tea.Model
		newModel, cmd = m.goalView.Update(msg)
		m.goalView = newModel.(view.GoalModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Kharcha TUI\n\n" +
				"1. Dashboard\n" +
				"2. Expenses\n" +
				"3. Months\n" +
				"4. Goal Calculator\n\n" +
				"q. Quit",
		)
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewExpenses:
		return m.expensesView.View()
	case ViewMonths:
		return m.monthsView.View()
	case ViewGoal:
		return m.goalView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
