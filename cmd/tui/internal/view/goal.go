package view

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/arand/kharcha/internal/goal"
	"github.com/arand/kharcha/internal/money"
	"github.com/arand/kharcha/internal/state"
)

type GoalModel struct {
	CommonModel
	goals *goal.Service
	svc   *state.Service

	form    *huh.Form
	editing bool
	g       goal.Goal
	plan    goal.Plan

	status string

	// Form bindings
	formName   string
	formCost   string
	formMonths string
}

func NewGoalModel(goals *goal.Service, svc *state.Service) GoalModel {
	return GoalModel{goals: goals, svc: svc}
}

func (m GoalModel) Title() string { return "Goal Calculator" }

func (m GoalModel) ShortHelp() string {
	if m.editing {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | e: edit goal"
}

func (m GoalModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m GoalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case goalLoadedMsg:
		m.g = msg.g
		m.plan = msg.plan

		return m, nil

	case goalSavedMsg:
		m.editing = false
		m.form = nil

		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.status = "Goal saved."

		return m, m.loadCmd()
	}

	if m.editing {
		return m.updateForm(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "e":
			return m.enterEditMode()
		}
	}

	return m, nil
}

func (m GoalModel) enterEditMode() (tea.Model, tea.Cmd) {
	m.formName = m.g.Name
	m.formCost = ""
	if m.g.TotalCost > 0 {
		m.formCost = money.String(m.g.TotalCost)
	}
	m.formMonths = ""
	if m.g.TargetMonths > 0 {
		m.formMonths = strconv.Itoa(m.g.TargetMonths)
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Goal name").
				Placeholder("Goa trip").
				Value(&m.formName),

			huh.NewInput().
				Key("cost").
				Title("Total cost (₹)").
				Placeholder("45000.00").
				Value(&m.formCost).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					_, err := money.Parse(s)
					return err
				}),

			huh.NewInput().
				Key("months").
				Title("Target months").
				Placeholder("6").
				Value(&m.formMonths).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || n < 0 {
						return fmt.Errorf("must be a whole number")
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)

	m.editing = true

	return m, m.form.Init()
}

func (m GoalModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.editing = false
			m.form = nil

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

	return m, m.saveCmd()
}

func (m GoalModel) View() string {
	if m.editing && m.form != nil {
		return lipgloss.NewStyle().Padding(1).Render("Edit Goal\n\n" + m.form.View())
	}

	name := m.g.Name
	if name == "" {
		name = "(no goal set)"
	}

	body := headingStyle.Render("Goal Calculator") + "\n\n"
	body += fmt.Sprintf("%s %s\n", labelStyle.Render("Goal:"), name)
	body += fmt.Sprintf("%s %s over %d months\n\n", labelStyle.Render("Target:"), FormatAmount(m.g.TotalCost), m.g.TargetMonths)

	body += fmt.Sprintf("%s %s\n", labelStyle.Render("Required monthly:"), FormatAmount(m.plan.RequiredMonthly))
	body += fmt.Sprintf("%s %s\n", labelStyle.Render("Monthly surplus:"), FormatAmount(m.plan.MonthlySurplus))
	body += fmt.Sprintf("%s %s\n\n", labelStyle.Render("Remaining buffer:"), FormatAmount(m.plan.RemainingBuffer))

	style := positiveStyle
	if m.plan.Tone == goal.ToneWarning {
		style = warningStyle
	}
	body += style.Render(m.plan.Label) + "\n"

	if m.status != "" {
		body += "\n" + labelStyle.Render(m.status)
	}

	return lipgloss.NewStyle().Padding(1).Render(body)
}

// Messages

type goalLoadedMsg struct {
	g    goal.Goal
	plan goal.Plan
}

func (m GoalModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		g := m.goals.Get(ctx)
		st := m.svc.Current()

		return goalLoadedMsg{g: g, plan: goal.Evaluate(g, st.Budget.LifestyleBalance)}
	}
}

type goalSavedMsg struct {
	err error
}

func (m GoalModel) saveCmd() tea.Cmd {
	g := goal.Goal{Name: strings.TrimSpace(m.formName)}

	if s := strings.TrimSpace(m.formCost); s != "" {
		g.TotalCost, _ = money.Parse(s)
	}

	if s := strings.TrimSpace(m.formMonths); s != "" {
		g.TargetMonths, _ = strconv.Atoi(s)
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return goalSavedMsg{err: m.goals.Save(ctx, g)}
	}
}
