package view

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/arand/kharcha/internal/expense"
	"github.com/arand/kharcha/internal/importer"
	"github.com/arand/kharcha/internal/money"
	"github.com/arand/kharcha/internal/month"
	"github.com/arand/kharcha/internal/state"
)

type expensesState int

const (
	expensesStateBrowse expensesState = iota
	expensesStateAdd
	expensesStateImport
)

type ExpensesModel struct {
	CommonModel
	svc    *state.Service
	parser *importer.Parser

	state     expensesState
	table     table.Model
	expenses  []expense.Expense
	form      *huh.Form
	monthOnly bool

	loading bool
	err     error
	status  string

	// Form bindings
	formAmount   string
	formDesc     string
	formCategory string
	formDate     string
	formPath     string
}

func NewExpensesModel(svc *state.Service, parser *importer.Parser) ExpensesModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Category", Width: 16},
		{Title: "Amount", Width: 14},
		{Title: "Description", Width: 40},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
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

	return ExpensesModel{
		svc:       svc,
		parser:    parser,
		table:     t,
		monthOnly: true,
	}
}

func (m ExpensesModel) Title() string { return "Expenses" }

func (m ExpensesModel) ShortHelp() string {
	if m.state != expensesStateBrowse {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | a: add | x: delete | m: toggle month | i: import csv | r: refresh"
}

func (m ExpensesModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m ExpensesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case expensesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.expenses = msg.expenses
		m.refreshTable()

		return m, nil

	case expenseSavedMsg:
		m.state = expensesStateBrowse
		m.form = nil
		m.table.Focus()

		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.status = msg.status

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case expensesStateBrowse:
		return m.updateBrowse(msg)
	default:
		return m.updateForm(msg)
	}
}

func (m ExpensesModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "m":
			m.monthOnly = !m.monthOnly
			return m, m.loadCmd()
		case "a":
			return m.enterAddMode()
		case "i":
			return m.enterImportMode()
		case "x":
			return m, m.deleteCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ExpensesModel) enterAddMode() (tea.Model, tea.Cmd) {
	m.formAmount = ""
	m.formDesc = ""
	m.formCategory = string(expense.CategoryLifestyle)
	m.formDate = time.Now().Format(time.DateOnly)

	categories := expense.Categories()
	options := make([]huh.Option[string], len(categories))
	for i, c := range categories {
		options[i] = huh.NewOption(string(c), string(c))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("amount").
				Title("Amount (₹)").
				Placeholder("1250.00").
				Value(&m.formAmount).
				Validate(func(s string) error {
					paise, err := money.Parse(s)
					if err != nil {
						return err
					}
					if paise <= 0 {
						return fmt.Errorf("amount must be positive")
					}
					return nil
				}),

			huh.NewInput().
				Key("description").
				Title("Description").
				Value(&m.formDesc).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("description cannot be empty")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Key("category").
				Title("Category").
				Options(options...).
				Value(&m.formCategory),

			huh.NewInput().
				Key("date").
				Title("Date").
				Placeholder("YYYY-MM-DD").
				Value(&m.formDate).
				Validate(func(s string) error {
					return expense.ValidateDate(s)
				}),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = expensesStateAdd
	m.table.Blur()

	return m, m.form.Init()
}

func (m ExpensesModel) enterImportMode() (tea.Model, tea.Cmd) {
	m.formPath = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("path").
				Title("CSV file path").
				Placeholder("statement.csv").
				Value(&m.formPath).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("path cannot be empty")
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = expensesStateImport
	m.table.Blur()

	return m, m.form.Init()
}

func (m ExpensesModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = expensesStateBrowse
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

	if m.state == expensesStateImport {
		return m, m.importCmd()
	}

	return m, m.addCmd()
}

func (m ExpensesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading expenses...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	scope := "All"
	if m.monthOnly {
		scope = "This Month"
	}

	header := fmt.Sprintf("Showing: %s", activeStyle(scope))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state != expensesStateBrowse && m.form != nil {
		title := "Add Expense"
		if m.state == expensesStateImport {
			title = "Import CSV"
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(fmt.Sprintf("%s\n\n%s", title, m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func (m *ExpensesModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.expenses))
	for _, e := range m.expenses {
		rows = append(rows, table.Row{
			e.Date,
			string(e.Category),
			FormatAmount(e.Amount),
			e.Description,
		})
	}
	m.table.SetRows(rows)
}

// Messages

type expensesLoadedMsg struct {
	expenses []expense.Expense
	err      error
}

func (m ExpensesModel) loadCmd() tea.Cmd {
	monthOnly := m.monthOnly

	return func() tea.Msg {
		st := m.svc.Current()

		expenses := st.Expenses
		if monthOnly {
			expenses = month.ExpensesIn(expenses, st.CurrentMonth, time.Now())
		}

		return expensesLoadedMsg{expenses: expenses}
	}
}

type expenseSavedMsg struct {
	status string
	err    error
}

func (m ExpensesModel) addCmd() tea.Cmd {
	amount, _ := money.Parse(m.formAmount)
	params := expense.CreateParams{
		Amount:      amount,
		Description: m.formDesc,
		Category:    expense.Category(m.formCategory),
		Date:        m.formDate,
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if _, err := m.svc.AddExpense(ctx, params); err != nil {
			return expenseSavedMsg{err: err}
		}

		return expenseSavedMsg{status: "Expense added."}
	}
}

func (m ExpensesModel) importCmd() tea.Cmd {
	path := m.formPath

	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return expenseSavedMsg{err: err}
		}
		defer f.Close()

		params, err := m.parser.Parse(f)
		if err != nil {
			return expenseSavedMsg{err: err}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		imported, err := m.svc.ImportExpenses(ctx, params)
		if err != nil {
			return expenseSavedMsg{err: err}
		}

		return expenseSavedMsg{status: fmt.Sprintf("Imported %d expenses.", len(imported))}
	}
}

func (m ExpensesModel) deleteCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.expenses) {
		return nil
	}

	id := m.expenses[idx].ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if _, err := m.svc.DeleteExpense(ctx, id); err != nil {
			return expenseSavedMsg{err: err}
		}

		return expenseSavedMsg{status: "Expense deleted."}
	}
}
