// Package tui provides the interactive Bubble Tea dashboard for spent.
package tui

import (
	"fmt"
	"strings"

	"spent/internal/cli"
	"spent/internal/model"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Data is the analytics snapshot the dashboard renders. The caller
// owns fetching; the dashboard never touches the store.
type Data struct {
	Month      string
	Currency   string
	Summary    model.Summary
	Statuses   []model.BudgetStatus
	Trend      model.TrendResult
	Prediction model.Prediction
	Insights   []model.Insight
}

// Loader produces the dashboard data, typically by querying the store
// and running the analytics engine.
type Loader func() (Data, error)

// dataLoadedMsg is sent when the loader finishes.
type dataLoadedMsg struct {
	data Data
	err  error
}

var tabs = []string{"Overview", "Budgets", "Insights"}

// App is the root Bubble Tea model.
type App struct {
	load    Loader
	spin    spinner.Model
	loaded  bool
	loadErr error
	data    Data

	activeTab int
	width     int
	height    int
}

// NewApp builds the dashboard around a data loader.
func NewApp(load Loader) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(cli.ColorAccent)

	return App{load: load, spin: sp}
}

// Run starts the dashboard and blocks until the user quits.
func Run(load Loader) error {
	_, err := tea.NewProgram(NewApp(load), tea.WithAltScreen()).Run()
	return err
}

func (a App) Init() tea.Cmd {
	return tea.Batch(a.spin.Tick, a.loadCmd())
}

func (a App) loadCmd() tea.Cmd {
	return func() tea.Msg {
		data, err := a.load()
		return dataLoadedMsg{data: data, err: err}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case dataLoadedMsg:
		a.loaded = true
		a.loadErr = msg.err
		a.data = msg.data
		return a, nil

	case spinner.TickMsg:
		if a.loaded {
			return a, nil
		}
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return a, tea.Quit
		case "tab", "right", "l":
			a.activeTab = (a.activeTab + 1) % len(tabs)
		case "shift+tab", "left", "h":
			a.activeTab = (a.activeTab + len(tabs) - 1) % len(tabs)
		case "1", "2", "3":
			a.activeTab = int(msg.String()[0] - '1')
		case "r":
			a.loaded = false
			return a, tea.Batch(a.spin.Tick, a.loadCmd())
		}
	}
	return a, nil
}

func (a App) View() string {
	if !a.loaded {
		return fmt.Sprintf("\n\n  %s Crunching the numbers...\n", a.spin.View())
	}
	if a.loadErr != nil {
		return fmt.Sprintf("\n\n  Failed to load data: %v\n\n  Press q to quit.\n", a.loadErr)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(a.renderTabs())
	b.WriteString("\n\n")

	switch a.activeTab {
	case 1:
		b.WriteString(a.renderBudgets())
	case 2:
		b.WriteString(a.renderInsights())
	default:
		b.WriteString(a.renderOverview())
	}

	b.WriteString("\n")
	b.WriteString(cli.Muted("  tab/←→ switch · r reload · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (a App) renderTabs() string {
	active := lipgloss.NewStyle().Foreground(cli.ColorAccent).Bold(true).Padding(0, 2)
	inactive := lipgloss.NewStyle().Foreground(cli.ColorTextMuted).Padding(0, 2)

	parts := make([]string, len(tabs))
	for i, name := range tabs {
		if i == a.activeTab {
			parts[i] = active.Render(fmt.Sprintf("[%d] %s", i+1, name))
		} else {
			parts[i] = inactive.Render(fmt.Sprintf("[%d] %s", i+1, name))
		}
	}
	return "  " + strings.Join(parts, "")
}

func (a App) renderOverview() string {
	d := a.data
	var b strings.Builder

	b.WriteString(fmt.Sprintf("  %s\n\n", lipgloss.NewStyle().Bold(true).Render("Spending "+d.Month)))
	b.WriteString(fmt.Sprintf("  Total spent        %s\n", cli.FormatMoney(d.Summary.TotalSpent, d.Currency)))
	b.WriteString(fmt.Sprintf("  Transactions       %s\n", cli.FormatNumber(int64(d.Summary.TransactionCount))))
	b.WriteString(fmt.Sprintf("  Avg / transaction  %s\n", cli.FormatMoney(d.Summary.AvgPerTransaction, d.Currency)))
	b.WriteString(fmt.Sprintf("  Daily average      %s\n", cli.FormatMoney(d.Prediction.DailyAverage, d.Currency)))
	b.WriteString(fmt.Sprintf("  Projected total    %s  (day %d of %d)\n",
		cli.FormatMoney(d.Prediction.ProjectedMonthlyTotal, d.Currency),
		d.Prediction.DaysElapsed, d.Prediction.DaysInMonth))

	if d.Trend.Trend != model.TrendInsufficientData && d.Trend.Trend != "" {
		b.WriteString(fmt.Sprintf("  Trend              %s (avg %s/month)\n",
			string(d.Trend.Trend), cli.FormatMoney(d.Trend.AverageMonthly, d.Currency)))
	}

	if len(d.Summary.TopCategories) > 0 {
		b.WriteString("\n  Top categories\n")
		for _, ca := range d.Summary.TopCategories {
			b.WriteString(fmt.Sprintf("    %-20s %10s  %s\n",
				ca.Category, cli.FormatMoney(ca.Total, d.Currency), cli.FormatShare(ca.Share)))
		}
	}
	return b.String()
}

func (a App) renderBudgets() string {
	if len(a.data.Statuses) == 0 {
		return "  No budgets configured.\n"
	}

	var b strings.Builder
	for _, bs := range a.data.Statuses {
		b.WriteString(fmt.Sprintf("  %-20s %s\n", bs.Category, cli.ProgressBar(bs.PercentUsed, 28)))
		b.WriteString(fmt.Sprintf("  %-20s %s of %s  %s\n\n",
			"",
			cli.FormatMoney(bs.Spent, a.data.Currency),
			cli.FormatMoney(bs.Limit, a.data.Currency),
			cli.StateLabel(bs.State)))
	}
	return b.String()
}

func (a App) renderInsights() string {
	if len(a.data.Insights) == 0 {
		return "  Nothing noteworthy yet.\n"
	}

	var b strings.Builder
	for _, in := range a.data.Insights {
		b.WriteString(fmt.Sprintf("  %s %s\n", cli.SeverityLabel(in.Severity), cli.InsightText(in, a.data.Currency)))
	}
	return b.String()
}
