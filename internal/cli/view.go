package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/critpath/pkg/cpm"
	"github.com/matzehuels/critpath/pkg/pipeline"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorMuted)
	listTabStyle = lipgloss.NewStyle().Foreground(colorHeader)
)

// viewCommand creates the view command, an interactive schedule browser.
func (c *CLI) viewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view [project]",
		Short: "Browse a project schedule interactively",
		Long: `Browse a project schedule in the terminal.

Critical rows are highlighted. Press c to show only critical rows and tab to
switch between events and activities of an activity-on-arc project.`,
		Args:              inputArgs(cobra.ExactArgs(1)),
		ValidArgsFunction: completeProjectFiles(true),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runView(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) runView(ctx context.Context, input string) error {
	res, err := c.newRunner(true).Execute(ctx, pipeline.Options{Path: input})
	if err != nil {
		return err
	}
	p := tea.NewProgram(NewScheduleModel(&res.Schedule), tea.WithContext(ctx), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// =============================================================================
// ScheduleModel - Interactive schedule browser
// =============================================================================

// viewSection is one table of the browser: tasks, events, or activities.
type viewSection struct {
	Name     string
	Headers  []string
	Rows     [][]string
	Critical []bool
}

// ScheduleModel is the bubbletea model for browsing a schedule.
type ScheduleModel struct {
	Title        string
	Summary      string
	Sections     []viewSection
	Section      int
	CriticalOnly bool
	Cursor       int
	Offset       int
	Height       int
}

// NewScheduleModel creates a browser over s.
func NewScheduleModel(s *pipeline.Schedule) ScheduleModel {
	res := s.Result
	m := ScheduleModel{
		Title:   s.Name,
		Summary: summaryLine(res),
		Height:  15,
	}
	if res.Mode == cpm.ModeAOA {
		m.Sections = []viewSection{
			{Name: "Events", Headers: eventHeaders, Rows: eventRows(res), Critical: eventCritical(res)},
			{Name: "Activities", Headers: activityHeaders, Rows: activityRows(res), Critical: activityCritical(res)},
		}
	} else {
		m.Sections = []viewSection{
			{Name: "Tasks", Headers: taskHeaders, Rows: taskRows(res), Critical: taskCritical(res)},
		}
	}
	return m
}

// visible returns the row indices of the current section that pass the
// critical filter.
func (m ScheduleModel) visible() []int {
	sec := m.Sections[m.Section]
	idx := make([]int, 0, len(sec.Rows))
	for i := range sec.Rows {
		if !m.CriticalOnly || sec.Critical[i] {
			idx = append(idx, i)
		}
	}
	return idx
}

func (m ScheduleModel) Init() tea.Cmd {
	return nil
}

func (m ScheduleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.visible())-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "tab":
			m.Section = (m.Section + 1) % len(m.Sections)
			m.Cursor, m.Offset = 0, 0
		case "c":
			m.CriticalOnly = !m.CriticalOnly
			m.Cursor, m.Offset = 0, 0
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 9
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ScheduleModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(m.tabs())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  c critical only  tab switch  q quit"))
	b.WriteString("\n\n")

	sec := m.Sections[m.Section]
	idx := m.visible()
	end := min(m.Offset+m.Height, len(idx))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, append([]string{cursor}, sec.Rows[idx[i]]...))
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorMuted)).
		Headers(append([]string{""}, sec.Headers...)...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			actual := m.Offset + row
			if actual >= len(idx) {
				return lipgloss.NewStyle()
			}
			base := lipgloss.NewStyle()
			if sec.Critical[idx[actual]] {
				base = base.Inherit(StyleCritical)
			}
			if actual == m.Cursor {
				base = base.Bold(true).Underline(col > 0)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(m.Summary)
	b.WriteString("\n\n")
	if len(idx) == 0 {
		b.WriteString(listDimStyle.Render("  no rows"))
	} else {
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(idx))))
	}

	return b.String()
}

// tabs renders the section names with the current one highlighted.
func (m ScheduleModel) tabs() string {
	names := make([]string, len(m.Sections))
	for i, sec := range m.Sections {
		if i == m.Section {
			names[i] = StyleValue.Bold(true).Render(sec.Name)
		} else {
			names[i] = listTabStyle.Render(sec.Name)
		}
	}
	return strings.Join(names, listDimStyle.Render(" │ "))
}
