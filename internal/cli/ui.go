package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/critpath/pkg/cpm"
	"github.com/matzehuels/critpath/pkg/pipeline"
)

// Terminal palette (ANSI 256).
var (
	colorAccent   = lipgloss.Color("36")
	colorOK       = lipgloss.Color("35")
	colorWarn     = lipgloss.Color("220")
	colorCritical = lipgloss.Color("167")
	colorCommand  = lipgloss.Color("75")
	colorValue    = lipgloss.Color("255")
	colorHeader   = lipgloss.Color("245")
	colorMuted    = lipgloss.Color("240")
)

// Styles shared by the schedule tables and the view command.
var (
	StyleTitle    = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	StyleDim      = lipgloss.NewStyle().Foreground(colorMuted)
	StyleValue    = lipgloss.NewStyle().Foreground(colorValue)
	StyleNumber   = lipgloss.NewStyle().Foreground(colorAccent)
	StyleCritical = lipgloss.NewStyle().Bold(true).Foreground(colorCritical) // zero slack
	StyleWarning  = lipgloss.NewStyle().Foreground(colorWarn)

	styleHeader  = lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
	styleCommand = lipgloss.NewStyle().Foreground(colorCommand)
	styleSpinner = lipgloss.NewStyle().Foreground(colorAccent)
)

// status prints one line prefixed by a coloured marker.
func status(w io.Writer, marker string, color lipgloss.Color, msg string) {
	fmt.Fprintln(w, lipgloss.NewStyle().Foreground(color).Render(marker)+" "+msg)
}

func printSuccess(w io.Writer, format string, args ...any) {
	status(w, "✓", colorOK, fmt.Sprintf(format, args...))
}

func printError(w io.Writer, format string, args ...any) {
	status(w, "✗", colorCritical, fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, format string, args ...any) {
	status(w, "!", colorWarn, StyleWarning.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a written output file and, when size >= 0, its size.
func printFile(w io.Writer, path string, size int64) {
	line := "  " + StyleDim.Render("→") + " " + StyleValue.Render(path)
	if size >= 0 {
		line += " " + StyleDim.Render("("+humanize.Bytes(uint64(size))+")")
	}
	fmt.Fprintln(w, line)
}

// printNextStep suggests a follow-up command.
func printNextStep(w io.Writer, description, cmd string) {
	fmt.Fprintln(w, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

// =============================================================================
// Schedule Output
// =============================================================================

// printSchedule prints a titled schedule table followed by a one-line summary
// and any redundant dependency warnings.
func printSchedule(w io.Writer, s *pipeline.Schedule) {
	res := s.Result
	fmt.Fprintln(w, StyleTitle.Render(s.Name)+" "+StyleDim.Render("("+string(res.Mode)+")"))

	if res.Mode == cpm.ModeAOA {
		fmt.Fprintln(w, scheduleTable(eventHeaders, eventRows(res), eventCritical(res)))
		fmt.Fprintln(w, scheduleTable(activityHeaders, activityRows(res), activityCritical(res)))
	} else {
		fmt.Fprintln(w, scheduleTable(taskHeaders, taskRows(res), taskCritical(res)))
	}
	fmt.Fprintln(w, summaryLine(res))

	for _, e := range s.Redundant {
		printWarning(w, "dependency %d -> %d is implied by a longer path", e.From, e.To)
	}
}

// summaryLine renders the project duration, critical count, and the first
// critical chain.
func summaryLine(res *cpm.Result) string {
	parts := []string{
		"duration " + StyleNumber.Render(fmtNum(res.Duration)),
		StyleNumber.Render(strconv.Itoa(res.CriticalCount())) + " critical",
	}
	if chains := res.CriticalChains(); len(chains) > 0 {
		ids := make([]string, len(chains[0]))
		for i, id := range chains[0] {
			ids[i] = strconv.Itoa(id)
		}
		parts = append(parts, "path "+StyleCritical.Render(strings.Join(ids, " → ")))
		if len(chains) > 1 {
			parts = append(parts, fmt.Sprintf("%d critical chains", len(chains)))
		}
	}
	return "  " + strings.Join(parts, StyleDim.Render(" · "))
}

var (
	taskHeaders     = []string{"ID", "Task", "Dur", "ES", "EF", "LS", "LF", "Slack", "Wave"}
	eventHeaders    = []string{"Event", "Label", "Earliest", "Latest", "Slack"}
	activityHeaders = []string{"From", "To", "Dur", "Start", "Finish", "Slack"}
)

func taskRows(res *cpm.Result) [][]string {
	rows := make([][]string, len(res.Tasks))
	for i, t := range res.Tasks {
		rows[i] = []string{
			strconv.Itoa(t.ID), t.Label, fmtNum(t.Duration),
			fmtNum(t.ES), fmtNum(t.EF), fmtNum(t.LS), fmtNum(t.LF),
			fmtNum(t.Slack), strconv.Itoa(t.Wave),
		}
	}
	return rows
}

func taskCritical(res *cpm.Result) []bool {
	critical := make([]bool, len(res.Tasks))
	for i, t := range res.Tasks {
		critical[i] = t.Critical
	}
	return critical
}

func eventRows(res *cpm.Result) [][]string {
	rows := make([][]string, len(res.Events))
	for i, e := range res.Events {
		rows[i] = []string{strconv.Itoa(e.ID), e.Label, fmtNum(e.Earliest), fmtNum(e.Latest), fmtNum(e.Slack)}
	}
	return rows
}

func eventCritical(res *cpm.Result) []bool {
	critical := make([]bool, len(res.Events))
	for i, e := range res.Events {
		critical[i] = e.Critical
	}
	return critical
}

// activityRows lists each activity with its earliest start (the tail
// event's earliest time) and latest finish (the head event's latest time).
func activityRows(res *cpm.Result) [][]string {
	rows := make([][]string, len(res.Activities))
	for i, a := range res.Activities {
		from, _ := res.Event(a.From)
		to, _ := res.Event(a.To)
		rows[i] = []string{
			strconv.Itoa(a.From), strconv.Itoa(a.To), fmtNum(a.Duration),
			fmtNum(from.Earliest), fmtNum(to.Latest), fmtNum(a.Slack),
		}
	}
	return rows
}

func activityCritical(res *cpm.Result) []bool {
	critical := make([]bool, len(res.Activities))
	for i, a := range res.Activities {
		critical[i] = a.Critical
	}
	return critical
}

// scheduleTable renders rows with critical rows highlighted.
func scheduleTable(headers []string, rows [][]string, critical []bool) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorMuted)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == -1 {
				return styleHeader.Padding(0, 1)
			}
			if row >= 0 && row < len(critical) && critical[row] {
				return base.Inherit(StyleCritical)
			}
			return base
		}).
		Render()
}

func fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
