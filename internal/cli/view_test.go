package cli

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/critpath/pkg/pipeline"
)

func scheduleFor(t *testing.T, name, content string) *pipeline.Schedule {
	t.Helper()
	path := writeProject(t, t.TempDir(), name, content)
	res, err := testCLI().newRunner(true).Execute(context.Background(), pipeline.Options{Path: path})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	return &res.Schedule
}

func press(m ScheduleModel, keys ...string) ScheduleModel {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(ScheduleModel)
	}
	return m
}

func TestScheduleModel_AON(t *testing.T) {
	m := NewScheduleModel(scheduleFor(t, "release.yaml", diamondYAML))

	if len(m.Sections) != 1 || m.Sections[0].Name != "Tasks" {
		t.Fatalf("sections = %+v", m.Sections)
	}
	if got := len(m.visible()); got != 5 {
		t.Errorf("visible rows = %d, want 5", got)
	}

	m = press(m, "down", "down", "down", "down", "down", "down")
	if m.Cursor != 4 {
		t.Errorf("cursor = %d, want clamped at 4", m.Cursor)
	}

	m = press(m, "c")
	if !m.CriticalOnly || m.Cursor != 0 {
		t.Errorf("critical toggle: only=%v cursor=%d", m.CriticalOnly, m.Cursor)
	}
	if got := len(m.visible()); got != 4 {
		t.Errorf("critical rows = %d, want 4", got)
	}

	view := m.View()
	if strings.Contains(view, "backend") {
		t.Error("non-critical task shown in critical-only view")
	}
	if !strings.Contains(view, "frontend") || !strings.Contains(view, "[1/4]") {
		t.Errorf("view:\n%s", view)
	}
}

func TestScheduleModel_AOATabs(t *testing.T) {
	m := NewScheduleModel(scheduleFor(t, "events.toml", eventsTOML))
	if len(m.Sections) != 2 {
		t.Fatalf("sections = %d, want 2", len(m.Sections))
	}

	m = press(m, "down", "tab")
	if m.Section != 1 || m.Cursor != 0 {
		t.Errorf("tab: section=%d cursor=%d", m.Section, m.Cursor)
	}
	if !strings.Contains(m.View(), "Finish") {
		t.Error("activities table should be shown after tab")
	}

	m = press(m, "tab")
	if m.Section != 0 {
		t.Errorf("tab should wrap, section=%d", m.Section)
	}
}

func TestScheduleModel_Quit(t *testing.T) {
	m := NewScheduleModel(scheduleFor(t, "release.yaml", diamondYAML))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should return tea.Quit")
	}
}

func TestScheduleModel_WindowSize(t *testing.T) {
	m := NewScheduleModel(scheduleFor(t, "release.yaml", diamondYAML))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	if got := next.(ScheduleModel).Height; got != 5 {
		t.Errorf("height = %d, want minimum 5", got)
	}
}
