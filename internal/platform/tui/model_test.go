package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/healthcamp/dashboard/internal/platform/browse"
)

type lines []string

func (l lines) Lines() []string { return l }

func testSource(n int) Source {
	records := make([]browse.Record, n)
	for i := range records {
		records[i] = browse.Record{"id": fmt.Sprint(i + 1), "name": fmt.Sprintf("Camp %02d", i+1), "size": n - i}
	}
	return Source{
		Title: "Camps",
		View: browse.View{
			Name: "camps",
			Columns: browse.Columns{
				browse.Col("name", "Name"),
				browse.Col("size", "Size"),
			},
			SearchFields: []string{"name"},
			Detail: func(rec browse.Record) any {
				return lines{"detail of " + rec.ID()}
			},
		},
		Records: func() []browse.Record { return records },
	}
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestModel_Paging(t *testing.T) {
	m := NewModel(testSource(12), 5)
	if got := len(m.Result().Rows); got != 5 {
		t.Fatalf("expected 5 rows, got %d", got)
	}
	m = press(m, "right", "right", "right")
	if m.Result().Page != 3 || len(m.Result().Rows) != 2 {
		t.Errorf("expected last page with 2 rows, got page %d with %d", m.Result().Page, len(m.Result().Rows))
	}
}

func TestModel_ExpandSurvivesSort(t *testing.T) {
	m := NewModel(testSource(3), 5)
	m = press(m, "down", "enter")
	if !m.Result().Rows[1].Expanded {
		t.Fatal("expected second row expanded")
	}

	m = press(m, "s", "s")
	if m.Result().Sort != "size" {
		t.Fatalf("expected sort by size, got %q", m.Result().Sort)
	}
	for _, row := range m.Result().Rows {
		if row.Expanded != (row.ID == "2") {
			t.Errorf("row %s expanded=%v", row.ID, row.Expanded)
		}
	}
	if !strings.Contains(m.View(), "detail of 2") {
		t.Error("expected the detail to be printed")
	}
}

func TestModel_Search(t *testing.T) {
	m := NewModel(testSource(12), 5)
	m = press(m, "/", "1", "1", "enter")
	if m.Result().Total != 1 || m.Result().Rows[0].ID != "11" {
		t.Errorf("expected only Camp 11, got %+v", m.Result().Rows)
	}
}

func TestModel_SortCyclesBackToDefault(t *testing.T) {
	m := NewModel(testSource(3), 5)
	m = press(m, "s", "r")
	if m.Result().Sort != "-name" {
		t.Errorf("expected reversed name sort, got %q", m.Result().Sort)
	}
	m = press(m, "s", "s")
	if m.Result().Sort != "" {
		t.Errorf("expected default order, got %q", m.Result().Sort)
	}
}

func TestDetailLines(t *testing.T) {
	if got := DetailLines(nil); got != nil {
		t.Errorf("expected nothing for nil detail, got %v", got)
	}
	if got := DetailLines([]string{"a"}); len(got) != 1 {
		t.Errorf("unexpected lines %v", got)
	}
	if got := DetailLines(struct{ N int }{3}); got[0] != "{N:3}" {
		t.Errorf("unexpected fallback %q", got[0])
	}
}
