// Package tui is a terminal browser over a browse.View: search, sort,
// paging and row expansion driven from the keyboard.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/healthcamp/dashboard/internal/platform/browse"
)

// Source is one browsable collection.
type Source struct {
	Title   string
	View    browse.View
	Records func() []browse.Record
}

// Lister is implemented by row details that know how to print themselves.
type Lister interface {
	Lines() []string
}

// maxCellWidth truncates long cells so a row fits on one line.
const maxCellWidth = 32

type Model struct {
	src       Source
	query     browse.Query
	expansion *browse.Expansion
	result    browse.Result
	cursor    int
	sortIdx   int
	search    textinput.Model
	searching bool
	width     int
	height    int
	quitting  bool
}

func NewModel(src Source, pageSize int) Model {
	search := textinput.New()
	search.Placeholder = "search"
	search.CharLimit = 64

	m := Model{
		src:       src,
		query:     browse.Query{Page: 1, PageSize: pageSize},
		expansion: browse.NewExpansion(),
		search:    search,
		sortIdx:   -1,
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Result is the page currently on screen.
func (m Model) Result() browse.Result {
	return m.result
}

func (m *Model) refresh() {
	m.result = m.src.View.Apply(m.src.Records(), m.query, m.expansion)
	m.query.Page = m.result.Page
	if m.cursor >= len(m.result.Rows) {
		m.cursor = max(0, len(m.result.Rows)-1)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.result.Rows)-1 {
				m.cursor++
			}
		case "right", "l", "pgdown":
			if m.result.HasNext {
				m.query.Page++
				m.cursor = 0
				m.refresh()
			}
		case "left", "h", "pgup":
			if m.result.HasPrev {
				m.query.Page--
				m.cursor = 0
				m.refresh()
			}
		case "enter", " ":
			if m.cursor < len(m.result.Rows) {
				m.expansion.Toggle(m.result.Rows[m.cursor].ID)
				m.refresh()
			}
		case "s":
			m.nextSort()
			m.refresh()
		case "r":
			if len(m.query.Sort) > 0 {
				spec := m.query.Sort[0]
				if spec.Direction == browse.Ascending {
					spec.Direction = browse.Descending
				} else {
					spec.Direction = browse.Ascending
				}
				m.query.Sort = []browse.SortSpec{spec}
				m.refresh()
			}
		case "/":
			m.searching = true
			m.search.SetValue(m.query.Search)
			return m, m.search.Focus()
		}
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.search.Blur()
		m.query.Search = strings.TrimSpace(m.search.Value())
		m.query.Page = 1
		m.cursor = 0
		m.refresh()
		return m, nil
	case "esc":
		m.searching = false
		m.search.Blur()
		return m, nil
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// nextSort cycles through the sortable columns, ascending, and back to the
// view default.
func (m *Model) nextSort() {
	cols := m.src.View.Columns
	for i := m.sortIdx + 1; i < len(cols); i++ {
		if cols[i].Sortable {
			m.sortIdx = i
			m.query.Sort = []browse.SortSpec{{Field: cols[i].Key}}
			return
		}
	}
	m.sortIdx = -1
	m.query.Sort = nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.src.Title))
	b.WriteString("\n")

	if m.searching {
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	} else if m.query.Search != "" {
		b.WriteString(helpStyle.Render("search: " + m.query.Search))
		b.WriteString("\n\n")
	}

	cols := m.src.View.Columns
	primary, _, _ := strings.Cut(m.result.Sort, ",")
	header := cols.Labels()
	for i, c := range cols {
		switch primary {
		case c.Key:
			header[i] += " ▲"
		case "-" + c.Key:
			header[i] += " ▼"
		}
	}
	widths := columnWidths(header, m.result.Rows, cols)
	b.WriteString(headerStyle.Render(joinCells(header, widths)))
	b.WriteString("\n")

	if len(m.result.Rows) == 0 {
		b.WriteString(rowStyle.Render("No records found"))
		b.WriteString("\n")
	}
	for i, row := range m.result.Rows {
		cells := make([]string, len(cols))
		for j, c := range cols {
			cells[j] = truncate(browse.Text(row.Cells[c.Key]))
		}
		line := joinCells(cells, widths)
		marker := "  "
		if row.Expanded {
			marker = "▾ "
		}
		if i == m.cursor {
			b.WriteString(selectedRowStyle.Render(marker + line))
		} else {
			b.WriteString(rowStyle.Render(marker + line))
		}
		b.WriteString("\n")
		if row.Expanded {
			for _, l := range DetailLines(row.Detail) {
				b.WriteString(detailStyle.Render(l))
				b.WriteString("\n")
			}
		}
	}

	status := fmt.Sprintf("page %d of %d · %d records", m.result.Page, m.result.TotalPages, m.result.Total)
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ move • ←/→ page • enter expand • / search • s sort • r reverse • q quit"))

	content := b.String()
	if m.width > 0 {
		content = lipgloss.NewStyle().MaxWidth(m.width).Render(content)
	}
	return content
}

// DetailLines prints the detail of an expanded row.
func DetailLines(detail any) []string {
	switch d := detail.(type) {
	case nil:
		return nil
	case Lister:
		return d.Lines()
	case []string:
		return d
	}
	return []string{fmt.Sprintf("%+v", detail)}
}

func columnWidths(header []string, rows []browse.Row, cols browse.Columns) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, c := range cols {
			widths[i] = max(widths[i], lipgloss.Width(truncate(browse.Text(row.Cells[c.Key]))))
		}
	}
	return widths
}

func joinCells(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = c + strings.Repeat(" ", max(0, widths[i]-lipgloss.Width(c)))
	}
	return strings.Join(parts, "  ")
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) <= maxCellWidth {
		return s
	}
	return string(r[:maxCellWidth-1]) + "…"
}
