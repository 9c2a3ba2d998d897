package browse

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// RenderFunc projects a field value, with its whole record for context, into
// the value displayed in a cell.
type RenderFunc func(value any, rec Record) any

// Column describes how one field of a record is labeled, sorted and rendered.
// Key may name a record field or a synthetic column with no backing field.
type Column struct {
	Key      string     `json:"key"`
	Label    string     `json:"label"`
	Sortable bool       `json:"sortable"`
	Render   RenderFunc `json:"-"`
}

// Col returns a sortable column with the default renderer.
func Col(key, label string) Column {
	return Column{Key: key, Label: label, Sortable: true}
}

// Unsortable returns a copy of c that the sort stage will ignore.
func (c Column) Unsortable() Column {
	c.Sortable = false
	return c
}

// WithRender returns a copy of c using fn to render cells.
func (c Column) WithRender(fn RenderFunc) Column {
	c.Render = fn
	return c
}

// Cell renders the column for rec.
func (c Column) Cell(rec Record) any {
	v, _ := rec.Get(c.Key)
	if c.Render != nil {
		return c.Render(v, rec)
	}
	return DefaultRender(v)
}

// Columns is an ordered column descriptor set.
type Columns []Column

// Lookup returns the column registered under key.
func (cs Columns) Lookup(key string) (Column, bool) {
	for _, c := range cs {
		if c.Key == key {
			return c, true
		}
	}
	return Column{}, false
}

// Sortable reports whether key names a sortable column.
func (cs Columns) Sortable(key string) bool {
	c, ok := cs.Lookup(key)
	return ok && c.Sortable
}

// Labels returns the column labels in order.
func (cs Columns) Labels() []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Label
	}
	return out
}

// DefaultRender is used for columns without a RenderFunc.
func DefaultRender(v any) any {
	switch x := v.(type) {
	case nil:
		return ""
	case []string:
		return strings.Join(x, ", ")
	case []any:
		parts := make([]string, len(x))
		for i, p := range x {
			parts[i] = fmt.Sprint(p)
		}
		return strings.Join(parts, ", ")
	}
	return v
}

// Text renders any cell value as a single line of text.
func Text(v any) string {
	switch x := DefaultRender(v).(type) {
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// DayFirstDate renders an ISO date as d/m/yyyy, the way the dashboard shows
// dates. Empty values render as "N/A" and unparseable ones unchanged.
func DayFirstDate(v any) any {
	s, _ := v.(string)
	if s == "" {
		return "N/A"
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return d.Format("2/1/2006")
}

// Capitalized upper-cases the first letter of a string value.
func Capitalized(v any) any {
	s, _ := v.(string)
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
