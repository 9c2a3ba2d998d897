package browse

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Direction is the order applied by Sort.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// SortSpec represents a single sort directive.
type SortSpec struct {
	Field     string
	Direction Direction
}

// String formats the spec back into the query form accepted by ParseSort.
func (s SortSpec) String() string {
	if s.Field == "" {
		return ""
	}
	if s.Direction == Descending {
		return "-" + s.Field
	}
	return s.Field
}

// ParseSort parses a sort query parameter value.
// Format: "-date,status" means date DESC, status ASC.
func ParseSort(sortParam string) []SortSpec {
	if sortParam == "" {
		return nil
	}

	parts := strings.Split(sortParam, ",")
	specs := make([]SortSpec, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		spec := SortSpec{Field: part}
		if strings.HasPrefix(part, "-") {
			spec.Direction = Descending
			spec.Field = part[1:]
		}

		if spec.Field != "" {
			specs = append(specs, spec)
		}
	}

	return specs
}

// FormatSort is the inverse of ParseSort.
func FormatSort(specs []SortSpec) string {
	parts := make([]string, 0, len(specs))
	for _, s := range specs {
		if f := s.String(); f != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, ",")
}

// Sort returns a copy of records ordered by the value under key. The sort is
// stable in both directions: records with equal keys keep their input order.
func Sort(records []Record, key string, dir Direction) []Record {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b Record) int {
		av, _ := a.Get(key)
		bv, _ := b.Get(key)
		c := Compare(av, bv)
		if dir == Descending {
			return -c
		}
		return c
	})
	return out
}

// SortBy applies several directives, the first being the primary key.
func SortBy(records []Record, specs []SortSpec) []Record {
	if len(specs) == 0 {
		return slices.Clone(records)
	}
	out := records
	for i := len(specs) - 1; i >= 0; i-- {
		out = Sort(out, specs[i].Field, specs[i].Direction)
	}
	return out
}

// dateLayouts are the timestamp shapes recognised as date-like strings.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 03:04 PM",
}

func parseDate(s string) (time.Time, bool) {
	if len(s) < len("2006-01-02") || s[4] != '-' {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// Compare orders two field values by their runtime type: numbers
// numerically, date-like strings by timestamp, other strings lexically.
// A missing value orders before any present value.
func Compare(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	if x, ok := toFloat(a); ok {
		if y, ok := toFloat(b); ok {
			return cmp.Compare(x, y)
		}
	}

	as, aok := a.(string)
	bs, bok := b.(string)
	if aok && bok {
		if ta, ok := parseDate(as); ok {
			if tb, ok := parseDate(bs); ok {
				return ta.Compare(tb)
			}
		}
		return strings.Compare(as, bs)
	}

	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}
