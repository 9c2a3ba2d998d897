// Package browse turns an in-memory collection of records into a searchable,
// sortable, paginated view with optional per-row expansion.
//
// The pipeline is Filter → Sort → Paginate. Each stage is a pure function over
// a slice of Records and never mutates its input.
package browse

import "strings"

// Record is one entity instance projected to a field map. Values are scalars,
// slices, or nested maps. The "id" field carries the record identity.
type Record map[string]any

// ID returns the record identifier, or "" when the record has none.
func (r Record) ID() string {
	id, _ := r["id"].(string)
	return id
}

// Get returns the value stored under key. Dotted keys such as
// "bloodPressure.systolic" descend into nested maps.
func (r Record) Get(key string) (any, bool) {
	if v, ok := r[key]; ok {
		return v, true
	}
	if !strings.Contains(key, ".") {
		return nil, false
	}

	var cur any = map[string]any(r)
	for _, part := range strings.Split(key, ".") {
		m, ok := asMap(cur)
		if !ok {
			return nil, false
		}
		cur, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case Record:
		return m, true
	case map[string]any:
		return m, true
	}
	return nil, false
}

// Recorder is implemented by domain models that can project themselves into
// a Record.
type Recorder interface {
	ToRecord() Record
}

// Records projects a slice of domain models.
func Records[T Recorder](items []T) []Record {
	out := make([]Record, 0, len(items))
	for _, it := range items {
		out = append(out, it.ToRecord())
	}
	return out
}
