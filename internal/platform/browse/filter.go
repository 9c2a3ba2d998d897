package browse

import "strings"

// Filter keeps the records where at least one of fields holds a string that
// contains query, compared case-insensitively. Non-string values never match.
// An empty query returns records unchanged.
func Filter(records []Record, query string, fields []string) []Record {
	if query == "" {
		return records
	}

	q := strings.ToLower(query)
	out := make([]Record, 0, len(records))
	for _, rec := range records {
		if matches(rec, q, fields) {
			out = append(out, rec)
		}
	}
	return out
}

func matches(rec Record, lowerQuery string, fields []string) bool {
	for _, f := range fields {
		v, ok := rec.Get(f)
		if !ok {
			continue
		}
		s, ok := v.(string)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(s), lowerQuery) {
			return true
		}
	}
	return false
}
