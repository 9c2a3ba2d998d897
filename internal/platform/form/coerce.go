package form

import (
	"strconv"
	"strings"
)

// Int parses the leading integer of s: "12abc" is 12, "  7 years" is 7,
// and input with no leading digits is 0. It never fails.
func Int(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// Float parses the leading decimal number of s, 0 when there is none.
func Float(s string) float64 {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	seenDot := false
	start := end
	for end < len(s) {
		ch := s[end]
		if ch == '.' && !seenDot {
			seenDot = true
		} else if ch < '0' || ch > '9' {
			break
		}
		end++
	}
	if end == start {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil {
		return 0
	}
	return f
}

// List splits a comma-separated value, trimming each item and dropping
// empty ones. An empty input yields an empty, non-nil slice.
func List(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
