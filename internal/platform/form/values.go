package form

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Text is a loosely typed form value. It accepts a JSON string or number
// and keeps the text for later coercion with Int or Float.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("form value must be a string or a number: %w", err)
	}
	*t = Text(n.String())
	return nil
}

func (t Text) Int() int       { return Int(string(t)) }
func (t Text) Float() float64 { return Float(string(t)) }
func (t Text) List() []string { return List(string(t)) }
func (t Text) String() string { return string(t) }

// Value dereferences an optional field, yielding the zero value when absent.
func Value[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Patch overwrites *dst with *src when the field was supplied.
func Patch[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// PatchList is Patch for slice fields; the stored slice never aliases the
// submitted one.
func PatchList[T any](dst *[]T, src *[]T) {
	if src != nil {
		*dst = slices.Clone(*src)
	}
}
