// Package form validates submitted form payloads and coerces loosely typed
// form values the way the dashboard forms always have: numbers are parsed
// best-effort and never fail, comma lists are split and trimmed.
package form

import (
	"errors"
	"fmt"
	"maps"
	"net/http"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// ValidationError maps each offending field to a human-readable message.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + " " + e.Fields[k]
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Field returns the message recorded for field.
func (e *ValidationError) Field(field string) (string, bool) {
	msg, ok := e.Fields[field]
	return msg, ok
}

// Validate checks v against its validate struct tags. Failures come back as
// a *ValidationError keyed by the JSON field name.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating %T: %w", v, err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = message(fe)
	}
	return &ValidationError{Fields: fields}
}

// Required reports every named field whose value is blank. It serves forms
// whose required set is decided at runtime rather than by struct tags.
func Required(values map[string]string, fields ...string) error {
	missing := map[string]string{}
	for _, f := range fields {
		if strings.TrimSpace(values[f]) == "" {
			missing[f] = "is required"
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &ValidationError{Fields: missing}
}

// Check runs Required over values and Validate over v and reports the
// failures of both together. A field already missing keeps its "is
// required" message.
func Check(v any, values map[string]string, required ...string) error {
	fields := map[string]string{}

	var verr *ValidationError
	if err := Required(values, required...); errors.As(err, &verr) {
		maps.Copy(fields, verr.Fields)
	}
	if err := Validate(v); err != nil {
		if !errors.As(err, &verr) {
			return err
		}
		for k, msg := range verr.Fields {
			if _, ok := fields[k]; !ok {
				fields[k] = msg
			}
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_without":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "datetime":
		return "must be a date in the form " + fe.Param()
	}
	return "is invalid (" + fe.Tag() + ")"
}

// HTTPError translates err into the echo error a handler should return:
// validation failures become 400 with the field map, anything else 500.
func HTTPError(err error) error {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return echo.NewHTTPError(http.StatusBadRequest, verr)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
