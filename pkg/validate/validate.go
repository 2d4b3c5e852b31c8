package validate

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"
)

// Sentinel validation failures. Endpoints map each of these to a 400.
var (
	ErrOutOfRange     = errors.New("value out of range")
	ErrTooLong        = errors.New("value exceeds maximum length")
	ErrFutureDate     = errors.New("date must not be in the future")
	ErrInvalidBoolean = errors.New("invalid boolean value")
	ErrInvalidValue   = errors.New("invalid value")
	ErrUnknownField   = errors.New("unknown field")
	ErrMissingField   = errors.New("missing required field")
)

// FieldError reports which field failed along with the sentinel cause.
type FieldError struct {
	Field  string
	Err    error
	Detail string
}

func (e *FieldError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s: %s", e.Field, e.Err, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

func fieldErr(field string, err error, detail string) error {
	return &FieldError{Field: field, Err: err, Detail: detail}
}

// FieldKind identifies how a field's values are checked and normalized.
type FieldKind int

const (
	KindString FieldKind = iota
	KindInt
	KindFloat
	KindBool
	KindTime
)

// Field describes the domain of a single attribute.
type Field struct {
	Kind      FieldKind
	MaxLen    int
	Min, Max  float64
	Bounded   bool
	NotFuture bool
	NextYear  bool
}

// Str declares a text field with a maximum character length.
func Str(maxLen int) Field { return Field{Kind: KindString, MaxLen: maxLen} }

// IntRange declares an integer field with an inclusive [min, max] domain.
func IntRange(min, max int64) Field {
	return Field{Kind: KindInt, Min: float64(min), Max: float64(max), Bounded: true}
}

// Year declares an integer year field accepted from min up to one year past
// the calendar year at validation time. The upper bound moves with the wall
// clock, like the not-future timestamp check.
func Year(min int64) Field {
	return Field{Kind: KindInt, Min: float64(min), Bounded: true, NextYear: true}
}

// FloatRange declares a float field with an inclusive [min, max] domain.
func FloatRange(min, max float64) Field {
	return Field{Kind: KindFloat, Min: min, Max: max, Bounded: true}
}

// Bool declares a boolean field subject to NormalizeBoolean.
func Bool() Field { return Field{Kind: KindBool} }

// Timestamp declares a timestamp field; notFuture additionally rejects
// values after the validation-time wall clock.
func Timestamp(notFuture bool) Field { return Field{Kind: KindTime, NotFuture: notFuture} }

// Schema maps column names to their field domains for one entity.
type Schema map[string]Field

// Normalize validates a decoded JSON object against the schema and returns a
// column map of normalized values (string, int64, float64, bool, time.Time,
// or nil). Fields absent from the input are absent from the output, which is
// what gives updates their partial semantics. Unknown fields are rejected.
func (s Schema) Normalize(in map[string]interface{}) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(in))
	for name, raw := range in {
		field, ok := s[name]
		if !ok {
			return nil, fieldErr(name, ErrUnknownField, "")
		}
		if raw == nil {
			out[name] = nil
			continue
		}

		value, err := field.normalize(name, raw)
		if err != nil {
			return nil, err
		}
		out[name] = value
	}
	return out, nil
}

// Required fails with ErrMissingField unless every named field is present and
// non-null in the column map.
func Required(columns map[string]interface{}, fields ...string) error {
	for _, name := range fields {
		if v, ok := columns[name]; !ok || v == nil {
			return fieldErr(name, ErrMissingField, "")
		}
	}
	return nil
}

func (f Field) normalize(name string, raw interface{}) (interface{}, error) {
	switch f.Kind {
	case KindString:
		s, ok := raw.(string)
		if !ok {
			return nil, fieldErr(name, ErrInvalidValue, "expected a string")
		}
		if n := utf8.RuneCountInString(s); n > f.MaxLen {
			return nil, fieldErr(name, ErrTooLong, fmt.Sprintf("%d > %d characters", n, f.MaxLen))
		}
		return s, nil

	case KindInt:
		v, ok := raw.(float64)
		if !ok || math.Trunc(v) != v {
			return nil, fieldErr(name, ErrInvalidValue, "expected an integer")
		}
		max := f.Max
		if f.NextYear {
			max = float64(time.Now().Year() + 1)
		}
		if f.Bounded && (v < f.Min || v > max) {
			return nil, fieldErr(name, ErrOutOfRange,
				fmt.Sprintf("%d not in [%d, %d]", int64(v), int64(f.Min), int64(max)))
		}
		return int64(v), nil

	case KindFloat:
		v, ok := raw.(float64)
		if !ok {
			return nil, fieldErr(name, ErrInvalidValue, "expected a number")
		}
		if f.Bounded && (v < f.Min || v > f.Max) {
			return nil, fieldErr(name, ErrOutOfRange,
				fmt.Sprintf("%g not in [%g, %g]", v, f.Min, f.Max))
		}
		return v, nil

	case KindBool:
		b, err := NormalizeBoolean(raw)
		if err != nil {
			return nil, fieldErr(name, ErrInvalidBoolean, fmt.Sprintf("%v", raw))
		}
		return b, nil

	case KindTime:
		s, ok := raw.(string)
		if !ok {
			return nil, fieldErr(name, ErrInvalidValue, "expected a timestamp string")
		}
		t, err := ParseTimestamp(s)
		if err != nil {
			return nil, fieldErr(name, ErrInvalidValue, err.Error())
		}
		if f.NotFuture && t.After(time.Now()) {
			return nil, fieldErr(name, ErrFutureDate, t.String())
		}
		return t, nil
	}
	return nil, fieldErr(name, ErrInvalidValue, "unhandled field kind")
}

// NormalizeBoolean folds the accepted boolean spellings into a bool: native
// booleans, numeric 0/1, and the case-insensitive strings true/1/yes and
// false/0/no. Anything else fails with ErrInvalidBoolean.
func NormalizeBoolean(raw interface{}) (bool, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case float64:
		if v == 0 {
			return false, nil
		}
		if v == 1 {
			return true, nil
		}
	case int:
		if v == 0 {
			return false, nil
		}
		if v == 1 {
			return true, nil
		}
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "yes":
			return true, nil
		case "false", "0", "no":
			return false, nil
		}
	}
	return false, fmt.Errorf("%w: %v", ErrInvalidBoolean, raw)
}

// timestampLayouts are tried in order when parsing incoming timestamps.
// Zoneless layouts are interpreted in local time, matching how crash IDs
// render their date component.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseTimestamp parses an incoming timestamp string.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if layout == time.RFC3339 {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
			continue
		}
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unrecognized timestamp %q", ErrInvalidValue, s)
}
