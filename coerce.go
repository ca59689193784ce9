package withings

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// UnexpectedTypeError is returned when a response field exists but does not
// have the shape the API documents, or when a required field is missing.
type UnexpectedTypeError struct {
	Value    any
	Expected string
}

func (e *UnexpectedTypeError) Error() string {
	return fmt.Sprintf("withings: expected %q to be %s but was %T", fmt.Sprint(e.Value), e.Expected, e.Value)
}

func unexpectedType(value any, expected string) error {
	return &UnexpectedTypeError{Value: value, Expected: expected}
}

func asString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", unexpectedType(v, "string")
	}
	return s, nil
}

func asStringOrNil(v any) *string {
	if v == nil {
		return nil
	}
	s := fmt.Sprint(v)
	return &s
}

// asInt accepts the numeric shapes a decoded JSON document can carry.
// Fractional values are rejected rather than truncated.
func asInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, unexpectedType(v, "int")
		}
		return int(n), nil
	default:
		return 0, unexpectedType(v, "int")
	}
}

func asIntOrNil(v any) *int {
	if v == nil {
		return nil
	}
	n, err := asInt(v)
	if err != nil {
		return nil
	}
	return &n
}

func asFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, unexpectedType(v, "float")
	}
}

func asFloatOrNil(v any) *float64 {
	if v == nil {
		return nil
	}
	f, err := asFloat(v)
	if err != nil {
		return nil
	}
	return &f
}

// asBool also accepts 0/1, which several endpoints use for boolean fields.
func asBool(v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case float64:
		if b == 0 || b == 1 {
			return b == 1, nil
		}
	case int:
		if b == 0 || b == 1 {
			return b == 1, nil
		}
	}
	return false, unexpectedType(v, "bool")
}

func asBoolOrNil(v any) *bool {
	if v == nil {
		return nil
	}
	b, err := asBool(v)
	if err != nil {
		return nil
	}
	return &b
}

// asTime accepts an integer epoch, a numeric string, or an ISO date string.
// The result is an absolute instant in UTC; callers re-home it into a
// response timezone where one applies.
func asTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case float64:
		if t != math.Trunc(t) {
			return time.Time{}, unexpectedType(v, "timestamp")
		}
		return time.Unix(int64(t), 0).UTC(), nil
	case int:
		return time.Unix(int64(t), 0).UTC(), nil
	case int64:
		return time.Unix(t, 0).UTC(), nil
	case string:
		if epoch, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64); err == nil {
			return time.Unix(epoch, 0).UTC(), nil
		}
		for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed.UTC(), nil
			}
		}
	}
	return time.Time{}, unexpectedType(v, "timestamp")
}

// asLocation resolves an IANA zone name. An existing *time.Location passes
// through unchanged.
func asLocation(v any) (*time.Location, error) {
	switch tz := v.(type) {
	case *time.Location:
		return tz, nil
	case string:
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("withings: unresolvable timezone %q: %w", tz, err)
		}
		return loc, nil
	}
	return nil, unexpectedType(v, "timezone")
}

func asDict(v any) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, unexpectedType(v, "object")
	}
	return m, nil
}

func asDictOrNil(v any) map[string]any {
	if v == nil {
		return nil
	}
	m, err := asDict(v)
	if err != nil {
		return nil
	}
	return m
}
