package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	// ErrEmptyBody is returned when a submission carries no JSON value.
	ErrEmptyBody = errors.New("request body is empty")
	// ErrMissingFields is returned when a required field is falsy.
	ErrMissingFields = errors.New("missing required fields")
)

// Fields is a decoded submission body keyed by JSON field name.
type Fields map[string]any

// DecodeFields parses a submission body. Form posts from some hosts arrive
// as a JSON string holding the encoded object, so a string is decoded once more.
// Valid JSON that is not an object yields no fields.
func DecodeFields(body []byte) (Fields, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrEmptyBody
	}

	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		return nil, fmt.Errorf("error parsing JSON: %w", err)
	}

	if encoded, ok := value.(string); ok {
		value = nil
		if err := json.Unmarshal([]byte(encoded), &value); err != nil {
			return nil, fmt.Errorf("error parsing JSON string body: %w", err)
		}
	}

	switch v := value.(type) {
	case nil:
		return nil, ErrEmptyBody
	case map[string]any:
		return Fields(v), nil
	default:
		return Fields{}, nil
	}
}

// Present reports whether key holds a truthy value. Absent keys, null,
// false, zero and the empty string are not present.
func (f Fields) Present(key string) bool {
	v, ok := f[key]
	if !ok {
		return false
	}

	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0 && !math.IsNaN(t)
	case string:
		return t != ""
	default:
		return true
	}
}

// Text returns the value at key as text. Non-string values are rendered
// as their JSON form.
func (f Fields) Text(key string) string {
	switch t := f[key].(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}

// Optional returns the value at key exactly as submitted, or nil when it
// is not present.
func (f Fields) Optional(key string) any {
	if !f.Present(key) {
		return nil
	}
	return f[key]
}

// Given returns the value at key exactly as submitted whenever one was
// supplied, including falsy values other than null.
func (f Fields) Given(key string) any {
	return f[key]
}
