package query

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrParameterAbsent is returned by the Parse functions when no value was supplied.
var ErrParameterAbsent = errors.New("parameter absent")

// InvalidQueryParameterError reports a malformed offset, page size, limit or key list.
type InvalidQueryParameterError struct {
	Name   string
	Value  string
	Reason string
}

func (e *InvalidQueryParameterError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Name, e.Value, e.Reason)
}

// ParseLimit parses a top-N limit. Any integer is accepted; non-positive limits
// yield empty rankings.
func ParseLimit(raw string) (int, error) {
	return parseInt("limit", raw)
}

// ParseOffset parses a zero-based row offset.
func ParseOffset(raw string) (int, error) {
	n, err := parseInt("offset", raw)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, &InvalidQueryParameterError{Name: "offset", Value: raw, Reason: "must not be negative"}
	}
	return n, nil
}

// ParsePageSize parses a page size, which must be positive.
func ParsePageSize(raw string) (int, error) {
	n, err := parseInt("page_size", raw)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, &InvalidQueryParameterError{Name: "page_size", Value: raw, Reason: "must be positive"}
	}
	return n, nil
}

// WithDefault returns def when err is non-nil and v otherwise.
func WithDefault(v int, err error, def int) int {
	if err != nil {
		return def
	}
	return v
}

func parseInt(name, raw string) (int, error) {
	if raw == "" {
		return 0, ErrParameterAbsent
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &InvalidQueryParameterError{Name: name, Value: raw, Reason: "not an integer"}
	}
	return n, nil
}
