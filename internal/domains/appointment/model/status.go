package model

import (
	"strings"

	"clinic/shared/failure"
)

// Status is the closed set of appointment states. The persisted value is
// always one of the three canonical constants; free-form labels from callers
// only enter through ParseStatus.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

// ParseStatus resolves a caller-supplied label to a canonical Status,
// matching case-insensitively. Any status may follow any other; there is
// deliberately no transition graph, so re-opening a cancelled appointment by
// setting it back to PENDING is allowed.
func ParseStatus(label string) (Status, error) {
	switch Status(strings.ToUpper(strings.TrimSpace(label))) {
	case StatusPending:
		return StatusPending, nil
	case StatusConfirmed:
		return StatusConfirmed, nil
	case StatusCancelled:
		return StatusCancelled, nil
	default:
		return "", failure.BadRequestFromString("Invalid status. Use: PENDING, CONFIRMED, or CANCELLED") //nolint:wrapcheck
	}
}

// Valid reports whether s holds one of the canonical values.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}
