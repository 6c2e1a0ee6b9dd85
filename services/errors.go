package services

import (
	"errors"
	"fmt"
	"strings"
)

// ErrReservationUnavailable means the reservation workflow could not be
// reached or did not give a usable answer. Nothing was persisted.
var ErrReservationUnavailable = errors.New("reservation service unavailable")

var ErrUnknownSalon = errors.New("salon not found")

// ValidationError is returned before any network call when a draft is
// incomplete or malformed.
type ValidationError struct {
	Missing  []string
	Problems []string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing required fields: "+strings.Join(e.Missing, ", "))
	}
	parts = append(parts, e.Problems...)
	return strings.Join(parts, "; ")
}

func (e *ValidationError) empty() bool {
	return len(e.Missing) == 0 && len(e.Problems) == 0
}

func (e *ValidationError) addf(format string, args ...any) {
	e.Problems = append(e.Problems, fmt.Sprintf(format, args...))
}

// SlotTakenError carries the reservation workflow's own rejection message.
type SlotTakenError struct {
	Message string
}

func (e *SlotTakenError) Error() string {
	return "slot unavailable: " + e.Message
}
