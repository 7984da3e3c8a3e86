package domain

import "errors"

// Domain sentinel errors (no external dependencies).
var (
	// ErrNotFound signals an unknown company id. It is checked explicitly
	// before destructive operations so a missing id never partially mutates.
	ErrNotFound = errors.New("company not found")

	// ErrJoinDateNotPast signals a join date that is not strictly before
	// today (day granularity). Same-day joins are rejected.
	ErrJoinDateNotPast = errors.New("join date must be in the past")

	// ErrInvalidInput covers malformed input outside schema validation,
	// such as an unparseable request body.
	ErrInvalidInput = errors.New("invalid input")
)
