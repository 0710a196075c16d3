// Package repository implements data access for operators, shifts and the
// event configuration record over MySQL. Sentinel errors defined here let
// handlers map failure scenarios to HTTP responses without inspecting
// driver-specific errors.
package repository

import "errors"

// ErrOperatorNotFound is returned when an operator lookup yields no rows.
var ErrOperatorNotFound = errors.New("operator not found")

// ErrShiftNotFound is returned when a shift lookup or delete matches no rows.
var ErrShiftNotFound = errors.New("shift not found")

// ErrEventNotFound is returned when no event configuration row exists yet.
var ErrEventNotFound = errors.New("event not found")

// ErrNoFields is returned when a patch contains nothing to update.
var ErrNoFields = errors.New("no fields to update")

// ErrBadColumn is returned when a patch names a column outside the
// patchable whitelist. Patches are built dynamically, so the whitelist is
// what keeps SQL identifiers closed.
var ErrBadColumn = errors.New("column not patchable")
