package interfaces

import "errors"

// Storage-level constraint failures reported by repositories.
var (
	// ErrOpenSessionConflict: an open session already exists for the (employee, order) pair.
	ErrOpenSessionConflict = errors.New("open session already exists for employee and order")
	// ErrSessionNotOpen: the session was closed by a concurrent writer.
	ErrSessionNotOpen = errors.New("session is not open")
)
