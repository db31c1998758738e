// Package repository implements MySQL persistence for bookings and the
// reporting aggregates built on top of them.  Sentinel errors defined here
// let handlers distinguish failure scenarios without inspecting driver
// errors directly.
package repository

import "errors"

// ErrBookingNotFound is returned when no booking exists for the requested
// booking ID.  Handlers should translate this into an HTTP 404 response.
var ErrBookingNotFound = errors.New("booking not found")

// ErrDuplicateBookingID is returned when an insert collides with an
// existing booking ID.  The ID scheme is best-effort unique, so callers
// are expected to redraw an ID and retry a bounded number of times.
var ErrDuplicateBookingID = errors.New("duplicate booking id")
