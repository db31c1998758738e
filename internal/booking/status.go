package booking

import "fmt"

// Status represents the current state of a booking in its lifecycle.
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusCheckedIn  Status = "checked-in"
	StatusCheckedOut Status = "checked-out"
	StatusCancelled  Status = "cancelled"
)

// transitions defines the lifecycle state machine.  A booking starts as
// pending, is confirmed by an admin, then checked in and out; cancellation
// is possible until check-in.  Checked-out and cancelled are terminal.
var transitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn:  {StatusCheckedOut},
	StatusCheckedOut: {},
	StatusCancelled:  {},
}

// IsValid reports whether s is a recognized booking status.
func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// IsTerminal reports whether no further transitions are possible from s.
func (s Status) IsTerminal() bool {
	allowed, ok := transitions[s]
	return !ok || len(allowed) == 0
}

// CanTransitionTo reports whether the edge from s to target is legal.
func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

func (s Status) String() string { return string(s) }

// ParseStatus converts a string to a Status, rejecting unknown values.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("unknown booking status: %q", s)
	}
	return status, nil
}

// Transition decides whether a booking may move from current to requested.
// It is a pure decision function: it performs no persistence, and the
// caller is responsible for reloading the current status immediately before
// each request so it never acts on stale state.  Any edge outside the legal
// set, including self-loops and skips, fails with a TransitionError.
func Transition(current, requested Status) (Status, error) {
	if !current.CanTransitionTo(requested) {
		return "", &TransitionError{From: current, To: requested}
	}
	return requested, nil
}
