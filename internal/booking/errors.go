package booking

import "fmt"

// The engine reports three recoverable error families: validation problems
// the guest can correct, quote problems that make a stay unpriceable, and
// illegal lifecycle transitions.  All of them are plain typed values; the
// engine never panics and never returns anything fatal.

// Reason codes carried by ValidationError.  Handlers map these to a single
// user-facing message.
const (
	ReasonMissingField          = "missing_field"
	ReasonInvalidEmail          = "invalid_email"
	ReasonInvalidPhone          = "invalid_phone"
	ReasonInvalidDate           = "invalid_date"
	ReasonCheckinInPast         = "checkin_in_past"
	ReasonCheckoutBeforeCheckin = "checkout_before_checkin"
)

// ValidationError identifies the first field that failed validation and why.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid booking request: field %q: %s", e.Field, e.Reason)
}

// Reason codes carried by QuoteError.
const (
	ReasonNonPositiveStay   = "non_positive_stay"
	ReasonUnknownRoomType   = "unknown_room_type"
	ReasonInvalidGuestCount = "invalid_guest_count"
)

// QuoteError means the requested stay cannot be priced.
type QuoteError struct {
	Reason string
}

func (e *QuoteError) Error() string {
	return "cannot price stay: " + e.Reason
}

// TransitionError reports an attempt to move a booking along an edge that
// the lifecycle state machine does not allow.
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("illegal transition from %q to %q", e.From, e.To)
}
