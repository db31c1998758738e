package booking

import (
	"regexp"
	"strings"
	"time"
)

// emailRe matches the general local@domain.tld shape without attempting
// full RFC 5322 compliance; the booking form applies the same pattern.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// phoneRe matches exactly ten digits after normalization.
var phoneRe = regexp.MustCompile(`^[0-9]{10}$`)

// requiredFields fixes the order in which missing fields are reported; the
// first missing field wins so the guest always sees a single, stable
// message.  Guest count is checked separately because its zero value is
// numeric rather than a blank string.
var requiredFields = []struct {
	name  string
	value func(*Request) string
}{
	{"full_name", func(r *Request) string { return r.FullName }},
	{"phone", func(r *Request) string { return r.Phone }},
	{"email", func(r *Request) string { return r.Email }},
	{"checkin_date", func(r *Request) string { return r.CheckinDate }},
	{"checkout_date", func(r *Request) string { return r.CheckoutDate }},
	{"room_type", func(r *Request) string { return r.RoomType }},
}

// Validate checks a booking request for structural and temporal problems,
// returning nil on success or the first failure found.  Structural checks
// (presence, email and phone shape) run before the date checks, and the
// function short-circuits on the first error rather than aggregating,
// matching the single-message policy of the booking form.  The caller
// injects now so that "today" is testable; only its calendar date is used.
func Validate(r *Request, now time.Time) *ValidationError {
	for _, f := range requiredFields {
		if strings.TrimSpace(f.value(r)) == "" {
			return &ValidationError{Field: f.name, Reason: ReasonMissingField}
		}
	}
	if r.Guests <= 0 {
		return &ValidationError{Field: "guests", Reason: ReasonMissingField}
	}

	if !emailRe.MatchString(r.Email) {
		return &ValidationError{Field: "email", Reason: ReasonInvalidEmail}
	}
	if !phoneRe.MatchString(normalizePhone(r.Phone)) {
		return &ValidationError{Field: "phone", Reason: ReasonInvalidPhone}
	}

	checkin, err := time.Parse(DateLayout, r.CheckinDate)
	if err != nil {
		return &ValidationError{Field: "checkin_date", Reason: ReasonInvalidDate}
	}
	checkout, err := time.Parse(DateLayout, r.CheckoutDate)
	if err != nil {
		return &ValidationError{Field: "checkout_date", Reason: ReasonInvalidDate}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if checkin.Before(today) {
		return &ValidationError{Field: "checkin_date", Reason: ReasonCheckinInPast}
	}
	if !checkout.After(checkin) {
		return &ValidationError{Field: "checkout_date", Reason: ReasonCheckoutBeforeCheckin}
	}
	return nil
}

// normalizePhone strips hyphens and whitespace so formatted numbers like
// 081-234-5678 validate the same as bare digit runs.
func normalizePhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '-', r == ' ', r == '\t':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
