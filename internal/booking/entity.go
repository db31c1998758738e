package booking

import "time"

// DateLayout is the calendar-date format used throughout the booking flow.
// Check-in and check-out have no time-of-day semantics.
const DateLayout = "2006-01-02"

// Request is the transient form submission consumed by the validator and
// the quote calculator.  Dates arrive as plain YYYY-MM-DD strings exactly
// as the booking form sends them; they are parsed after the presence
// checks so that a blank date reports "missing" rather than "malformed".
type Request struct {
	FullName     string   `json:"full_name"`
	Phone        string   `json:"phone"`
	Email        string   `json:"email"`
	CheckinDate  string   `json:"checkin_date"`
	CheckoutDate string   `json:"checkout_date"`
	RoomType     string   `json:"room_type"`
	Guests       int      `json:"guests"`
	Services     []string `json:"additional_services"`
	Message      string   `json:"message"`
}

// StayDates parses the request's check-in and check-out dates.  It is only
// meaningful after Validate has accepted the request.
func (r *Request) StayDates() (checkin, checkout time.Time, err error) {
	checkin, err = time.Parse(DateLayout, r.CheckinDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	checkout, err = time.Parse(DateLayout, r.CheckoutDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return checkin, checkout, nil
}

// PriceBreakdown is the itemized result of pricing a stay.  All amounts are
// kept at full float64 precision; rounding happens only when a caller
// formats the values for display.  Total always equals
// Room + Services + ServiceCharge + VAT.
type PriceBreakdown struct {
	Nights        int     `json:"nights"`
	RoomPrice     float64 `json:"room_price"`
	ServicesPrice float64 `json:"services_price"`
	ServiceCharge float64 `json:"service_charge"`
	VAT           float64 `json:"vat"`
	Total         float64 `json:"total"`
}

// Booking is the persisted aggregate assembled by the submission pipeline:
// generated identifiers, the original request, the computed breakdown, the
// lifecycle status and the creation timestamp.  The engine only constructs
// and validates bookings; storage belongs to the repository layer.
type Booking struct {
	BookingID  string `json:"booking_id"`
	RoomNumber string `json:"room_number"`
	Request
	PriceBreakdown
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
