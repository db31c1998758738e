package booking

import (
	"math"
	"time"

	"github.com/odlaor/paradise-resort/internal/catalog"
)

// Nights returns the length of stay in nights, the ceiling of the day
// difference between the two calendar dates.  Time-of-day components are
// discarded before the subtraction.
func Nights(checkin, checkout time.Time) int {
	in := time.Date(checkin.Year(), checkin.Month(), checkin.Day(), 0, 0, 0, 0, time.UTC)
	out := time.Date(checkout.Year(), checkout.Month(), checkout.Day(), 0, 0, 0, 0, time.UTC)
	return int(math.Ceil(out.Sub(in).Hours() / 24))
}

// ComputeQuote prices a prospective stay: room subtotal, add-on services,
// the 10% service charge on (room+services), and 7% VAT on everything
// including the service charge.  It is deterministic and side-effect-free,
// so the caller may invoke it on every form change for live re-pricing.
//
// The room type must resolve in the catalog.  Unknown service identifiers
// are priced as zero rather than rejected, mirroring the lenient fallback
// the rest of the system applies to unknown catalog keys.  All arithmetic
// stays at full precision; rounding is the display layer's job.
func ComputeQuote(cat *catalog.Catalog, roomTypeID string, checkin, checkout time.Time, guests int, serviceIDs []string) (PriceBreakdown, error) {
	rt, ok := cat.RoomType(roomTypeID)
	if !ok {
		return PriceBreakdown{}, &QuoteError{Reason: ReasonUnknownRoomType}
	}
	if guests < 1 {
		return PriceBreakdown{}, &QuoteError{Reason: ReasonInvalidGuestCount}
	}
	nights := Nights(checkin, checkout)
	if nights <= 0 {
		return PriceBreakdown{}, &QuoteError{Reason: ReasonNonPositiveStay}
	}

	room := rt.Price * float64(nights)

	services := 0.0
	for _, id := range serviceIDs {
		svc, ok := cat.Service(id)
		if !ok {
			continue // unknown services contribute nothing
		}
		switch svc.Mode {
		case catalog.PerGuestPerNight:
			services += svc.Price * float64(guests) * float64(nights)
		default:
			services += svc.Price
		}
	}

	subtotal := room + services
	serviceCharge := subtotal * cat.ServiceChargeRate
	vat := (subtotal + serviceCharge) * cat.VATRate

	return PriceBreakdown{
		Nights:        nights,
		RoomPrice:     room,
		ServicesPrice: services,
		ServiceCharge: serviceCharge,
		VAT:           vat,
		Total:         subtotal + serviceCharge + vat,
	}, nil
}
