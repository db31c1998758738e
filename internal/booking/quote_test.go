package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odlaor/paradise-resort/internal/booking"
	"github.com/odlaor/paradise-resort/internal/catalog"
)

func date(s string) time.Time {
	t, err := time.Parse(booking.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestComputeQuote(t *testing.T) {
	cat := catalog.Default()

	t.Run("deluxe three nights with breakfast", func(t *testing.T) {
		pb, err := booking.ComputeQuote(cat, "deluxe", date("2024-03-01"), date("2024-03-04"), 2, []string{"breakfast"})
		require.NoError(t, err)

		assert.Equal(t, 3, pb.Nights)
		assert.InDelta(t, 10500, pb.RoomPrice, 1e-6)
		assert.InDelta(t, 1800, pb.ServicesPrice, 1e-6) // 300 * 2 guests * 3 nights
		assert.InDelta(t, 1230.00, pb.ServiceCharge, 1e-6)
		assert.InDelta(t, 947.10, pb.VAT, 1e-6) // (12300+1230)*0.07
		assert.InDelta(t, 14477.10, pb.Total, 1e-6)
	})

	t.Run("per-stay services are flat regardless of guests and nights", func(t *testing.T) {
		pb, err := booking.ComputeQuote(cat, "standard", date("2024-06-01"), date("2024-06-08"), 2, []string{"airport", "spa"})
		require.NoError(t, err)
		assert.InDelta(t, 2300, pb.ServicesPrice, 1e-6) // 800 + 1500, once
	})

	t.Run("unknown services price as zero", func(t *testing.T) {
		with, err := booking.ComputeQuote(cat, "standard", date("2024-06-01"), date("2024-06-02"), 1, []string{"minibar", "helipad"})
		require.NoError(t, err)
		without, err := booking.ComputeQuote(cat, "standard", date("2024-06-01"), date("2024-06-02"), 1, nil)
		require.NoError(t, err)
		assert.Equal(t, without, with)
	})

	t.Run("total equals the sum of its parts", func(t *testing.T) {
		cases := []struct {
			room     string
			in, out  string
			guests   int
			services []string
		}{
			{"standard", "2024-01-10", "2024-01-11", 1, nil},
			{"deluxe", "2024-02-01", "2024-02-15", 3, []string{"breakfast", "tour"}},
			{"suite", "2024-07-04", "2024-07-09", 4, []string{"breakfast", "airport", "spa", "tour"}},
		}
		for _, tc := range cases {
			pb, err := booking.ComputeQuote(cat, tc.room, date(tc.in), date(tc.out), tc.guests, tc.services)
			require.NoError(t, err)
			assert.InDelta(t, pb.RoomPrice+pb.ServicesPrice+pb.ServiceCharge+pb.VAT, pb.Total, 1e-6)
			assert.InDelta(t, (pb.RoomPrice+pb.ServicesPrice)*0.10, pb.ServiceCharge, 1e-6)
			assert.InDelta(t, (pb.RoomPrice+pb.ServicesPrice+pb.ServiceCharge)*0.07, pb.VAT, 1e-6)
		}
	})

	t.Run("identical inputs yield identical breakdowns", func(t *testing.T) {
		first, err := booking.ComputeQuote(cat, "suite", date("2024-03-01"), date("2024-03-05"), 4, []string{"breakfast", "spa"})
		require.NoError(t, err)
		second, err := booking.ComputeQuote(cat, "suite", date("2024-03-01"), date("2024-03-05"), 4, []string{"breakfast", "spa"})
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("non-positive stays cannot be priced", func(t *testing.T) {
		for _, out := range []string{"2024-03-01", "2024-02-28"} {
			_, err := booking.ComputeQuote(cat, "deluxe", date("2024-03-01"), date(out), 2, nil)
			var qe *booking.QuoteError
			require.ErrorAs(t, err, &qe)
			assert.Equal(t, booking.ReasonNonPositiveStay, qe.Reason)
		}
	})

	t.Run("room type must resolve", func(t *testing.T) {
		_, err := booking.ComputeQuote(cat, "penthouse", date("2024-03-01"), date("2024-03-02"), 2, nil)
		var qe *booking.QuoteError
		require.ErrorAs(t, err, &qe)
		assert.Equal(t, booking.ReasonUnknownRoomType, qe.Reason)
	})

	t.Run("guest count must be positive", func(t *testing.T) {
		_, err := booking.ComputeQuote(cat, "standard", date("2024-03-01"), date("2024-03-02"), 0, nil)
		var qe *booking.QuoteError
		require.ErrorAs(t, err, &qe)
		assert.Equal(t, booking.ReasonInvalidGuestCount, qe.Reason)
	})
}

func TestNights(t *testing.T) {
	assert.Equal(t, 1, booking.Nights(date("2024-03-01"), date("2024-03-02")))
	assert.Equal(t, 3, booking.Nights(date("2024-03-01"), date("2024-03-04")))
	assert.Equal(t, 0, booking.Nights(date("2024-03-01"), date("2024-03-01")))
	assert.Equal(t, -2, booking.Nights(date("2024-03-03"), date("2024-03-01")))
	// month boundary
	assert.Equal(t, 2, booking.Nights(date("2024-02-28"), date("2024-03-01"))) // leap year
}
