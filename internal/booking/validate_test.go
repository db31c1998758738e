package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odlaor/paradise-resort/internal/booking"
)

// now is fixed so "today" is stable across test runs.
var now = time.Date(2024, 3, 1, 15, 30, 0, 0, time.UTC)

func validRequest() booking.Request {
	return booking.Request{
		FullName:     "Somchai Jaidee",
		Phone:        "081-234-5678",
		Email:        "somchai@example.com",
		CheckinDate:  "2024-03-10",
		CheckoutDate: "2024-03-12",
		RoomType:     "deluxe",
		Guests:       2,
		Services:     []string{"breakfast"},
	}
}

func TestValidateAcceptsCompleteRequest(t *testing.T) {
	req := validRequest()
	assert.Nil(t, booking.Validate(&req, now))
}

func TestValidateMissingFields(t *testing.T) {
	cases := []struct {
		field string
		blank func(*booking.Request)
	}{
		{"full_name", func(r *booking.Request) { r.FullName = "" }},
		{"phone", func(r *booking.Request) { r.Phone = "   " }},
		{"email", func(r *booking.Request) { r.Email = "" }},
		{"checkin_date", func(r *booking.Request) { r.CheckinDate = "" }},
		{"checkout_date", func(r *booking.Request) { r.CheckoutDate = "" }},
		{"room_type", func(r *booking.Request) { r.RoomType = "" }},
		{"guests", func(r *booking.Request) { r.Guests = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			req := validRequest()
			tc.blank(&req)
			err := booking.Validate(&req, now)
			require.NotNil(t, err)
			assert.Equal(t, tc.field, err.Field)
			assert.Equal(t, booking.ReasonMissingField, err.Reason)
		})
	}
}

func TestValidateMissingEmailWinsOverOtherProblems(t *testing.T) {
	// Even with broken dates, the missing email is reported first.
	req := validRequest()
	req.Email = ""
	req.CheckinDate = "2020-01-01"
	req.CheckoutDate = "2019-01-01"
	err := booking.Validate(&req, now)
	require.NotNil(t, err)
	assert.Equal(t, "email", err.Field)
	assert.Equal(t, booking.ReasonMissingField, err.Reason)
}

func TestValidateFieldOrderPrecedence(t *testing.T) {
	// With every field blank, the first field in form order wins.
	err := booking.Validate(&booking.Request{}, now)
	require.NotNil(t, err)
	assert.Equal(t, "full_name", err.Field)
}

func TestValidateEmailShape(t *testing.T) {
	for _, bad := range []string{"plain", "a@b", "a b@c.com", "@example.com", "a@.com "} {
		req := validRequest()
		req.Email = bad
		err := booking.Validate(&req, now)
		require.NotNil(t, err, "email %q should be rejected", bad)
		assert.Equal(t, booking.ReasonInvalidEmail, err.Reason)
	}
}

func TestValidatePhoneNormalization(t *testing.T) {
	for _, ok := range []string{"0812345678", "081-234-5678", "081 234 5678"} {
		req := validRequest()
		req.Phone = ok
		assert.Nil(t, booking.Validate(&req, now), "phone %q should pass", ok)
	}
	for _, bad := range []string{"12345", "081234567890", "08123456a8", "+66812345678"} {
		req := validRequest()
		req.Phone = bad
		err := booking.Validate(&req, now)
		require.NotNil(t, err, "phone %q should fail", bad)
		assert.Equal(t, booking.ReasonInvalidPhone, err.Reason)
	}
}

func TestValidateDatePolicy(t *testing.T) {
	t.Run("checkin today is allowed", func(t *testing.T) {
		req := validRequest()
		req.CheckinDate = "2024-03-01"
		req.CheckoutDate = "2024-03-02"
		assert.Nil(t, booking.Validate(&req, now))
	})

	t.Run("checkin in the past", func(t *testing.T) {
		req := validRequest()
		req.CheckinDate = "2024-02-29"
		err := booking.Validate(&req, now)
		require.NotNil(t, err)
		assert.Equal(t, booking.ReasonCheckinInPast, err.Reason)
	})

	t.Run("checkout must be strictly after checkin", func(t *testing.T) {
		for _, out := range []string{"2024-03-10", "2024-03-09"} {
			req := validRequest()
			req.CheckoutDate = out
			err := booking.Validate(&req, now)
			require.NotNil(t, err)
			assert.Equal(t, "checkout_date", err.Field)
			assert.Equal(t, booking.ReasonCheckoutBeforeCheckin, err.Reason)
		}
	})

	t.Run("unparseable dates are rejected", func(t *testing.T) {
		req := validRequest()
		req.CheckinDate = "10/03/2024"
		err := booking.Validate(&req, now)
		require.NotNil(t, err)
		assert.Equal(t, booking.ReasonInvalidDate, err.Reason)
	})
}

func TestStayDates(t *testing.T) {
	req := validRequest()
	in, out, err := req.StayDates()
	require.NoError(t, err)
	assert.Equal(t, "2024-03-10", in.Format(booking.DateLayout))
	assert.Equal(t, "2024-03-12", out.Format(booking.DateLayout))
}
