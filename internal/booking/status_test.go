package booking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odlaor/paradise-resort/internal/booking"
)

var allStatuses = []booking.Status{
	booking.StatusPending,
	booking.StatusConfirmed,
	booking.StatusCheckedIn,
	booking.StatusCheckedOut,
	booking.StatusCancelled,
}

// legalEdges is the complete set of allowed transitions; everything else
// over the 5x5 matrix must be rejected.
var legalEdges = map[[2]booking.Status]bool{
	{booking.StatusPending, booking.StatusConfirmed}:    true,
	{booking.StatusPending, booking.StatusCancelled}:    true,
	{booking.StatusConfirmed, booking.StatusCheckedIn}:  true,
	{booking.StatusConfirmed, booking.StatusCancelled}:  true,
	{booking.StatusCheckedIn, booking.StatusCheckedOut}: true,
}

func TestTransitionTotality(t *testing.T) {
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			got, err := booking.Transition(from, to)
			if legalEdges[[2]booking.Status{from, to}] {
				require.NoError(t, err, "%s -> %s should be legal", from, to)
				assert.Equal(t, to, got)
			} else {
				var te *booking.TransitionError
				require.ErrorAs(t, err, &te, "%s -> %s should be illegal", from, to)
				assert.Equal(t, from, te.From)
				assert.Equal(t, to, te.To)
			}
		}
	}
}

func TestTerminalStatesAdmitNothing(t *testing.T) {
	// Spec scenario: confirming a checked-out booking must fail.
	_, err := booking.Transition(booking.StatusCheckedOut, booking.StatusConfirmed)
	var te *booking.TransitionError
	require.ErrorAs(t, err, &te)

	assert.True(t, booking.StatusCheckedOut.IsTerminal())
	assert.True(t, booking.StatusCancelled.IsTerminal())
	assert.False(t, booking.StatusPending.IsTerminal())
	assert.False(t, booking.StatusConfirmed.IsTerminal())
	assert.False(t, booking.StatusCheckedIn.IsTerminal())
}

func TestParseStatus(t *testing.T) {
	for _, s := range allStatuses {
		got, err := booking.ParseStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	for _, bad := range []string{"", "PENDING", "checkedout", "archived"} {
		_, err := booking.ParseStatus(bad)
		assert.Error(t, err, "status %q should not parse", bad)
	}
}
