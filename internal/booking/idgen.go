package booking

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/odlaor/paradise-resort/internal/catalog"
)

// bookingIDPrefix is the fixed prefix on every generated booking ID.
const bookingIDPrefix = "PR"

// Generator produces booking IDs and room-number assignments.  Both schemes
// are best-effort: the booking ID combines the millisecond clock with a
// two-digit random suffix, so two submissions in the same millisecond can
// collide, and the room number is formatted without consulting occupancy.
// The store reports duplicate booking IDs as a conflict so the caller can
// redraw; real room availability is the persistence layer's concern.
type Generator struct {
	now func() time.Time
	rnd *rand.Rand
}

// NewGenerator returns a Generator backed by the wall clock and a
// time-seeded random source.
func NewGenerator() *Generator {
	return NewGeneratorWith(time.Now, rand.NewSource(time.Now().UnixNano()))
}

// NewGeneratorWith allows tests to pin the clock and the random source.
func NewGeneratorWith(now func() time.Time, src rand.Source) *Generator {
	return &Generator{now: now, rnd: rand.New(src)}
}

// NextBookingID returns "PR" followed by the last six digits of the current
// millisecond timestamp and a two-digit random suffix, e.g. PR83712907.
func (g *Generator) NextBookingID() string {
	ms := g.now().UnixMilli()
	return fmt.Sprintf("%s%06d%02d", bookingIDPrefix, ms%1_000_000, g.rnd.Intn(100))
}

// NextRoomNumber formats a room number for the given room type: the type's
// floor digit followed by a two-digit slot drawn from 1..TotalRooms.  It
// only formats an identifier; it never checks whether the room is free.
func (g *Generator) NextRoomNumber(rt catalog.RoomType) string {
	slots := rt.TotalRooms
	if slots < 1 {
		slots = 20
	}
	return fmt.Sprintf("%d%02d", rt.Floor, g.rnd.Intn(slots)+1)
}
