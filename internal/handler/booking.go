package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/odlaor/paradise-resort/internal/booking"
	"github.com/odlaor/paradise-resort/internal/catalog"
	"github.com/odlaor/paradise-resort/internal/queue"
	"github.com/odlaor/paradise-resort/internal/repository"
)

// BookingStore is the slice of the booking repository the public handlers
// need.  Declaring it here keeps the handlers testable with an in-memory
// stub.
type BookingStore interface {
	Create(ctx context.Context, b *booking.Booking) error
	CountOverlapping(ctx context.Context, from, to string) (map[string]int, error)
}

// EventPublisher pushes domain events to the broker.  Publish failures are
// logged by the publisher itself; handlers treat events as best-effort and
// never fail a request over them.
type EventPublisher interface {
	PublishBookingCreated(ctx context.Context, ev queue.BookingCreatedEvent) error
	PublishStatusChanged(ctx context.Context, ev queue.BookingStatusChangedEvent) error
}

// maxIDRedraws bounds how many times a colliding booking ID is redrawn
// before the request gives up with a 503.
const maxIDRedraws = 3

// BookingHandler serves the guest-facing endpoints: the room and service
// catalog, availability, live quotes and booking submission.
type BookingHandler struct {
	Catalog   *catalog.Catalog
	Store     BookingStore
	Gen       *booking.Generator
	Publisher EventPublisher

	now func() time.Time
}

// NewBookingHandler constructs a BookingHandler.  Publisher may be nil when
// no broker is configured.
func NewBookingHandler(cat *catalog.Catalog, store BookingStore, gen *booking.Generator, pub EventPublisher) *BookingHandler {
	if cat == nil || store == nil || gen == nil {
		panic("nil dependency passed to NewBookingHandler")
	}
	return &BookingHandler{Catalog: cat, Store: store, Gen: gen, Publisher: pub, now: time.Now}
}

// ListRooms handles GET /v1/rooms.
func (h *BookingHandler) ListRooms(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"room_types": h.Catalog.RoomTypes})
}

// ListServices handles GET /v1/services.
func (h *BookingHandler) ListServices(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"services": h.Catalog.Services})
}

// roomAvailability is one row of the availability response.
type roomAvailability struct {
	RoomType  string `json:"room_type"`
	Total     int    `json:"total"`
	Booked    int    `json:"booked"`
	Available int    `json:"available"`
}

// Availability handles GET /v1/rooms/availability?checkin=...&checkout=...
// Both dates default to a one-night stay starting today.  Availability is
// the catalog's room total minus active bookings overlapping the range.
func (h *BookingHandler) Availability(c echo.Context) error {
	checkin := c.QueryParam("checkin")
	checkout := c.QueryParam("checkout")
	if checkin == "" {
		checkin = h.now().UTC().Format(booking.DateLayout)
	}
	if checkout == "" {
		t, _ := time.Parse(booking.DateLayout, checkin)
		checkout = t.AddDate(0, 0, 1).Format(booking.DateLayout)
	}
	in, err := time.Parse(booking.DateLayout, checkin)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid checkin date"})
	}
	out, err := time.Parse(booking.DateLayout, checkout)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid checkout date"})
	}
	if !out.After(in) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "checkout must be after checkin"})
	}

	booked, err := h.Store.CountOverlapping(c.Request().Context(), checkin, checkout)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	rooms := make([]roomAvailability, 0, len(h.Catalog.RoomTypes))
	for _, rt := range h.Catalog.RoomTypes {
		n := booked[rt.ID]
		avail := rt.TotalRooms - n
		if avail < 0 {
			avail = 0
		}
		rooms = append(rooms, roomAvailability{RoomType: rt.ID, Total: rt.TotalRooms, Booked: n, Available: avail})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"checkin":  checkin,
		"checkout": checkout,
		"rooms":    rooms,
	})
}

// Quote handles POST /v1/bookings/quote.  It validates the request and
// returns the itemized price breakdown without persisting anything, so the
// booking form can re-price on every change.
func (h *BookingHandler) Quote(c echo.Context) error {
	var req booking.Request
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	pb, errResp := h.priceRequest(&req)
	if errResp != nil {
		return errResp(c)
	}
	return c.JSON(http.StatusOK, pb)
}

// Create handles POST /v1/bookings: validate, price, assign identifiers,
// persist, announce.  A duplicate booking ID is redrawn a bounded number
// of times before the request is rejected.
func (h *BookingHandler) Create(c echo.Context) error {
	var req booking.Request
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	pb, errResp := h.priceRequest(&req)
	if errResp != nil {
		return errResp(c)
	}

	rt, _ := h.Catalog.RoomType(req.RoomType)
	b := &booking.Booking{
		Request:        req,
		PriceBreakdown: pb,
		Status:         booking.StatusPending,
		CreatedAt:      h.now().UTC(),
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	for attempt := 0; ; attempt++ {
		b.BookingID = h.Gen.NextBookingID()
		b.RoomNumber = h.Gen.NextRoomNumber(rt)
		err := h.Store.Create(ctx, b)
		if err == nil {
			break
		}
		if errors.Is(err, repository.ErrDuplicateBookingID) && attempt < maxIDRedraws {
			continue
		}
		if errors.Is(err, repository.ErrDuplicateBookingID) {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "could not allocate booking id"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	if h.Publisher != nil {
		_ = h.Publisher.PublishBookingCreated(ctx, queue.BookingCreatedEvent{
			BookingID:    b.BookingID,
			RoomNumber:   b.RoomNumber,
			FullName:     b.FullName,
			Email:        b.Email,
			RoomType:     b.RoomType,
			CheckinDate:  b.CheckinDate,
			CheckoutDate: b.CheckoutDate,
			Guests:       b.Guests,
			Nights:       b.Nights,
			Services:     b.Request.Services,
			Total:        b.Total,
			CreatedAt:    b.CreatedAt.Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusCreated, b)
}

// priceRequest runs the shared validate-then-quote pipeline.  On failure it
// returns a function that writes the error response, so Quote and Create
// report failures identically.
func (h *BookingHandler) priceRequest(req *booking.Request) (booking.PriceBreakdown, func(echo.Context) error) {
	if verr := booking.Validate(req, h.now()); verr != nil {
		return booking.PriceBreakdown{}, func(c echo.Context) error {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error":  "validation_failed",
				"field":  verr.Field,
				"reason": verr.Reason,
			})
		}
	}
	checkin, checkout, err := req.StayDates()
	if err != nil {
		// Validate has already parsed both dates; this is unreachable in
		// practice but kept as a guard.
		return booking.PriceBreakdown{}, func(c echo.Context) error {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid dates"})
		}
	}
	pb, err := booking.ComputeQuote(h.Catalog, req.RoomType, checkin, checkout, req.Guests, req.Services)
	if err != nil {
		var qe *booking.QuoteError
		if errors.As(err, &qe) {
			return booking.PriceBreakdown{}, func(c echo.Context) error {
				return c.JSON(http.StatusBadRequest, echo.Map{
					"error":  "quote_failed",
					"reason": qe.Reason,
				})
			}
		}
		return booking.PriceBreakdown{}, func(c echo.Context) error {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "quote error"})
		}
	}
	return pb, nil
}
