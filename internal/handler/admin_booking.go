package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/odlaor/paradise-resort/internal/booking"
	"github.com/odlaor/paradise-resort/internal/queue"
	"github.com/odlaor/paradise-resort/internal/repository"
)

// AdminBookingStore is the slice of the booking repository the dashboard
// handlers need.
type AdminBookingStore interface {
	List(ctx context.Context, f repository.ListFilter) ([]*booking.Booking, error)
	GetByBookingID(ctx context.Context, bookingID string) (*booking.Booking, error)
	GetStatus(ctx context.Context, bookingID string) (booking.Status, error)
	UpdateStatus(ctx context.Context, bookingID string, from, to booking.Status) error
}

// AdminHandler serves the dashboard's booking management endpoints.
type AdminHandler struct {
	Store     AdminBookingStore
	Publisher EventPublisher

	now func() time.Time
}

// NewAdminHandler constructs an AdminHandler.  Publisher may be nil.
func NewAdminHandler(store AdminBookingStore, pub EventPublisher) *AdminHandler {
	if store == nil {
		panic("nil store passed to NewAdminHandler")
	}
	return &AdminHandler{Store: store, Publisher: pub, now: time.Now}
}

// ListBookings handles GET /v1/admin/bookings.  Optional query parameters:
// status, date (stays covering that calendar date) and search (guest name
// or booking ID substring).
func (h *AdminHandler) ListBookings(c echo.Context) error {
	var f repository.ListFilter
	if s := c.QueryParam("status"); s != "" {
		st, err := booking.ParseStatus(s)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status"})
		}
		f.Status = st
	}
	if d := c.QueryParam("date"); d != "" {
		if _, err := time.Parse(booking.DateLayout, d); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date"})
		}
		f.Date = d
	}
	f.Search = c.QueryParam("search")

	list, err := h.Store.List(c.Request().Context(), f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": list, "count": len(list)})
}

// GetBooking handles GET /v1/admin/bookings/:id.
func (h *AdminHandler) GetBooking(c echo.Context) error {
	b, err := h.Store.GetByBookingID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, b)
}

// UpdateStatus handles PATCH /v1/admin/bookings/:id/status.  The body
// names the requested status; the current status is reloaded immediately
// before the transition is decided and the update is conditional on it, so
// concurrent transitions cannot silently overwrite each other.
func (h *AdminHandler) UpdateStatus(c echo.Context) error {
	bookingID := c.Param("id")

	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	requested, err := booking.ParseStatus(body.Status)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status"})
	}

	ctx := c.Request().Context()

	current, err := h.Store.GetStatus(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	next, err := booking.Transition(current, requested)
	if err != nil {
		return c.JSON(http.StatusConflict, echo.Map{
			"error": "illegal_transition",
			"from":  current,
			"to":    requested,
		})
	}

	if err := h.Store.UpdateStatus(ctx, bookingID, current, next); err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			// The booking moved between the read and the update.
			return c.JSON(http.StatusConflict, echo.Map{"error": "booking status changed concurrently"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	if h.Publisher != nil {
		_ = h.Publisher.PublishStatusChanged(ctx, queue.BookingStatusChangedEvent{
			BookingID: bookingID,
			From:      string(current),
			To:        string(next),
			ChangedAt: h.now().UTC().Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{"booking_id": bookingID, "status": next})
}
