// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/odlaor/paradise-resort/internal/handler"
)

// RegisterRoutes registers the routes every deployment carries regardless
// of configuration.  Currently that is only the health check, used by load
// balancers and monitoring to verify the service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterPublic registers the guest-facing endpoints under /v1.  The
// catalog and availability reads sit behind the response cache; the quote
// and submission endpoints sit behind the rate limiter so a misbehaving
// client cannot flood the booking pipeline.
func RegisterPublic(e *echo.Echo, b *handler.BookingHandler, cache, limit echo.MiddlewareFunc) {
	e.GET("/v1/rooms", b.ListRooms, cache)
	e.GET("/v1/services", b.ListServices, cache)
	e.GET("/v1/rooms/availability", b.Availability, cache)

	e.POST("/v1/bookings/quote", b.Quote, limit)
	e.POST("/v1/bookings", b.Create, limit)
}

// RegisterAdmin registers the dashboard endpoints under /v1/admin.  The
// dashboard runs on a private network, so no authentication middleware is
// applied here.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, r *handler.ReportHandler) {
	g := e.Group("/v1/admin")

	g.GET("/bookings", a.ListBookings)
	g.GET("/bookings/:id", a.GetBooking)
	g.PATCH("/bookings/:id/status", a.UpdateStatus)

	g.GET("/stats", r.Stats)
	g.GET("/reports/revenue", r.Revenue)
	g.GET("/reports/status", r.StatusReport)
	g.GET("/reports/room-types", r.RoomTypeReport)
	g.GET("/reports/top-customers", r.TopCustomers)
}
