package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/odlaor/paradise-resort/internal/booking"
	"github.com/odlaor/paradise-resort/internal/catalog"
	"github.com/odlaor/paradise-resort/internal/repository"
)

// ReportStore is the slice of the report repository the dashboard needs.
type ReportStore interface {
	Dashboard(ctx context.Context, today time.Time) (*repository.DashboardStats, error)
	MonthlyRevenue(ctx context.Context, from, to time.Time) ([]repository.RevenuePoint, error)
	StatusCounts(ctx context.Context) ([]repository.StatusCount, error)
	RoomTypeCounts(ctx context.Context) ([]repository.RoomTypeCount, error)
	TopCustomers(ctx context.Context, limit int) ([]repository.TopCustomer, error)
}

// ReportHandler serves the dashboard statistics and reporting endpoints.
type ReportHandler struct {
	Reports ReportStore
	Catalog *catalog.Catalog

	now func() time.Time
}

// NewReportHandler constructs a ReportHandler.
func NewReportHandler(reports ReportStore, cat *catalog.Catalog) *ReportHandler {
	if reports == nil || cat == nil {
		panic("nil dependency passed to NewReportHandler")
	}
	return &ReportHandler{Reports: reports, Catalog: cat, now: time.Now}
}

// Stats handles GET /v1/admin/stats.  Occupancy rate is occupied rooms over
// the catalog's physical room total.
func (h *ReportHandler) Stats(c echo.Context) error {
	s, err := h.Reports.Dashboard(c.Request().Context(), h.now().UTC())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	rate := 0.0
	if total := h.Catalog.TotalRooms(); total > 0 {
		rate = float64(s.OccupiedRooms) / float64(total)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"total_bookings":   s.TotalBookings,
		"pending_bookings": s.PendingBookings,
		"today_checkins":   s.TodayCheckins,
		"occupied_rooms":   s.OccupiedRooms,
		"occupancy_rate":   rate,
		"monthly_revenue":  s.MonthlyRevenue,
	})
}

// Revenue handles GET /v1/admin/reports/revenue?from=YYYY-MM-DD&to=YYYY-MM-DD.
// The range defaults to the trailing twelve months.
func (h *ReportHandler) Revenue(c echo.Context) error {
	to := h.now().UTC()
	from := to.AddDate(-1, 0, 0)
	if s := c.QueryParam("from"); s != "" {
		t, err := time.Parse(booking.DateLayout, s)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid from date"})
		}
		from = t
	}
	if s := c.QueryParam("to"); s != "" {
		t, err := time.Parse(booking.DateLayout, s)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid to date"})
		}
		to = t
	}
	if !to.After(from) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "to must be after from"})
	}

	series, err := h.Reports.MonthlyRevenue(c.Request().Context(), from, to)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"months": series})
}

// StatusReport handles GET /v1/admin/reports/status.
func (h *ReportHandler) StatusReport(c echo.Context) error {
	counts, err := h.Reports.StatusCounts(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"statuses": counts})
}

// RoomTypeReport handles GET /v1/admin/reports/room-types.
func (h *ReportHandler) RoomTypeReport(c echo.Context) error {
	counts, err := h.Reports.RoomTypeCounts(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"room_types": counts})
}

// TopCustomers handles GET /v1/admin/reports/top-customers?limit=N.
func (h *ReportHandler) TopCustomers(c echo.Context) error {
	limit := 10
	if s := c.QueryParam("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > 100 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid limit"})
		}
		limit = n
	}
	customers, err := h.Reports.TopCustomers(c.Request().Context(), limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"customers": customers})
}
