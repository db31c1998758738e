package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/odlaor/paradise-resort/internal/booking"
)

// ReportRepo computes the dashboard and reporting aggregates.  Revenue
// figures always exclude cancelled bookings; occupancy counts only
// bookings whose stay covers the date in question and that still occupy
// a room.
type ReportRepo struct {
	db *sql.DB
}

// NewReportRepo constructs a ReportRepo with the given DB handle.
func NewReportRepo(db *sql.DB) *ReportRepo {
	return &ReportRepo{db: db}
}

// DashboardStats is the at-a-glance summary shown at the top of the
// admin dashboard.
type DashboardStats struct {
	TotalBookings   int     `json:"total_bookings"`
	TodayCheckins   int     `json:"today_checkins"`
	OccupiedRooms   int     `json:"occupied_rooms"`
	MonthlyRevenue  float64 `json:"monthly_revenue"`
	PendingBookings int     `json:"pending_bookings"`
}

// Dashboard returns the summary counters for the given reference date,
// normally today.  Month boundaries are taken from the same date.
func (r *ReportRepo) Dashboard(ctx context.Context, today time.Time) (*DashboardStats, error) {
	day := today.Format(booking.DateLayout)
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)

	var s DashboardStats

	const totals = `SELECT COUNT(*),
	                       COALESCE(SUM(status = 'pending'), 0)
	                FROM bookings`
	if err := r.db.QueryRowContext(ctx, totals).Scan(&s.TotalBookings, &s.PendingBookings); err != nil {
		return nil, err
	}

	const checkins = `SELECT COUNT(*) FROM bookings
	                  WHERE checkin_date = ? AND status IN ('pending', 'confirmed', 'checked-in')`
	if err := r.db.QueryRowContext(ctx, checkins, day).Scan(&s.TodayCheckins); err != nil {
		return nil, err
	}

	const occupied = `SELECT COUNT(*) FROM bookings
	                  WHERE status IN ('confirmed', 'checked-in')
	                    AND checkin_date <= ? AND checkout_date > ?`
	if err := r.db.QueryRowContext(ctx, occupied, day, day).Scan(&s.OccupiedRooms); err != nil {
		return nil, err
	}

	const revenue = `SELECT COALESCE(SUM(total), 0) FROM bookings
	                 WHERE status != 'cancelled'
	                   AND created_at >= ? AND created_at < ?`
	if err := r.db.QueryRowContext(ctx, revenue, monthStart, nextMonth).Scan(&s.MonthlyRevenue); err != nil {
		return nil, err
	}

	return &s, nil
}

// RevenuePoint is one month of booked revenue.
type RevenuePoint struct {
	Month    string  `json:"month"` // YYYY-MM
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

// MonthlyRevenue returns the per-month revenue series for bookings
// created in [from, to).  Months with no bookings are simply absent
// from the result.
func (r *ReportRepo) MonthlyRevenue(ctx context.Context, from, to time.Time) ([]RevenuePoint, error) {
	const q = `SELECT DATE_FORMAT(created_at, '%Y-%m') AS month,
	                  COUNT(*),
	                  COALESCE(SUM(total), 0)
	           FROM bookings
	           WHERE status != 'cancelled'
	             AND created_at >= ? AND created_at < ?
	           GROUP BY month
	           ORDER BY month`
	rows, err := r.db.QueryContext(ctx, q, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]RevenuePoint, 0)
	for rows.Next() {
		var p RevenuePoint
		if err := rows.Scan(&p.Month, &p.Bookings, &p.Revenue); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// StatusCount pairs a lifecycle status with the number of bookings
// currently in it.
type StatusCount struct {
	Status booking.Status `json:"status"`
	Count  int            `json:"count"`
}

// StatusCounts returns the booking population grouped by status.
func (r *ReportRepo) StatusCounts(ctx context.Context) ([]StatusCount, error) {
	const q = `SELECT status, COUNT(*) FROM bookings GROUP BY status ORDER BY COUNT(*) DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]StatusCount, 0)
	for rows.Next() {
		var c StatusCount
		var s string
		if err := rows.Scan(&s, &c.Count); err != nil {
			return nil, err
		}
		c.Status = booking.Status(s)
		out = append(out, c)
	}
	return out, rows.Err()
}

// RoomTypeCount pairs a room type with booking volume and revenue.
type RoomTypeCount struct {
	RoomType string  `json:"room_type"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

// RoomTypeCounts returns booking volume and revenue grouped by room
// type, most booked first.  Cancelled bookings count toward neither.
func (r *ReportRepo) RoomTypeCounts(ctx context.Context) ([]RoomTypeCount, error) {
	const q = `SELECT room_type, COUNT(*), COALESCE(SUM(total), 0)
	           FROM bookings
	           WHERE status != 'cancelled'
	           GROUP BY room_type
	           ORDER BY COUNT(*) DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]RoomTypeCount, 0)
	for rows.Next() {
		var c RoomTypeCount
		if err := rows.Scan(&c.RoomType, &c.Bookings, &c.Revenue); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// TopCustomer is a repeat guest ranked by lifetime spend.
type TopCustomer struct {
	FullName string  `json:"full_name"`
	Email    string  `json:"email"`
	Bookings int     `json:"bookings"`
	Spend    float64 `json:"spend"`
}

// TopCustomers returns up to limit guests ordered by total spend across
// their non-cancelled bookings.  Guests are identified by email address.
func (r *ReportRepo) TopCustomers(ctx context.Context, limit int) ([]TopCustomer, error) {
	if limit < 1 {
		limit = 10
	}
	const q = `SELECT MAX(full_name), email, COUNT(*), COALESCE(SUM(total), 0) AS spend
	           FROM bookings
	           WHERE status != 'cancelled'
	           GROUP BY email
	           ORDER BY spend DESC
	           LIMIT ?`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]TopCustomer, 0)
	for rows.Next() {
		var c TopCustomer
		if err := rows.Scan(&c.FullName, &c.Email, &c.Bookings, &c.Spend); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
