package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/odlaor/paradise-resort/internal/booking"
)

// BookingRepo provides CRUD operations for bookings.  One row in the
// bookings table holds the guest's request fields, the computed price
// breakdown, the generated identifiers and the lifecycle status.  Selected
// services are stored as a comma-joined list of service IDs.  All
// timestamp fields are assumed to be stored in UTC.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

const bookingColumns = `booking_id, room_number, full_name, phone, email,
	checkin_date, checkout_date, room_type, guests, services, message,
	nights, room_price, services_price, service_charge, vat, total,
	status, created_at`

// Create inserts a new booking.  The booking ID acts as the primary key;
// when it collides with an existing row, ErrDuplicateBookingID is returned
// so the caller can draw a fresh ID and retry.
func (r *BookingRepo) Create(ctx context.Context, b *booking.Booking) error {
	const q = `INSERT INTO bookings (` + bookingColumns + `)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q,
		b.BookingID, b.RoomNumber, b.FullName, b.Phone, b.Email,
		b.CheckinDate, b.CheckoutDate, b.RoomType, b.Guests,
		strings.Join(b.Request.Services, ","), b.Message,
		b.Nights, b.RoomPrice, b.ServicesPrice, b.ServiceCharge, b.VAT, b.Total,
		string(b.Status), b.CreatedAt.UTC(),
	)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrDuplicateBookingID
		}
		return err
	}
	return nil
}

// scanBooking reads one bookings row in bookingColumns order.
func scanBooking(row interface{ Scan(...any) error }) (*booking.Booking, error) {
	var b booking.Booking
	var checkin, checkout time.Time
	var services sql.NullString
	var message sql.NullString
	var status string
	err := row.Scan(
		&b.BookingID, &b.RoomNumber, &b.FullName, &b.Phone, &b.Email,
		&checkin, &checkout, &b.RoomType, &b.Guests, &services, &message,
		&b.Nights, &b.RoomPrice, &b.ServicesPrice, &b.ServiceCharge, &b.VAT, &b.Total,
		&status, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	b.CheckinDate = checkin.Format(booking.DateLayout)
	b.CheckoutDate = checkout.Format(booking.DateLayout)
	if services.Valid && services.String != "" {
		b.Request.Services = strings.Split(services.String, ",")
	}
	if message.Valid {
		b.Message = message.String
	}
	b.Status = booking.Status(status)
	return &b, nil
}

// GetByBookingID returns a single booking or ErrBookingNotFound.
func (r *BookingRepo) GetByBookingID(ctx context.Context, bookingID string) (*booking.Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_id = ?`
	b, err := scanBooking(r.db.QueryRowContext(ctx, q, bookingID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

// GetStatus returns only the current lifecycle status of a booking.  The
// status endpoint reloads this immediately before deciding a transition so
// it never acts on a stale snapshot.
func (r *BookingRepo) GetStatus(ctx context.Context, bookingID string) (booking.Status, error) {
	const q = `SELECT status FROM bookings WHERE booking_id = ?`
	var s string
	if err := r.db.QueryRowContext(ctx, q, bookingID).Scan(&s); err != nil {
		if err == sql.ErrNoRows {
			return "", ErrBookingNotFound
		}
		return "", err
	}
	return booking.Status(s), nil
}

// UpdateStatus persists an accepted status transition.  The previous status
// is part of the WHERE clause, so a concurrent transition that already
// moved the booking causes ErrBookingNotFound rather than a silent
// overwrite.
func (r *BookingRepo) UpdateStatus(ctx context.Context, bookingID string, from, to booking.Status) error {
	const q = `UPDATE bookings SET status = ? WHERE booking_id = ? AND status = ?`
	res, err := r.db.ExecContext(ctx, q, string(to), bookingID, string(from))
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// ListFilter narrows List results.  Zero values mean "no filter".  Search
// matches against guest name and booking ID, mirroring the dashboard's
// free-text filter.
type ListFilter struct {
	Status booking.Status
	Date   string // bookings whose stay covers this calendar date
	Search string
}

// List returns bookings newest first, optionally filtered.  When no
// bookings match, an empty slice is returned.
func (r *BookingRepo) List(ctx context.Context, f ListFilter) ([]*booking.Booking, error) {
	q := `SELECT ` + bookingColumns + ` FROM bookings`
	var conds []string
	var args []any
	if f.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, string(f.Status))
	}
	if f.Date != "" {
		conds = append(conds, "checkin_date <= ? AND checkout_date > ?")
		args = append(args, f.Date, f.Date)
	}
	if f.Search != "" {
		conds = append(conds, "(LOWER(full_name) LIKE ? OR LOWER(booking_id) LIKE ?)")
		needle := "%" + strings.ToLower(f.Search) + "%"
		args = append(args, needle, needle)
	}
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*booking.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CountOverlapping returns, per room type, the number of active bookings
// (pending, confirmed or checked-in) whose stay overlaps the [from, to)
// date range.  The availability endpoint subtracts these counts from the
// catalog's room totals.  Cancelled and checked-out bookings never occupy
// a room.
func (r *BookingRepo) CountOverlapping(ctx context.Context, from, to string) (map[string]int, error) {
	const q = `SELECT room_type, COUNT(*)
	           FROM bookings
	           WHERE status IN ('pending', 'confirmed', 'checked-in')
	             AND checkin_date < ? AND checkout_date > ?
	           GROUP BY room_type`
	rows, err := r.db.QueryContext(ctx, q, to, from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var roomType string
		var n int
		if err := rows.Scan(&roomType, &n); err != nil {
			return nil, err
		}
		counts[roomType] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}
