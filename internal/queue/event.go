// Package queue defines message payloads exchanged over the message broker
// and the background consumer that records them to the booking log.
package queue

// Queue names used by both publisher and consumer.  Queues are declared
// durable on each side so either process can start first.
const (
	BookingCreatedQueue = "booking.created"
	BookingStatusQueue  = "booking.status"
)

// BookingCreatedEvent is published when a new booking is accepted.  It
// carries enough information for downstream consumers to log, notify, or
// feed analytics without querying the primary database.
type BookingCreatedEvent struct {
	BookingID    string   `json:"booking_id"`
	RoomNumber   string   `json:"room_number"`
	FullName     string   `json:"full_name"`
	Email        string   `json:"email"`
	RoomType     string   `json:"room_type"`
	CheckinDate  string   `json:"checkin_date"`
	CheckoutDate string   `json:"checkout_date"`
	Guests       int      `json:"guests"`
	Nights       int      `json:"nights"`
	Services     []string `json:"services"`
	Total        float64  `json:"total"`
	CreatedAt    string   `json:"created_at"`
}

// BookingStatusChangedEvent is published when an admin moves a booking
// through its lifecycle.
type BookingStatusChangedEvent struct {
	BookingID string `json:"booking_id"`
	From      string `json:"from"`
	To        string `json:"to"`
	ChangedAt string `json:"changed_at"`
}
