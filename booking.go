package hotel

import (
	"context"
	"errors"
	"time"
)

var ErrBookingNotFound = errors.New("booking not found")

type Booking struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"user_id" db:"user_id"`
	RoomID      string    `json:"room_id" db:"room_id"`
	CheckIn     string    `json:"check_in" db:"check_in"`
	CheckOut    string    `json:"check_out" db:"check_out"`
	TotalAmount float64   `json:"total_amount" db:"total_amount"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type BookingRequest struct {
	UserID   string `json:"-"`
	RoomID   string `json:"room_id"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

// Bill is a booking joined with the details printed on its receipt.
type Bill struct {
	Booking
	RoomNumber string `json:"room_number" db:"room_number"`
	RoomType   string `json:"room_type" db:"room_type"`
	Username   string `json:"username" db:"username"`
	Nights     int    `json:"nights" db:"nights"`
}

type BookingService interface {
	// Book validates and prices the request against the room's existing
	// bookings and, when accepted, stores the booking and marks the room
	// Booked. The check and both writes happen as one unit per room.
	Book(ctx context.Context, req BookingRequest) (Bill, error)
	GetBill(ctx context.Context, id string) (Bill, error)
	List(ctx context.Context) ([]Booking, error)
	ListByUser(ctx context.Context, userID string) ([]Booking, error)
}
