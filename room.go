package hotel

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrRoomNotFound         = errors.New("room not found")
	ErrDuplicatedRoomNumber = errors.New("room number already exists")
	ErrRoomHasBookings      = errors.New("room has bookings and cannot be deleted")
	ErrInvalidRoom          = errors.New("room number, type and a positive price are required")
)

type RoomStatus string

const (
	RoomAvailable RoomStatus = "Available"
	RoomBooked    RoomStatus = "Booked"
)

// Valid reports whether s is one of the known room statuses.
func (s RoomStatus) Valid() bool {
	return s == RoomAvailable || s == RoomBooked
}

type Room struct {
	ID            string     `json:"id" db:"id"`
	Number        string     `json:"room_number" db:"room_number"`
	Type          string     `json:"room_type" db:"room_type"`
	PricePerNight float64    `json:"price_per_night" db:"price_per_night"`
	Status        RoomStatus `json:"status" db:"status"`
}

type NewRoom struct {
	Number        string  `json:"room_number"`
	Type          string  `json:"room_type"`
	PricePerNight float64 `json:"price_per_night"`
}

func (nr NewRoom) Validate() error {
	if strings.TrimSpace(nr.Number) == "" || strings.TrimSpace(nr.Type) == "" || nr.PricePerNight <= 0 {
		return ErrInvalidRoom
	}
	return nil
}

// RoomUpdate holds the fields an admin may change on an existing room.
// The room number is immutable once created.
type RoomUpdate struct {
	Type          string  `json:"room_type"`
	PricePerNight float64 `json:"price_per_night"`
}

func (ru RoomUpdate) Validate() error {
	if strings.TrimSpace(ru.Type) == "" || ru.PricePerNight <= 0 {
		return ErrInvalidRoom
	}
	return nil
}

type RoomService interface {
	Create(ctx context.Context, room Room) error
	Update(ctx context.Context, id string, upd RoomUpdate) (Room, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Room, error)
	List(ctx context.Context) ([]Room, error)
	ListAvailable(ctx context.Context) ([]Room, error)
	SetStatus(ctx context.Context, id string, status RoomStatus) error
}
