package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/phbpx/hotel"
)

const bookingColumns = `
	b.id,
	b.user_id,
	b.room_id,
	to_char(b.check_in, 'YYYY-MM-DD') AS check_in,
	to_char(b.check_out, 'YYYY-MM-DD') AS check_out,
	b.total_amount,
	b.created_at`

type BookingService struct {
	db *sqlx.DB
}

func NewBookingService(db *sqlx.DB) hotel.BookingService {
	return &BookingService{
		db: db,
	}
}

// Book runs the availability check and both writes inside one
// transaction that holds a row lock on the room, so two requests for the
// same room are serialized and cannot both pass the overlap check.
func (bs BookingService) Book(ctx context.Context, req hotel.BookingRequest) (hotel.Bill, error) {
	if _, _, err := hotel.ParseStay(req.CheckIn, req.CheckOut); err != nil {
		return hotel.Bill{}, err
	}

	tx, err := bs.db.BeginTxx(ctx, nil)
	if err != nil {
		return hotel.Bill{}, err
	}
	defer tx.Rollback()

	var room hotel.Room
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1 FOR UPDATE`
	if err := tx.GetContext(ctx, &room, query, req.RoomID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return hotel.Bill{}, hotel.ErrRoomNotFound
		}
		return hotel.Bill{}, fmt.Errorf("locking room: %w", err)
	}

	var stays []hotel.Stay
	query = `SELECT check_in, check_out FROM bookings WHERE room_id = $1`
	if err := tx.SelectContext(ctx, &stays, query, room.ID); err != nil {
		return hotel.Bill{}, fmt.Errorf("listing room bookings: %w", err)
	}

	quote, err := hotel.Evaluate(room, req.CheckIn, req.CheckOut, stays)
	if err != nil {
		return hotel.Bill{}, err
	}

	var username string
	if err := tx.GetContext(ctx, &username, `SELECT username FROM users WHERE id = $1`, req.UserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return hotel.Bill{}, hotel.ErrUserNotFound
		}
		return hotel.Bill{}, fmt.Errorf("loading user: %w", err)
	}

	booking := hotel.Booking{
		ID:          uuid.NewString(),
		UserID:      req.UserID,
		RoomID:      room.ID,
		CheckIn:     quote.CheckIn.Format(hotel.DateLayout),
		CheckOut:    quote.CheckOut.Format(hotel.DateLayout),
		TotalAmount: quote.TotalAmount,
		CreatedAt:   time.Now().UTC(),
	}

	query = `
	INSERT INTO bookings (
		id, user_id, room_id, check_in, check_out, total_amount, created_at
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7
	)`

	_, err = tx.ExecContext(ctx, query,
		booking.ID,
		booking.UserID,
		booking.RoomID,
		booking.CheckIn,
		booking.CheckOut,
		booking.TotalAmount,
		booking.CreatedAt,
	)
	if err != nil {
		return hotel.Bill{}, fmt.Errorf("inserting booking: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE rooms SET status = $2 WHERE id = $1`, room.ID, hotel.RoomBooked); err != nil {
		return hotel.Bill{}, fmt.Errorf("marking room booked: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return hotel.Bill{}, err
	}

	return hotel.Bill{
		Booking:    booking,
		RoomNumber: room.Number,
		RoomType:   room.Type,
		Username:   username,
		Nights:     quote.Nights,
	}, nil
}

func (bs BookingService) GetBill(ctx context.Context, id string) (hotel.Bill, error) {
	query := `
	SELECT ` + bookingColumns + `,
		r.room_number,
		r.room_type,
		u.username,
		(b.check_out - b.check_in) AS nights
	FROM bookings b
	JOIN rooms r ON r.id = b.room_id
	JOIN users u ON u.id = b.user_id
	WHERE b.id = $1`

	var bill hotel.Bill
	if err := bs.db.GetContext(ctx, &bill, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return bill, hotel.ErrBookingNotFound
		}
		return bill, err
	}

	return bill, nil
}

func (bs BookingService) List(ctx context.Context) ([]hotel.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings b ORDER BY b.created_at DESC`

	bookings := []hotel.Booking{}
	if err := bs.db.SelectContext(ctx, &bookings, query); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (bs BookingService) ListByUser(ctx context.Context, userID string) ([]hotel.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings b WHERE b.user_id = $1 ORDER BY b.created_at DESC`

	bookings := []hotel.Booking{}
	if err := bs.db.SelectContext(ctx, &bookings, query, userID); err != nil {
		return nil, err
	}
	return bookings, nil
}
