package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/phbpx/hotel"
)

const roomColumns = `id, room_number, room_type, price_per_night, status`

type RoomService struct {
	db *sqlx.DB
}

func NewRoomService(db *sqlx.DB) hotel.RoomService {
	return &RoomService{
		db: db,
	}
}

func (rs RoomService) Create(ctx context.Context, room hotel.Room) error {
	query := `
	INSERT INTO rooms (
		id, room_number, room_type, price_per_night, status
	) VALUES (
		$1, $2, $3, $4, $5
	)`

	_, err := rs.db.ExecContext(ctx, query,
		room.ID,
		room.Number,
		room.Type,
		room.PricePerNight,
		room.Status,
	)
	if err != nil {
		if pqCode(err) == uniqueViolation {
			return hotel.ErrDuplicatedRoomNumber
		}
		return err
	}

	return nil
}

func (rs RoomService) Update(ctx context.Context, id string, upd hotel.RoomUpdate) (hotel.Room, error) {
	query := `
	UPDATE rooms
	SET room_type = $2, price_per_night = $3
	WHERE id = $1
	RETURNING ` + roomColumns

	var room hotel.Room
	if err := rs.db.GetContext(ctx, &room, query, id, upd.Type, upd.PricePerNight); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return room, hotel.ErrRoomNotFound
		}
		return room, err
	}

	return room, nil
}

func (rs RoomService) Delete(ctx context.Context, id string) error {
	res, err := rs.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		if pqCode(err) == foreignKeyViolation {
			return hotel.ErrRoomHasBookings
		}
		return err
	}
	return expectOneRow(res, hotel.ErrRoomNotFound)
}

func (rs RoomService) GetByID(ctx context.Context, id string) (hotel.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`

	var room hotel.Room
	if err := rs.db.GetContext(ctx, &room, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return room, hotel.ErrRoomNotFound
		}
		return room, err
	}

	return room, nil
}

func (rs RoomService) List(ctx context.Context) ([]hotel.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms ORDER BY room_number`

	rooms := []hotel.Room{}
	if err := rs.db.SelectContext(ctx, &rooms, query); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (rs RoomService) ListAvailable(ctx context.Context) ([]hotel.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE status = $1 ORDER BY room_number`

	rooms := []hotel.Room{}
	if err := rs.db.SelectContext(ctx, &rooms, query, hotel.RoomAvailable); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (rs RoomService) SetStatus(ctx context.Context, id string, status hotel.RoomStatus) error {
	res, err := rs.db.ExecContext(ctx, `UPDATE rooms SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	return expectOneRow(res, hotel.ErrRoomNotFound)
}

// expectOneRow turns a statement that touched no rows into notFound.
func expectOneRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
