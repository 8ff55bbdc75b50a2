package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/phbpx/hotel"
)

type DashboardService struct {
	db    *sqlx.DB
	rooms hotel.RoomService
}

func NewDashboardService(db *sqlx.DB) hotel.DashboardService {
	return &DashboardService{
		db:    db,
		rooms: NewRoomService(db),
	}
}

func (ds DashboardService) Stats(ctx context.Context) (hotel.Dashboard, error) {
	query := `
	SELECT
		(SELECT COUNT(*) FROM rooms) AS total_rooms,
		(SELECT COUNT(*) FROM rooms WHERE status = $1) AS available_rooms,
		(SELECT COUNT(*) FROM rooms WHERE status = $2) AS booked_rooms,
		(SELECT COALESCE(SUM(total_amount), 0) FROM bookings) AS total_revenue`

	var counts struct {
		TotalRooms     int     `db:"total_rooms"`
		AvailableRooms int     `db:"available_rooms"`
		BookedRooms    int     `db:"booked_rooms"`
		TotalRevenue   float64 `db:"total_revenue"`
	}
	if err := ds.db.GetContext(ctx, &counts, query, hotel.RoomAvailable, hotel.RoomBooked); err != nil {
		return hotel.Dashboard{}, err
	}

	rooms, err := ds.rooms.List(ctx)
	if err != nil {
		return hotel.Dashboard{}, err
	}

	return hotel.Dashboard{
		TotalRooms:     counts.TotalRooms,
		AvailableRooms: counts.AvailableRooms,
		BookedRooms:    counts.BookedRooms,
		TotalRevenue:   counts.TotalRevenue,
		Rooms:          rooms,
	}, nil
}
