package hotel

import "context"

type Dashboard struct {
	TotalRooms     int     `json:"total_rooms"`
	AvailableRooms int     `json:"available_rooms"`
	BookedRooms    int     `json:"booked_rooms"`
	TotalRevenue   float64 `json:"total_revenue"`
	Rooms          []Room  `json:"rooms"`
}

type DashboardService interface {
	Stats(ctx context.Context) (Dashboard, error)
}
