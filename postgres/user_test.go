package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/phbpx/hotel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreate(t *testing.T) {
	db, mock := setupMockDB(t)
	us := NewUserService(db)

	user := hotel.User{ID: testUserID, Username: "guest", PasswordHash: "hash", Role: hotel.RoleUser}

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(testUserID, "guest", "hash", hotel.RoleUser).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, us.Create(context.Background(), user))

	mock.ExpectExec(`INSERT INTO users`).
		WillReturnError(&pq.Error{Code: uniqueViolation})
	assert.ErrorIs(t, us.Create(context.Background(), user), hotel.ErrDuplicatedUsername)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserGetByUsername(t *testing.T) {
	db, mock := setupMockDB(t)
	us := NewUserService(db)

	columns := []string{"id", "username", "password_hash", "role"}

	mock.ExpectQuery(`FROM users\s+WHERE username = \$1`).
		WithArgs("admin").
		WillReturnRows(sqlmock.NewRows(columns).AddRow(testUserID, "admin", "hash", "admin"))

	user, err := us.GetByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, hotel.RoleAdmin, user.Role)
	assert.Equal(t, "hash", user.PasswordHash)

	mock.ExpectQuery(`FROM users\s+WHERE username = \$1`).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows(columns))

	_, err = us.GetByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, hotel.ErrUserNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerCreateAndList(t *testing.T) {
	db, mock := setupMockDB(t)
	cs := NewCustomerService(db)

	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	c := hotel.Customer{ID: "c-1", Name: "Ada", Email: "ada@example.com", Phone: "555-0100", Address: "1 Main St", CreatedAt: now}

	mock.ExpectExec(`INSERT INTO customers`).
		WithArgs("c-1", "Ada", "ada@example.com", "555-0100", "1 Main St", now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, cs.Create(context.Background(), c))

	mock.ExpectQuery(`FROM customers`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone", "address", "created_at"}).
			AddRow("c-1", "Ada", "ada@example.com", "555-0100", "1 Main St", now))

	customers, err := cs.List(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, c, customers[0])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardStats(t *testing.T) {
	db, mock := setupMockDB(t)
	ds := NewDashboardService(db)

	mock.ExpectQuery(`SELECT\s+\(SELECT COUNT\(\*\) FROM rooms\) AS total_rooms`).
		WithArgs(hotel.RoomAvailable, hotel.RoomBooked).
		WillReturnRows(sqlmock.NewRows([]string{"total_rooms", "available_rooms", "booked_rooms", "total_revenue"}).
			AddRow(5, 4, 1, 300.0))
	mock.ExpectQuery(`FROM rooms ORDER BY room_number`).
		WillReturnRows(sqlmock.NewRows(roomRowColumns).AddRow(testRoomID, "101", "Single", 100.0, "Booked"))

	stats, err := ds.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, stats.TotalRooms)
	assert.Equal(t, 4, stats.AvailableRooms)
	assert.Equal(t, 1, stats.BookedRooms)
	assert.Equal(t, 300.0, stats.TotalRevenue)
	assert.Len(t, stats.Rooms, 1)

	assert.NoError(t, mock.ExpectationsWereMet())
}
