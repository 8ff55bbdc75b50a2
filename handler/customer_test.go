package handler

import (
	"net/http"
	"testing"

	"github.com/phbpx/hotel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomers(t *testing.T) {
	ts := newTestServer(t)
	guest := ts.guestToken(t)

	c := hotel.Customer{Name: "Ada", Email: "ada@example.com", Phone: "555-0100", Address: "1 Main St"}

	resp := ts.do(t, http.MethodPost, "/customers/", guest, c)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created hotel.Customer
	decodeBody(t, resp, &created)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	c.Email = ""
	resp = ts.do(t, http.MethodPost, "/customers/", guest, c)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = ts.do(t, http.MethodGet, "/customers/", guest, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var customers []hotel.Customer
	decodeBody(t, resp, &customers)
	require.Len(t, customers, 1)
	assert.Equal(t, "Ada", customers[0].Name)

	resp = ts.do(t, http.MethodGet, "/customers/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestDashboard(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(t, http.MethodPost, "/bookings/", ts.guestToken(t), bookingRequest(room1ID, "2024-01-01", "2024-01-04"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = ts.do(t, http.MethodGet, "/dashboard", ts.adminToken(t), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var d hotel.Dashboard
	decodeBody(t, resp, &d)
	assert.Equal(t, 1, d.TotalRooms)
	assert.Equal(t, 0, d.AvailableRooms)
	assert.Equal(t, 1, d.BookedRooms)
	assert.Equal(t, 300.0, d.TotalRevenue)
}
