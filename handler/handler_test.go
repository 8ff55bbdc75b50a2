package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/phbpx/hotel"
	"github.com/phbpx/hotel/auth"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	adminID = "00000000-0000-0000-0000-00000000000a"
	guestID = "00000000-0000-0000-0000-00000000000b"
	otherID = "00000000-0000-0000-0000-00000000000c"
	room1ID = "7d0b6a0e-2f4c-4c55-9a57-5d1f0c2b1101"
)

// store is an in-memory implementation of every service the routes use.
type store struct {
	mu        sync.Mutex
	users     map[string]hotel.User
	rooms     map[string]hotel.Room
	bookings  []hotel.Bill
	customers []hotel.Customer
}

func newStore(t *testing.T) *store {
	hash, err := auth.HashPassword("admin123")
	require.NoError(t, err)

	return &store{
		users: map[string]hotel.User{
			"admin": {ID: adminID, Username: "admin", PasswordHash: hash, Role: hotel.RoleAdmin},
		},
		rooms: map[string]hotel.Room{
			room1ID: {ID: room1ID, Number: "101", Type: "Single", PricePerNight: 100, Status: hotel.RoomAvailable},
		},
	}
}

func (s *store) room(id string) hotel.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rooms[id]
}

func (s *store) user(username string) hotel.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users[username]
}

type userStore struct{ *store }

func (s userStore) Create(_ context.Context, u hotel.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.Username]; ok {
		return hotel.ErrDuplicatedUsername
	}
	s.users[u.Username] = u
	return nil
}

func (s userStore) GetByUsername(_ context.Context, username string) (hotel.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[username]
	if !ok {
		return hotel.User{}, hotel.ErrUserNotFound
	}
	return u, nil
}

type roomStore struct{ *store }

func (s roomStore) Create(_ context.Context, room hotel.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.rooms {
		if r.Number == room.Number {
			return hotel.ErrDuplicatedRoomNumber
		}
	}
	s.rooms[room.ID] = room
	return nil
}

func (s roomStore) Update(_ context.Context, id string, upd hotel.RoomUpdate) (hotel.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[id]
	if !ok {
		return hotel.Room{}, hotel.ErrRoomNotFound
	}
	r.Type, r.PricePerNight = upd.Type, upd.PricePerNight
	s.rooms[id] = r
	return r, nil
}

func (s roomStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rooms[id]; !ok {
		return hotel.ErrRoomNotFound
	}
	for _, b := range s.bookings {
		if b.RoomID == id {
			return hotel.ErrRoomHasBookings
		}
	}
	delete(s.rooms, id)
	return nil
}

func (s roomStore) GetByID(_ context.Context, id string) (hotel.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[id]
	if !ok {
		return hotel.Room{}, hotel.ErrRoomNotFound
	}
	return r, nil
}

func (s roomStore) List(_ context.Context) ([]hotel.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rooms := []hotel.Room{}
	for _, r := range s.rooms {
		rooms = append(rooms, r)
	}
	return rooms, nil
}

func (s roomStore) ListAvailable(ctx context.Context) ([]hotel.Room, error) {
	all, _ := s.List(ctx)
	rooms := []hotel.Room{}
	for _, r := range all {
		if r.Status == hotel.RoomAvailable {
			rooms = append(rooms, r)
		}
	}
	return rooms, nil
}

func (s roomStore) SetStatus(_ context.Context, id string, status hotel.RoomStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[id]
	if !ok {
		return hotel.ErrRoomNotFound
	}
	r.Status = status
	s.rooms[id] = r
	return nil
}

type bookingStore struct{ *store }

func (s bookingStore) Book(_ context.Context, req hotel.BookingRequest) (hotel.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[req.RoomID]
	if !ok {
		return hotel.Bill{}, hotel.ErrRoomNotFound
	}

	var stays []hotel.Stay
	for _, b := range s.bookings {
		if b.RoomID == room.ID {
			in, out, _ := hotel.ParseStay(b.CheckIn, b.CheckOut)
			stays = append(stays, hotel.Stay{CheckIn: in, CheckOut: out})
		}
	}

	q, err := hotel.Evaluate(room, req.CheckIn, req.CheckOut, stays)
	if err != nil {
		return hotel.Bill{}, err
	}

	username := ""
	for _, u := range s.users {
		if u.ID == req.UserID {
			username = u.Username
		}
	}

	b := hotel.Bill{
		Booking: hotel.Booking{
			ID:          fmt.Sprintf("5f2c1d3e-0000-4000-8000-%012d", len(s.bookings)+1),
			UserID:      req.UserID,
			RoomID:      room.ID,
			CheckIn:     req.CheckIn,
			CheckOut:    req.CheckOut,
			TotalAmount: q.TotalAmount,
		},
		RoomNumber: room.Number,
		RoomType:   room.Type,
		Username:   username,
		Nights:     q.Nights,
	}
	s.bookings = append(s.bookings, b)
	room.Status = hotel.RoomBooked
	s.rooms[room.ID] = room
	return b, nil
}

func (s bookingStore) GetBill(_ context.Context, id string) (hotel.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return hotel.Bill{}, hotel.ErrBookingNotFound
}

func (s bookingStore) List(_ context.Context) ([]hotel.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []hotel.Booking{}
	for _, b := range s.bookings {
		out = append(out, b.Booking)
	}
	return out, nil
}

func (s bookingStore) ListByUser(ctx context.Context, userID string) ([]hotel.Booking, error) {
	all, _ := s.List(ctx)
	out := []hotel.Booking{}
	for _, b := range all {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

type customerStore struct{ *store }

func (s customerStore) Create(_ context.Context, c hotel.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = append(s.customers, c)
	return nil
}

func (s customerStore) List(_ context.Context) ([]hotel.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]hotel.Customer{}, s.customers...), nil
}

type dashboardStore struct{ *store }

func (s dashboardStore) Stats(ctx context.Context) (hotel.Dashboard, error) {
	rooms, _ := roomStore{s.store}.List(ctx)
	d := hotel.Dashboard{TotalRooms: len(rooms), Rooms: rooms}
	for _, r := range rooms {
		if r.Status == hotel.RoomAvailable {
			d.AvailableRooms++
		} else {
			d.BookedRooms++
		}
	}
	s.mu.Lock()
	for _, b := range s.bookings {
		d.TotalRevenue += b.TotalAmount
	}
	s.mu.Unlock()
	return d, nil
}

type testServer struct {
	*httptest.Server
	store  *store
	tokens *auth.Tokens
}

func newTestServer(t *testing.T) *testServer {
	s := newStore(t)
	tokens := auth.NewTokens("test-secret", time.Hour)

	r := chi.NewRouter()
	Routes(r, App{
		Log:          zap.NewNop().Sugar(),
		Tokens:       tokens,
		LoginLimiter: NewRateLimiter(100, 100),
		Users:        userStore{s},
		Rooms:        roomStore{s},
		Bookings:     bookingStore{s},
		Customers:    customerStore{s},
		Dashboard:    dashboardStore{s},
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return &testServer{Server: srv, store: s, tokens: tokens}
}

func (ts *testServer) token(t *testing.T, userID, username string, role hotel.Role) string {
	tok, err := ts.tokens.Issue(auth.Identity{UserID: userID, Username: username, Role: role})
	require.NoError(t, err)
	return tok
}

func (ts *testServer) adminToken(t *testing.T) string {
	return ts.token(t, adminID, "admin", hotel.RoleAdmin)
}

func (ts *testServer) guestToken(t *testing.T) string {
	ts.store.mu.Lock()
	ts.store.users["guest"] = hotel.User{ID: guestID, Username: "guest", Role: hotel.RoleUser}
	ts.store.mu.Unlock()
	return ts.token(t, guestID, "guest", hotel.RoleUser)
}

func (ts *testServer) do(t *testing.T, method, path, token string, body interface{}) *http.Response {
	var rdr io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, rdr)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, into interface{}) {
	require.NoError(t, json.NewDecoder(resp.Body).Decode(into))
}
