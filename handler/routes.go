package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/phbpx/hotel"
	"github.com/phbpx/hotel/auth"
)

// App bundles what the HTTP routes need.
type App struct {
	Log          Logger
	Tokens       *auth.Tokens
	LoginLimiter *RateLimiter
	SecureCookie bool

	Users     hotel.UserService
	Rooms     hotel.RoomService
	Bookings  hotel.BookingService
	Customers hotel.CustomerService
	Dashboard hotel.DashboardService
}

// Routes mounts the API on r.
func Routes(r chi.Router, app App) {
	authn := NewAuthenticator(app.Tokens)

	authHandler := NewAuthHandler(app.Users, app.Tokens, app.SecureCookie, app.Log)
	roomHandler := NewRoomHandler(app.Rooms, app.Log)
	bookingHandler := NewBookingHandler(app.Bookings, app.Log)
	customerHandler := NewCustomerHandler(app.Customers, app.Log)
	dashboardHandler := NewDashboardHandler(app.Dashboard, app.Log)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.With(app.LoginLimiter.Limit).Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
		r.With(authn.RequireAuth).Get("/me", authHandler.Me)
	})

	r.Route("/rooms", func(r chi.Router) {
		r.With(authn.RequireAuth).Get("/available", roomHandler.ListAvailable)

		r.Group(func(r chi.Router) {
			r.Use(authn.RequireAdmin)
			r.Get("/", roomHandler.List)
			r.Post("/", roomHandler.Create)
			r.Put("/{id}", roomHandler.Update)
			r.Delete("/{id}", roomHandler.Delete)
			r.Put("/{id}/status", roomHandler.SetStatus)
		})
	})

	r.Route("/bookings", func(r chi.Router) {
		r.Use(authn.RequireAuth)
		r.Post("/", bookingHandler.Create)
		r.Get("/", bookingHandler.List)
		r.Get("/{id}/bill", bookingHandler.Bill)
		r.Get("/{id}/bill.pdf", bookingHandler.BillPDF)
	})

	r.Route("/customers", func(r chi.Router) {
		r.Use(authn.RequireAuth)
		r.Get("/", customerHandler.List)
		r.Post("/", customerHandler.Create)
	})

	r.With(authn.RequireAdmin).Get("/dashboard", dashboardHandler.Stats)
}
