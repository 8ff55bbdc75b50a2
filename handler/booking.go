package handler

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phbpx/hotel"
	"github.com/phbpx/hotel/auth"
	"github.com/phbpx/hotel/bill"
)

type BookingHandler struct {
	service hotel.BookingService
	log     Logger
}

func NewBookingHandler(service hotel.BookingService, log Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

func (bh BookingHandler) Create(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, _ := auth.FromContext(ctx)

	var req hotel.BookingRequest
	if err := decode(rw, r, &req); err != nil {
		bh.log.Errorw("Create", "error", err.Error())
		respondErr(ctx, rw, http.StatusBadRequest, err)
		return
	}
	req.UserID = id.UserID

	// Dates are checked before the room so a malformed request is
	// reported the same way whatever room it names.
	if _, _, err := hotel.ParseStay(req.CheckIn, req.CheckOut); err != nil {
		respondErr(ctx, rw, http.StatusBadRequest, err)
		return
	}
	if _, err := uuid.Parse(req.RoomID); err != nil {
		respondErr(ctx, rw, http.StatusNotFound, hotel.ErrRoomNotFound)
		return
	}

	b, err := bh.service.Book(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, hotel.ErrInvalidDateFormat), errors.Is(err, hotel.ErrCheckOutNotAfterCheckIn):
			respondErr(ctx, rw, http.StatusBadRequest, err)
		case errors.Is(err, hotel.ErrRoomNotFound):
			respondErr(ctx, rw, http.StatusNotFound, err)
		case errors.Is(err, hotel.ErrRoomUnavailable):
			respondErr(ctx, rw, http.StatusConflict, err)
		case errors.Is(err, hotel.ErrUserNotFound):
			respondErr(ctx, rw, http.StatusUnauthorized, err)
		default:
			bh.log.Errorw("Create", "error", err.Error())
			respondErr(ctx, rw, http.StatusInternalServerError, err)
		}
		return
	}

	bh.log.Infow("Create", "booking", b.ID, "room", b.RoomNumber, "nights", b.Nights, "total", b.TotalAmount)
	respond(ctx, rw, http.StatusCreated, b)
}

func (bh BookingHandler) List(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, _ := auth.FromContext(ctx)

	var (
		bookings []hotel.Booking
		err      error
	)
	if id.IsAdmin() {
		bookings, err = bh.service.List(ctx)
	} else {
		bookings, err = bh.service.ListByUser(ctx, id.UserID)
	}
	if err != nil {
		bh.log.Errorw("List", "error", err.Error())
		respondErr(ctx, rw, http.StatusInternalServerError, err)
		return
	}

	respond(ctx, rw, http.StatusOK, bookings)
}

func (bh BookingHandler) Bill(rw http.ResponseWriter, r *http.Request) {
	b, ok := bh.bill(rw, r)
	if !ok {
		return
	}
	respond(r.Context(), rw, http.StatusOK, b)
}

func (bh BookingHandler) BillPDF(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	b, ok := bh.bill(rw, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := bill.Render(&buf, b); err != nil {
		bh.log.Errorw("BillPDF", "error", err.Error())
		respondErr(ctx, rw, http.StatusInternalServerError, err)
		return
	}

	rw.Header().Set("Content-Type", "application/pdf")
	rw.Header().Set("Content-Disposition", "attachment; filename=bill-"+b.ID+".pdf")
	rw.WriteHeader(http.StatusOK)
	rw.Write(buf.Bytes())
}

// bill loads the booking named in the URL. Bookings owned by someone else
// are reported as missing unless the caller is an admin.
func (bh BookingHandler) bill(rw http.ResponseWriter, r *http.Request) (hotel.Bill, bool) {
	ctx := r.Context()
	caller, _ := auth.FromContext(ctx)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondErr(ctx, rw, http.StatusBadRequest, errMalformedID)
		return hotel.Bill{}, false
	}

	b, err := bh.service.GetBill(ctx, id.String())
	if err != nil {
		switch {
		case errors.Is(err, hotel.ErrBookingNotFound):
			respondErr(ctx, rw, http.StatusNotFound, err)
		default:
			bh.log.Errorw("Bill", "error", err.Error())
			respondErr(ctx, rw, http.StatusInternalServerError, err)
		}
		return hotel.Bill{}, false
	}

	if b.UserID != caller.UserID && !caller.IsAdmin() {
		respondErr(ctx, rw, http.StatusNotFound, hotel.ErrBookingNotFound)
		return hotel.Bill{}, false
	}

	return b, true
}
