package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phbpx/hotel"
)

var (
	errMalformedID   = errors.New("ID is not in its proper form")
	errInvalidStatus = errors.New("status must be Available or Booked")
)

type RoomHandler struct {
	service hotel.RoomService
	log     Logger
}

func NewRoomHandler(service hotel.RoomService, log Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		log:     log,
	}
}

func (rh RoomHandler) List(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rooms, err := rh.service.List(ctx)
	if err != nil {
		rh.log.Errorw("List", "error", err.Error())
		respondErr(ctx, rw, http.StatusInternalServerError, err)
		return
	}

	respond(ctx, rw, http.StatusOK, rooms)
}

func (rh RoomHandler) ListAvailable(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rooms, err := rh.service.ListAvailable(ctx)
	if err != nil {
		rh.log.Errorw("ListAvailable", "error", err.Error())
		respondErr(ctx, rw, http.StatusInternalServerError, err)
		return
	}

	respond(ctx, rw, http.StatusOK, rooms)
}

func (rh RoomHandler) Create(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var nr hotel.NewRoom
	if err := decode(rw, r, &nr); err != nil {
		rh.log.Errorw("Create", "error", err.Error())
		respondErr(ctx, rw, http.StatusBadRequest, err)
		return
	}
	if err := nr.Validate(); err != nil {
		respondErr(ctx, rw, http.StatusBadRequest, err)
		return
	}

	room := hotel.Room{
		ID:            uuid.NewString(),
		Number:        nr.Number,
		Type:          nr.Type,
		PricePerNight: nr.PricePerNight,
		Status:        hotel.RoomAvailable,
	}

	if err := rh.service.Create(ctx, room); err != nil {
		rh.log.Errorw("Create", "error", err.Error())
		switch {
		case errors.Is(err, hotel.ErrDuplicatedRoomNumber):
			respondErr(ctx, rw, http.StatusConflict, err)
		default:
			respondErr(ctx, rw, http.StatusInternalServerError, err)
		}
		return
	}

	respond(ctx, rw, http.StatusCreated, room)
}

func (rh RoomHandler) Update(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := rh.roomID(rw, r)
	if !ok {
		return
	}

	var upd hotel.RoomUpdate
	if err := decode(rw, r, &upd); err != nil {
		rh.log.Errorw("Update", "error", err.Error())
		respondErr(ctx, rw, http.StatusBadRequest, err)
		return
	}
	if err := upd.Validate(); err != nil {
		respondErr(ctx, rw, http.StatusBadRequest, err)
		return
	}

	room, err := rh.service.Update(ctx, id, upd)
	if err != nil {
		rh.log.Errorw("Update", "error", err.Error())
		switch {
		case errors.Is(err, hotel.ErrRoomNotFound):
			respondErr(ctx, rw, http.StatusNotFound, err)
		default:
			respondErr(ctx, rw, http.StatusInternalServerError, err)
		}
		return
	}

	respond(ctx, rw, http.StatusOK, room)
}

func (rh RoomHandler) Delete(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := rh.roomID(rw, r)
	if !ok {
		return
	}

	if err := rh.service.Delete(ctx, id); err != nil {
		rh.log.Errorw("Delete", "error", err.Error())
		switch {
		case errors.Is(err, hotel.ErrRoomNotFound):
			respondErr(ctx, rw, http.StatusNotFound, err)
		case errors.Is(err, hotel.ErrRoomHasBookings):
			respondErr(ctx, rw, http.StatusConflict, err)
		default:
			respondErr(ctx, rw, http.StatusInternalServerError, err)
		}
		return
	}

	respond(ctx, rw, http.StatusNoContent, nil)
}

// SetStatus lets an admin flip a room's status by hand, e.g. to release a
// room after the guest has checked out.
func (rh RoomHandler) SetStatus(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := rh.roomID(rw, r)
	if !ok {
		return
	}

	var body struct {
		Status hotel.RoomStatus `json:"status"`
	}
	if err := decode(rw, r, &body); err != nil {
		rh.log.Errorw("SetStatus", "error", err.Error())
		respondErr(ctx, rw, http.StatusBadRequest, err)
		return
	}
	if !body.Status.Valid() {
		respondErr(ctx, rw, http.StatusBadRequest, errInvalidStatus)
		return
	}

	if err := rh.service.SetStatus(ctx, id, body.Status); err != nil {
		rh.log.Errorw("SetStatus", "error", err.Error())
		switch {
		case errors.Is(err, hotel.ErrRoomNotFound):
			respondErr(ctx, rw, http.StatusNotFound, err)
		default:
			respondErr(ctx, rw, http.StatusInternalServerError, err)
		}
		return
	}

	respond(ctx, rw, http.StatusNoContent, nil)
}

func (rh RoomHandler) roomID(rw http.ResponseWriter, r *http.Request) (string, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		rh.log.Errorw("roomID", "error", err.Error())
		respondErr(r.Context(), rw, http.StatusBadRequest, errMalformedID)
		return "", false
	}
	return id.String(), true
}
