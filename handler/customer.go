package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/phbpx/hotel"
)

type CustomerHandler struct {
	service hotel.CustomerService
	log     Logger
}

func NewCustomerHandler(service hotel.CustomerService, log Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		log:     log,
	}
}

func (ch CustomerHandler) Create(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var customer hotel.Customer
	if err := decode(rw, r, &customer); err != nil {
		ch.log.Errorw("Create", "error", err.Error())
		respondErr(ctx, rw, http.StatusBadRequest, err)
		return
	}
	if err := customer.Validate(); err != nil {
		respondErr(ctx, rw, http.StatusBadRequest, err)
		return
	}

	customer.ID = uuid.NewString()
	customer.CreatedAt = time.Now().UTC()

	if err := ch.service.Create(ctx, customer); err != nil {
		ch.log.Errorw("Create", "error", err.Error())
		respondErr(ctx, rw, http.StatusInternalServerError, err)
		return
	}

	respond(ctx, rw, http.StatusCreated, customer)
}

func (ch CustomerHandler) List(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	customers, err := ch.service.List(ctx)
	if err != nil {
		ch.log.Errorw("List", "error", err.Error())
		respondErr(ctx, rw, http.StatusInternalServerError, err)
		return
	}

	respond(ctx, rw, http.StatusOK, customers)
}
