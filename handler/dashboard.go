package handler

import (
	"net/http"

	"github.com/phbpx/hotel"
)

type DashboardHandler struct {
	service hotel.DashboardService
	log     Logger
}

func NewDashboardHandler(service hotel.DashboardService, log Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		log:     log,
	}
}

func (dh DashboardHandler) Stats(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := dh.service.Stats(ctx)
	if err != nil {
		dh.log.Errorw("Stats", "error", err.Error())
		respondErr(ctx, rw, http.StatusInternalServerError, err)
		return
	}

	respond(ctx, rw, http.StatusOK, stats)
}
