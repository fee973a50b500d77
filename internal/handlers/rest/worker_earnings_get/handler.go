package worker_earnings_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"dispatch/internal/entities"
	"dispatch/internal/service/worker"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	workerID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	period := entities.EarningsPeriod(r.URL.Query().Get("period"))
	if period == "" {
		period = entities.PeriodAll
	}

	summary, err := h.service.Earnings(r.Context(), workerID, period)
	if err != nil {
		switch {
		case errors.Is(err, worker.ErrInvalidWorkerID),
			errors.Is(err, worker.ErrInvalidPeriod):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, worker.ErrWorkerNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := EarningsResponse{
		WorkerID:      workerID,
		Period:        period.String(),
		TotalEarnings: summary.TotalEarnings,
		TotalJobs:     summary.TotalJobs,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
