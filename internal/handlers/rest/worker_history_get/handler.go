package worker_history_get

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

	filter, err := parseFilter(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	history, err := h.service.History(r.Context(), workerID, filter)
	if err != nil {
		switch {
		case errors.Is(err, worker.ErrInvalidWorkerID),
			errors.Is(err, worker.ErrUnknownJobKind):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, worker.ErrWorkerNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := HistoryResponse{
		WorkerID: workerID,
		History:  make([]HistoryEntryDTO, 0, len(history)),
	}
	for _, entry := range history {
		response.History = append(response.History, toHistoryEntryDTO(entry))
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

func parseFilter(r *http.Request) (entities.HistoryFilter, error) {
	var filter entities.HistoryFilter

	if kindStr := r.URL.Query().Get("kind"); kindStr != "" {
		kind := entities.JobKind(kindStr)
		filter.Kind = &kind
	}
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		status := entities.AssignmentStatus(statusStr)
		filter.Status = &status
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return filter, err
		}
		filter.Limit = limit
	}

	return filter, nil
}

func toHistoryEntryDTO(entry entities.AssignmentWithOrder) HistoryEntryDTO {
	dto := HistoryEntryDTO{
		OrderID:            entry.Assignment.OrderID,
		Kind:               entry.Assignment.Kind.String(),
		Status:             entry.Assignment.Status.String(),
		Earnings:           entry.Assignment.Earnings,
		AcceptedAt:         entry.Assignment.AcceptedAt,
		CompletedAt:        entry.Assignment.CompletedAt,
		CancelledAt:        entry.Assignment.CancelledAt,
		CancellationReason: entry.Assignment.CancellationReason,
	}

	if entry.Order != nil {
		dto.Order = &HistoryOrderDTO{
			Status:       entry.Order.Status,
			Pickup:       entry.Order.Pickup,
			Dropoff:      entry.Order.Dropoff,
			Fare:         entry.Order.Fare,
			CustomerName: entry.Order.CustomerName,
		}
	}

	return dto
}
