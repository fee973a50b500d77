package job_advance_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/service/assignment"
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
	var advanceDTO AdvanceRequest
	err := json.NewDecoder(r.Body).Decode(&advanceDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	extra := entities.ActionExtra{
		Earnings:           advanceDTO.Earnings,
		CancellationReason: advanceDTO.Reason,
	}

	updated, err := h.service.AdvanceStatus(
		r.Context(),
		advanceDTO.OrderID,
		entities.JobKind(advanceDTO.Kind),
		advanceDTO.WorkerID,
		entities.WorkerAction(advanceDTO.Action),
		extra,
	)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidOrderID),
			errors.Is(err, assignment.ErrInvalidWorkerID),
			errors.Is(err, assignment.ErrUnknownJobKind),
			errors.Is(err, assignment.ErrUnknownAction):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, assignment.ErrAssignmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, assignment.ErrNotJobOwner):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, assignment.ErrInvalidTransition):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := AdvanceResponse{
		OrderID:     updated.OrderID,
		Kind:        updated.Kind.String(),
		Status:      updated.Status.String(),
		Earnings:    updated.Earnings,
		CompletedAt: updated.CompletedAt,
		CancelledAt: updated.CancelledAt,
	}
	if updated.WorkerID != nil {
		response.WorkerID = *updated.WorkerID
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
