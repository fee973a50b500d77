package job_accept_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/service/assignment"
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
	var acceptDTO AcceptRequest
	err := json.NewDecoder(r.Body).Decode(&acceptDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	accepted, err := h.service.Accept(r.Context(), acceptDTO.OrderID, entities.JobKind(acceptDTO.Kind), acceptDTO.WorkerID)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidOrderID),
			errors.Is(err, assignment.ErrInvalidWorkerID),
			errors.Is(err, assignment.ErrUnknownJobKind):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, assignment.ErrJobNotFound),
			errors.Is(err, worker.ErrWorkerNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, assignment.ErrAlreadyAssignedToOther):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, assignment.ErrKindNotAllowed):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := AcceptResponse{
		OrderID:    accepted.OrderID,
		Kind:       accepted.Kind.String(),
		Status:     accepted.Status.String(),
		AcceptedAt: accepted.AcceptedAt,
	}
	if accepted.WorkerID != nil {
		response.WorkerID = *accepted.WorkerID
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
