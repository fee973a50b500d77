package job_status_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

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
	vars := mux.Vars(r)
	kind := entities.JobKind(vars["kind"])
	orderID := vars["order_id"]

	found, orderStatus, err := h.service.JobStatus(r.Context(), orderID, kind)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidOrderID),
			errors.Is(err, assignment.ErrUnknownJobKind):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, assignment.ErrJobNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := StatusResponse{
		OrderID:     orderID,
		Kind:        kind.String(),
		OrderStatus: orderStatus,
	}
	if found != nil {
		assignmentStatus := found.Status.String()
		response.AssignmentStatus = &assignmentStatus
		response.WorkerID = found.WorkerID
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
