package jobs_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"dispatch/internal/entities"
	"dispatch/internal/service/jobs"
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
	workerID, err := strconv.ParseInt(r.URL.Query().Get("worker_id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var kindFilter *entities.JobKind
	if kindStr := r.URL.Query().Get("kind"); kindStr != "" {
		kind := entities.JobKind(kindStr)
		kindFilter = &kind
	}

	feed, err := h.service.ListOpenJobs(r.Context(), workerID, kindFilter)
	if err != nil {
		switch {
		case errors.Is(err, jobs.ErrInvalidWorkerID),
			errors.Is(err, jobs.ErrUnknownJobKind):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, worker.ErrWorkerNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := JobsResponse{Jobs: make([]JobDTO, 0, len(feed))}
	for _, job := range feed {
		response.Jobs = append(response.Jobs, toJobDTO(job))
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

func toJobDTO(job entities.Job) JobDTO {
	return JobDTO{
		OrderID:             job.ID,
		Kind:                job.Kind.String(),
		Pickup:              toAddressDTO(job.Pickup),
		Dropoff:             toAddressDTO(job.Dropoff),
		Fare:                job.Fare,
		Distance:            job.Distance,
		VehicleType:         job.VehicleType,
		CustomerName:        job.CustomerName,
		CustomerPhone:       job.CustomerPhone,
		ItemDescription:     job.ItemDescription,
		SpecialInstructions: job.SpecialInstructions,
		CreatedAt:           job.CreatedAt,
	}
}

func toAddressDTO(address entities.Address) AddressDTO {
	return AddressDTO{
		Name:      address.Name,
		Line:      address.Line,
		City:      address.City,
		Latitude:  address.Latitude,
		Longitude: address.Longitude,
	}
}
