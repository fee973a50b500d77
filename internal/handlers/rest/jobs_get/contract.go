//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=jobs_get_test
package jobs_get

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ListOpenJobs(ctx context.Context, workerID int64, kindFilter *entities.JobKind) ([]entities.Job, error)
}

type AddressDTO struct {
	Name      string  `json:"name,omitempty"`
	Line      string  `json:"line"`
	City      string  `json:"city,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

type JobDTO struct {
	OrderID             string     `json:"order_id"`
	Kind                string     `json:"kind"`
	Pickup              AddressDTO `json:"pickup"`
	Dropoff             AddressDTO `json:"dropoff"`
	Fare                float64    `json:"fare"`
	Distance            float64    `json:"distance_km,omitempty"`
	VehicleType         string     `json:"vehicle_type"`
	CustomerName        string     `json:"customer_name,omitempty"`
	CustomerPhone       string     `json:"customer_phone,omitempty"`
	ItemDescription     string     `json:"item_description,omitempty"`
	SpecialInstructions string     `json:"special_instructions,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}

type JobsResponse struct {
	Jobs []JobDTO `json:"jobs"`
}
