//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=worker_history_get_test
package worker_history_get

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
	History(ctx context.Context, workerID int64, filter entities.HistoryFilter) ([]entities.AssignmentWithOrder, error)
}

type HistoryOrderDTO struct {
	Status       string  `json:"status"`
	Pickup       string  `json:"pickup,omitempty"`
	Dropoff      string  `json:"dropoff,omitempty"`
	Fare         float64 `json:"fare"`
	CustomerName string  `json:"customer_name,omitempty"`
}

type HistoryEntryDTO struct {
	OrderID            string           `json:"order_id"`
	Kind               string           `json:"kind"`
	Status             string           `json:"status"`
	Earnings           float64          `json:"earnings,omitempty"`
	AcceptedAt         *time.Time       `json:"accepted_at,omitempty"`
	CompletedAt        *time.Time       `json:"completed_at,omitempty"`
	CancelledAt        *time.Time       `json:"cancelled_at,omitempty"`
	CancellationReason *string          `json:"cancellation_reason,omitempty"`
	Order              *HistoryOrderDTO `json:"order,omitempty"`
}

type HistoryResponse struct {
	WorkerID int64             `json:"worker_id"`
	History  []HistoryEntryDTO `json:"history"`
}
