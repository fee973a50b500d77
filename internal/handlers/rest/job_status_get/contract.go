//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=job_status_get_test
package job_status_get

import (
	"context"

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
	JobStatus(ctx context.Context, orderID string, kind entities.JobKind) (*entities.Assignment, string, error)
}

type StatusResponse struct {
	OrderID          string  `json:"order_id"`
	Kind             string  `json:"kind"`
	OrderStatus      string  `json:"order_status"`
	AssignmentStatus *string `json:"assignment_status,omitempty"`
	WorkerID         *int64  `json:"worker_id,omitempty"`
}
