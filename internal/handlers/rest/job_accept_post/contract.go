//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=job_accept_post_test
package job_accept_post

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
	Accept(ctx context.Context, orderID string, kind entities.JobKind, workerID int64) (*entities.Assignment, error)
}

type AcceptRequest struct {
	OrderID  string `json:"order_id"`
	Kind     string `json:"kind"`
	WorkerID int64  `json:"worker_id"`
}

type AcceptResponse struct {
	OrderID    string     `json:"order_id"`
	Kind       string     `json:"kind"`
	WorkerID   int64      `json:"worker_id"`
	Status     string     `json:"status"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
}
