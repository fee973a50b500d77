//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=job_advance_post_test
package job_advance_post

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
	AdvanceStatus(
		ctx context.Context,
		orderID string,
		kind entities.JobKind,
		workerID int64,
		action entities.WorkerAction,
		extra entities.ActionExtra,
	) (*entities.Assignment, error)
}

type AdvanceRequest struct {
	OrderID  string   `json:"order_id"`
	Kind     string   `json:"kind"`
	WorkerID int64    `json:"worker_id"`
	Action   string   `json:"action"`
	Earnings *float64 `json:"earnings,omitempty"`
	Reason   *string  `json:"reason,omitempty"`
}

type AdvanceResponse struct {
	OrderID     string     `json:"order_id"`
	Kind        string     `json:"kind"`
	WorkerID    int64      `json:"worker_id"`
	Status      string     `json:"status"`
	Earnings    float64    `json:"earnings,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}
