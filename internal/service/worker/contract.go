//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=worker_test
package worker

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*entities.Worker, error)
	IncrementTotalJobs(ctx context.Context, id int64) error
	IncrementCompleted(ctx context.Context, id int64, earnings float64) error
	IncrementCancelled(ctx context.Context, id int64) error
}

type AssignmentRepository interface {
	ListByWorker(ctx context.Context, workerID int64, filter entities.HistoryFilter) ([]entities.Assignment, error)
	EarningsSummary(ctx context.Context, workerID int64, since *time.Time) (*entities.EarningsSummary, error)
}

type OrderReader interface {
	Snapshot(ctx context.Context, kind entities.JobKind, orderID string) (*entities.OrderSnapshot, error)
}
