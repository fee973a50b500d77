//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type Repository interface {
	GetByOrderID(ctx context.Context, orderID string, kind entities.JobKind) (*entities.Assignment, error)
	CreateAccepted(ctx context.Context, orderID string, kind entities.JobKind, workerID int64, at time.Time) (*entities.Assignment, error)
	EnsureUnclaimed(ctx context.Context, orderID string, kind entities.JobKind) (bool, error)
	Claim(ctx context.Context, orderID string, kind entities.JobKind, workerID int64, at time.Time) (*entities.Assignment, error)
	UpdateStatus(
		ctx context.Context,
		orderID string,
		kind entities.JobKind,
		workerID int64,
		expected entities.AssignmentStatus,
		modify entities.AssignmentModify,
	) (*entities.Assignment, error)
	CancelUnclaimed(ctx context.Context, orderID string, kind entities.JobKind, reason string, at time.Time) (*entities.Assignment, error)
	ListUpdatedSince(ctx context.Context, kind entities.JobKind, since time.Time) ([]entities.Assignment, error)
}

type WorkerDirectory interface {
	Find(ctx context.Context, workerID int64) (*entities.Worker, error)
	IncrementTotalJobs(ctx context.Context, workerID int64) error
	IncrementCompleted(ctx context.Context, workerID int64, earnings float64) error
	IncrementCancelled(ctx context.Context, workerID int64) error
}

type StatusTranslator interface {
	Apply(
		ctx context.Context,
		kind entities.JobKind,
		orderID string,
		assignmentStatus entities.AssignmentStatus,
		driver *entities.DriverInfo,
		at time.Time,
	) error
	OrderStatus(ctx context.Context, kind entities.JobKind, orderID string) (string, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
