//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=jobs_test
package jobs

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/internal/registry"
)

type OrderRepository interface {
	ListOpen(ctx context.Context, desc registry.Descriptor) ([]entities.Job, error)
}

type AssignmentRepository interface {
	TerminalOrderIDs(ctx context.Context, kind entities.JobKind, orderIDs []string) (map[string]struct{}, error)
}

type PickupResolver interface {
	ResolvePickup(ctx context.Context) entities.Address
}

type WorkerDirectory interface {
	Find(ctx context.Context, workerID int64) (*entities.Worker, error)
}
