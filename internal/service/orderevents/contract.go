//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orderevents_test
package orderevents

import (
	"context"

	"dispatch/internal/entities"
)

type AssignmentService interface {
	EnsureUnclaimed(ctx context.Context, orderID string, kind entities.JobKind) (bool, error)
	CancelFromModule(ctx context.Context, orderID string, kind entities.JobKind, reason string) error
}

type (
	ExecuteFn      func(ctx context.Context, event entities.OrderEvent) error
	HandlerFactory interface {
		GetHandler(eventType entities.OrderEventType) (ExecuteFn, error)
	}
)
