//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=status_test
package status

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/registry"
)

type OrderRepository interface {
	ApplyStatus(
		ctx context.Context,
		desc registry.Descriptor,
		orderID string,
		mapping registry.StatusMapping,
		driver *entities.DriverInfo,
		at time.Time,
	) error
	GetStatus(ctx context.Context, desc registry.Descriptor, orderID string) (string, error)
	GetSnapshot(ctx context.Context, desc registry.Descriptor, orderID string) (*entities.OrderSnapshot, error)
}
