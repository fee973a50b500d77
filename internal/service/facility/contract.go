//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=facility_test
package facility

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	DefaultActive(ctx context.Context) (*entities.Facility, error)
}
