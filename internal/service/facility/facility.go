package facility

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

// fallbackPickup показывается в ленте, когда ни одного активного склада
// нет: лента из-за этого не падает.
var fallbackPickup = entities.Address{
	Name: "Pickup point",
	Line: "see order details",
}

type Facility struct {
	repository Repository
	log        logger.Logger
}

func New(repository Repository, log logger.Logger) *Facility {
	return &Facility{
		repository: repository,
		log:        log,
	}
}

func (f *Facility) ResolvePickup(ctx context.Context) entities.Address {
	facility, err := f.repository.DefaultActive(ctx)
	if err != nil {
		f.log.Warn("resolve pickup facility", logger.NewField("error", err.Error()))
		return fallbackPickup
	}

	return facility.Address()
}
