package jobs

import (
	"context"
	"fmt"
	"sort"

	"dispatch/internal/entities"
	"dispatch/internal/registry"
	"dispatch/pkg/logger"
)

// Jobs собирает ленту открытых заказов из таблиц всех вертикалей.
// Лента вычисляется на каждый запрос и нигде не кешируется: источником
// правды остаются сами модули.
type Jobs struct {
	registry    *registry.Registry
	orders      OrderRepository
	assignments AssignmentRepository
	pickup      PickupResolver
	workers     WorkerDirectory
	log         logger.Logger
}

func New(
	reg *registry.Registry,
	orders OrderRepository,
	assignments AssignmentRepository,
	pickup PickupResolver,
	workers WorkerDirectory,
	log logger.Logger,
) *Jobs {
	return &Jobs{
		registry:    reg,
		orders:      orders,
		assignments: assignments,
		pickup:      pickup,
		workers:     workers,
		log:         log,
	}
}

func (j *Jobs) ListOpenJobs(ctx context.Context, workerID int64, kindFilter *entities.JobKind) ([]entities.Job, error) {
	if workerID <= 0 {
		return nil, ErrInvalidWorkerID
	}
	if kindFilter != nil && !kindFilter.IsValid() {
		return nil, ErrUnknownJobKind
	}

	worker, err := j.workers.Find(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("find worker: %w", err)
	}

	// Оффлайн-исполнитель ленту не видит. Это не ошибка.
	if !worker.IsOnline {
		return []entities.Job{}, nil
	}

	kinds := allowedKinds(worker.ModuleType, kindFilter)

	feed := []entities.Job{}
	for _, kind := range kinds {
		jobs, err := j.listKind(ctx, kind)
		if err != nil {
			// Отказ одной вертикали не должен гасить всю ленту:
			// отдаем частичный результат.
			j.log.Error("list open jobs for kind",
				logger.NewField("kind", kind.String()),
				logger.NewField("error", err.Error()),
			)
			continue
		}
		feed = append(feed, jobs...)
	}

	sort.SliceStable(feed, func(a, b int) bool {
		return feed[a].CreatedAt.After(feed[b].CreatedAt)
	})

	return feed, nil
}

func (j *Jobs) listKind(ctx context.Context, kind entities.JobKind) ([]entities.Job, error) {
	desc := j.registry.Describe(kind)

	candidates, err := j.orders.ListOpen(ctx, desc)
	if err != nil {
		return nil, fmt.Errorf("list open orders: %w", err)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		ids = append(ids, candidate.ID)
	}

	terminal, err := j.assignments.TerminalOrderIDs(ctx, kind, ids)
	if err != nil {
		return nil, fmt.Errorf("filter terminal assignments: %w", err)
	}

	var facilityPickup entities.Address
	if desc.UsesFacilityPickup {
		facilityPickup = j.pickup.ResolvePickup(ctx)
	}

	jobs := make([]entities.Job, 0, len(candidates))
	for _, candidate := range candidates {
		if _, ok := terminal[candidate.ID]; ok {
			continue
		}
		if desc.UsesFacilityPickup {
			candidate.Pickup = facilityPickup
		}
		jobs = append(jobs, candidate)
	}

	return jobs, nil
}

func allowedKinds(moduleType entities.WorkerModuleType, kindFilter *entities.JobKind) []entities.JobKind {
	allowed := moduleType.AllowedKinds()
	if kindFilter == nil {
		return allowed
	}

	for _, kind := range allowed {
		if kind == *kindFilter {
			return []entities.JobKind{kind}
		}
	}
	return nil
}
