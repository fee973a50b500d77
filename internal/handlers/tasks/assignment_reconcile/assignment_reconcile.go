package assignment_reconcile

import (
	"context"
	"time"

	"dispatch/pkg/logger"
)

type Service interface {
	ReconcileOrderRecords(ctx context.Context, since time.Time) (int64, error)
}

// AssignmentReconcile периодически сверяет недавние назначения с
// таблицами модулей и дописывает отставшие статусы заказов.
type AssignmentReconcile struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	cursor   time.Time
}

// overlap - перехлест между проходами, чтобы не потерять назначения,
// обновившиеся на границе окна.
const overlap = time.Minute

func NewAssignmentReconcile(log logger.Logger, service Service, interval, lookback time.Duration) *AssignmentReconcile {
	return &AssignmentReconcile{
		log:      log,
		service:  service,
		interval: interval,
		cursor:   time.Now().UTC().Add(-lookback),
	}
}

func (a *AssignmentReconcile) TTL() time.Duration {
	return a.interval
}

func (a *AssignmentReconcile) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, a.interval)
	defer cancel()

	startedAt := time.Now().UTC()

	fixed, err := a.service.ReconcileOrderRecords(ctxWithTimeout, a.cursor)
	if err != nil {
		return err
	}

	if fixed > 0 {
		a.log.With(
			logger.NewField("fixed_orders", fixed),
		).Info("assignment reconcile")
	}

	a.cursor = startedAt.Add(-overlap)
	return nil
}

func (a *AssignmentReconcile) Info() string {
	return "assignment reconcile"
}
