package worker

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

// Worker - единая справочная служба исполнителей. Кто что может, решает
// тип модуля исполнителя, а не цепочка поисков по разным таблицам.
type Worker struct {
	repository  Repository
	assignments AssignmentRepository
	orders      OrderReader
	log         logger.Logger
}

func New(
	repository Repository,
	assignments AssignmentRepository,
	orders OrderReader,
	log logger.Logger,
) *Worker {
	return &Worker{
		repository:  repository,
		assignments: assignments,
		orders:      orders,
		log:         log,
	}
}

func (w *Worker) Find(ctx context.Context, workerID int64) (*entities.Worker, error) {
	if workerID <= 0 {
		return nil, ErrInvalidWorkerID
	}

	found, err := w.repository.GetByID(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("get worker: %w", err)
	}

	return found, nil
}

func (w *Worker) IncrementTotalJobs(ctx context.Context, workerID int64) error {
	return w.repository.IncrementTotalJobs(ctx, workerID)
}

func (w *Worker) IncrementCompleted(ctx context.Context, workerID int64, earnings float64) error {
	return w.repository.IncrementCompleted(ctx, workerID, earnings)
}

func (w *Worker) IncrementCancelled(ctx context.Context, workerID int64) error {
	return w.repository.IncrementCancelled(ctx, workerID)
}

// Earnings агрегирует заработок по завершенным назначениям за период.
// Периоды скользящие: day - последние сутки, week - последние 7 дней,
// month - последний месяц.
func (w *Worker) Earnings(ctx context.Context, workerID int64, period entities.EarningsPeriod) (*entities.EarningsSummary, error) {
	if workerID <= 0 {
		return nil, ErrInvalidWorkerID
	}

	since, err := periodStart(period, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if _, err := w.Find(ctx, workerID); err != nil {
		return nil, err
	}

	summary, err := w.assignments.EarningsSummary(ctx, workerID, since)
	if err != nil {
		return nil, fmt.Errorf("earnings summary: %w", err)
	}

	return summary, nil
}

func (w *Worker) History(ctx context.Context, workerID int64, filter entities.HistoryFilter) ([]entities.AssignmentWithOrder, error) {
	if workerID <= 0 {
		return nil, ErrInvalidWorkerID
	}
	if filter.Kind != nil && !filter.Kind.IsValid() {
		return nil, ErrUnknownJobKind
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultHistoryLimit
	}
	if filter.Limit > maxHistoryLimit {
		filter.Limit = maxHistoryLimit
	}

	if _, err := w.Find(ctx, workerID); err != nil {
		return nil, err
	}

	assignments, err := w.assignments.ListByWorker(ctx, workerID, filter)
	if err != nil {
		return nil, fmt.Errorf("list worker assignments: %w", err)
	}

	history := make([]entities.AssignmentWithOrder, 0, len(assignments))
	for _, item := range assignments {
		entry := entities.AssignmentWithOrder{Assignment: item}

		snapshot, err := w.orders.Snapshot(ctx, item.Kind, item.OrderID)
		if err != nil {
			// История полезна и без снепшота заказа.
			w.log.Warn("history order snapshot",
				logger.NewField("kind", item.Kind.String()),
				logger.NewField("order_id", item.OrderID),
				logger.NewField("error", err.Error()),
			)
		} else {
			entry.Order = snapshot
		}

		history = append(history, entry)
	}

	return history, nil
}

func periodStart(period entities.EarningsPeriod, now time.Time) (*time.Time, error) {
	switch period {
	case entities.PeriodDay:
		since := now.AddDate(0, 0, -1)
		return &since, nil
	case entities.PeriodWeek:
		since := now.AddDate(0, 0, -7)
		return &since, nil
	case entities.PeriodMonth:
		since := now.AddDate(0, -1, 0)
		return &since, nil
	case entities.PeriodAll:
		return nil, nil
	}
	return nil, ErrInvalidPeriod
}
