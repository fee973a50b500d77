package assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/assignment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const returningColumns = `order_id, kind, worker_id, status,
		accepted_at, picked_up_at, delivered_at, completed_at, cancelled_at,
		cancellation_reason, earnings, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID string, kind entities.JobKind) (*entities.Assignment, error) {
	query := `
		SELECT ` + returningColumns + `
		FROM assignments
		WHERE order_id = $1 AND kind = $2
	`

	assignmentDB, err := r.scanRow(r.querier.QueryRow(ctx, query, orderID, kind.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("unexpected assignment repository get error: %w", err)
	}

	return ToDomain(assignmentDB), nil
}

// CreateAccepted создает назначение сразу в статусе accepted (ленивое
// создание при первом захвате). Гонка двух INSERT упирается в PK
// (order_id, kind): проигравший получает 23505.
func (r *Repository) CreateAccepted(ctx context.Context, orderID string, kind entities.JobKind, workerID int64, at time.Time) (*entities.Assignment, error) {
	query := `
		INSERT INTO assignments (order_id, kind, worker_id, status, accepted_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5, $5)
		RETURNING ` + returningColumns + `
	`

	assignmentDB, err := r.scanRow(r.querier.QueryRow(
		ctx,
		query,
		orderID,
		kind.String(),
		workerID,
		entities.AssignmentAccepted.String(),
		at,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) ||
			repository.IsPgConcurrencyError(err) {
			return nil, assignment.ErrAlreadyAssignedToOther
		}
		return nil, fmt.Errorf("unexpected assignment repository create error: %w", err)
	}

	return ToDomain(assignmentDB), nil
}

// EnsureUnclaimed создает незанятое назначение (worker_id NULL), если
// его еще нет. Возвращает true, если запись была создана.
func (r *Repository) EnsureUnclaimed(ctx context.Context, orderID string, kind entities.JobKind) (bool, error) {
	query := `
		INSERT INTO assignments (order_id, kind, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (order_id, kind) DO NOTHING
	`

	result, err := r.querier.Exec(ctx, query, orderID, kind.String(), entities.AssignmentAssigned.String())
	if err != nil {
		return false, fmt.Errorf("unexpected assignment repository ensure error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// Claim - ядро протокола захвата: одиночный условный UPDATE. Захват
// удается только если worker_id все еще NULL на момент записи, поэтому
// из N конкурентных вызовов побеждает ровно один.
func (r *Repository) Claim(ctx context.Context, orderID string, kind entities.JobKind, workerID int64, at time.Time) (*entities.Assignment, error) {
	query := `
		UPDATE assignments
		SET worker_id = $1,
			status = $2,
			accepted_at = $3,
			updated_at = $3
		WHERE order_id = $4
			AND kind = $5
			AND worker_id IS NULL
			AND status = $6
		RETURNING ` + returningColumns + `
	`

	assignmentDB, err := r.scanRow(r.querier.QueryRow(
		ctx,
		query,
		workerID,
		entities.AssignmentAccepted.String(),
		at,
		orderID,
		kind.String(),
		entities.AssignmentAssigned.String(),
	))
	if err != nil {
		// Внутри serializable-транзакции проигравший получает не ноль
		// строк, а 40001: его снапшот устарел. Для вызывающего это та же
		// проигранная гонка.
		if errors.Is(err, pgx.ErrNoRows) || repository.IsPgConcurrencyError(err) {
			return nil, assignment.ErrAlreadyAssignedToOther
		}
		return nil, fmt.Errorf("unexpected assignment repository claim error: %w", err)
	}

	return ToDomain(assignmentDB), nil
}

// UpdateStatus применяет патч при условии, что назначение принадлежит
// исполнителю и все еще в ожидаемом статусе. Потеря guard-а означает
// конкурентный переход.
func (r *Repository) UpdateStatus(
	ctx context.Context,
	orderID string,
	kind entities.JobKind,
	workerID int64,
	expected entities.AssignmentStatus,
	modify entities.AssignmentModify,
) (*entities.Assignment, error) {
	builder := qb.Update("assignments")

	if modify.Status != nil {
		builder = builder.Set("status", modify.Status.String())
	}
	if modify.AcceptedAt != nil {
		builder = builder.Set("accepted_at", *modify.AcceptedAt)
	}
	if modify.PickedUpAt != nil {
		builder = builder.Set("picked_up_at", *modify.PickedUpAt)
	}
	if modify.DeliveredAt != nil {
		builder = builder.Set("delivered_at", *modify.DeliveredAt)
	}
	if modify.CompletedAt != nil {
		builder = builder.Set("completed_at", *modify.CompletedAt)
	}
	if modify.CancelledAt != nil {
		builder = builder.Set("cancelled_at", *modify.CancelledAt)
	}
	if modify.CancellationReason != nil {
		builder = builder.Set("cancellation_reason", *modify.CancellationReason)
	}
	if modify.Earnings != nil {
		builder = builder.Set("earnings", *modify.Earnings)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{
			"order_id":  orderID,
			"kind":      kind.String(),
			"worker_id": workerID,
			"status":    expected.String(),
		}).
		Suffix("RETURNING " + returningColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository update error: %w", err)
	}

	assignmentDB, err := r.scanRow(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrInvalidTransition
		}
		return nil, fmt.Errorf("unexpected assignment repository update error: %w", err)
	}

	return ToDomain(assignmentDB), nil
}

// CancelUnclaimed гасит назначение без владельца (отмена заказа модулем
// до того, как кто-то взял работу).
func (r *Repository) CancelUnclaimed(ctx context.Context, orderID string, kind entities.JobKind, reason string, at time.Time) (*entities.Assignment, error) {
	query := `
		UPDATE assignments
		SET status = $1,
			cancelled_at = $2,
			cancellation_reason = $3,
			updated_at = $2
		WHERE order_id = $4
			AND kind = $5
			AND worker_id IS NULL
			AND status = $6
		RETURNING ` + returningColumns + `
	`

	assignmentDB, err := r.scanRow(r.querier.QueryRow(
		ctx,
		query,
		entities.AssignmentCancelled.String(),
		at,
		reason,
		orderID,
		kind.String(),
		entities.AssignmentAssigned.String(),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("unexpected assignment repository cancel error: %w", err)
	}

	return ToDomain(assignmentDB), nil
}

// TerminalOrderIDs возвращает подмножество orderIDs, у которых есть
// терминальное назначение данной вертикали.
func (r *Repository) TerminalOrderIDs(ctx context.Context, kind entities.JobKind, orderIDs []string) (map[string]struct{}, error) {
	if len(orderIDs) == 0 {
		return map[string]struct{}{}, nil
	}

	query := `
		SELECT order_id
		FROM assignments
		WHERE kind = $1
			AND status = ANY($2)
			AND order_id = ANY($3)
	`

	terminal := []string{
		entities.AssignmentDelivered.String(),
		entities.AssignmentCompleted.String(),
		entities.AssignmentCancelled.String(),
	}

	rows, err := r.querier.Query(ctx, query, kind.String(), terminal, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository terminal lookup error: %w", err)
	}
	defer rows.Close()

	result := make(map[string]struct{})
	for rows.Next() {
		var orderID string
		if err := rows.Scan(&orderID); err != nil {
			return nil, fmt.Errorf("unexpected assignment repository terminal scan error: %w", err)
		}
		result[orderID] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected assignment repository terminal rows error: %w", err)
	}

	return result, nil
}

func (r *Repository) ListByWorker(ctx context.Context, workerID int64, filter entities.HistoryFilter) ([]entities.Assignment, error) {
	builder := qb.
		Select(
			"order_id", "kind", "worker_id", "status",
			"accepted_at", "picked_up_at", "delivered_at", "completed_at", "cancelled_at",
			"cancellation_reason", "earnings", "created_at", "updated_at",
		).
		From("assignments").
		Where(sq.Eq{"worker_id": workerID}).
		OrderBy("updated_at DESC")

	if filter.Kind != nil {
		builder = builder.Where(sq.Eq{"kind": filter.Kind.String()})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository list error: %w", err)
	}
	defer rows.Close()

	var assignments []entities.Assignment
	for rows.Next() {
		assignmentDB, err := r.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected assignment repository list scan error: %w", err)
		}
		assignments = append(assignments, *ToDomain(assignmentDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected assignment repository list rows error: %w", err)
	}

	return assignments, nil
}

// EarningsSummary агрегирует заработок по завершенным назначениям;
// since == nil считает за все время.
func (r *Repository) EarningsSummary(ctx context.Context, workerID int64, since *time.Time) (*entities.EarningsSummary, error) {
	builder := qb.
		Select("COALESCE(SUM(earnings), 0)", "COUNT(*)").
		From("assignments").
		Where(sq.Eq{
			"worker_id": workerID,
			"status":    entities.AssignmentCompleted.String(),
		})

	if since != nil {
		builder = builder.Where(sq.GtOrEq{"completed_at": *since})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository earnings error: %w", err)
	}

	var summary entities.EarningsSummary
	err = r.querier.QueryRow(ctx, query, args...).Scan(&summary.TotalEarnings, &summary.TotalJobs)
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository earnings error: %w", err)
	}

	return &summary, nil
}

// ListUpdatedSince отдает недавно менявшиеся назначения вертикали для
// фоновой сверки с записями заказов. Незанятые пропускаем: для них
// в заказ модуля ничего не пишется.
func (r *Repository) ListUpdatedSince(ctx context.Context, kind entities.JobKind, since time.Time) ([]entities.Assignment, error) {
	query := `
		SELECT ` + returningColumns + `
		FROM assignments
		WHERE kind = $1
			AND updated_at >= $2
			AND status != $3
	`

	rows, err := r.querier.Query(ctx, query, kind.String(), since, entities.AssignmentAssigned.String())
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository updated-since error: %w", err)
	}
	defer rows.Close()

	var assignments []entities.Assignment
	for rows.Next() {
		assignmentDB, err := r.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected assignment repository updated-since scan error: %w", err)
		}
		assignments = append(assignments, *ToDomain(assignmentDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected assignment repository updated-since rows error: %w", err)
	}

	return assignments, nil
}

func (r *Repository) scanRow(row pgx.Row) (*AssignmentDB, error) {
	var a AssignmentDB
	err := row.Scan(
		&a.OrderID,
		&a.Kind,
		&a.WorkerID,
		&a.Status,
		&a.AcceptedAt,
		&a.PickedUpAt,
		&a.DeliveredAt,
		&a.CompletedAt,
		&a.CancelledAt,
		&a.CancellationReason,
		&a.Earnings,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
