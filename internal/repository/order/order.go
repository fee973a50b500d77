package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/registry"
	"dispatch/internal/service/status"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repository - единственный обобщенный репозиторий над пятью таблицами
// заказов: какую таблицу и какие колонки читать, решает дескриптор.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) ListOpen(ctx context.Context, desc registry.Descriptor) ([]entities.Job, error) {
	cols := desc.Columns
	builder := qb.
		Select(
			"id",
			"created_at",
			fieldExpr(cols.Pickup),
			fieldExpr(cols.Dropoff),
			numericExpr(cols.Fare),
			numericExpr(cols.Distance),
			fieldExpr(cols.VehicleType),
			fieldExpr(cols.CustomerName),
			fieldExpr(cols.CustomerPhone),
			fieldExpr(cols.ItemDescription),
			fieldExpr(cols.SpecialInstructions),
		).
		From(desc.Table).
		Where(desc.Open).
		OrderBy("created_at DESC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	var jobs []entities.Job
	for rows.Next() {
		var o OpenOrderDB
		err := rows.Scan(
			&o.ID,
			&o.CreatedAt,
			&o.Pickup,
			&o.Dropoff,
			&o.Fare,
			&o.Distance,
			&o.VehicleType,
			&o.CustomerName,
			&o.CustomerPhone,
			&o.ItemDescription,
			&o.SpecialInstructions,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list scan error: %w", err)
		}
		jobs = append(jobs, ToJob(desc, &o))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list rows error: %w", err)
	}

	return jobs, nil
}

// ApplyStatus переводит запись заказа модуля одним UPDATE: значение
// статуса из словаря модуля, таймстамп перехода, снепшот исполнителя
// и правило оплаты.
func (r *Repository) ApplyStatus(
	ctx context.Context,
	desc registry.Descriptor,
	orderID string,
	mapping registry.StatusMapping,
	driver *entities.DriverInfo,
	at time.Time,
) error {
	builder := qb.
		Update(desc.Table).
		Set(desc.StatusColumn, mapping.OrderStatus)

	if mapping.TimestampColumn != "" {
		builder = builder.Set(mapping.TimestampColumn, at)
	}

	if driver != nil {
		builder = builder.
			Set("driver_id", driver.WorkerID).
			Set("driver_name", driver.Name).
			Set("driver_phone", driver.Phone).
			Set("driver_vehicle_type", driver.VehicleType).
			Set("driver_vehicle_number", driver.VehicleNumber).
			Set("driver_assigned_at", driver.AssignedAt)
	}

	switch mapping.Paid {
	case registry.PaidAlways:
		builder = builder.Set("payment_status", entities.PaymentPaid)
	case registry.PaidIfCOD:
		builder = builder.Set("payment_status", sq.Expr(
			"CASE WHEN payment_method = ? THEN ? ELSE payment_status END",
			entities.PaymentMethodCashOnDelivery,
			entities.PaymentPaid,
		))
	case registry.PaidNone:
	}

	builder = builder.Where(sq.Eq{"id": orderID})

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected order repository apply error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected order repository apply error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return status.ErrOrderNotFound
	}

	return nil
}

func (r *Repository) GetStatus(ctx context.Context, desc registry.Descriptor, orderID string) (string, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", desc.StatusColumn, desc.Table)

	var orderStatus string
	err := r.querier.QueryRow(ctx, query, orderID).Scan(&orderStatus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", status.ErrOrderNotFound
		}
		return "", fmt.Errorf("unexpected order repository status error: %w", err)
	}

	return orderStatus, nil
}

func (r *Repository) GetSnapshot(ctx context.Context, desc registry.Descriptor, orderID string) (*entities.OrderSnapshot, error) {
	cols := desc.Columns
	builder := qb.
		Select(
			"id",
			desc.StatusColumn,
			"payment_status",
			fieldExpr(cols.Pickup),
			fieldExpr(cols.Dropoff),
			numericExpr(cols.Fare),
			fieldExpr(cols.CustomerName),
			"created_at",
		).
		From(desc.Table).
		Where(sq.Eq{"id": orderID})

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository snapshot error: %w", err)
	}

	var s SnapshotDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&s.ID,
		&s.Status,
		&s.PaymentStatus,
		&s.Pickup,
		&s.Dropoff,
		&s.Fare,
		&s.CustomerName,
		&s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, status.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository snapshot error: %w", err)
	}

	return ToSnapshot(desc, &s), nil
}

// fieldExpr подставляет NULL вместо колонки, которой у вертикали нет.
func fieldExpr(src registry.FieldSource) string {
	if src.Column == "" {
		return "NULL"
	}
	return src.Column
}

func numericExpr(src registry.NumericSource) string {
	if src.Column == "" {
		return "NULL"
	}
	return src.Column
}
