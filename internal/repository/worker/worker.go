package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	serviceworker "dispatch/internal/service/worker"
)

type Repository struct {
	db Querier
}

func New(db Querier) *Repository {
	return &Repository{db: db}
}

const workerColumns = `id, name, phone, module_type, vehicle_type, vehicle_number,
		is_online, total_jobs, completed_jobs, cancelled_jobs, total_earnings,
		created_at, updated_at`

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Worker, error) {
	query := fmt.Sprintf(`
	SELECT
		%s
	FROM
		workers
	WHERE
		id = $1;`, workerColumns)

	row := r.db.QueryRow(ctx, query, id)

	var db WorkerDB
	err := row.Scan(
		&db.ID,
		&db.Name,
		&db.Phone,
		&db.ModuleType,
		&db.VehicleType,
		&db.VehicleNumber,
		&db.IsOnline,
		&db.TotalJobs,
		&db.CompletedJobs,
		&db.CancelledJobs,
		&db.TotalEarnings,
		&db.CreatedAt,
		&db.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, serviceworker.ErrWorkerNotFound
		}
		return nil, fmt.Errorf("worker get by id: %w", err)
	}

	return ToDomain(&db), nil
}

func (r *Repository) IncrementTotalJobs(ctx context.Context, id int64) error {
	query := `
	UPDATE
		workers
	SET
		total_jobs = total_jobs + 1,
		updated_at = NOW()
	WHERE
		id = $1;`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("worker increment total jobs: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return serviceworker.ErrWorkerNotFound
	}

	return nil
}

func (r *Repository) IncrementCompleted(ctx context.Context, id int64, earnings float64) error {
	query := `
	UPDATE
		workers
	SET
		completed_jobs = completed_jobs + 1,
		total_earnings = total_earnings + $2,
		updated_at = NOW()
	WHERE
		id = $1;`

	tag, err := r.db.Exec(ctx, query, id, earnings)
	if err != nil {
		return fmt.Errorf("worker increment completed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return serviceworker.ErrWorkerNotFound
	}

	return nil
}

func (r *Repository) IncrementCancelled(ctx context.Context, id int64) error {
	query := `
	UPDATE
		workers
	SET
		cancelled_jobs = cancelled_jobs + 1,
		updated_at = NOW()
	WHERE
		id = $1;`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("worker increment cancelled: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return serviceworker.ErrWorkerNotFound
	}

	return nil
}
