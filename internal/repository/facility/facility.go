package facility

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	servicefacility "dispatch/internal/service/facility"
)

type Repository struct {
	db Querier
}

func New(db Querier) *Repository {
	return &Repository{db: db}
}

// DefaultActive возвращает действующий склад самовывоза. Если активных
// несколько, берем самый ранний.
func (r *Repository) DefaultActive(ctx context.Context) (*entities.Facility, error) {
	query := `
	SELECT
		id, name, address_line, city, latitude, longitude, is_active, created_at
	FROM
		facilities
	WHERE
		is_active = TRUE
	ORDER BY
		created_at ASC
	LIMIT 1;`

	row := r.db.QueryRow(ctx, query)

	var db FacilityDB
	err := row.Scan(
		&db.ID,
		&db.Name,
		&db.Line,
		&db.City,
		&db.Latitude,
		&db.Longitude,
		&db.IsActive,
		&db.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, servicefacility.ErrNoActiveFacility
		}
		return nil, fmt.Errorf("facility default active: %w", err)
	}

	return ToDomain(&db), nil
}
