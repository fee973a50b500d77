package facility

import (
	"dispatch/internal/entities"
)

func ToDomain(db *FacilityDB) *entities.Facility {
	if db == nil {
		return nil
	}

	return &entities.Facility{
		ID:        db.ID,
		Name:      db.Name,
		Line:      db.Line,
		City:      db.City,
		Latitude:  db.Latitude,
		Longitude: db.Longitude,
		IsActive:  db.IsActive,
		CreatedAt: db.CreatedAt,
	}
}
