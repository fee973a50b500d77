package worker

import (
	"dispatch/internal/entities"
)

func ToDomain(db *WorkerDB) *entities.Worker {
	if db == nil {
		return nil
	}

	return &entities.Worker{
		ID:            db.ID,
		Name:          db.Name,
		Phone:         db.Phone,
		ModuleType:    entities.WorkerModuleType(db.ModuleType),
		VehicleType:   db.VehicleType,
		VehicleNumber: db.VehicleNumber,
		IsOnline:      db.IsOnline,
		TotalJobs:     db.TotalJobs,
		CompletedJobs: db.CompletedJobs,
		CancelledJobs: db.CancelledJobs,
		TotalEarnings: db.TotalEarnings,
		CreatedAt:     db.CreatedAt,
		UpdatedAt:     db.UpdatedAt,
	}
}
