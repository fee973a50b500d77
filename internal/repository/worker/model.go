package worker

import "time"

type WorkerDB struct {
	ID            int64
	Name          string
	Phone         string
	ModuleType    string
	VehicleType   string
	VehicleNumber string
	IsOnline      bool
	TotalJobs     int64
	CompletedJobs int64
	CancelledJobs int64
	TotalEarnings float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
