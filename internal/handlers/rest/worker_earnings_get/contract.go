//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=worker_earnings_get_test
package worker_earnings_get

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Earnings(ctx context.Context, workerID int64, period entities.EarningsPeriod) (*entities.EarningsSummary, error)
}

type EarningsResponse struct {
	WorkerID      int64   `json:"worker_id"`
	Period        string  `json:"period"`
	TotalEarnings float64 `json:"total_earnings"`
	TotalJobs     int64   `json:"total_jobs"`
}
