package entities

import "time"

type WorkerModuleType string

const (
	WorkerCourier         WorkerModuleType = "courier"
	WorkerRide            WorkerModuleType = "ride"
	WorkerGeneralDelivery WorkerModuleType = "general_delivery"
)

func (t WorkerModuleType) String() string {
	return string(t)
}

// AllowedKinds возвращает вертикали, заказы которых видит исполнитель
// данного типа. general_delivery покрывает доставку со склада.
func (t WorkerModuleType) AllowedKinds() []JobKind {
	switch t {
	case WorkerCourier:
		return []JobKind{KindCourier}
	case WorkerRide:
		return []JobKind{KindRide}
	case WorkerGeneralDelivery:
		return []JobKind{KindFood, KindGrocery, KindRetail}
	default:
		return nil
	}
}

func (t WorkerModuleType) Allows(kind JobKind) bool {
	for _, k := range t.AllowedKinds() {
		if k == kind {
			return true
		}
	}
	return false
}

type Worker struct {
	ID            int64
	Name          string
	Phone         string
	ModuleType    WorkerModuleType
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

// EarningsPeriod - период агрегации заработка.
type EarningsPeriod string

const (
	PeriodDay   EarningsPeriod = "day"
	PeriodWeek  EarningsPeriod = "week"
	PeriodMonth EarningsPeriod = "month"
	PeriodAll   EarningsPeriod = "all"
)

func (p EarningsPeriod) String() string {
	return string(p)
}

type EarningsSummary struct {
	TotalEarnings float64
	TotalJobs     int64
}
