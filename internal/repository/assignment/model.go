package assignment

import "time"

type AssignmentDB struct {
	OrderID            string
	Kind               string
	WorkerID           *int64
	Status             string
	AcceptedAt         *time.Time
	PickedUpAt         *time.Time
	DeliveredAt        *time.Time
	CompletedAt        *time.Time
	CancelledAt        *time.Time
	CancellationReason *string
	Earnings           float64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
