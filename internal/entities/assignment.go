package entities

import "time"

type AssignmentStatus string

const (
	AssignmentAssigned  AssignmentStatus = "assigned"
	AssignmentAccepted  AssignmentStatus = "accepted"
	AssignmentPickedUp  AssignmentStatus = "picked_up"
	AssignmentDelivered AssignmentStatus = "delivered"
	AssignmentCompleted AssignmentStatus = "completed"
	AssignmentCancelled AssignmentStatus = "cancelled"
)

func (s AssignmentStatus) String() string {
	return string(s)
}

// IsTerminal - терминальные статусы для матчинга: заказ с таким
// назначением больше не появляется в ленте.
func (s AssignmentStatus) IsTerminal() bool {
	switch s {
	case AssignmentDelivered, AssignmentCompleted, AssignmentCancelled:
		return true
	default:
		return false
	}
}

// Assignment - запись о том, кто держит заказ. Источник истины для
// протокола захвата: на пару (OrderID, Kind) максимум одна запись.
type Assignment struct {
	OrderID            string
	Kind               JobKind
	WorkerID           *int64
	Status             AssignmentStatus
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

type AssignmentModify struct {
	Status             *AssignmentStatus
	AcceptedAt         *time.Time
	PickedUpAt         *time.Time
	DeliveredAt        *time.Time
	CompletedAt        *time.Time
	CancelledAt        *time.Time
	CancellationReason *string
	Earnings           *float64
}

// WorkerAction - действия исполнителя поверх общего для всех модулей
// статусного словаря. Accept обрабатывается отдельно протоколом захвата.
type WorkerAction string

const (
	ActionPickedUp  WorkerAction = "picked_up"
	ActionDelivered WorkerAction = "delivered"
	ActionCompleted WorkerAction = "completed"
	ActionCancelled WorkerAction = "cancelled"
)

func (a WorkerAction) String() string {
	return string(a)
}

type ActionExtra struct {
	Earnings           *float64
	CancellationReason *string
}

// AssignmentWithOrder - элемент истории исполнителя: назначение,
// обогащенное снепшотом заказа модуля.
type AssignmentWithOrder struct {
	Assignment Assignment
	Order      *OrderSnapshot
}

type HistoryFilter struct {
	Kind   *JobKind
	Status *AssignmentStatus
	Limit  int
}
