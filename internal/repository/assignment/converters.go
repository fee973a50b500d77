package assignment

import "dispatch/internal/entities"

func ToDomain(a *AssignmentDB) *entities.Assignment {
	if a == nil {
		return nil
	}
	return &entities.Assignment{
		OrderID:            a.OrderID,
		Kind:               entities.JobKind(a.Kind),
		WorkerID:           a.WorkerID,
		Status:             entities.AssignmentStatus(a.Status),
		AcceptedAt:         a.AcceptedAt,
		PickedUpAt:         a.PickedUpAt,
		DeliveredAt:        a.DeliveredAt,
		CompletedAt:        a.CompletedAt,
		CancelledAt:        a.CancelledAt,
		CancellationReason: a.CancellationReason,
		Earnings:           a.Earnings,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}
