package assignment

import (
	"strings"

	"dispatch/internal/entities"
)

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}

func isValidAction(action entities.WorkerAction) bool {
	switch action {
	case entities.ActionPickedUp, entities.ActionDelivered, entities.ActionCompleted, entities.ActionCancelled:
		return true
	}
	return false
}

// expectedBefore - из какого статуса назначения допустимо данное действие.
// Отмена разрешена из двух статусов, остальные действия из одного.
func expectedBefore(action entities.WorkerAction) []entities.AssignmentStatus {
	switch action {
	case entities.ActionPickedUp:
		return []entities.AssignmentStatus{entities.AssignmentAccepted}
	case entities.ActionDelivered:
		return []entities.AssignmentStatus{entities.AssignmentPickedUp}
	case entities.ActionCompleted:
		return []entities.AssignmentStatus{entities.AssignmentDelivered}
	case entities.ActionCancelled:
		return []entities.AssignmentStatus{entities.AssignmentAccepted, entities.AssignmentPickedUp}
	}
	return nil
}

func actionTarget(action entities.WorkerAction) entities.AssignmentStatus {
	switch action {
	case entities.ActionPickedUp:
		return entities.AssignmentPickedUp
	case entities.ActionDelivered:
		return entities.AssignmentDelivered
	case entities.ActionCompleted:
		return entities.AssignmentCompleted
	case entities.ActionCancelled:
		return entities.AssignmentCancelled
	}
	return ""
}
