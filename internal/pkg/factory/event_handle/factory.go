package event_handle

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/service/orderevents"
)

type EventHandlerFactory struct {
	assignmentService orderevents.AssignmentService
}

func NewEventHandlerFactory(assignmentService orderevents.AssignmentService) *EventHandlerFactory {
	return &EventHandlerFactory{
		assignmentService: assignmentService,
	}
}

func (f *EventHandlerFactory) GetHandler(eventType entities.OrderEventType) (orderevents.ExecuteFn, error) {
	switch eventType {
	case entities.OrderEventCreated:
		return f.createdHandler, nil
	case entities.OrderEventCancelled:
		return f.cancelledHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", orderevents.ErrUndefinedEventType, eventType)
	}
}

func (f *EventHandlerFactory) createdHandler(ctx context.Context, event entities.OrderEvent) error {
	_, err := f.assignmentService.EnsureUnclaimed(ctx, event.OrderID, event.Kind)
	if err != nil {
		return fmt.Errorf("ensure unclaimed assignment for %s order %s: %w", event.Kind, event.OrderID, err)
	}
	return nil
}

func (f *EventHandlerFactory) cancelledHandler(ctx context.Context, event entities.OrderEvent) error {
	reason := event.Reason
	if reason == "" {
		reason = "cancelled by module"
	}

	err := f.assignmentService.CancelFromModule(ctx, event.OrderID, event.Kind, reason)
	if err != nil {
		return fmt.Errorf("cancel assignment for %s order %s: %w", event.Kind, event.OrderID, err)
	}
	return nil
}
