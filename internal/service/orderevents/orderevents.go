package orderevents

import (
	"context"
	"errors"
	"strings"

	"dispatch/internal/entities"
)

type Service struct {
	eventFactory HandlerFactory
}

func New(eventFactory HandlerFactory) *Service {
	return &Service{
		eventFactory: eventFactory,
	}
}

func (s *Service) ProcessOrderEvent(ctx context.Context, event entities.OrderEvent) error {
	if strings.TrimSpace(event.OrderID) == "" || !event.Kind.IsValid() {
		return ErrInvalidEvent
	}

	executeFn, err := s.eventFactory.GetHandler(event.Type)
	if err != nil {
		// необрабатываемые типы событий просто пропускаем
		if errors.Is(err, ErrUndefinedEventType) {
			return nil
		}
		return err
	}

	return executeFn(ctx, event)
}
