package order_events

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
	ProcessOrderEvent(ctx context.Context, event entities.OrderEvent) error
}

// orderEventMessage - формат сообщения топика order.events: приложения
// модулей публикуют его при создании и отмене заказа.
type orderEventMessage struct {
	OrderID string `json:"order_id"`
	Kind    string `json:"kind"`
	Event   string `json:"event"`
	Reason  string `json:"reason,omitempty"`
}
