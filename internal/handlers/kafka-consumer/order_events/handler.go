package order_events

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"dispatch/internal/entities"
	"dispatch/internal/service/orderevents"
	"dispatch/pkg/logger"
)

type Handler struct {
	eventsService            Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, eventsService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		eventsService:            eventsService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("order.events: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("order.events: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var raw orderEventMessage
	err := json.Unmarshal(message.Value, &raw)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order.events handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", raw.OrderID),
		logger.NewField("kind", raw.Kind),
		logger.NewField("event", raw.Event),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("order.events processing")

	event := entities.OrderEvent{
		OrderID: raw.OrderID,
		Kind:    entities.JobKind(raw.Kind),
		Type:    entities.OrderEventType(raw.Event),
		Reason:  raw.Reason,
	}

	err = h.eventsService.ProcessOrderEvent(ctx, event)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.events handler context cancelled, message will be reprocessed")
			return true
		case errors.Is(err, orderevents.ErrInvalidEvent):
			// битые события не ретраим
			msgLog.With(
				logger.NewField("error", err),
			).Error("order.events handler received invalid event")
			sess.MarkMessage(message, "")
			return false
		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("order.events handler processing failed")
			sess.MarkMessage(message, "")
			return false
		}
	}

	msgLog.Info("order.events: processed")

	sess.MarkMessage(message, "")
	return false
}
