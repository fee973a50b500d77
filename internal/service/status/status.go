package status

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/registry"
)

// Translator переводит единый словарь действий исполнителя на статусную
// модель конкретной вертикали. Все знание о том, как вертикаль называет
// свои статусы, живет в реестре дескрипторов, сюда оно не протекает.
type Translator struct {
	registry   *registry.Registry
	repository OrderRepository
}

func New(reg *registry.Registry, repository OrderRepository) *Translator {
	return &Translator{
		registry:   reg,
		repository: repository,
	}
}

func (t *Translator) Apply(
	ctx context.Context,
	kind entities.JobKind,
	orderID string,
	assignmentStatus entities.AssignmentStatus,
	driver *entities.DriverInfo,
	at time.Time,
) error {
	if !kind.IsValid() {
		return ErrUnknownJobKind
	}
	if !isValidOrderID(orderID) {
		return ErrInvalidOrderID
	}

	desc := t.registry.Describe(kind)
	mapping, ok := desc.Statuses[assignmentStatus]
	if !ok {
		return fmt.Errorf("%w: %s for %s", ErrNoStatusMapping, assignmentStatus, kind)
	}

	err := t.repository.ApplyStatus(ctx, desc, orderID, mapping, driver, at)
	if err != nil {
		return fmt.Errorf("apply %s status: %w", kind, err)
	}

	return nil
}

func (t *Translator) OrderStatus(ctx context.Context, kind entities.JobKind, orderID string) (string, error) {
	if !kind.IsValid() {
		return "", ErrUnknownJobKind
	}
	if !isValidOrderID(orderID) {
		return "", ErrInvalidOrderID
	}

	orderStatus, err := t.repository.GetStatus(ctx, t.registry.Describe(kind), orderID)
	if err != nil {
		return "", fmt.Errorf("get %s status: %w", kind, err)
	}

	return orderStatus, nil
}

func (t *Translator) Snapshot(ctx context.Context, kind entities.JobKind, orderID string) (*entities.OrderSnapshot, error) {
	if !kind.IsValid() {
		return nil, ErrUnknownJobKind
	}
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	snapshot, err := t.repository.GetSnapshot(ctx, t.registry.Describe(kind), orderID)
	if err != nil {
		return nil, fmt.Errorf("get %s snapshot: %w", kind, err)
	}

	return snapshot, nil
}
