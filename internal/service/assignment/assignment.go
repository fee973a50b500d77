package assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/registry"
	"dispatch/internal/repository"
	"dispatch/internal/service/status"
	"dispatch/pkg/logger"
)

const cancelledByWorkerReason = "cancelled by worker"

// Assignment реализует протокол захвата: на пару (заказ, вертикаль)
// максимум один исполнитель, сколько бы параллельных запросов ни пришло.
// Захват и запись в таблицу модуля идут в одной транзакции, поэтому
// неудачная запись статуса откатывает и сам захват.
type Assignment struct {
	registry   *registry.Registry
	repository Repository
	workers    WorkerDirectory
	translator StatusTranslator
	txManager  TxManager
	log        logger.Logger
}

func New(
	reg *registry.Registry,
	repository Repository,
	workers WorkerDirectory,
	translator StatusTranslator,
	txManager TxManager,
	log logger.Logger,
) *Assignment {
	return &Assignment{
		registry:   reg,
		repository: repository,
		workers:    workers,
		translator: translator,
		txManager:  txManager,
		log:        log,
	}
}

func (a *Assignment) Accept(ctx context.Context, orderID string, kind entities.JobKind, workerID int64) (*entities.Assignment, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !kind.IsValid() {
		return nil, ErrUnknownJobKind
	}
	if workerID <= 0 {
		return nil, ErrInvalidWorkerID
	}

	var result *entities.Assignment
	err := a.txManager.Do(ctx, func(ctx context.Context) error {
		worker, err := a.workers.Find(ctx, workerID)
		if err != nil {
			return fmt.Errorf("find worker: %w", err)
		}
		if !worker.ModuleType.Allows(kind) {
			return ErrKindNotAllowed
		}

		acceptedAt := time.Now().UTC()

		existing, err := a.repository.GetByOrderID(ctx, orderID, kind)
		switch {
		case err == nil:
			result, err = a.acceptExisting(ctx, existing, worker, acceptedAt)
			return err
		case errors.Is(err, ErrAssignmentNotFound):
			created, err := a.repository.CreateAccepted(ctx, orderID, kind, workerID, acceptedAt)
			if err != nil {
				return fmt.Errorf("create accepted assignment: %w", err)
			}
			result = created
			return a.settleAcceptance(ctx, worker, created)
		default:
			return fmt.Errorf("get assignment: %w", err)
		}
	})
	if err != nil {
		// Serializable-транзакция может проиграть гонку и на коммите
		// (40001 при конфликте предикатов) - это та же потерянная заявка.
		if repository.IsPgConcurrencyError(err) {
			return nil, ErrAlreadyAssignedToOther
		}
		return nil, err
	}
	return result, nil
}

// acceptExisting разбирает уже существующую запись назначения. Гонку за
// незанятую запись решает один условный UPDATE в Claim: ноль строк
// означает проигранную гонку, повторное чтение после этого не имеет
// доказательной силы.
func (a *Assignment) acceptExisting(
	ctx context.Context,
	existing *entities.Assignment,
	worker *entities.Worker,
	acceptedAt time.Time,
) (*entities.Assignment, error) {
	if existing.Status.IsTerminal() {
		return nil, ErrJobNotFound
	}

	if existing.WorkerID == nil {
		claimed, err := a.repository.Claim(ctx, existing.OrderID, existing.Kind, worker.ID, acceptedAt)
		if err != nil {
			return nil, fmt.Errorf("claim assignment: %w", err)
		}
		if err := a.settleAcceptance(ctx, worker, claimed); err != nil {
			return nil, err
		}
		return claimed, nil
	}

	if *existing.WorkerID != worker.ID {
		return nil, ErrAlreadyAssignedToOther
	}

	// Повторный accept от владельца идемпотентен: возвращаем текущее
	// назначение, счетчики не трогаем.
	if existing.Status != entities.AssignmentAssigned {
		return existing, nil
	}

	newStatus := entities.AssignmentAccepted
	advanced, err := a.repository.UpdateStatus(ctx, existing.OrderID, existing.Kind, worker.ID,
		entities.AssignmentAssigned, entities.AssignmentModify{
			Status:     &newStatus,
			AcceptedAt: &acceptedAt,
		})
	if err != nil {
		return nil, fmt.Errorf("advance assigned to accepted: %w", err)
	}
	if err := a.settleAcceptance(ctx, worker, advanced); err != nil {
		return nil, err
	}
	return advanced, nil
}

// settleAcceptance - побочные эффекты первого принятия: счетчик
// исполнителя и запись исполнителя со статусом в таблицу модуля.
func (a *Assignment) settleAcceptance(ctx context.Context, worker *entities.Worker, accepted *entities.Assignment) error {
	if err := a.workers.IncrementTotalJobs(ctx, worker.ID); err != nil {
		return fmt.Errorf("increment total jobs: %w", err)
	}

	at := time.Now().UTC()
	if accepted.AcceptedAt != nil {
		at = *accepted.AcceptedAt
	}

	driver := &entities.DriverInfo{
		WorkerID:      worker.ID,
		Name:          worker.Name,
		Phone:         worker.Phone,
		VehicleType:   worker.VehicleType,
		VehicleNumber: worker.VehicleNumber,
		AssignedAt:    at,
	}

	err := a.translator.Apply(ctx, accepted.Kind, accepted.OrderID, entities.AssignmentAccepted, driver, at)
	if err != nil {
		return fmt.Errorf("apply accepted status to order: %w", err)
	}

	return nil
}

func (a *Assignment) AdvanceStatus(
	ctx context.Context,
	orderID string,
	kind entities.JobKind,
	workerID int64,
	action entities.WorkerAction,
	extra entities.ActionExtra,
) (*entities.Assignment, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !kind.IsValid() {
		return nil, ErrUnknownJobKind
	}
	if workerID <= 0 {
		return nil, ErrInvalidWorkerID
	}
	if !isValidAction(action) {
		return nil, ErrUnknownAction
	}

	var result *entities.Assignment
	err := a.txManager.Do(ctx, func(ctx context.Context) error {
		existing, err := a.repository.GetByOrderID(ctx, orderID, kind)
		if err != nil {
			return fmt.Errorf("get assignment: %w", err)
		}

		if existing.WorkerID == nil || *existing.WorkerID != workerID {
			return ErrNotJobOwner
		}

		if !statusAllows(existing.Status, action) {
			return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, action, existing.Status)
		}

		at := time.Now().UTC()
		target := actionTarget(action)
		modify := buildModify(target, extra, at)

		updated, err := a.repository.UpdateStatus(ctx, orderID, kind, workerID, existing.Status, modify)
		if err != nil {
			return fmt.Errorf("update assignment status: %w", err)
		}

		if err := a.translator.Apply(ctx, kind, orderID, target, nil, at); err != nil {
			return fmt.Errorf("apply %s status to order: %w", target, err)
		}

		switch target {
		case entities.AssignmentCompleted:
			if err := a.workers.IncrementCompleted(ctx, workerID, updated.Earnings); err != nil {
				return fmt.Errorf("increment completed jobs: %w", err)
			}
		case entities.AssignmentCancelled:
			if err := a.workers.IncrementCancelled(ctx, workerID); err != nil {
				return fmt.Errorf("increment cancelled jobs: %w", err)
			}
		}

		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// JobStatus возвращает назначение (nil, если записи еще нет) и сырой
// статус заказа в терминах его вертикали.
func (a *Assignment) JobStatus(ctx context.Context, orderID string, kind entities.JobKind) (*entities.Assignment, string, error) {
	if !isValidOrderID(orderID) {
		return nil, "", ErrInvalidOrderID
	}
	if !kind.IsValid() {
		return nil, "", ErrUnknownJobKind
	}

	orderStatus, err := a.translator.OrderStatus(ctx, kind, orderID)
	if err != nil {
		if errors.Is(err, status.ErrOrderNotFound) {
			return nil, "", ErrJobNotFound
		}
		return nil, "", fmt.Errorf("get order status: %w", err)
	}

	existing, err := a.repository.GetByOrderID(ctx, orderID, kind)
	if err != nil {
		if errors.Is(err, ErrAssignmentNotFound) {
			return nil, orderStatus, nil
		}
		return nil, "", fmt.Errorf("get assignment: %w", err)
	}

	return existing, orderStatus, nil
}

// EnsureUnclaimed заранее создает незанятую запись под заказ (путь
// Kafka-воркера). Повтор события безвреден: ON CONFLICT DO NOTHING.
func (a *Assignment) EnsureUnclaimed(ctx context.Context, orderID string, kind entities.JobKind) (bool, error) {
	if !isValidOrderID(orderID) {
		return false, ErrInvalidOrderID
	}
	if !kind.IsValid() {
		return false, ErrUnknownJobKind
	}

	created, err := a.repository.EnsureUnclaimed(ctx, orderID, kind)
	if err != nil {
		return false, fmt.Errorf("ensure unclaimed assignment: %w", err)
	}

	return created, nil
}

// CancelFromModule гасит назначение при отмене заказа на стороне модуля.
// Терминальные назначения не трогаем, счетчик отмен исполнителя тоже:
// отмена пришла от клиента, а не от исполнителя.
func (a *Assignment) CancelFromModule(ctx context.Context, orderID string, kind entities.JobKind, reason string) error {
	if !isValidOrderID(orderID) {
		return ErrInvalidOrderID
	}
	if !kind.IsValid() {
		return ErrUnknownJobKind
	}

	return a.txManager.Do(ctx, func(ctx context.Context) error {
		existing, err := a.repository.GetByOrderID(ctx, orderID, kind)
		if err != nil {
			if errors.Is(err, ErrAssignmentNotFound) {
				return nil
			}
			return fmt.Errorf("get assignment: %w", err)
		}

		if existing.Status.IsTerminal() {
			return nil
		}

		at := time.Now().UTC()

		if existing.WorkerID == nil {
			if _, err := a.repository.CancelUnclaimed(ctx, orderID, kind, reason, at); err != nil {
				return fmt.Errorf("cancel unclaimed assignment: %w", err)
			}
			return nil
		}

		newStatus := entities.AssignmentCancelled
		_, err = a.repository.UpdateStatus(ctx, orderID, kind, *existing.WorkerID, existing.Status,
			entities.AssignmentModify{
				Status:             &newStatus,
				CancelledAt:        &at,
				CancellationReason: &reason,
			})
		if err != nil {
			return fmt.Errorf("cancel claimed assignment: %w", err)
		}
		return nil
	})
}

// ReconcileOrderRecords сверяет недавно обновленные назначения с
// таблицами модулей и дописывает статус заказа там, где он отстал.
// Возвращает число исправленных записей.
func (a *Assignment) ReconcileOrderRecords(ctx context.Context, since time.Time) (int64, error) {
	var fixed int64
	for _, desc := range a.registry.All() {
		assignments, err := a.repository.ListUpdatedSince(ctx, desc.Kind, since)
		if err != nil {
			return fixed, fmt.Errorf("list updated assignments for %s: %w", desc.Kind, err)
		}

		for _, current := range assignments {
			mapping, ok := desc.Statuses[current.Status]
			if !ok {
				continue
			}

			orderStatus, err := a.translator.OrderStatus(ctx, desc.Kind, current.OrderID)
			if err != nil {
				a.log.Warn("reconcile order status read",
					logger.NewField("kind", desc.Kind.String()),
					logger.NewField("order_id", current.OrderID),
					logger.NewField("error", err.Error()),
				)
				continue
			}
			if orderStatus == mapping.OrderStatus {
				continue
			}

			err = a.translator.Apply(ctx, desc.Kind, current.OrderID, current.Status, nil, time.Now().UTC())
			if err != nil {
				a.log.Warn("reconcile order status write",
					logger.NewField("kind", desc.Kind.String()),
					logger.NewField("order_id", current.OrderID),
					logger.NewField("error", err.Error()),
				)
				continue
			}
			fixed++
		}
	}

	return fixed, nil
}

func statusAllows(current entities.AssignmentStatus, action entities.WorkerAction) bool {
	for _, allowed := range expectedBefore(action) {
		if current == allowed {
			return true
		}
	}
	return false
}

func buildModify(target entities.AssignmentStatus, extra entities.ActionExtra, at time.Time) entities.AssignmentModify {
	modify := entities.AssignmentModify{Status: &target}

	switch target {
	case entities.AssignmentPickedUp:
		modify.PickedUpAt = &at
	case entities.AssignmentDelivered:
		modify.DeliveredAt = &at
	case entities.AssignmentCompleted:
		modify.CompletedAt = &at
		modify.Earnings = extra.Earnings
	case entities.AssignmentCancelled:
		modify.CancelledAt = &at
		reason := cancelledByWorkerReason
		if extra.CancellationReason != nil {
			reason = *extra.CancellationReason
		}
		modify.CancellationReason = &reason
	}

	return modify
}
