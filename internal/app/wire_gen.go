// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package app

import (
	"context"
	"dispatch/internal/handlers/rest/job_accept_post"
	"dispatch/internal/handlers/rest/job_advance_post"
	"dispatch/internal/handlers/rest/job_status_get"
	"dispatch/internal/handlers/rest/jobs_get"
	"dispatch/internal/handlers/rest/worker_earnings_get"
	"dispatch/internal/handlers/rest/worker_history_get"
	"dispatch/internal/handlers/tasks/assignment_reconcile"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/factory/event_handle"
	"dispatch/internal/registry"
	"dispatch/internal/repository/assignment"
	"dispatch/internal/repository/facility"
	"dispatch/internal/repository/order"
	"dispatch/internal/repository/worker"
	assignment2 "dispatch/internal/service/assignment"
	facility2 "dispatch/internal/service/facility"
	"dispatch/internal/service/jobs"
	"dispatch/internal/service/orderevents"
	"dispatch/internal/service/status"
	worker2 "dispatch/internal/service/worker"
	"dispatch/pkg/background"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"time"
)

// Injectors from wire.go:

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter, cfg *config.Config) (*Application, error) {
	registryRegistry := registry.New()
	querier := provideQuerier(pool, getter)
	repository := provideOrderRepository(querier)
	assignmentRepository := provideAssignmentRepository(querier)
	facilityRepository := provideFacilityRepository(querier)
	facility := provideServiceFacility(facilityRepository, log)
	workerRepository := provideWorkerRepository(querier)
	translator := provideServiceStatus(registryRegistry, repository)
	worker := provideServiceWorker(workerRepository, assignmentRepository, translator, log)
	jobs := provideServiceJobs(registryRegistry, repository, assignmentRepository, facility, worker, log)
	manager := provideTxManager(pool)
	assignment := provideServiceAssignment(registryRegistry, assignmentRepository, worker, translator, manager, log)
	reconcileInterval := provideReconcileInterval(cfg)
	reconcileLookback := provideReconcileLookback(cfg)
	assignmentReconcile := provideAssignmentReconcileTask(log, assignment, reconcileInterval, reconcileLookback)
	v := provideTaskList(assignmentReconcile)
	backgroundWorker, err := provideBackgroundWorkers(ctx, log, v)
	if err != nil {
		return nil, err
	}
	application := &Application{
		ServiceJobs:       jobs,
		ServiceAssignment: assignment,
		ServiceWorker:     worker,
		BackgroundWorkers: backgroundWorker,
	}
	return application, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-events)
func InitializeKafkaWorkerApp(log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter) (*KafkaWorkerApp, error) {
	registryRegistry := registry.New()
	querier := provideQuerier(pool, getter)
	repository := provideAssignmentRepository(querier)
	workerRepository := provideWorkerRepository(querier)
	orderRepository := provideOrderRepository(querier)
	translator := provideServiceStatus(registryRegistry, orderRepository)
	worker := provideServiceWorker(workerRepository, repository, translator, log)
	manager := provideTxManager(pool)
	assignment := provideServiceAssignment(registryRegistry, repository, worker, translator, manager, log)
	eventHandlerFactory := provideEventHandlerFactory(assignment)
	service := provideOrderEventsService(eventHandlerFactory)
	kafkaWorkerApp := &KafkaWorkerApp{
		OrderEventsService: service,
	}
	return kafkaWorkerApp, nil
}

// wire.go:

type (
	ReconcileInterval time.Duration
	ReconcileLookback time.Duration
)

type Application struct {
	ServiceJobs       ServiceJobs
	ServiceAssignment ServiceAssignment
	ServiceWorker     ServiceWorker
	BackgroundWorkers *background.Worker
}

type ServiceJobs interface {
	jobs_get.Service
}

type ServiceAssignment interface {
	job_accept_post.Service
	job_advance_post.Service
	job_status_get.Service
}

type ServiceWorker interface {
	worker_earnings_get.Service
	worker_history_get.Service
}

type KafkaWorkerApp struct {
	OrderEventsService *orderevents.Service
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideAssignmentRepository(querier2 *querier.Querier) *assignment.Repository {
	return assignment.New(querier2)
}

func provideOrderRepository(querier2 *querier.Querier) *order.Repository {
	return order.New(querier2)
}

func provideWorkerRepository(querier2 *querier.Querier) *worker.Repository {
	return worker.New(querier2)
}

func provideFacilityRepository(querier2 *querier.Querier) *facility.Repository {
	return facility.New(querier2)
}

func provideServiceFacility(
	repository facility2.Repository,
	log logger.Logger,
) *facility2.Facility {
	return facility2.New(repository, log)
}

func provideServiceStatus(
	reg *registry.Registry,
	repository status.OrderRepository,
) *status.Translator {
	return status.New(reg, repository)
}

func provideServiceWorker(
	repository worker2.Repository,
	assignments worker2.AssignmentRepository,
	orders worker2.OrderReader,
	log logger.Logger,
) *worker2.Worker {
	return worker2.New(repository, assignments, orders, log)
}

func provideServiceJobs(
	reg *registry.Registry,
	orders jobs.OrderRepository,
	assignments jobs.AssignmentRepository,
	pickup jobs.PickupResolver,
	workers jobs.WorkerDirectory,
	log logger.Logger,
) *jobs.Jobs {
	return jobs.New(reg, orders, assignments, pickup, workers, log)
}

func provideServiceAssignment(
	reg *registry.Registry,
	repository assignment2.Repository,
	workers assignment2.WorkerDirectory,
	translator assignment2.StatusTranslator,
	txManager assignment2.TxManager,
	log logger.Logger,
) *assignment2.Assignment {
	return assignment2.New(reg, repository, workers, translator, txManager, log)
}

func provideReconcileInterval(cfg *config.Config) ReconcileInterval {
	return ReconcileInterval(cfg.Tasks.AssignmentReconcileInterval)
}

func provideReconcileLookback(cfg *config.Config) ReconcileLookback {
	return ReconcileLookback(cfg.Tasks.AssignmentReconcileLookback)
}

func provideEventHandlerFactory(assignment3 orderevents.AssignmentService) *event_handle.EventHandlerFactory {
	return event_handle.NewEventHandlerFactory(assignment3)
}

func provideOrderEventsService(handlerFactory orderevents.HandlerFactory) *orderevents.Service {
	return orderevents.New(handlerFactory)
}

func provideAssignmentReconcileTask(
	log logger.Logger, assignment3 assignment_reconcile.Service,

	interval ReconcileInterval,
	lookback ReconcileLookback,
) *assignment_reconcile.AssignmentReconcile {
	return assignment_reconcile.NewAssignmentReconcile(log, assignment3, time.Duration(interval), time.Duration(lookback))
}

func provideTaskList(
	assignmentReconcileTask *assignment_reconcile.AssignmentReconcile,
) []background.Task {
	return []background.Task{
		assignmentReconcileTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
