//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	job_accept_post "dispatch/internal/handlers/rest/job_accept_post"
	job_advance_post "dispatch/internal/handlers/rest/job_advance_post"
	job_status_get "dispatch/internal/handlers/rest/job_status_get"
	jobs_get "dispatch/internal/handlers/rest/jobs_get"
	worker_earnings_get "dispatch/internal/handlers/rest/worker_earnings_get"
	worker_history_get "dispatch/internal/handlers/rest/worker_history_get"
	"dispatch/internal/handlers/tasks/assignment_reconcile"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/factory/event_handle"
	"dispatch/internal/registry"

	assignmentRepo "dispatch/internal/repository/assignment"
	facilityRepo "dispatch/internal/repository/facility"
	orderRepo "dispatch/internal/repository/order"
	workerRepo "dispatch/internal/repository/worker"
	assignmentService "dispatch/internal/service/assignment"
	facilityService "dispatch/internal/service/facility"
	jobsService "dispatch/internal/service/jobs"
	orderEventsService "dispatch/internal/service/orderevents"
	statusService "dispatch/internal/service/status"
	workerService "dispatch/internal/service/worker"

	"dispatch/pkg/background"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

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

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideReconcileInterval,
		provideReconcileLookback,

		registry.New,

		provideAssignmentRepository,
		provideOrderRepository,
		provideWorkerRepository,
		provideFacilityRepository,

		provideServiceFacility,
		provideServiceStatus,
		provideServiceWorker,
		provideServiceJobs,
		provideServiceAssignment,

		provideAssignmentReconcileTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceJobs), new(*jobsService.Jobs)),
		wire.Bind(new(ServiceAssignment), new(*assignmentService.Assignment)),
		wire.Bind(new(ServiceWorker), new(*workerService.Worker)),

		wire.Bind(new(facilityService.Repository), new(*facilityRepo.Repository)),
		wire.Bind(new(statusService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(jobsService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(jobsService.AssignmentRepository), new(*assignmentRepo.Repository)),
		wire.Bind(new(jobsService.PickupResolver), new(*facilityService.Facility)),
		wire.Bind(new(jobsService.WorkerDirectory), new(*workerService.Worker)),
		wire.Bind(new(assignmentService.Repository), new(*assignmentRepo.Repository)),
		wire.Bind(new(assignmentService.WorkerDirectory), new(*workerService.Worker)),
		wire.Bind(new(assignmentService.StatusTranslator), new(*statusService.Translator)),
		wire.Bind(new(workerService.Repository), new(*workerRepo.Repository)),
		wire.Bind(new(workerService.AssignmentRepository), new(*assignmentRepo.Repository)),
		wire.Bind(new(workerService.OrderReader), new(*statusService.Translator)),

		wire.Bind(new(assignmentService.TxManager), new(*tx.Manager)),

		wire.Bind(new(assignment_reconcile.Service), new(*assignmentService.Assignment)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderEventsService *orderEventsService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-events)
func InitializeKafkaWorkerApp(
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		registry.New,

		provideAssignmentRepository,
		provideOrderRepository,
		provideWorkerRepository,

		provideServiceStatus,
		provideServiceWorker,
		provideServiceAssignment,

		provideEventHandlerFactory,
		provideOrderEventsService,

		wire.Bind(new(statusService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(assignmentService.Repository), new(*assignmentRepo.Repository)),
		wire.Bind(new(assignmentService.WorkerDirectory), new(*workerService.Worker)),
		wire.Bind(new(assignmentService.StatusTranslator), new(*statusService.Translator)),
		wire.Bind(new(workerService.Repository), new(*workerRepo.Repository)),
		wire.Bind(new(workerService.AssignmentRepository), new(*assignmentRepo.Repository)),
		wire.Bind(new(workerService.OrderReader), new(*statusService.Translator)),

		wire.Bind(new(assignmentService.TxManager), new(*tx.Manager)),

		wire.Bind(new(orderEventsService.HandlerFactory), new(*event_handle.EventHandlerFactory)),
		wire.Bind(new(orderEventsService.AssignmentService), new(*assignmentService.Assignment)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideAssignmentRepository(querier *querier.Querier) *assignmentRepo.Repository {
	return assignmentRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideWorkerRepository(querier *querier.Querier) *workerRepo.Repository {
	return workerRepo.New(querier)
}

func provideFacilityRepository(querier *querier.Querier) *facilityRepo.Repository {
	return facilityRepo.New(querier)
}

func provideServiceFacility(
	repository facilityService.Repository,
	log logger.Logger,
) *facilityService.Facility {
	return facilityService.New(repository, log)
}

func provideServiceStatus(
	reg *registry.Registry,
	repository statusService.OrderRepository,
) *statusService.Translator {
	return statusService.New(reg, repository)
}

func provideServiceWorker(
	repository workerService.Repository,
	assignments workerService.AssignmentRepository,
	orders workerService.OrderReader,
	log logger.Logger,
) *workerService.Worker {
	return workerService.New(repository, assignments, orders, log)
}

func provideServiceJobs(
	reg *registry.Registry,
	orders jobsService.OrderRepository,
	assignments jobsService.AssignmentRepository,
	pickup jobsService.PickupResolver,
	workers jobsService.WorkerDirectory,
	log logger.Logger,
) *jobsService.Jobs {
	return jobsService.New(reg, orders, assignments, pickup, workers, log)
}

func provideServiceAssignment(
	reg *registry.Registry,
	repository assignmentService.Repository,
	workers assignmentService.WorkerDirectory,
	translator assignmentService.StatusTranslator,
	txManager assignmentService.TxManager,
	log logger.Logger,
) *assignmentService.Assignment {
	return assignmentService.New(reg, repository, workers, translator, txManager, log)
}

func provideReconcileInterval(cfg *config.Config) ReconcileInterval {
	return ReconcileInterval(cfg.Tasks.AssignmentReconcileInterval)
}

func provideReconcileLookback(cfg *config.Config) ReconcileLookback {
	return ReconcileLookback(cfg.Tasks.AssignmentReconcileLookback)
}

func provideEventHandlerFactory(assignment orderEventsService.AssignmentService) *event_handle.EventHandlerFactory {
	return event_handle.NewEventHandlerFactory(assignment)
}

func provideOrderEventsService(handlerFactory orderEventsService.HandlerFactory) *orderEventsService.Service {
	return orderEventsService.New(handlerFactory)
}

func provideAssignmentReconcileTask(
	log logger.Logger,
	assignment assignment_reconcile.Service,
	interval ReconcileInterval,
	lookback ReconcileLookback,
) *assignment_reconcile.AssignmentReconcile {
	return assignment_reconcile.NewAssignmentReconcile(log, assignment, time.Duration(interval), time.Duration(lookback))
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
