//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"fikisha/internal/handlers/rest/task_accept_post"
	"fikisha/internal/handlers/rest/task_cancel_post"
	"fikisha/internal/handlers/rest/task_complete_post"
	"fikisha/internal/handlers/rest/task_dispatch_post"
	"fikisha/internal/handlers/rest/task_get"
	"fikisha/internal/handlers/rest/task_pickup_post"
	"fikisha/internal/handlers/rest/task_post"
	"fikisha/internal/handlers/rest/tasks_available_get"
	"fikisha/internal/handlers/rest/tasks_driver_get"
	"fikisha/internal/handlers/rest/track_get"
	"fikisha/internal/handlers/tasks/stale_cleanup"
	"fikisha/internal/handlers/tasks/task_stats"
	"fikisha/internal/pkg/config"
	"fikisha/internal/pkg/factory/delivery_code"

	taskRepo "fikisha/internal/repository/task"
	taskService "fikisha/internal/service/task"

	"fikisha/pkg/background"
	"fikisha/pkg/logger"
	"fikisha/pkg/querier"
	"fikisha/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	StatsInterval   time.Duration
	CleanupInterval time.Duration
)

type Application struct {
	ServiceTask       ServiceTask
	BackgroundWorkers *background.Worker
}

type ServiceTask interface {
	task_post.Service
	task_get.Service
	task_accept_post.Service
	task_pickup_post.Service
	task_dispatch_post.Service
	task_complete_post.Service
	task_cancel_post.Service
	tasks_available_get.Service
	tasks_driver_get.Service
	track_get.Service
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
		provideStatsInterval,
		provideCleanupInterval,

		provideTaskRepository,
		provideServiceTask,
		delivery_code.New,

		provideTaskStatsTask,
		provideStaleCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceTask), new(*taskService.Task)),

		wire.Bind(new(taskService.Repository), new(*taskRepo.Repository)),
		wire.Bind(new(taskService.CodeFactory), new(*delivery_code.CodeFactory)),
		wire.Bind(new(taskService.TxManager), new(*tx.Manager)),

		wire.Bind(new(task_stats.Service), new(*taskService.Task)),
		wire.Bind(new(stale_cleanup.Service), new(*taskService.Task)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	TaskService *taskService.Task
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-task-intake)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideTaskRepository,
		provideServiceTask,
		delivery_code.New,

		wire.Bind(new(taskService.Repository), new(*taskRepo.Repository)),
		wire.Bind(new(taskService.CodeFactory), new(*delivery_code.CodeFactory)),
		wire.Bind(new(taskService.TxManager), new(*tx.Manager)),

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

func provideTaskRepository(querier *querier.Querier) *taskRepo.Repository {
	return taskRepo.New(querier)
}

func provideServiceTask(
	repository taskService.Repository,
	codes taskService.CodeFactory,
	txManager taskService.TxManager,
) *taskService.Task {
	return taskService.New(repository, codes, txManager)
}

func provideStatsInterval(cfg *config.Config) StatsInterval {
	return StatsInterval(cfg.Tasks.TaskStatsUpdateInterval)
}

func provideCleanupInterval(cfg *config.Config) CleanupInterval {
	return CleanupInterval(cfg.Tasks.StaleCleanupInterval)
}

func provideTaskStatsTask(
	log logger.Logger,
	taskStatsService task_stats.Service,
	interval StatsInterval,
) *task_stats.TaskStats {
	return task_stats.NewTaskStats(log, taskStatsService, time.Duration(interval))
}

func provideStaleCleanupTask(
	log logger.Logger,
	cleanupService stale_cleanup.Service,
	interval CleanupInterval,
) *stale_cleanup.StaleCleanup {
	return stale_cleanup.NewStaleCleanup(log, cleanupService, time.Duration(interval))
}

func provideTaskList(
	taskStatsTask *task_stats.TaskStats,
	staleCleanupTask *stale_cleanup.StaleCleanup,
) []background.Task {
	return []background.Task{
		taskStatsTask,
		staleCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
