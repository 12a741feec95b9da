package task_stats

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"fikisha/internal/entities"
	"fikisha/pkg/logger"
)

var tasksByStatus = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "delivery_tasks_by_status",
		Help: "Number of delivery tasks per status",
	},
	[]string{"status"},
)

// все статусы публикуем всегда, иначе гейдж залипает
// на последнем значении после опустошения статуса
var allStatuses = []entities.TaskStatusType{
	entities.TaskPending,
	entities.TaskAccepted,
	entities.TaskPickedUp,
	entities.TaskOutForDelivery,
	entities.TaskDelivered,
	entities.TaskCancelled,
}

type Service interface {
	StatusCounts(ctx context.Context) (map[entities.TaskStatusType]int64, error)
}

type TaskStats struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewTaskStats(log logger.Logger, service Service, interval time.Duration) *TaskStats {
	return &TaskStats{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (t *TaskStats) TTL() time.Duration {
	return t.interval
}

func (t *TaskStats) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, t.interval)
	defer cancel()

	counts, err := t.service.StatusCounts(ctxWithTimeout)
	if err != nil {
		return err
	}

	for _, status := range allStatuses {
		tasksByStatus.WithLabelValues(status.String()).Set(float64(counts[status]))
	}

	return nil
}

func (t *TaskStats) Info() string {
	return "task stats"
}
