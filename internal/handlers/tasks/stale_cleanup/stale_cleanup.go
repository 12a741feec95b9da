package stale_cleanup

import (
	"context"
	"time"

	"fikisha/pkg/logger"
)

type Service interface {
	CleanupStaleTasks(ctx context.Context) (int64, error)
}

// StaleCleanup фоновая отмена pending-задач, которые никто не принял.
type StaleCleanup struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewStaleCleanup(log logger.Logger, service Service, interval time.Duration) *StaleCleanup {
	return &StaleCleanup{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (s *StaleCleanup) TTL() time.Duration {
	return s.interval
}

func (s *StaleCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	rowsAffected, err := s.service.CleanupStaleTasks(ctxWithTimeout)

	if rowsAffected > 0 {
		s.log.With(
			logger.NewField("cancelled_tasks", rowsAffected),
		).Info("stale tasks cleanup")
	}

	return err
}

func (s *StaleCleanup) Info() string {
	return "stale tasks cleanup"
}
