package service

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

// Scheduler периодически запускает опрос фида и рассылку.
// Нулевой интервал отключает соответствующую задачу.
type Scheduler struct {
	ingest         IngestService
	notifications  NotificationService
	pollInterval   time.Duration
	notifyInterval time.Duration
	clock          clockwork.Clock
	logger         *logrus.Logger
}

func NewScheduler(ingest IngestService, notifications NotificationService, pollInterval, notifyInterval time.Duration, clock clockwork.Clock, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		ingest:         ingest,
		notifications:  notifications,
		pollInterval:   pollInterval,
		notifyInterval: notifyInterval,
		clock:          clock,
		logger:         logger,
	}
}

// Run блокируется до отмены контекста
func (s *Scheduler) Run(ctx context.Context) {
	var wg sync.WaitGroup

	if s.pollInterval > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.loop(ctx, "poll", s.pollInterval, func(ctx context.Context) error {
				_, err := s.ingest.Poll(ctx)
				return err
			})
		}()
	}

	if s.notifyInterval > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.loop(ctx, "notify", s.notifyInterval, func(ctx context.Context) error {
				_, err := s.notifications.RunNotificationBatch(ctx)
				return err
			})
		}()
	}

	wg.Wait()
}

// loop выполняет job последовательно, поэтому запуски одной задачи не пересекаются;
// тики, пришедшие во время работы, отбрасываются тикером.
func (s *Scheduler) loop(ctx context.Context, name string, interval time.Duration, job func(context.Context) error) {
	log := s.logger.WithFields(logrus.Fields{"job": name, "interval": interval})
	log.Info("Starting scheduled job")

	ticker := s.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping scheduled job")
			return
		case <-ticker.Chan():
			if err := job(ctx); err != nil {
				log.WithError(err).Error("Scheduled job failed")
			}
		}
	}
}
