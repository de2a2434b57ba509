package service

//go:generate mockgen -source=notification.go -destination=mocks/mock_notification.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/wildfire_notifier/internal/config"
	"github.com/shenikar/wildfire_notifier/internal/geo"
	"github.com/shenikar/wildfire_notifier/internal/models"
	"github.com/shenikar/wildfire_notifier/internal/observability"
	"github.com/sirupsen/logrus"
)

// FireRepository определяет контракт хранилища пожаров
type FireRepository interface {
	ListActiveFires(ctx context.Context) ([]*models.FireRecord, error)
	UpsertFires(ctx context.Context, fires []*models.FireRecord) error
}

// SubscriberRepository определяет контракт хранилища подписчиков
type SubscriberRepository interface {
	Create(ctx context.Context, sub *models.Subscriber) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Subscriber, error)
	ListSubscribers(ctx context.Context) ([]*models.Subscriber, error)
	Delete(ctx context.Context, id uuid.UUID) error
	MarkNotified(ctx context.Context, id uuid.UUID, at time.Time) error
}

// SMSSender доставляет SMS
type SMSSender interface {
	SendSMS(ctx context.Context, phone, body string) error
}

// WebhookSender доставляет сообщение в чат через вебхук
type WebhookSender interface {
	SendWebhook(ctx context.Context, hook, token string, msg *models.WebhookMessage) error
}

// TelegramSender доставляет сообщение в чат Telegram
type TelegramSender interface {
	SendTelegram(ctx context.Context, chatID int64, text string) error
}

// NotificationService определяет контракт рассылки и управления подписчиками
type NotificationService interface {
	RunNotificationBatch(ctx context.Context) (*models.BatchResult, error)
	CreateSubscriber(ctx context.Context, sub *models.Subscriber) error
	GetSubscriber(ctx context.Context, id uuid.UUID) (*models.Subscriber, error)
	ListSubscribers(ctx context.Context) ([]*models.Subscriber, error)
	DeleteSubscriber(ctx context.Context, id uuid.UUID) error
}

// Channels - набор каналов доставки; незаданный канал означает, что он не настроен
type Channels struct {
	SMS      SMSSender
	Webhook  WebhookSender
	Telegram TelegramSender
}

type notificationService struct {
	subscriberRepo SubscriberRepository
	fireRepo       FireRepository
	matcher        *Matcher
	dispatcher     *Dispatcher
	logger         *logrus.Logger
	cfg            *config.Config
	metrics        *observability.Metrics
	clock          clockwork.Clock
}

func NewNotificationService(
	subscriberRepo SubscriberRepository,
	fireRepo FireRepository,
	channels Channels,
	logger *logrus.Logger,
	cfg *config.Config,
	metrics *observability.Metrics,
	clock clockwork.Clock,
) NotificationService {
	return &notificationService{
		subscriberRepo: subscriberRepo,
		fireRepo:       fireRepo,
		matcher:        NewMatcher(cfg.RecencyWindow),
		dispatcher:     NewDispatcher(channels, cfg.FireInfoURL, cfg.DispatchConcurrency, logger),
		logger:         logger,
		cfg:            cfg,
		metrics:        metrics,
		clock:          clock,
	}
}

// RunNotificationBatch загружает подписчиков и активные пожары, находит для
// каждого подписчика ближайший пожар и рассылает уведомления.
// Ошибка возвращается только при сбое загрузки; сбои доставки попадают в результат.
func (s *notificationService) RunNotificationBatch(ctx context.Context) (*models.BatchResult, error) {
	result := &models.BatchResult{
		RunID:     uuid.New(),
		StartedAt: s.clock.Now(),
	}
	log := s.logger.WithFields(logrus.Fields{
		"service": "notification",
		"method":  "RunNotificationBatch",
		"run_id":  result.RunID,
	})
	log.Info("Starting notification batch")

	subscribers, err := s.subscriberRepo.ListSubscribers(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load subscribers")
		s.metrics.BatchRuns.WithLabelValues("load_failed").Inc()
		return nil, fmt.Errorf("service: %w: %w", ErrLoadSubscribers, err)
	}

	fires, err := s.fireRepo.ListActiveFires(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load active fires")
		s.metrics.BatchRuns.WithLabelValues("load_failed").Inc()
		return nil, fmt.Errorf("service: %w: %w", ErrLoadFires, err)
	}

	active := FilterActive(fires)
	log.WithFields(logrus.Fields{
		"subscribers":  len(subscribers),
		"active_fires": len(active),
		"total_fires":  len(fires),
	}).Info("Loaded batch candidates")

	matches := make([]models.Match, 0, len(subscribers))
	for _, sub := range subscribers {
		if sub == nil {
			continue
		}
		match := s.matcher.Nearest(sub, active, result.StartedAt)
		if match.Found() {
			log.WithFields(logrus.Fields{
				"subscriber_id": sub.ID,
				"fire_id":       match.Fire.UniqueFireID,
				"distance_m":    match.Distance,
			}).Debug("Closest fire found")
		}
		matches = append(matches, match)
	}

	result.Subscribers = len(matches)
	result.ActiveFires = len(active)
	result.Deliveries = s.dispatcher.DispatchAll(ctx, matches)

	for _, d := range result.Deliveries {
		s.metrics.Notifications.WithLabelValues(string(d.Channel), string(d.Status)).Inc()
		switch d.Status {
		case models.DeliverySent:
			result.Matched++
			result.Sent++
			s.markNotified(ctx, log, d.SubscriberID)
		case models.DeliveryFailed:
			result.Matched++
			result.Failed++
		case models.DeliverySkipped:
			result.Matched++
			result.Skipped++
		}
	}

	result.FinishedAt = s.clock.Now()
	s.metrics.BatchRuns.WithLabelValues("success").Inc()
	s.metrics.BatchDuration.Observe(result.FinishedAt.Sub(result.StartedAt).Seconds())
	s.metrics.ActiveFires.Set(float64(result.ActiveFires))
	s.metrics.Subscribers.Set(float64(result.Subscribers))

	log.WithFields(logrus.Fields{
		"matched": result.Matched,
		"sent":    result.Sent,
		"failed":  result.Failed,
		"skipped": result.Skipped,
	}).Info("Notification batch completed")
	return result, nil
}

// markNotified только фиксирует время отправки; повторные уведомления не подавляются
func (s *notificationService) markNotified(ctx context.Context, log *logrus.Entry, id uuid.UUID) {
	if err := s.subscriberRepo.MarkNotified(ctx, id, s.clock.Now()); err != nil {
		log.WithError(err).WithField("subscriber_id", id).Warn("Failed to record notification time")
	}
}

// CreateSubscriber регистрирует новую точку наблюдения
func (s *notificationService) CreateSubscriber(ctx context.Context, sub *models.Subscriber) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "notification",
		"method":  "CreateSubscriber",
		"channel": sub.Contact.Kind,
	})
	log.Info("Attempting to create a new subscriber")

	if sub.Contact.IsNone() {
		log.Warn("Subscriber has no contact method")
		return fmt.Errorf("service: %w: no contact method", ErrInvalidSubscriber)
	}
	if !geo.ValidCoordinates(sub.Latitude, sub.Longitude) {
		log.Warn("Subscriber has invalid coordinates")
		return fmt.Errorf("service: %w: invalid coordinates", ErrInvalidSubscriber)
	}

	if err := s.subscriberRepo.Create(ctx, sub); err != nil {
		log.WithError(err).Error("Failed to create subscriber in repository")
		return fmt.Errorf("service: could not create subscriber: %w", err)
	}

	log.WithField("subscriber_id", sub.ID).Info("Subscriber created successfully")
	return nil
}

// GetSubscriber получает подписчика по ID
func (s *notificationService) GetSubscriber(ctx context.Context, id uuid.UUID) (*models.Subscriber, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "notification",
		"method":        "GetSubscriber",
		"subscriber_id": id,
	})

	sub, err := s.subscriberRepo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get subscriber from repository")
		return nil, fmt.Errorf("service: could not get subscriber: %w", err)
	}
	return sub, nil
}

// ListSubscribers возвращает всех подписчиков
func (s *notificationService) ListSubscribers(ctx context.Context) ([]*models.Subscriber, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "notification",
		"method":  "ListSubscribers",
	})

	subs, err := s.subscriberRepo.ListSubscribers(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list subscribers from repository")
		return nil, fmt.Errorf("service: could not list subscribers: %w", err)
	}

	log.WithField("count", len(subs)).Info("Subscribers listed successfully")
	return subs, nil
}

// DeleteSubscriber удаляет подписчика
func (s *notificationService) DeleteSubscriber(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "notification",
		"method":        "DeleteSubscriber",
		"subscriber_id": id,
	})
	log.Info("Attempting to delete subscriber")

	if _, err := s.subscriberRepo.GetByID(ctx, id); err != nil {
		log.WithError(err).Warn("Attempted to delete a non-existent subscriber")
		return fmt.Errorf("service: subscriber with id %s not found for delete: %w", id, err)
	}

	if err := s.subscriberRepo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete subscriber in repository")
		return fmt.Errorf("service: could not delete subscriber: %w", err)
	}

	log.Info("Subscriber deleted successfully")
	return nil
}
