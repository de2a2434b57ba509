package service

import (
	"context"
	"fmt"

	"github.com/shenikar/wildfire_notifier/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Dispatcher рассылает уведомления по найденным совпадениям.
// Каждая отправка независима: ошибка или паника одного подписчика
// превращается в его DeliveryResult и не влияет на остальных.
type Dispatcher struct {
	channels    Channels
	fireInfoURL string
	concurrency int
	logger      *logrus.Logger
}

func NewDispatcher(channels Channels, fireInfoURL string, concurrency int, logger *logrus.Logger) *Dispatcher {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Dispatcher{
		channels:    channels,
		fireInfoURL: fireInfoURL,
		concurrency: concurrency,
		logger:      logger,
	}
}

// DispatchAll отправляет уведомления параллельно и ждёт завершения всех отправок.
// Результаты идут в том же порядке, что и matches.
func (d *Dispatcher) DispatchAll(ctx context.Context, matches []models.Match) []models.DeliveryResult {
	results := make([]models.DeliveryResult, len(matches))

	var g errgroup.Group
	g.SetLimit(d.concurrency)
	for i := range matches {
		g.Go(func() error {
			results[i] = d.Dispatch(ctx, matches[i])
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Dispatch обрабатывает одного подписчика.
// Совпадение без подписчика считается DeliveryNoMatch.
func (d *Dispatcher) Dispatch(ctx context.Context, m models.Match) (res models.DeliveryResult) {
	if m.Subscriber == nil {
		return models.DeliveryResult{Channel: models.ContactNone, Status: models.DeliveryNoMatch}
	}
	contact := m.Subscriber.Contact
	res = models.DeliveryResult{
		SubscriberID: m.Subscriber.ID,
		Channel:      contact.Kind,
	}
	if contact.IsNone() {
		res.Channel = models.ContactNone
	}

	if !m.Found() {
		res.Status = models.DeliveryNoMatch
		return res
	}
	res.FireID = m.Fire.UniqueFireID
	res.DistanceKm = m.DistanceKm

	log := d.logger.WithFields(logrus.Fields{
		"subscriber_id": m.Subscriber.ID,
		"channel":       res.Channel,
		"fire_id":       res.FireID,
	})

	if contact.IsNone() {
		log.Debug("Subscriber has no contact method, skipping")
		res.Status = models.DeliverySkipped
		return res
	}

	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("Notification send panicked")
			res.Status = models.DeliveryFailed
			res.Error = fmt.Sprintf("panic: %v", r)
		}
	}()

	if err := d.send(ctx, m); err != nil {
		log.WithError(err).Error("Failed to deliver notification")
		res.Status = models.DeliveryFailed
		res.Error = err.Error()
		return res
	}

	log.Info("Notification delivered")
	res.Status = models.DeliverySent
	return res
}

func (d *Dispatcher) send(ctx context.Context, m models.Match) error {
	contact := m.Subscriber.Contact
	switch contact.Kind {
	case models.ContactSMS:
		if d.channels.SMS == nil {
			return fmt.Errorf("sms: %w", ErrChannelNotConfigured)
		}
		return d.channels.SMS.SendSMS(ctx, contact.Phone, BuildTextMessage(m, d.fireInfoURL))
	case models.ContactWebhook:
		if d.channels.Webhook == nil {
			return fmt.Errorf("webhook: %w", ErrChannelNotConfigured)
		}
		return d.channels.Webhook.SendWebhook(ctx, contact.Hook, contact.Token, BuildWebhookMessage(m, d.fireInfoURL))
	case models.ContactTelegram:
		if d.channels.Telegram == nil {
			return fmt.Errorf("telegram: %w", ErrChannelNotConfigured)
		}
		return d.channels.Telegram.SendTelegram(ctx, contact.ChatID, BuildTextMessage(m, d.fireInfoURL))
	default:
		return fmt.Errorf("unknown contact kind %q", contact.Kind)
	}
}
