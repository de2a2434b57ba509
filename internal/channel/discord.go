package channel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shenikar/wildfire_notifier/internal/models"
	"github.com/sirupsen/logrus"
)

// WebhookSender отправляет embed-сообщения в Discord-совместимый вебхук
// по адресу {baseURL}/{hook}/{token}
type WebhookSender struct {
	baseURL    string
	maxRetries int
	baseDelay  time.Duration
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewWebhookSender(baseURL string, timeout time.Duration, maxRetries int, baseDelay time.Duration, logger *logrus.Logger) *WebhookSender {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &WebhookSender{
		baseURL:    strings.TrimRight(baseURL, "/"),
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

func (w *WebhookSender) SendWebhook(ctx context.Context, hook, token string, msg *models.WebhookMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook message: %w", err)
	}
	target := fmt.Sprintf("%s/%s/%s", w.baseURL, url.PathEscape(hook), url.PathEscape(token))

	log := w.logger.WithField("hook", hook)
	delay := w.baseDelay
	var lastErr error

	for i := 0; i < w.maxRetries; i++ {
		if i > 0 {
			log.WithError(lastErr).Warnf("Retrying webhook in %v. Retries left: %d", delay, w.maxRetries-i)
			select {
			case <-ctx.Done():
				return fmt.Errorf("webhook delivery canceled: %w", ctx.Err())
			case <-time.After(delay):
			}
			delay *= 2 // Экспоненциальная задержка
		}

		retry, err := w.post(ctx, target, payload)
		if err == nil {
			log.Debug("Webhook delivered successfully")
			return nil
		}
		lastErr = err
		if !retry {
			break
		}
	}

	return fmt.Errorf("failed to deliver webhook: %w", lastErr)
}

// post возвращает retry=true для сетевых ошибок, 429 и 5xx
func (w *WebhookSender) post(ctx context.Context, target string, payload []byte) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(payload))
	if err != nil {
		return false, fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return ctx.Err() == nil, fmt.Errorf("failed to send webhook: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return false, nil
	}
	retry := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
	return retry, fmt.Errorf("webhook returned status code %d", resp.StatusCode)
}
