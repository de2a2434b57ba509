package channel

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"golang.org/x/time/rate"
)

// messageCreator - часть Twilio API, которая нужна для отправки SMS
type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// SMSSender отправляет SMS через Twilio с ограничением частоты
type SMSSender struct {
	api        messageCreator
	fromNumber string
	limiter    *rate.Limiter
	logger     *logrus.Logger
}

func NewSMSSender(accountSID, authToken, fromNumber string, ratePerSecond float64, logger *logrus.Logger) *SMSSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return newSMSSender(client.Api, fromNumber, ratePerSecond, logger)
}

func newSMSSender(api messageCreator, fromNumber string, ratePerSecond float64, logger *logrus.Logger) *SMSSender {
	return &SMSSender{
		api:        api,
		fromNumber: fromNumber,
		limiter:    newLimiter(ratePerSecond),
		logger:     logger,
	}
}

func (s *SMSSender) SendSMS(ctx context.Context, phone, body string) error {
	if !strings.HasPrefix(phone, "+") {
		return fmt.Errorf("invalid phone number: %s", phone)
	}
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("sms rate limit wait: %w", err)
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(phone)
	params.SetFrom(s.fromNumber)
	params.SetBody(body)

	msg, err := s.api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("failed to send SMS to %s: %w", phone, err)
	}

	entry := s.logger.WithField("to", phone)
	if msg != nil && msg.Sid != nil {
		entry = entry.WithField("sid", *msg.Sid)
	}
	entry.Debug("SMS accepted by Twilio")
	return nil
}

// newLimiter возвращает лимитер; ratePerSecond <= 0 снимает ограничение
func newLimiter(ratePerSecond float64) *rate.Limiter {
	if ratePerSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	burst := int(ratePerSecond)
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(ratePerSecond), burst)
}
