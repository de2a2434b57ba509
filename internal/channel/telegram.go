package channel

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Telegram ограничивает рассылку ботом примерно 30 сообщениями в секунду
const telegramRatePerSecond = 25

// TelegramSender отправляет текстовые уведомления через Telegram-бота
type TelegramSender struct {
	bot     *bot.Bot
	limiter *rate.Limiter
	logger  *logrus.Logger
}

// NewTelegramSender создаёт бота без запроса getMe; opts позволяют подменить адрес API
func NewTelegramSender(token string, logger *logrus.Logger, opts ...bot.Option) (*TelegramSender, error) {
	opts = append([]bot.Option{bot.WithSkipGetMe()}, opts...)
	b, err := bot.New(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Telegram bot: %w", err)
	}
	return &TelegramSender{
		bot:     b,
		limiter: newLimiter(telegramRatePerSecond),
		logger:  logger,
	}, nil
}

func (s *TelegramSender) SendTelegram(ctx context.Context, chatID int64, text string) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("telegram rate limit wait: %w", err)
	}

	params := &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	}
	if _, err := s.bot.SendMessage(ctx, params); err != nil {
		return fmt.Errorf("failed to send Telegram message to chat_id %d: %w", chatID, err)
	}

	s.logger.WithField("chat_id", chatID).Debug("Telegram message sent")
	return nil
}
