package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateSubscriberRequest DTO для регистрации точки наблюдения
// @Description Ровно один канал: phone, hook+token или telegram_chat_id
type CreateSubscriberRequest struct {
	Latitude       *float64 `json:"latitude" validate:"required,latitude"`
	Longitude      *float64 `json:"longitude" validate:"required,longitude"`
	Phone          string   `json:"phone,omitempty" validate:"omitempty,e164"`
	Hook           string   `json:"hook,omitempty" validate:"required_with=Token"`
	Token          string   `json:"token,omitempty" validate:"required_with=Hook"`
	TelegramChatID int64    `json:"telegram_chat_id,omitempty"`
}

// contactCount возвращает число заполненных каналов
func (r CreateSubscriberRequest) contactCount() int {
	n := 0
	if r.Phone != "" {
		n++
	}
	if r.Hook != "" && r.Token != "" {
		n++
	}
	if r.TelegramChatID != 0 {
		n++
	}
	return n
}

// SubscriberResponse DTO для ответа с информацией о подписчике; токен вебхука не возвращается
// @Description DTO для ответа с информацией о подписчике
type SubscriberResponse struct {
	ID             uuid.UUID  `json:"id"`
	Latitude       float64    `json:"latitude"`
	Longitude      float64    `json:"longitude"`
	Channel        string     `json:"channel"`
	Phone          string     `json:"phone,omitempty"`
	Hook           string     `json:"hook,omitempty"`
	TelegramChatID int64      `json:"telegram_chat_id,omitempty"`
	LastNotifiedAt *time.Time `json:"last_notified_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// FireResponse DTO для ответа с информацией о пожаре
// @Description DTO для ответа с информацией о пожаре
type FireResponse struct {
	UniqueFireID string    `json:"unique_fire_id"`
	IncidentName string    `json:"incident_name"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Geohash      string    `json:"geohash,omitempty"`
	DailyAcres   *float64  `json:"daily_acres,omitempty"`
	LastUpdate   time.Time `json:"last_update"`
}

// PollResponse DTO с результатом опроса фида
type PollResponse struct {
	Stored int `json:"stored"`
}

// DeliveryResponse - итог по одному подписчику
type DeliveryResponse struct {
	SubscriberID uuid.UUID `json:"subscriber_id"`
	Channel      string    `json:"channel"`
	Status       string    `json:"status"`
	FireID       string    `json:"fire_id,omitempty"`
	DistanceKm   float64   `json:"distance_km,omitempty"`
	Error        string    `json:"error,omitempty"`
}

// BatchResponse DTO с итогами рассылки
// @Description Счётчики и результаты доставки по подписчикам
type BatchResponse struct {
	RunID       uuid.UUID          `json:"run_id"`
	StartedAt   time.Time          `json:"started_at"`
	FinishedAt  time.Time          `json:"finished_at"`
	Subscribers int                `json:"subscribers"`
	ActiveFires int                `json:"active_fires"`
	Matched     int                `json:"matched"`
	Sent        int                `json:"sent"`
	Failed      int                `json:"failed"`
	Skipped     int                `json:"skipped"`
	Deliveries  []DeliveryResponse `json:"deliveries"`
}
