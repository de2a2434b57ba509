package models

import (
	"time"

	"github.com/google/uuid"
)

// Match - ближайший подходящий пожар для одного подписчика.
// Fire == nil означает, что подходящих пожаров нет.
type Match struct {
	Subscriber          *Subscriber
	Fire                *FireRecord
	Distance            float64 // метры
	DistanceKm          float64
	DistanceMiles       float64
	DistanceKmString    string
	DistanceMilesString string
}

// Found сообщает, найден ли пожар
func (m Match) Found() bool {
	return m.Fire != nil
}

// DeliveryStatus - итог обработки одного подписчика в пакете
type DeliveryStatus string

const (
	DeliverySent    DeliveryStatus = "sent"
	DeliveryFailed  DeliveryStatus = "failed"
	DeliverySkipped DeliveryStatus = "skipped"
	DeliveryNoMatch DeliveryStatus = "no_match"
)

// DeliveryResult - результат для одного подписчика
type DeliveryResult struct {
	SubscriberID uuid.UUID      `json:"subscriber_id"`
	Channel      ContactKind    `json:"channel"`
	FireID       string         `json:"fire_id,omitempty"`
	DistanceKm   float64        `json:"distance_km,omitempty"`
	Status       DeliveryStatus `json:"status"`
	Error        string         `json:"error,omitempty"`
}

// BatchResult - сводка одного запуска рассылки
type BatchResult struct {
	RunID       uuid.UUID        `json:"run_id"`
	StartedAt   time.Time        `json:"started_at"`
	FinishedAt  time.Time        `json:"finished_at"`
	Subscribers int              `json:"subscribers"`
	ActiveFires int              `json:"active_fires"`
	Matched     int              `json:"matched"`
	Sent        int              `json:"sent"`
	Failed      int              `json:"failed"`
	Skipped     int              `json:"skipped"`
	Deliveries  []DeliveryResult `json:"deliveries"`
}
