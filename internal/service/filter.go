package service

import (
	"time"

	"github.com/shenikar/wildfire_notifier/internal/models"
)

// FilterActive оставляет только пожары без outTime. Хранилище может вернуть
// как уже отфильтрованный, так и полный набор, поэтому фильтр применяется всегда.
func FilterActive(fires []*models.FireRecord) []*models.FireRecord {
	active := make([]*models.FireRecord, 0, len(fires))
	for _, fire := range fires {
		if fire != nil && fire.IsActive() {
			active = append(active, fire)
		}
	}
	return active
}

// IsRecent сообщает, что lastUpdate отстоит от now (в любую сторону) меньше чем на window.
// window <= 0 отключает проверку.
func IsRecent(fire *models.FireRecord, now time.Time, window time.Duration) bool {
	if window <= 0 {
		return true
	}
	age := now.Sub(fire.LastUpdated())
	if age < 0 {
		age = -age
	}
	return age < window
}
