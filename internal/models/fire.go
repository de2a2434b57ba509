package models

import "time"

// FireRecord - наблюдение о пожаре; UniqueFireID служит естественным ключом.
// Временные метки хранятся в миллисекундах Unix, как их отдаёт фид.
type FireRecord struct {
	UniqueFireID string  `json:"uniqueFireId"`
	IncidentName string  `json:"incidentName"`
	GlobalUID    string  `json:"globalUID,omitempty"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Geohash      string  `json:"geohash,omitempty"`

	StartTime       int64  `json:"startTime"`
	LastUpdate      int64  `json:"lastUpdate"`
	ContainmentTime *int64 `json:"containmentTime,omitempty"`
	ControlTime     *int64 `json:"controlTime,omitempty"`
	OutTime         *int64 `json:"outTime,omitempty"`

	DiscoveryAcres       *float64 `json:"discoveryAcres,omitempty"`
	DailyAcres           *float64 `json:"dailyAcres,omitempty"`
	InitialResponseAcres *float64 `json:"initialResponseAcres,omitempty"`

	CauseType      string `json:"causeType,omitempty"`
	CauseDetail    string `json:"causeDetail,omitempty"`
	CauseSubDetail string `json:"causeSubDetail,omitempty"`
}

// IsActive - пожар активен, пока не задан outTime
func (f *FireRecord) IsActive() bool {
	return f.OutTime == nil
}

// LastUpdated возвращает lastUpdate как time.Time
func (f *FireRecord) LastUpdated() time.Time {
	return time.UnixMilli(f.LastUpdate)
}
