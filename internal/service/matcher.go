package service

import (
	"math"
	"time"

	"github.com/shenikar/wildfire_notifier/internal/geo"
	"github.com/shenikar/wildfire_notifier/internal/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Matcher подбирает ближайший подходящий пожар линейным перебором
type Matcher struct {
	recencyWindow time.Duration
	printer       *message.Printer
}

func NewMatcher(recencyWindow time.Duration) *Matcher {
	return &Matcher{
		recencyWindow: recencyWindow,
		printer:       message.NewPrinter(language.AmericanEnglish),
	}
}

// Eligible - пожар активен, имеет корректные координаты и свежий lastUpdate
func (m *Matcher) Eligible(fire *models.FireRecord, now time.Time) bool {
	if fire == nil || !fire.IsActive() {
		return false
	}
	if !geo.ValidCoordinates(fire.Latitude, fire.Longitude) {
		return false
	}
	return IsRecent(fire, now, m.recencyWindow)
}

// Nearest возвращает ближайший подходящий пожар для подписчика.
// При равных расстояниях побеждает первый встреченный.
func (m *Matcher) Nearest(sub *models.Subscriber, fires []*models.FireRecord, now time.Time) models.Match {
	match := models.Match{Subscriber: sub, Distance: math.Inf(1)}
	if sub == nil || !geo.ValidCoordinates(sub.Latitude, sub.Longitude) {
		return match
	}

	for _, fire := range fires {
		if !m.Eligible(fire, now) {
			continue
		}
		d := geo.Distance(sub.Latitude, sub.Longitude, fire.Latitude, fire.Longitude)
		if d < match.Distance {
			match.Distance = d
			match.Fire = fire
		}
	}

	if match.Fire == nil {
		return match
	}

	match.DistanceKm = match.Distance / 1000
	match.DistanceMiles = match.DistanceKm * geo.KmToMiles
	match.DistanceKmString = m.printer.Sprintf("%.2f", match.DistanceKm)
	match.DistanceMilesString = m.printer.Sprintf("%.2f", match.DistanceMiles)
	return match
}
