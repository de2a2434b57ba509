package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shenikar/wildfire_notifier/internal/models"
)

const (
	webhookUsername = "WildfireFYI"
	webhookColor    = 7440858
)

// mapsLink строит ссылку на карту по координатам пожара
func mapsLink(fire *models.FireRecord) string {
	return fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%s,%s",
		strconv.FormatFloat(fire.Latitude, 'f', -1, 64),
		strconv.FormatFloat(fire.Longitude, 'f', -1, 64),
	)
}

func formatAcres(acres *float64) string {
	if acres == nil {
		return "unknown"
	}
	return strconv.FormatFloat(*acres, 'f', -1, 64)
}

func headline(m models.Match) string {
	return fmt.Sprintf("%s - %skm (%smi)", m.Fire.IncidentName, m.DistanceKmString, m.DistanceMilesString)
}

// BuildTextMessage собирает текст для SMS и Telegram
func BuildTextMessage(m models.Match, fireInfoURL string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Closest known wildfire: %s\n", headline(m))
	fmt.Fprintf(&b, " UPDATED: %s\n", m.Fire.LastUpdated().UTC().Format("Mon Jan 02 2006"))
	fmt.Fprintf(&b, " FIRE_ID: %s\n", m.Fire.UniqueFireID)
	fmt.Fprintf(&b, " LAT/LNG: %s\n", mapsLink(m.Fire))
	fmt.Fprintf(&b, "   ACRES: %s\n", formatAcres(m.Fire.DailyAcres))
	b.WriteString(fireInfoURL)
	return b.String()
}

// BuildWebhookMessage собирает embed-сообщение для чат-вебхука
func BuildWebhookMessage(m models.Match, fireInfoURL string) *models.WebhookMessage {
	return &models.WebhookMessage{
		Username: webhookUsername,
		Embeds: []models.WebhookEmbed{
			{
				Title:       "Closest known wildfire:",
				Color:       webhookColor,
				Description: headline(m),
				Timestamp:   m.Fire.LastUpdated().UTC().Format(time.RFC3339),
				URL:         fireInfoURL,
				Footer: models.WebhookEmbedFooter{
					Text: "Click the title to view: " + fireInfoURL,
				},
				Fields: []models.WebhookEmbedField{
					{Name: "Fire Id", Value: m.Fire.UniqueFireID},
					{Name: "Location", Value: mapsLink(m.Fire)},
					{Name: "Acres", Value: formatAcres(m.Fire.DailyAcres)},
				},
			},
		},
		Components: []any{},
	}
}
