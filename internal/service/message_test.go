package service

import (
	"testing"

	"github.com/shenikar/wildfire_notifier/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMatch() models.Match {
	fire := activeFire("WA-NES-000123", 47.5, -120.25, testNow)
	fire.IncidentName = "Pine Creek"
	return models.Match{
		Subscriber:          smsSubscriber("+1555", 47.5, -120.25),
		Fire:                fire,
		DistanceKmString:    "1.50",
		DistanceMilesString: "0.93",
	}
}

func TestBuildTextMessage(t *testing.T) {
	msg := BuildTextMessage(testMatch(), "http://fireinfo.dnr.wa.gov/")

	want := "Closest known wildfire: Pine Creek - 1.50km (0.93mi)\n" +
		" UPDATED: Sat Aug 01 2026\n" +
		" FIRE_ID: WA-NES-000123\n" +
		" LAT/LNG: https://www.google.com/maps/search/?api=1&query=47.5,-120.25\n" +
		"   ACRES: 12.5\n" +
		"http://fireinfo.dnr.wa.gov/"
	assert.Equal(t, want, msg)
}

func TestBuildTextMessage_UnknownAcres(t *testing.T) {
	m := testMatch()
	m.Fire.DailyAcres = nil

	assert.Contains(t, BuildTextMessage(m, ""), "   ACRES: unknown\n")
}

func TestBuildWebhookMessage(t *testing.T) {
	msg := BuildWebhookMessage(testMatch(), "http://fireinfo.dnr.wa.gov/")

	assert.Equal(t, "WildfireFYI", msg.Username)
	assert.NotNil(t, msg.Components)
	require.Len(t, msg.Embeds, 1)

	embed := msg.Embeds[0]
	assert.Equal(t, "Closest known wildfire:", embed.Title)
	assert.Equal(t, 7440858, embed.Color)
	assert.Equal(t, "Pine Creek - 1.50km (0.93mi)", embed.Description)
	assert.Equal(t, "2026-08-01T12:00:00Z", embed.Timestamp)
	assert.Equal(t, "http://fireinfo.dnr.wa.gov/", embed.URL)
	assert.Equal(t, "Click the title to view: http://fireinfo.dnr.wa.gov/", embed.Footer.Text)
	assert.Equal(t, []models.WebhookEmbedField{
		{Name: "Fire Id", Value: "WA-NES-000123"},
		{Name: "Location", Value: "https://www.google.com/maps/search/?api=1&query=47.5,-120.25"},
		{Name: "Acres", Value: "12.5"},
	}, embed.Fields)
}
