package service

import (
	"math"
	"testing"
	"time"

	"github.com/shenikar/wildfire_notifier/internal/geo"
	"github.com/shenikar/wildfire_notifier/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatcher_NearestPicksMinimum(t *testing.T) {
	m := NewMatcher(5 * 24 * time.Hour)
	sub := smsSubscriber("+1555", 47.6, -122.3)
	fires := []*models.FireRecord{
		activeFire("far", 46.0, -118.0, testNow),
		activeFire("near", 47.5, -122.1, testNow),
		activeFire("mid", 47.0, -121.0, testNow),
	}

	match := m.Nearest(sub, fires, testNow)

	require.True(t, match.Found())
	assert.Equal(t, "near", match.Fire.UniqueFireID)
	for _, f := range fires {
		assert.LessOrEqual(t, match.Distance, geo.Distance(sub.Latitude, sub.Longitude, f.Latitude, f.Longitude))
	}
	assert.InDelta(t, match.Distance/1000, match.DistanceKm, 1e-9)
	assert.InDelta(t, match.DistanceKm*geo.KmToMiles, match.DistanceMiles, 1e-9)
}

func TestMatcher_TieKeepsFirstFire(t *testing.T) {
	m := NewMatcher(5 * 24 * time.Hour)
	sub := smsSubscriber("+1555", 47.0, -120.0)
	fires := []*models.FireRecord{
		activeFire("first", 47.1, -120.0, testNow),
		activeFire("second", 47.1, -120.0, testNow),
	}

	match := m.Nearest(sub, fires, testNow)

	require.True(t, match.Found())
	assert.Equal(t, "first", match.Fire.UniqueFireID)
}

func TestMatcher_SameLocationFormatsZero(t *testing.T) {
	m := NewMatcher(5 * 24 * time.Hour)
	sub := smsSubscriber("+1555", 47.0, -120.0)

	match := m.Nearest(sub, []*models.FireRecord{activeFire("F1", 47.0, -120.0, testNow)}, testNow)

	require.True(t, match.Found())
	assert.Zero(t, match.Distance)
	assert.Equal(t, "0.00", match.DistanceKmString)
	assert.Equal(t, "0.00", match.DistanceMilesString)
}

func TestMatcher_SkipsIneligibleFires(t *testing.T) {
	m := NewMatcher(5 * 24 * time.Hour)
	sub := smsSubscriber("+1555", 47.0, -120.0)
	out := testNow.UnixMilli()

	closedFire := activeFire("out", 47.0, -120.0, testNow)
	closedFire.OutTime = &out
	badCoords := activeFire("bad", math.NaN(), -120.0, testNow)
	stale := activeFire("stale", 47.0, -120.0, testNow.Add(-10*24*time.Hour))
	future := activeFire("future", 47.0, -120.0, testNow.Add(6*24*time.Hour))
	valid := activeFire("valid", 48.0, -120.0, testNow.Add(-4*24*time.Hour))

	match := m.Nearest(sub, []*models.FireRecord{nil, closedFire, badCoords, stale, future, valid}, testNow)

	require.True(t, match.Found())
	assert.Equal(t, "valid", match.Fire.UniqueFireID)
}

func TestMatcher_NoEligibleFires(t *testing.T) {
	m := NewMatcher(5 * 24 * time.Hour)
	sub := smsSubscriber("+1555", 47.0, -120.0)

	match := m.Nearest(sub, nil, testNow)

	assert.False(t, match.Found())
	assert.True(t, math.IsInf(match.Distance, 1))
	assert.Empty(t, match.DistanceKmString)
}

func TestMatcher_InvalidSubscriberCoordinates(t *testing.T) {
	m := NewMatcher(0)
	sub := smsSubscriber("+1555", 91, -120.0)

	match := m.Nearest(sub, []*models.FireRecord{activeFire("F1", 47.0, -120.0, testNow)}, testNow)

	assert.False(t, match.Found())
}

func TestMatcher_NilSubscriberNoMatch(t *testing.T) {
	m := NewMatcher(5 * 24 * time.Hour)

	var match models.Match
	require.NotPanics(t, func() {
		match = m.Nearest(nil, []*models.FireRecord{activeFire("F1", 47.0, -120.0, testNow)}, testNow)
	})

	assert.False(t, match.Found())
	assert.True(t, math.IsInf(match.Distance, 1))
}
