package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/wildfire_notifier/internal/models"
	"github.com/shenikar/wildfire_notifier/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestScheduler(t *testing.T, poll, notify time.Duration) (*Scheduler, *mocks.MockIngestService, *mocks.MockNotificationService, *clockwork.FakeClock) {
	ctrl := gomock.NewController(t)
	ingest := mocks.NewMockIngestService(ctrl)
	notifications := mocks.NewMockNotificationService(ctrl)
	clock := clockwork.NewFakeClockAt(testNow)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return NewScheduler(ingest, notifications, poll, notify, clock, logger), ingest, notifications, clock
}

func waitSignal(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for scheduled job")
	}
}

func TestScheduler_RunsBothJobs(t *testing.T) {
	scheduler, ingest, notifications, clock := newTestScheduler(t, time.Minute, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	polled := make(chan struct{}, 1)
	notified := make(chan struct{}, 1)
	ingest.EXPECT().Poll(gomock.Any()).DoAndReturn(func(context.Context) (int, error) {
		polled <- struct{}{}
		return 0, errors.New("feed down")
	}).Times(1)
	notifications.EXPECT().RunNotificationBatch(gomock.Any()).DoAndReturn(func(context.Context) (*models.BatchResult, error) {
		notified <- struct{}{}
		return &models.BatchResult{}, nil
	}).Times(1)

	done := make(chan struct{})
	go func() {
		scheduler.Run(ctx)
		close(done)
	}()

	require.NoError(t, clock.BlockUntilContext(ctx, 2))
	clock.Advance(time.Minute)

	waitSignal(t, polled)
	waitSignal(t, notified)

	cancel()
	waitSignal(t, done)
}

func TestScheduler_ZeroIntervalDisablesJob(t *testing.T) {
	scheduler, ingest, _, clock := newTestScheduler(t, time.Minute, 0)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	polled := make(chan struct{}, 1)
	ingest.EXPECT().Poll(gomock.Any()).DoAndReturn(func(context.Context) (int, error) {
		polled <- struct{}{}
		return 1, nil
	}).Times(1)

	done := make(chan struct{})
	go func() {
		scheduler.Run(ctx)
		close(done)
	}()

	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	clock.Advance(time.Minute)
	waitSignal(t, polled)

	cancel()
	waitSignal(t, done)
}

func TestScheduler_NothingToRun(t *testing.T) {
	scheduler, _, _, _ := newTestScheduler(t, 0, 0)

	done := make(chan struct{})
	go func() {
		scheduler.Run(context.Background())
		close(done)
	}()
	waitSignal(t, done)
}
