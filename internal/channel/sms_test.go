package channel

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type fakeMessageCreator struct {
	calls []*twilioApi.CreateMessageParams
	err   error
}

func (f *fakeMessageCreator) CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error) {
	f.calls = append(f.calls, params)
	if f.err != nil {
		return nil, f.err
	}
	sid := "SM123"
	return &twilioApi.ApiV2010Message{Sid: &sid}, nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

func TestSMSSender_Send(t *testing.T) {
	api := &fakeMessageCreator{}
	sender := newSMSSender(api, "+15550000000", 0, testLogger())

	err := sender.SendSMS(context.Background(), "+15551230000", "Closest known wildfire")

	require.NoError(t, err)
	require.Len(t, api.calls, 1)
	assert.Equal(t, "+15551230000", *api.calls[0].To)
	assert.Equal(t, "+15550000000", *api.calls[0].From)
	assert.Equal(t, "Closest known wildfire", *api.calls[0].Body)
}

func TestSMSSender_InvalidPhone(t *testing.T) {
	api := &fakeMessageCreator{}
	sender := newSMSSender(api, "+15550000000", 0, testLogger())

	err := sender.SendSMS(context.Background(), "5551230000", "body")

	require.Error(t, err)
	assert.Empty(t, api.calls)
}

func TestSMSSender_APIError(t *testing.T) {
	api := &fakeMessageCreator{err: errors.New("status: 401")}
	sender := newSMSSender(api, "+15550000000", 5, testLogger())

	err := sender.SendSMS(context.Background(), "+15551230000", "body")

	assert.ErrorContains(t, err, "status: 401")
}

func TestSMSSender_CanceledWhileRateLimited(t *testing.T) {
	api := &fakeMessageCreator{}
	sender := newSMSSender(api, "+15550000000", 0.001, testLogger())
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, sender.SendSMS(ctx, "+15551230000", "first"))
	cancel()
	err := sender.SendSMS(ctx, "+15551230000", "second")

	require.Error(t, err)
	assert.Len(t, api.calls, 1)
}
