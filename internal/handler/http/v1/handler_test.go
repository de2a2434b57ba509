package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/wildfire_notifier/internal/config"
	"github.com/shenikar/wildfire_notifier/internal/models"
	"github.com/shenikar/wildfire_notifier/internal/service"
	"github.com/shenikar/wildfire_notifier/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var authHeader = map[string]string{"X-API-Key": "test-api-key"}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*mocks.MockNotificationService, *mocks.MockIngestService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	notifications := mocks.NewMockNotificationService(ctrl)
	ingest := mocks.NewMockIngestService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{APIKeys: []string{"test-api-key"}}
	handler := NewHandler(notifications, ingest, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.RegisterRoutes(router.Group("/api/v1"))

	return notifications, ingest, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthCheck_NoAuth(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestAuth_MissingAndInvalidKey(t *testing.T) {
	notifications, _, router := newTestHandler(t)
	notifications.EXPECT().ListSubscribers(gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/v1/subscribers", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")

	w = makeRequest(router, http.MethodGet, "/api/v1/subscribers", nil, map[string]string{"X-API-Key": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestAuth_BearerToken(t *testing.T) {
	notifications, _, router := newTestHandler(t)
	notifications.EXPECT().ListSubscribers(gomock.Any()).Return(nil, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/subscribers", nil, map[string]string{"Authorization": "Bearer test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCreateSubscriber_Success(t *testing.T) {
	notifications, _, router := newTestHandler(t)
	id := uuid.New()

	notifications.EXPECT().
		CreateSubscriber(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sub *models.Subscriber) error {
			assert.Equal(t, models.ContactWebhook, sub.Contact.Kind)
			assert.Equal(t, "secret", sub.Contact.Token)
			sub.ID = id
			sub.CreatedAt = time.Now()
			return nil
		}).Times(1)

	body := `{"latitude": 0, "longitude": -120.5, "hook": "123", "token": "secret"}`
	w := makeRequest(router, http.MethodPost, "/api/v1/subscribers", bytes.NewBufferString(body), authHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp SubscriberResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.ID)
	assert.Equal(t, "webhook", resp.Channel)
	assert.Equal(t, "123", resp.Hook)
	assert.NotContains(t, w.Body.String(), "secret")
}

func TestCreateSubscriber_InvalidJSON(t *testing.T) {
	notifications, _, router := newTestHandler(t)
	notifications.EXPECT().CreateSubscriber(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, http.MethodPost, "/api/v1/subscribers", bytes.NewBufferString(`{"latitude": 1`), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateSubscriber_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "missing latitude", body: `{"longitude": 1, "phone": "+15551230000"}`, want: "'Latitude' failed on the 'required' tag"},
		{name: "latitude out of range", body: `{"latitude": 91, "longitude": 1, "phone": "+15551230000"}`, want: "'Latitude' failed on the 'latitude' tag"},
		{name: "bad phone", body: `{"latitude": 1, "longitude": 1, "phone": "555"}`, want: "'Phone' failed on the 'e164' tag"},
		{name: "hook without token", body: `{"latitude": 1, "longitude": 1, "hook": "123"}`, want: "'Token' failed on the 'required_with' tag"},
		{name: "no contact", body: `{"latitude": 1, "longitude": 1}`, want: "exactly one contact method is required"},
		{name: "two contacts", body: `{"latitude": 1, "longitude": 1, "phone": "+15551230000", "telegram_chat_id": 42}`, want: "exactly one contact method is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifications, _, router := newTestHandler(t)
			notifications.EXPECT().CreateSubscriber(gomock.Any(), gomock.Any()).Times(0)

			w := makeRequest(router, http.MethodPost, "/api/v1/subscribers", bytes.NewBufferString(tt.body), authHeader)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
		})
	}
}

func TestCreateSubscriber_ServiceError(t *testing.T) {
	notifications, _, router := newTestHandler(t)
	notifications.EXPECT().CreateSubscriber(gomock.Any(), gomock.Any()).Return(errors.New("db down")).Times(1)

	body := `{"latitude": 47, "longitude": -120, "telegram_chat_id": 42}`
	w := makeRequest(router, http.MethodPost, "/api/v1/subscribers", bytes.NewBufferString(body), authHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestGetSubscriber(t *testing.T) {
	notifications, _, router := newTestHandler(t)
	id := uuid.New()
	missing := uuid.New()

	notifications.EXPECT().GetSubscriber(gomock.Any(), id).
		Return(&models.Subscriber{ID: id, Latitude: 47, Longitude: -120, Contact: models.SMSContact("+15551230000")}, nil)
	notifications.EXPECT().GetSubscriber(gomock.Any(), missing).
		Return(nil, fmt.Errorf("service: could not get subscriber: %w", service.ErrNotFound))

	w := makeRequest(router, http.MethodGet, "/api/v1/subscribers/"+id.String(), nil, authHeader)
	assert.Equal(t, http.StatusOK, w.Code)
	var resp SubscriberResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "sms", resp.Channel)
	assert.Equal(t, "+15551230000", resp.Phone)

	w = makeRequest(router, http.MethodGet, "/api/v1/subscribers/"+missing.String(), nil, authHeader)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = makeRequest(router, http.MethodGet, "/api/v1/subscribers/not-a-uuid", nil, authHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid subscriber ID")
}

func TestDeleteSubscriber(t *testing.T) {
	notifications, _, router := newTestHandler(t)
	id := uuid.New()

	notifications.EXPECT().DeleteSubscriber(gomock.Any(), id).Return(nil).Times(1)

	w := makeRequest(router, http.MethodDelete, "/api/v1/subscribers/"+id.String(), nil, authHeader)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteSubscriber_InternalError(t *testing.T) {
	notifications, _, router := newTestHandler(t)
	id := uuid.New()

	notifications.EXPECT().DeleteSubscriber(gomock.Any(), id).Return(errors.New("db down")).Times(1)

	w := makeRequest(router, http.MethodDelete, "/api/v1/subscribers/"+id.String(), nil, authHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestListActiveFires(t *testing.T) {
	_, ingest, router := newTestHandler(t)
	acres := 250.0
	ingest.EXPECT().ListActiveFires(gomock.Any()).Return([]*models.FireRecord{
		{UniqueFireID: "F1", IncidentName: "Pine Creek", Latitude: 47, Longitude: -120, DailyAcres: &acres, LastUpdate: 1785585600000},
	}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/fires/active", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []FireResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "F1", resp[0].UniqueFireID)
	assert.Equal(t, time.UnixMilli(1785585600000).UTC(), resp[0].LastUpdate)
}

func TestPollFires(t *testing.T) {
	_, ingest, router := newTestHandler(t)
	ingest.EXPECT().Poll(gomock.Any()).Return(7, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/fires/poll", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"stored":7}`, w.Body.String())
}

func TestPollFires_Error(t *testing.T) {
	_, ingest, router := newTestHandler(t)
	ingest.EXPECT().Poll(gomock.Any()).Return(0, errors.New("feed down"))

	w := makeRequest(router, http.MethodPost, "/api/v1/fires/poll", nil, authHeader)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestRunNotifications(t *testing.T) {
	notifications, _, router := newTestHandler(t)
	subID := uuid.New()
	notifications.EXPECT().RunNotificationBatch(gomock.Any()).Return(&models.BatchResult{
		RunID:       uuid.New(),
		Subscribers: 2,
		ActiveFires: 3,
		Matched:     2,
		Sent:        1,
		Failed:      1,
		Deliveries: []models.DeliveryResult{
			{SubscriberID: subID, Channel: models.ContactSMS, Status: models.DeliveryFailed, FireID: "F1", Error: "twilio down"},
			{SubscriberID: uuid.New(), Channel: models.ContactWebhook, Status: models.DeliverySent, FireID: "F1"},
		},
	}, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/notifications/run", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp BatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Sent)
	assert.Equal(t, 1, resp.Failed)
	require.Len(t, resp.Deliveries, 2)
	assert.Equal(t, subID, resp.Deliveries[0].SubscriberID)
	assert.Equal(t, "failed", resp.Deliveries[0].Status)
	assert.Equal(t, "twilio down", resp.Deliveries[0].Error)
}

func TestRunNotifications_LoadFailure(t *testing.T) {
	notifications, _, router := newTestHandler(t)
	notifications.EXPECT().RunNotificationBatch(gomock.Any()).
		Return(nil, fmt.Errorf("service: %w: timeout", service.ErrLoadSubscribers))

	w := makeRequest(router, http.MethodPost, "/api/v1/notifications/run", nil, authHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "notification batch failed")
}
