package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/wildfire_notifier/internal/config"
	"github.com/shenikar/wildfire_notifier/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	notificationService service.NotificationService
	ingestService       service.IngestService
	logger              *logrus.Logger
	validate            *validator.Validate
	cfg                 *config.Config
}

func NewHandler(notificationService service.NotificationService, ingestService service.IngestService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		notificationService: notificationService,
		ingestService:       ingestService,
		logger:              logger,
		validate:            validator.New(),
		cfg:                 cfg,
	}
}

// @Summary Register a subscriber
// @Description Register a watched location with exactly one contact method. Requires API key.
// @Tags Subscribers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param subscriber body CreateSubscriberRequest true "Subscriber creation request"
// @Success 201 {object} SubscriberResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /subscribers [post]
func (h *Handler) createSubscriber(c *gin.Context) {
	var input CreateSubscriberRequest
	log := h.logger.WithField("method", "createSubscriber")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.contactCount() != 1 {
		log.Warn("Subscriber must have exactly one contact method")
		c.JSON(http.StatusBadRequest, gin.H{"error": "exactly one contact method is required"})
		return
	}

	model := DTOToSubscriberModel(input)
	if err := h.notificationService.CreateSubscriber(c.Request.Context(), model); err != nil {
		if errors.Is(err, service.ErrInvalidSubscriber) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.WithError(err).Error("Failed to create subscriber in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToSubscriberResponse(model))
}

// @Summary List subscribers
// @Description Get all registered subscribers. Requires API key.
// @Tags Subscribers
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} SubscriberResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /subscribers [get]
func (h *Handler) listSubscribers(c *gin.Context) {
	log := h.logger.WithField("method", "listSubscribers")

	subs, err := h.notificationService.ListSubscribers(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list subscribers from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToSubscriberResponses(subs))
}

// @Summary Get subscriber by ID
// @Tags Subscribers
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Subscriber ID"
// @Success 200 {object} SubscriberResponse
// @Failure 400 {object} map[string]string "Invalid subscriber ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Subscriber not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /subscribers/{id} [get]
func (h *Handler) getSubscriber(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subscriber ID"})
		return
	}
	log := h.logger.WithField("method", "getSubscriber").WithField("id", id)

	sub, err := h.notificationService.GetSubscriber(c.Request.Context(), id)
	if err != nil {
		h.writeLookupError(c, log, err, "Failed to get subscriber from service")
		return
	}
	c.JSON(http.StatusOK, ModelToSubscriberResponse(sub))
}

// @Summary Delete a subscriber
// @Tags Subscribers
// @Security ApiKeyAuth
// @Param id path string true "Subscriber ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid subscriber ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Subscriber not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /subscribers/{id} [delete]
func (h *Handler) deleteSubscriber(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subscriber ID"})
		return
	}
	log := h.logger.WithField("method", "deleteSubscriber").WithField("id", id)

	if err := h.notificationService.DeleteSubscriber(c.Request.Context(), id); err != nil {
		h.writeLookupError(c, log, err, "Failed to delete subscriber in service")
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List active fires
// @Description Fires without an out time, as stored by the last poll. Requires API key.
// @Tags Fires
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} FireResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /fires/active [get]
func (h *Handler) listActiveFires(c *gin.Context) {
	log := h.logger.WithField("method", "listActiveFires")

	fires, err := h.ingestService.ListActiveFires(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list active fires from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToFireResponses(fires))
}

// @Summary Poll the fire feed
// @Description Fetch fires from the feed and store them. Requires API key.
// @Tags Fires
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} PollResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Feed or store failure"
// @Router /fires/poll [post]
func (h *Handler) pollFires(c *gin.Context) {
	log := h.logger.WithField("method", "pollFires")

	stored, err := h.ingestService.Poll(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to poll fire feed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to poll fire feed"})
		return
	}

	c.JSON(http.StatusOK, PollResponse{Stored: stored})
}

// @Summary Run a notification batch
// @Description Match every subscriber to the nearest active fire and notify them. Requires API key.
// @Tags Notifications
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} BatchResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Subscribers or fires could not be loaded"
// @Router /notifications/run [post]
func (h *Handler) runNotifications(c *gin.Context) {
	log := h.logger.WithField("method", "runNotifications")

	result, err := h.notificationService.RunNotificationBatch(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Notification batch failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "notification batch failed"})
		return
	}

	c.JSON(http.StatusOK, ModelToBatchResponse(result))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) writeLookupError(c *gin.Context, log *logrus.Entry, err error, msg string) {
	if errors.Is(err, service.ErrNotFound) {
		log.WithError(err).Warn(msg)
		c.JSON(http.StatusNotFound, gin.H{"error": "subscriber not found"})
		return
	}
	log.WithError(err).Error(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
