package service

//go:generate mockgen -source=ingest.go -destination=mocks/mock_ingest.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/mmcloughlin/geohash"
	"github.com/shenikar/wildfire_notifier/internal/geo"
	"github.com/shenikar/wildfire_notifier/internal/models"
	"github.com/shenikar/wildfire_notifier/internal/observability"
	"github.com/sirupsen/logrus"
)

const geohashPrecision = 7

// FireSource - внешний фид пожаров
type FireSource interface {
	FetchFires(ctx context.Context) ([]*models.FireRecord, error)
}

// FirePublisher рассылает обновления пожаров дальше по конвейеру
type FirePublisher interface {
	PublishFires(ctx context.Context, fires []*models.FireRecord) error
}

// IngestService определяет контракт загрузки пожаров из фида
type IngestService interface {
	Poll(ctx context.Context) (int, error)
	ListActiveFires(ctx context.Context) ([]*models.FireRecord, error)
}

type ingestService struct {
	source    FireSource
	repo      FireRepository
	publisher FirePublisher
	logger    *logrus.Logger
	metrics   *observability.Metrics
}

// NewIngestService создаёт сервис загрузки; publisher может быть nil
func NewIngestService(source FireSource, repo FireRepository, publisher FirePublisher, logger *logrus.Logger, metrics *observability.Metrics) IngestService {
	return &ingestService{
		source:    source,
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		metrics:   metrics,
	}
}

// Poll забирает пожары из фида и сохраняет их; возвращает число сохранённых записей
func (s *ingestService) Poll(ctx context.Context) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "ingest",
		"method":  "Poll",
	})
	log.Info("Polling fire feed")

	fetched, err := s.source.FetchFires(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to fetch fires from feed")
		s.metrics.IngestFailures.Inc()
		return 0, fmt.Errorf("service: could not fetch fires: %w", err)
	}

	fires := make([]*models.FireRecord, 0, len(fetched))
	for _, fire := range fetched {
		if fire == nil || fire.UniqueFireID == "" {
			log.Warn("Skipping fire without unique id")
			continue
		}
		if geo.ValidCoordinates(fire.Latitude, fire.Longitude) {
			fire.Geohash = geohash.EncodeWithPrecision(fire.Latitude, fire.Longitude, geohashPrecision)
		}
		fires = append(fires, fire)
	}

	if len(fires) == 0 {
		log.Info("Feed returned no fires")
		return 0, nil
	}

	if err := s.repo.UpsertFires(ctx, fires); err != nil {
		log.WithError(err).Error("Failed to store fires")
		s.metrics.IngestFailures.Inc()
		return 0, fmt.Errorf("service: could not store fires: %w", err)
	}
	s.metrics.FiresIngested.Add(float64(len(fires)))

	if s.publisher != nil {
		if err := s.publisher.PublishFires(ctx, fires); err != nil {
			log.WithError(err).Warn("Failed to publish fire updates")
		}
	}

	log.WithField("count", len(fires)).Info("Fires stored successfully")
	return len(fires), nil
}

// ListActiveFires возвращает пожары без outTime
func (s *ingestService) ListActiveFires(ctx context.Context) ([]*models.FireRecord, error) {
	fires, err := s.repo.ListActiveFires(ctx)
	if err != nil {
		s.logger.WithError(err).WithField("method", "ListActiveFires").Error("Failed to list active fires")
		return nil, fmt.Errorf("service: could not list active fires: %w", err)
	}
	return FilterActive(fires), nil
}
