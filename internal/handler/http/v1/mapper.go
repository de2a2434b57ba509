package v1

import "github.com/shenikar/wildfire_notifier/internal/models"

// DTOToSubscriberModel преобразует DTO в доменную модель; канал выбирается здесь один раз
func DTOToSubscriberModel(dto CreateSubscriberRequest) *models.Subscriber {
	return &models.Subscriber{
		Latitude:  *dto.Latitude,
		Longitude: *dto.Longitude,
		Contact:   models.ResolveContact(dto.Phone, dto.Hook, dto.Token, dto.TelegramChatID),
	}
}

// ModelToSubscriberResponse преобразует доменную модель в DTO для ответа
func ModelToSubscriberResponse(model *models.Subscriber) *SubscriberResponse {
	return &SubscriberResponse{
		ID:             model.ID,
		Latitude:       model.Latitude,
		Longitude:      model.Longitude,
		Channel:        string(model.Contact.Kind),
		Phone:          model.Contact.Phone,
		Hook:           model.Contact.Hook,
		TelegramChatID: model.Contact.ChatID,
		LastNotifiedAt: model.LastNotifiedAt,
		CreatedAt:      model.CreatedAt,
	}
}

func ModelsToSubscriberResponses(subs []*models.Subscriber) []*SubscriberResponse {
	responses := make([]*SubscriberResponse, len(subs))
	for i, sub := range subs {
		responses[i] = ModelToSubscriberResponse(sub)
	}
	return responses
}

func ModelsToFireResponses(fires []*models.FireRecord) []*FireResponse {
	responses := make([]*FireResponse, len(fires))
	for i, f := range fires {
		responses[i] = &FireResponse{
			UniqueFireID: f.UniqueFireID,
			IncidentName: f.IncidentName,
			Latitude:     f.Latitude,
			Longitude:    f.Longitude,
			Geohash:      f.Geohash,
			DailyAcres:   f.DailyAcres,
			LastUpdate:   f.LastUpdated().UTC(),
		}
	}
	return responses
}

// ModelToBatchResponse преобразует итог рассылки в DTO
func ModelToBatchResponse(result *models.BatchResult) *BatchResponse {
	deliveries := make([]DeliveryResponse, len(result.Deliveries))
	for i, d := range result.Deliveries {
		deliveries[i] = DeliveryResponse{
			SubscriberID: d.SubscriberID,
			Channel:      string(d.Channel),
			Status:       string(d.Status),
			FireID:       d.FireID,
			DistanceKm:   d.DistanceKm,
			Error:        d.Error,
		}
	}
	return &BatchResponse{
		RunID:       result.RunID,
		StartedAt:   result.StartedAt,
		FinishedAt:  result.FinishedAt,
		Subscribers: result.Subscribers,
		ActiveFires: result.ActiveFires,
		Matched:     result.Matched,
		Sent:        result.Sent,
		Failed:      result.Failed,
		Skipped:     result.Skipped,
		Deliveries:  deliveries,
	}
}
