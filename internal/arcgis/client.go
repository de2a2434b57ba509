package arcgis

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/wildfire_notifier/internal/models"
	"github.com/sirupsen/logrus"
)

// Client читает слой пожаров ArcGIS FeatureServer
type Client struct {
	queryURL   string
	state      string
	daysBack   int
	httpClient *http.Client
	clock      clockwork.Clock
	logger     *logrus.Logger
}

func NewClient(queryURL, state string, daysBack int, timeout time.Duration, clock clockwork.Clock, logger *logrus.Logger) *Client {
	return &Client{
		queryURL: queryURL,
		state:    state,
		daysBack: daysBack,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		clock:  clock,
		logger: logger,
	}
}

type queryResponse struct {
	Features []feature `json:"features"`
	Error    *apiError `json:"error,omitempty"`
}

type apiError struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details"`
}

type feature struct {
	Attributes attributes `json:"attributes"`
}

type attributes struct {
	InitialLatitude       *float64 `json:"InitialLatitude"`
	InitialLongitude      *float64 `json:"InitialLongitude"`
	FireDiscoveryDateTime *int64   `json:"FireDiscoveryDateTime"`
	ModifiedOnDateTime    *int64   `json:"ModifiedOnDateTime_dt"`
	ContainmentDateTime   *int64   `json:"ContainmentDateTime"`
	ControlDateTime       *int64   `json:"ControlDateTime"`
	FireOutDateTime       *int64   `json:"FireOutDateTime"`
	UniqueFireIdentifier  *string  `json:"UniqueFireIdentifier"`
	IncidentName          *string  `json:"IncidentName"`
	GlobalID              *string  `json:"GlobalID"`
	DiscoveryAcres        *float64 `json:"DiscoveryAcres"`
	DailyAcres            *float64 `json:"DailyAcres"`
	InitialResponseAcres  *float64 `json:"InitialResponseAcres"`
	FireCause             *string  `json:"FireCause"`
	FireCauseGeneral      *string  `json:"FireCauseGeneral"`
	FireCauseSpecific     *string  `json:"FireCauseSpecific"`
}

// FetchFires возвращает пожары штата, изменённые за последние daysBack дней
func (c *Client) FetchFires(ctx context.Context) ([]*models.FireRecord, error) {
	target, err := c.buildURL()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("arcgis: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("arcgis: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arcgis: unexpected status code %d", resp.StatusCode)
	}

	var body queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("arcgis: failed to decode response: %w", err)
	}
	// ArcGIS сообщает об ошибках запроса в теле ответа со статусом 200
	if body.Error != nil {
		return nil, fmt.Errorf("arcgis: query error %d: %s", body.Error.Code, body.Error.Message)
	}

	fires := make([]*models.FireRecord, 0, len(body.Features))
	for _, f := range body.Features {
		fires = append(fires, f.Attributes.toFire())
	}

	c.logger.WithFields(logrus.Fields{
		"state": c.state,
		"count": len(fires),
	}).Debug("Fetched fires from ArcGIS")
	return fires, nil
}

func (c *Client) buildURL() (string, error) {
	u, err := url.Parse(c.queryURL)
	if err != nil {
		return "", fmt.Errorf("arcgis: invalid query url: %w", err)
	}
	q := u.Query()
	q.Set("where", c.whereClause())
	q.Set("outFields", "*")
	q.Set("outSR", "4326")
	q.Set("f", "json")
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *Client) whereClause() string {
	since := c.clock.Now().AddDate(0, 0, -c.daysBack)
	return fmt.Sprintf("POOState = '%s' AND ModifiedOnDateTime_dt >= TIMESTAMP '%d-%d-%d 0:00:0'",
		c.state, int(since.Month()), since.Day(), since.Year())
}

func (a attributes) toFire() *models.FireRecord {
	fire := &models.FireRecord{
		UniqueFireID:         deref(a.UniqueFireIdentifier),
		IncidentName:         deref(a.IncidentName),
		GlobalUID:            deref(a.GlobalID),
		Latitude:             deref(a.InitialLatitude),
		Longitude:            deref(a.InitialLongitude),
		StartTime:            deref(a.FireDiscoveryDateTime),
		LastUpdate:           deref(a.ModifiedOnDateTime),
		ContainmentTime:      a.ContainmentDateTime,
		ControlTime:          a.ControlDateTime,
		OutTime:              a.FireOutDateTime,
		DiscoveryAcres:       a.DiscoveryAcres,
		DailyAcres:           a.DailyAcres,
		InitialResponseAcres: a.InitialResponseAcres,
		CauseType:            deref(a.FireCause),
		CauseDetail:          deref(a.FireCauseGeneral),
		CauseSubDetail:       deref(a.FireCauseSpecific),
	}
	return fire
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
