package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"charge-finder/core/reconcile"
	"charge-finder/core/transport"

	"go.uber.org/zap"
)

// Name identifies the directory in logs, errors and response metadata.
const Name = "google_places"

const fieldMask = "places.id,places.displayName,places.formattedAddress," +
	"places.location,places.rating,places.userRatingCount,places.types,places.primaryType," +
	"places.businessStatus,places.evChargeOptions,places.currentOpeningHours," +
	"places.photos,places.internationalPhoneNumber,places.websiteUri"

const detailsFields = "place_id,name,rating,user_ratings_total,opening_hours,photos,geometry"

const (
	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

// Client is the directory provider.
type Client struct {
	cfg    Config
	v1     *transport.Client
	legacy *transport.Client
	logger *zap.Logger
}

var (
	_ reconcile.Provider        = (*Client)(nil)
	_ reconcile.BusinessLocator = (*Client)(nil)
)

// NewClient creates a directory client from configuration.
func NewClient(cfg Config, logger *zap.Logger, opts ...transport.Option) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	v1Opts := append([]transport.Option{
		transport.WithAuth(transport.HeaderAuth{Header: "X-Goog-Api-Key"}, cfg.ApiKey),
		transport.WithLogger(logger),
	}, opts...)
	legacyOpts := append([]transport.Option{
		transport.WithAuth(transport.QueryAuth{Param: "key"}, cfg.ApiKey),
		transport.WithLogger(logger),
		transport.WithCoalescing(),
	}, opts...)
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	cfg.LegacyBaseURL = strings.TrimRight(cfg.LegacyBaseURL, "/")
	return &Client{
		cfg:    cfg,
		v1:     transport.New(Name, timeout, v1Opts...),
		legacy: transport.New(Name, timeout, legacyOpts...),
		logger: logger,
	}
}

// Name implements reconcile.Provider.
func (c *Client) Name() string { return Name }

// FetchNearby implements reconcile.Provider using the v1 text search,
// ranked by distance and biased to a circle around the point.
func (c *Client) FetchNearby(ctx context.Context, lat, lon float64, radiusMeters, maxResults int) ([]reconcile.RawRecord, error) {
	pageSize := c.cfg.PageSize
	if maxResults > 0 && (pageSize <= 0 || maxResults < pageSize) {
		pageSize = maxResults
	}
	body := searchTextRequest{
		TextQuery:    c.cfg.TextQuery,
		PageSize:     pageSize,
		LanguageCode: c.cfg.Language,
		LocationBias: locationBias{Circle: circle{
			Center: latLng{Latitude: lat, Longitude: lon},
			Radius: float64(radiusMeters),
		}},
		RankPreference: "DISTANCE",
	}

	var resp SearchTextResponse
	headers := map[string]string{"X-Goog-FieldMask": fieldMask}
	if err := c.v1.PostJSON(ctx, "search", c.cfg.BaseURL+"/places:searchText", body, headers, &resp); err != nil {
		return nil, err
	}

	recs := make([]reconcile.RawRecord, 0, len(resp.Places))
	for i, raw := range resp.Places {
		var p Place
		if err := json.Unmarshal(raw, &p); err != nil {
			c.logger.Warn("Skipping malformed directory place",
				zap.Int("index", i),
				zap.Error(err))
			continue
		}
		recs = append(recs, c.placeToRecord(p))
	}
	return recs, nil
}

// FetchNearbyBusinesses implements reconcile.BusinessLocator with the legacy
// nearby search. No keyword is sent so any business qualifies.
func (c *Client) FetchNearbyBusinesses(ctx context.Context, lat, lon float64, radiusMeters int) ([]reconcile.RawRecord, error) {
	query := url.Values{}
	query.Set("location", fmt.Sprintf("%s,%s", formatCoord(lat), formatCoord(lon)))
	query.Set("radius", strconv.Itoa(radiusMeters))

	var resp legacyNearbyResponse
	if err := c.legacy.GetJSON(ctx, "nearby businesses", c.cfg.LegacyBaseURL+"/nearbysearch/json", query, nil, &resp); err != nil {
		return nil, err
	}
	if err := c.checkStatus("nearby businesses", resp.Status, resp.ErrorMessage); err != nil {
		return nil, err
	}

	recs := make([]reconcile.RawRecord, 0, len(resp.Results))
	for _, p := range resp.Results {
		recs = append(recs, legacyToRecord(p))
	}
	return recs, nil
}

// FetchDetails implements reconcile.BusinessLocator with the legacy details
// endpoint. ZERO_RESULTS yields a nil record.
func (c *Client) FetchDetails(ctx context.Context, id string) (*reconcile.RawRecord, error) {
	query := url.Values{}
	query.Set("place_id", id)
	query.Set("fields", detailsFields)

	var resp legacyDetailsResponse
	if err := c.legacy.GetJSON(ctx, "details", c.cfg.LegacyBaseURL+"/details/json", query, nil, &resp); err != nil {
		return nil, err
	}
	if err := c.checkStatus("details", resp.Status, resp.ErrorMessage); err != nil {
		return nil, err
	}
	if resp.Result == nil {
		return nil, nil
	}
	rec := legacyToRecord(*resp.Result)
	return &rec, nil
}

func (c *Client) checkStatus(operation, status, message string) error {
	switch status {
	case statusOK, statusZeroResults:
		return nil
	}
	if message != "" {
		return c.legacy.Fail(operation, fmt.Errorf("status %s: %s", status, message))
	}
	return c.legacy.Fail(operation, fmt.Errorf("status %s", status))
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
