package registry

import (
	"context"
	"encoding/json"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"charge-finder/core/reconcile"
	"charge-finder/core/transport"

	"go.uber.org/zap"
)

// Name identifies the registry in logs, errors and response metadata.
const Name = "open_charge_map"

// Client is the registry provider.
type Client struct {
	baseURL  string
	idPrefix string
	http     *transport.Client
	logger   *zap.Logger
}

var _ reconcile.Registry = (*Client)(nil)

// NewClient creates a registry client from configuration.
func NewClient(cfg Config, logger *zap.Logger, opts ...transport.Option) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	prefix := cfg.IDPrefix
	if prefix == "" {
		prefix = "ocm"
	}
	opts = append([]transport.Option{
		transport.WithAuth(transport.QueryAuth{Param: "key"}, cfg.ApiKey),
		transport.WithLogger(logger),
		transport.WithCoalescing(),
	}, opts...)
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		idPrefix: prefix,
		http:     transport.New(Name, time.Duration(cfg.TimeoutSeconds)*time.Second, opts...),
		logger:   logger,
	}
}

// Name implements reconcile.Provider.
func (c *Client) Name() string { return Name }

// IDPrefix implements reconcile.Registry.
func (c *Client) IDPrefix() string { return c.idPrefix }

// FetchNearby implements reconcile.Provider. The radius is sent in whole
// kilometres, rounded up, with a minimum of one.
func (c *Client) FetchNearby(ctx context.Context, lat, lon float64, radiusMeters, maxResults int) ([]reconcile.RawRecord, error) {
	query := baseQuery()
	query.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	query.Set("distance", strconv.Itoa(radiusKM(radiusMeters)))
	query.Set("distanceunit", "KM")
	if maxResults > 0 {
		query.Set("maxresults", strconv.Itoa(maxResults))
	}

	var raw []json.RawMessage
	if err := c.http.GetJSON(ctx, "nearby", c.baseURL+"/poi/", query, nil, &raw); err != nil {
		return nil, err
	}
	return c.decodePOIs(raw), nil
}

// FetchByID implements reconcile.Registry. An empty result is not an error.
func (c *Client) FetchByID(ctx context.Context, nativeID string) (*reconcile.RawRecord, error) {
	query := baseQuery()
	query.Set("chargepointid", nativeID)

	var raw []json.RawMessage
	if err := c.http.GetJSON(ctx, "get", c.baseURL+"/poi/", query, nil, &raw); err != nil {
		return nil, err
	}
	recs := c.decodePOIs(raw)
	if len(recs) == 0 {
		return nil, nil
	}
	return &recs[0], nil
}

// decodePOIs decodes each POI on its own. A POI with a malformed field is
// kept as a bare record when its ID is readable, so the station still
// appears under a placeholder name. POIs without a usable ID are skipped.
func (c *Client) decodePOIs(raw []json.RawMessage) []reconcile.RawRecord {
	recs := make([]reconcile.RawRecord, 0, len(raw))
	for i, msg := range raw {
		var p POI
		err := json.Unmarshal(msg, &p)
		if err == nil {
			recs = append(recs, toRawRecord(p))
			continue
		}
		var bare struct {
			ID   json.Number `json:"ID"`
			UUID string      `json:"UUID"`
		}
		if json.Unmarshal(msg, &bare) != nil || bare.ID == "" {
			c.logger.Warn("Skipping undecodable registry record",
				zap.Int("index", i),
				zap.Error(err))
			continue
		}
		c.logger.Warn("Malformed registry record, keeping identity only",
			zap.String("id", bare.ID.String()),
			zap.Error(err))
		recs = append(recs, reconcile.RawRecord{NativeID: bare.ID.String(), UUID: bare.UUID})
	}
	return recs
}

func baseQuery() url.Values {
	q := url.Values{}
	q.Set("compact", "false")
	q.Set("verbose", "false")
	return q
}

func radiusKM(meters int) int {
	km := int(math.Ceil(float64(meters) / 1000))
	if km < 1 {
		return 1
	}
	return km
}
