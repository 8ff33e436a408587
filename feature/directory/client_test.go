package directory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"charge-finder/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const searchFixture = `{"places": [{
	"id": "ChIJ123",
	"displayName": {"text": "Ionity Alexanderplatz", "languageCode": "en"},
	"location": {"latitude": 52.5219, "longitude": 13.4133},
	"rating": 4.4,
	"userRatingCount": 87,
	"types": ["electric_vehicle_charging_station", "parking", "point_of_interest"],
	"currentOpeningHours": {"openNow": true, "weekdayDescriptions": ["Monday: Open 24 hours"]},
	"photos": [{"name": "places/ChIJ123/photos/AAA"}, {"name": "places/ChIJ123/photos/BBB"}],
	"evChargeOptions": {"connectorCount": 6, "connectorAggregation": [
		{"type": "EV_CONNECTOR_TYPE_CCS_COMBO_2", "maxChargeRateKw": 350, "count": 4, "availableCount": 3, "outOfServiceCount": 0, "availabilityLastUpdateTime": "2024-05-01T10:00:00Z"},
		{"type": "EV_CONNECTOR_TYPE_TYPE_2", "maxChargeRateKw": 22, "count": 2, "availabilityLastUpdateTime": "not-a-time"}
	]}
}]}`

func newTestServer(t *testing.T, mux *http.ServeMux) Config {
	t.Helper()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return Config{
		BaseURL:        server.URL,
		LegacyBaseURL:  server.URL + "/legacy",
		StreetViewURL:  server.URL + "/streetview",
		ApiKey:         "dir-key",
		TimeoutSeconds: 2,
		PageSize:       20,
		Language:       "en",
		TextQuery:      "EV charging station",
	}
}

func TestFetchNearby(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/places:searchText", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "dir-key", r.Header.Get("X-Goog-Api-Key"))
		assert.Contains(t, r.Header.Get("X-Goog-FieldMask"), "places.evChargeOptions")

		var body searchTextRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "EV charging station", body.TextQuery)
		assert.Equal(t, 10, body.PageSize)
		assert.Equal(t, "DISTANCE", body.RankPreference)
		assert.Equal(t, 52.52, body.LocationBias.Circle.Center.Latitude)
		assert.Equal(t, 5000.0, body.LocationBias.Circle.Radius)

		_, _ = w.Write([]byte(searchFixture))
	})
	client := NewClient(newTestServer(t, mux), zap.NewNop())

	recs, err := client.FetchNearby(context.Background(), 52.52, 13.405, 5000, 10)

	require.NoError(t, err)
	require.Len(t, recs, 1)
	rec := recs[0]
	assert.Equal(t, "ChIJ123", rec.NativeID)
	assert.Equal(t, "Ionity Alexanderplatz", rec.Name)
	assert.Equal(t, 52.5219, rec.Coordinates.Latitude)
	assert.Equal(t, &reconcile.RatingSource{Value: 4.4, ReviewCount: 87}, rec.Rating)
	assert.Equal(t, []string{"Monday: Open 24 hours"}, rec.OpeningHours)
	assert.Equal(t, []string{"places/ChIJ123/photos/AAA", "places/ChIJ123/photos/BBB"}, rec.PhotoRefs)
	assert.Equal(t, 2, rec.PhotoCount)
	require.Len(t, rec.EVConnectors, 2)
	assert.Equal(t, 350.0, *rec.EVConnectors[0].MaxChargeRateKW)
	assert.Equal(t, 3, *rec.EVConnectors[0].AvailableCount)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), *rec.EVConnectors[0].AvailabilityUpdatedAt)
	assert.Nil(t, rec.EVConnectors[1].AvailabilityUpdatedAt)
}

func TestFetchNearby_SkipsMalformedPlace(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/places:searchText", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"places": [
			{"id": "good", "displayName": {"text": "Good"}, "location": {"latitude": 52.5, "longitude": 13.4}},
			{"id": "bad", "evChargeOptions": {"connectorAggregation": [{"type": "EV_CONNECTOR_TYPE_TYPE_2", "count": "2"}]}}
		]}`))
	})
	core, logs := observer.New(zapcore.WarnLevel)
	client := NewClient(newTestServer(t, mux), zap.New(core))

	recs, err := client.FetchNearby(context.Background(), 52.5, 13.4, 1000, 10)

	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "good", recs[0].NativeID)
	assert.Equal(t, 1, logs.FilterMessage("Skipping malformed directory place").Len())
}

func TestFetchNearby_PageSizeCapped(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/places:searchText", func(w http.ResponseWriter, r *http.Request) {
		var body searchTextRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 20, body.PageSize)
		_, _ = w.Write([]byte(`{}`))
	})
	client := NewClient(newTestServer(t, mux), zap.NewNop())

	recs, err := client.FetchNearby(context.Background(), 1, 1, 1000, 100)

	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestFetchNearby_Failure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/places:searchText", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	client := NewClient(newTestServer(t, mux), zap.NewNop())

	_, err := client.FetchNearby(context.Background(), 1, 1, 1000, 5)

	assert.ErrorIs(t, err, reconcile.ErrProviderUnavailable)
}

func TestFetchNearbyBusinesses(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/legacy/nearbysearch/json", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "48.1,11.5", q.Get("location"))
		assert.Equal(t, "50", q.Get("radius"))
		assert.Equal(t, "dir-key", q.Get("key"))
		assert.Empty(t, q.Get("keyword"))
		_, _ = w.Write([]byte(`{"status": "OK", "results": [
			{"place_id": "shop-1", "name": "Bakery", "geometry": {"location": {"lat": 48.1001, "lng": 11.5}}, "types": ["bakery"], "photos": [{"photo_reference": "ref-1"}]}
		]}`))
	})
	client := NewClient(newTestServer(t, mux), zap.NewNop())

	recs, err := client.FetchNearbyBusinesses(context.Background(), 48.1, 11.5, 50)

	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "shop-1", recs[0].NativeID)
	assert.Equal(t, 48.1001, recs[0].Coordinates.Latitude)
	assert.Equal(t, []string{"ref-1"}, recs[0].PhotoRefs)
}

func TestLegacyStatus(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
		wantNil bool
	}{
		{"ok", `{"status": "OK", "result": {"place_id": "p", "photos": [{"photo_reference": "r"}]}}`, false, false},
		{"zero results", `{"status": "ZERO_RESULTS"}`, false, true},
		{"denied", `{"status": "REQUEST_DENIED", "error_message": "bad key"}`, true, true},
		{"over limit", `{"status": "OVER_QUERY_LIMIT"}`, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/legacy/details/json", func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "p", r.URL.Query().Get("place_id"))
				assert.Contains(t, r.URL.Query().Get("fields"), "photos")
				_, _ = w.Write([]byte(tt.body))
			})
			client := NewClient(newTestServer(t, mux), zap.NewNop())

			rec, err := client.FetchDetails(context.Background(), "p")

			if tt.wantErr {
				assert.ErrorIs(t, err, reconcile.ErrProviderUnavailable)
			} else {
				assert.NoError(t, err)
			}
			if tt.wantNil {
				assert.Nil(t, rec)
			} else {
				require.NotNil(t, rec)
				assert.Equal(t, []string{"r"}, rec.PhotoRefs)
			}
		})
	}
}

func TestPhotoURL(t *testing.T) {
	cfg := Config{
		BaseURL:       "https://places.example/v1",
		LegacyBaseURL: "https://maps.example/place",
		StreetViewURL: "https://maps.example/streetview",
		ApiKey:        "k",
		PhotoMaxWidth: 400,
	}

	tests := []struct {
		ref  string
		want string
	}{
		{"places/abc/photos/xyz", "https://places.example/v1/places/abc/photos/xyz/media?key=k&maxWidthPx=400"},
		{"legacy-ref", "https://maps.example/place/photo?key=k&maxwidth=400&photo_reference=legacy-ref"},
		{"streetview:48.1000000,11.5000000", "https://maps.example/streetview?key=k&location=48.1000000%2C11.5000000&size=600x400"},
		{"  ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			assert.Equal(t, tt.want, cfg.PhotoURL(tt.ref))
		})
	}

	assert.Len(t, cfg.PhotoURLs([]string{"a", "", "places/b/photos/c"}), 2)
}

func TestConfigEnabled(t *testing.T) {
	assert.False(t, Config{}.Enabled())
	assert.True(t, Config{ApiKey: "x"}.Enabled())
}
