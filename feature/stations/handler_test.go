package stations

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"charge-finder/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp() (*fiber.App, *mockEngine) {
	app := fiber.New()
	engine := new(mockEngine)
	svc := NewService(engine, prefixPhotos{}, zap.NewNop())
	_ = NewFeature(svc).Load(app)
	return app, engine
}

func decodeBody(t *testing.T, r io.Reader) map[string]any {
	var body map[string]any
	require.NoError(t, json.NewDecoder(r).Decode(&body))
	return body
}

func TestHandleNearby(t *testing.T) {
	app, engine := setupTestApp()
	engine.On("Nearby", mock.Anything, reconcile.NearbyQuery{
		Latitude: 52.5, Longitude: 13.4, RadiusMeters: 1000, Limit: 5, SortByRating: true,
	}).Return([]reconcile.Station{{SourceID: "ocm_1", Name: "Hub"}}, nil)

	req := httptest.NewRequest("GET", "/stations/nearby?latitude=52.5&longitude=13.4&radius=1000&limit=5&sort=rating", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decodeBody(t, resp.Body)
	data := body["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "ocm_1", data[0].(map[string]any)["sourceId"])
	meta := body["meta"].(map[string]any)
	assert.Equal(t, float64(1), meta["total"])
	assert.Equal(t, float64(1000), meta["radius"])
	assert.Equal(t, "open_charge_map", meta["sources"].(map[string]any)["primary"])
}

func TestHandleNearby_InvalidQuery(t *testing.T) {
	app, engine := setupTestApp()

	req := httptest.NewRequest("GET", "/stations/nearby?latitude=95&longitude=13.4", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, 400, resp.StatusCode)
	assert.Contains(t, decodeBody(t, resp.Body)["error"], "latitude")
	engine.AssertNotCalled(t, "Nearby", mock.Anything, mock.Anything)
}

func TestHandleNearby_RegistryDown(t *testing.T) {
	app, engine := setupTestApp()
	engine.On("Nearby", mock.Anything, mock.Anything).Return(nil,
		fmt.Errorf("fetch open_charge_map stations: %w", &reconcile.ProviderError{Provider: "open_charge_map", Operation: "nearby", StatusCode: 500}))

	req := httptest.NewRequest("GET", "/stations/nearby?latitude=52.5&longitude=13.4", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, 502, resp.StatusCode)
	assert.Equal(t, "station provider unavailable", decodeBody(t, resp.Body)["error"])
}

func TestHandleStation(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		station    *reconcile.Station
		err        error
		wantStatus int
	}{
		{"Found", "ocm_42", &reconcile.Station{SourceID: "ocm_42", PhotoRefs: []string{"places/p"}}, nil, 200},
		{"BadID", "abc", nil, &reconcile.InvalidIDError{ID: "abc", Reason: "missing prefix"}, 400},
		{"NotFound", "ocm_9", nil, &reconcile.NotFoundError{ID: "ocm_9"}, 404},
		{"Unexpected", "ocm_1", nil, errors.New("boom"), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, engine := setupTestApp()
			engine.On("Station", mock.Anything, tt.id).Return(tt.station, tt.err)

			resp, err := app.Test(httptest.NewRequest("GET", "/stations/"+tt.id, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			body := decodeBody(t, resp.Body)
			if tt.wantStatus == 200 {
				data := body["data"].(map[string]any)
				assert.Equal(t, tt.id, data["sourceId"])
				assert.Equal(t, []any{"https://img.test/p"}, data["photos"])
			} else {
				assert.NotEmpty(t, body["error"])
			}
		})
	}
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, 400, StatusFor(fmt.Errorf("wrap: %w", reconcile.ErrInvalidQuery)))
	assert.Equal(t, 404, StatusFor(&reconcile.NotFoundError{ID: "x"}))
	assert.Equal(t, 502, StatusFor(&reconcile.ProviderError{}))
	assert.Equal(t, 500, StatusFor(errors.New("x")))
}
