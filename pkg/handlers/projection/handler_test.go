package projection

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/de-tools/growth-atlas/pkg/models/api"
	"github.com/de-tools/growth-atlas/pkg/services/config"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockScenarioRegistry struct {
	mock.Mock
}

func (m *mockScenarioRegistry) GetScenarios(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockScenarioRegistry) GetScenario(ctx context.Context, name string) (config.Input, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(config.Input), args.Error(1)
}

func setupRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/defaults", h.GetDefaults)
	r.Get("/projection", h.GetProjection)
	r.Get("/scenarios", h.ListScenarios)
	r.Get("/scenarios/{scenario}/projection", h.GetScenarioProjection)
	return r
}

func serve(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestGetDefaults(t *testing.T) {
	rec := serve(t, setupRouter(NewHandler(nil)), "/defaults")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, api.ProjectionInput{
		Capital:      16000,
		Interest:     1.07,
		Contribution: 5000,
		Years:        38,
	}, decode[api.ProjectionInput](t, rec))
}

func TestGetProjection(t *testing.T) {
	router := setupRouter(NewHandler(nil))

	t.Run("query parameters", func(t *testing.T) {
		rec := serve(t, router, "/projection?capital=0&interest=1.1&contribution=1000&years=3&start_year=2026")

		require.Equal(t, http.StatusOK, rec.Code)
		out := decode[api.Projection](t, rec)
		require.Len(t, out.Years, 3)
		assert.Equal(t, 2026, out.Years[0].Year)
		assert.InDelta(t, 1000.0, out.Years[0].Total, 1e-6)
		assert.InDelta(t, 2100.0, out.Years[1].Total, 1e-6)
		assert.InDelta(t, 3310.0, out.Years[2].Total, 1e-6)
		assert.InDelta(t, 3310.0, out.Cumulative.FinalTotal, 1e-6)
		assert.NotEmpty(t, out.RunID)
	})

	t.Run("defaults", func(t *testing.T) {
		rec := serve(t, router, "/projection")

		require.Equal(t, http.StatusOK, rec.Code)
		out := decode[api.Projection](t, rec)
		require.Len(t, out.Years, 38)
		assert.InDelta(t, 22120.0, out.Years[0].Total, 1e-6)
		assert.InDelta(t, 1120.0, out.Years[0].InterestEarned, 1e-6)
	})

	t.Run("each request is an independent run", func(t *testing.T) {
		first := decode[api.Projection](t, serve(t, router, "/projection?years=5"))
		second := decode[api.Projection](t, serve(t, router, "/projection?years=5"))

		assert.NotEqual(t, first.RunID, second.RunID)
		assert.Equal(t, first.Years, second.Years)
		assert.Equal(t, first.Cumulative, second.Cumulative)
	})
}

func TestGetProjection_Errors(t *testing.T) {
	router := setupRouter(NewHandler(nil))

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"malformed capital", "/projection?capital=abc", http.StatusBadRequest},
		{"malformed start year", "/projection?start_year=soon", http.StatusBadRequest},
		{"negative capital", "/projection?capital=-1", http.StatusBadRequest},
		{"interest too high", "/projection?interest=1.6", http.StatusBadRequest},
		{"negative years", "/projection?years=-2", http.StatusBadRequest},
		{"too many years", "/projection?years=1001", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, router, tt.path)

			assert.Equal(t, tt.status, rec.Code)
			assert.NotEmpty(t, decode[api.ErrorResponse](t, rec).Error)
		})
	}
}

func TestListScenarios(t *testing.T) {
	registry := new(mockScenarioRegistry)
	registry.On("GetScenarios", mock.Anything).Return([]string{"college", "retirement"}, nil)

	rec := serve(t, setupRouter(NewHandler(registry)), "/scenarios")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, api.ScenarioList{Scenarios: []string{"college", "retirement"}}, decode[api.ScenarioList](t, rec))
	registry.AssertExpectations(t)
}

func TestListScenarios_NotConfigured(t *testing.T) {
	rec := serve(t, setupRouter(NewHandler(nil)), "/scenarios")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, api.ScenarioList{Scenarios: []string{}}, decode[api.ScenarioList](t, rec))
}

func TestGetScenarioProjection(t *testing.T) {
	registry := new(mockScenarioRegistry)
	registry.On("GetScenario", mock.Anything, "college").
		Return(config.Input{Capital: 0, Interest: 1.1, Contribution: 1000, Years: 3}, nil)
	registry.On("GetScenario", mock.Anything, "moonshot").
		Return(config.Input{}, config.ErrScenarioNotFound)
	registry.On("GetScenario", mock.Anything, "broken").
		Return(config.Input{}, errors.Join(config.ErrMalformedInput, errors.New("bad capital")))
	router := setupRouter(NewHandler(registry))

	rec := serve(t, router, "/scenarios/college/projection")
	require.Equal(t, http.StatusOK, rec.Code)
	out := decode[api.Projection](t, rec)
	assert.InDelta(t, 3310.0, out.Cumulative.FinalTotal, 1e-6)

	rec = serve(t, router, "/scenarios/moonshot/projection")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(t, router, "/scenarios/broken/projection")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	registry.AssertExpectations(t)
}

func TestGetScenarioProjection_NotConfigured(t *testing.T) {
	rec := serve(t, setupRouter(NewHandler(nil)), "/scenarios/college/projection")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
