package projection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/de-tools/growth-atlas/pkg/adapters"
	"github.com/de-tools/growth-atlas/pkg/models/api"
	"github.com/de-tools/growth-atlas/pkg/services/config"
	"github.com/de-tools/growth-atlas/pkg/services/growth"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// MaxYears bounds the ledger size a single request may allocate.
const MaxYears = 1000

var inputFields = []string{"capital", "interest", "contribution", "years"}

type Handler struct {
	scenarios config.ScenarioRegistry
}

// NewHandler creates a handler. scenarios may be nil when no scenarios file
// is configured.
func NewHandler(scenarios config.ScenarioRegistry) *Handler {
	return &Handler{scenarios: scenarios}
}

func (h *Handler) GetDefaults(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, adapters.MapConfigInputToAPI(config.DefaultInput()))
}

func (h *Handler) GetProjection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	fields := make(map[string]string, len(inputFields))
	for _, field := range inputFields {
		if query.Has(field) {
			fields[field] = query.Get(field)
		}
	}

	in, err := config.ParseFields(fields)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	h.project(ctx, w, r, in)
}

func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.scenarios == nil {
		writeJSON(ctx, w, http.StatusOK, api.ScenarioList{Scenarios: []string{}})
		return
	}

	scenarios, err := h.scenarios.GetScenarios(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if scenarios == nil {
		scenarios = []string{}
	}
	writeJSON(ctx, w, http.StatusOK, api.ScenarioList{Scenarios: scenarios})
}

func (h *Handler) GetScenarioProjection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "scenario")

	if h.scenarios == nil {
		writeError(ctx, w, fmt.Errorf("%w: %s", config.ErrScenarioNotFound, name))
		return
	}

	in, err := h.scenarios.GetScenario(ctx, name)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	h.project(ctx, w, r, in)
}

func (h *Handler) project(ctx context.Context, w http.ResponseWriter, r *http.Request, in config.Input) {
	startYear := growth.DefaultStartYear
	if v := r.URL.Query().Get("start_year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: bad input for start_year %q", config.ErrMalformedInput, v))
			return
		}
		startYear = year
	}

	if err := in.Validate(); err != nil {
		writeError(ctx, w, err)
		return
	}
	if in.Years > MaxYears {
		writeError(ctx, w, fmt.Errorf("%w: years must not exceed %d, got %d",
			growth.ErrInvalidParameter, MaxYears, in.Years))
		return
	}

	params, err := in.Parameters()
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	projector, err := growth.NewProjector(params,
		growth.WithStartYear(startYear),
		growth.WithLogger(*zerolog.Ctx(ctx)),
	)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if _, err := projector.Project(in.Years); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, adapters.MapDomainReportToAPIProjection(projector.Report()))
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, config.ErrScenarioNotFound):
		status = http.StatusNotFound
	case errors.Is(err, config.ErrMalformedInput), errors.Is(err, growth.ErrInvalidParameter):
		status = http.StatusBadRequest
	default:
		zerolog.Ctx(ctx).Error().Err(err).Msg("projection request failed")
	}
	writeJSON(ctx, w, status, api.ErrorResponse{Error: err.Error()})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(ctx).Error().
			Err(err).
			Msg("failed to encode response")
	}
}
