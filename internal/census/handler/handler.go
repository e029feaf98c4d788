package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"menagerie/internal/census/mapper"
	"menagerie/internal/census/models"
	"menagerie/pkg/platform/httputil"
	"menagerie/pkg/requestcontext"
)

// Service defines the census use cases served over HTTP.
type Service interface {
	SearchAnimals(ctx context.Context, countries []models.Country, pattern string) ([]models.Country, error)
	CountPeopleAndAnimals(ctx context.Context, countries []models.Country) ([]models.Country, error)
}

// CountrySource yields the raw dataset.
type CountrySource interface {
	ListCountries(ctx context.Context) ([]models.CountryRecord, error)
}

// Handler wires census endpoints to the census service.
type Handler struct {
	service Service
	source  CountrySource
	logger  *slog.Logger
}

// New constructs a census handler with its dependencies.
func New(service Service, source CountrySource, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		source:  source,
		logger:  logger,
	}
}

// Register mounts census endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/countries", h.HandleListCountries)
	r.Get("/countries/counts", h.HandleCountPeopleAndAnimals)
}

// HandleListCountries handles GET /countries. With a filter query parameter
// it runs the animal search; without one it returns the whole dataset.
func (h *Handler) HandleListCountries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	countries, err := h.loadCountries(ctx)
	if err != nil {
		h.fail(w, r, requestID, "failed to load countries", err)
		return
	}

	query := r.URL.Query()
	if query.Has("filter") {
		pattern := query.Get("filter")
		countries, err = h.service.SearchAnimals(ctx, countries, pattern)
		if err != nil {
			h.fail(w, r, requestID, "animal search failed", err)
			return
		}
		h.logger.InfoContext(ctx, "animal search served",
			"request_id", requestID,
			"pattern", pattern,
			"countries", len(countries),
		)
	}

	httputil.WriteJSON(w, http.StatusOK, mapper.ToRecords(countries))
}

// HandleCountPeopleAndAnimals handles GET /countries/counts.
func (h *Handler) HandleCountPeopleAndAnimals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	countries, err := h.loadCountries(ctx)
	if err != nil {
		h.fail(w, r, requestID, "failed to load countries", err)
		return
	}
	result, err := h.service.CountPeopleAndAnimals(ctx, countries)
	if err != nil {
		h.fail(w, r, requestID, "count enrichment failed", err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, mapper.ToRecords(result))
}

func (h *Handler) loadCountries(ctx context.Context) ([]models.Country, error) {
	records, err := h.source.ListCountries(ctx)
	if err != nil {
		return nil, fmt.Errorf("load countries: %w", err)
	}
	return mapper.ToCountries(records)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, requestID, msg string, err error) {
	h.logger.ErrorContext(r.Context(), msg,
		"request_id", requestID,
		"error", err,
	)
	httputil.WriteError(w, err)
}
