package service

import (
	"context"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"menagerie/internal/census/metrics"
	"menagerie/internal/census/models"
	dErrors "menagerie/pkg/domain-errors"
	pstrings "menagerie/pkg/platform/strings"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks TreeWalker

// ErrEmptySearchPattern rejects a search whose pattern is empty or blank.
// It is checked once, before any traversal.
var ErrEmptySearchPattern = dErrors.New(dErrors.CodeValidation, "Cannot search for animals without a search pattern")

// TreeWalker runs the whole-tree algorithms. traversal.Walker is the
// production implementation.
type TreeWalker interface {
	FindCountriesWithAnimalsMatching(countries []models.Country, pattern string) []models.Country
	EnrichCountriesWithCounts(countries []models.Country) []models.Country
}

// Service implements the search and count use cases.
type Service struct {
	walker  TreeWalker
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// New constructs a Service. Without options it logs nowhere, records no
// metrics and traces through the global OpenTelemetry provider.
func New(walker TreeWalker, opts ...Option) *Service {
	s := &Service{
		walker: walker,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer: otel.Tracer("menagerie/census/service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SearchAnimals returns the countries that still hold at least one animal
// whose name contains pattern, pruned down to the matching branches.
// The pattern is trimmed first; a blank pattern fails with
// ErrEmptySearchPattern and the walker is never called.
func (s *Service) SearchAnimals(ctx context.Context, countries []models.Country, pattern string) ([]models.Country, error) {
	ctx, span := s.tracer.Start(ctx, "census.SearchAnimals")
	defer span.End()

	sanitized, ok := pstrings.TrimNonEmpty(pattern)
	if !ok {
		span.SetStatus(codes.Error, ErrEmptySearchPattern.Message)
		return nil, ErrEmptySearchPattern
	}

	start := time.Now()
	result := s.walker.FindCountriesWithAnimalsMatching(countries, sanitized)
	if s.metrics != nil {
		s.metrics.ObserveSearch(start, len(result))
	}

	span.SetAttributes(
		attribute.String("census.pattern", sanitized),
		attribute.Int("census.countries.in", len(countries)),
		attribute.Int("census.countries.out", len(result)),
	)
	s.logger.DebugContext(ctx, "animal search completed",
		"pattern", sanitized,
		"countries_in", len(countries),
		"countries_out", len(result),
	)
	return result, nil
}

// CountPeopleAndAnimals returns the countries with people counts appended to
// country names and animal counts appended to person names.
func (s *Service) CountPeopleAndAnimals(ctx context.Context, countries []models.Country) ([]models.Country, error) {
	ctx, span := s.tracer.Start(ctx, "census.CountPeopleAndAnimals")
	defer span.End()

	start := time.Now()
	result := s.walker.EnrichCountriesWithCounts(countries)
	if s.metrics != nil {
		s.metrics.ObserveCount(start)
	}

	span.SetAttributes(attribute.Int("census.countries", len(result)))
	s.logger.DebugContext(ctx, "count enrichment completed",
		"countries", len(result),
	)
	return result, nil
}
