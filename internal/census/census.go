// Package census exposes the animal census use cases and their HTTP surface.
package census

import (
	"log/slog"

	"menagerie/internal/census/handler"
	"menagerie/internal/census/metrics"
	"menagerie/internal/census/service"
	"menagerie/internal/census/store"
	"menagerie/internal/census/traversal"
)

// Service exposes the search and count use cases.
type Service = service.Service

// Handler wires HTTP endpoints to the census service.
type Handler = handler.Handler

// NewService constructs the census service over the production tree walker.
func NewService(logger *slog.Logger, m *metrics.Metrics) *Service {
	return service.New(traversal.NewWalker(),
		service.WithLogger(logger),
		service.WithMetrics(m),
	)
}

// NewHandler constructs the HTTP handler for the census routes.
func NewHandler(s *Service, source handler.CountrySource, logger *slog.Logger) *Handler {
	return handler.New(s, source, logger)
}

// OpenStore loads the dataset at path, or the embedded sample when path is
// empty.
func OpenStore(path string) (*store.InMemory, error) {
	if path == "" {
		return store.NewSeeded()
	}
	return store.LoadFile(path)
}
