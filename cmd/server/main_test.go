package main

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menagerie/internal/census"
	censusmetrics "menagerie/internal/census/metrics"
	"menagerie/internal/census/store"
	"menagerie/internal/platform/config"
	"menagerie/internal/platform/metrics"
	"menagerie/internal/platform/middleware"
	"menagerie/pkg/testutil"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	source, err := store.NewSeeded()
	require.NoError(t, err)

	log := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	reg := prometheus.NewRegistry()
	svc := census.NewService(log, censusmetrics.NewWithRegistry(reg))
	return newRouter(census.NewHandler(svc, source, log), log, metrics.NewWithRegistry(reg), reg)
}

func TestRouter(t *testing.T) {
	router := newTestRouter(t)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/countries?filter=ry"))
	testutil.AssertStatusOK(t, rr)
	assert.NotEmpty(t, rr.Header().Get(middleware.RequestIDHeader))
	assert.Contains(t, rr.Body.String(), "Oryx")

	rr = testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/countries/counts"))
	testutil.AssertStatusOK(t, rr)
	assert.Contains(t, rr.Body.String(), "Dillauti [5]")

	rr = testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/metrics"))
	testutil.AssertStatusOK(t, rr)
	body := rr.Body.String()
	assert.Contains(t, body, "menagerie_animal_searches_total 1")
	assert.Contains(t, body, "menagerie_count_enrichments_total 1")
	assert.Contains(t, body, `menagerie_http_requests_total{method="GET",route="/countries",status="200"} 1`)
}

func TestRunStopsWhenContextIsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	log := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	done := make(chan error, 1)
	go func() {
		done <- run(ctx, config.Config{Addr: "127.0.0.1:0"}, log)
	}()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRunFailsOnMissingDataset(t *testing.T) {
	log := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	err := run(context.Background(), config.Config{Addr: "127.0.0.1:0", DatasetPath: t.TempDir() + "/missing.yaml"}, log)
	assert.Error(t, err)
}
