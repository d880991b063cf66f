package metrics_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trophiclab/foodweb/internal/metrics"
)

// TestHandler_ExposesInstruments scrapes the default registry and finds
// every instrument this package registers.
func TestHandler_ExposesInstruments(t *testing.T) {
	metrics.AnalysesStarted.Inc()
	metrics.AnalysesSucceeded.Inc()
	metrics.AnalysesFailed.Inc()
	metrics.AnalysisDuration.Observe(0.2)
	metrics.CascadeSize.Observe(4)
	metrics.LastRobustness.Set(0.83)

	rr := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	for _, name := range []string{
		"foodweb_analyses_started_total",
		"foodweb_analyses_succeeded_total",
		"foodweb_analyses_failed_total",
		"foodweb_analysis_duration_seconds",
		"foodweb_cascade_size",
		"foodweb_last_robustness_ratio",
	} {
		assert.Contains(t, body, name)
	}
	assert.Contains(t, body, "foodweb_last_robustness_ratio 0.83")
}

// TestServe_ScrapeAndShutdown binds an ephemeral port, scrapes it, and
// stops the server by cancelling the context.
func TestServe_ScrapeAndShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr, err := metrics.Serve(ctx, "127.0.0.1:0", nil)
	require.NoError(t, err)

	url := fmt.Sprintf("http://%s/metrics", addr)
	resp, err := http.Get(url)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "foodweb_analyses_started_total")

	cancel()
	require.Eventually(t, func() bool {
		r, err := http.Get(url)
		if err != nil {
			return true
		}
		_ = r.Body.Close()
		return false
	}, 2*time.Second, 20*time.Millisecond, "server should stop accepting scrapes")
}

// TestServe_BadAddress reports the listen failure synchronously.
func TestServe_BadAddress(t *testing.T) {
	_, err := metrics.Serve(context.Background(), "127.0.0.1:-1", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen")
}
