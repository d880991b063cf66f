// Package metrics holds the process-wide Prometheus instruments and the
// optional scrape endpoint.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	AnalysesStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "foodweb_analyses_started_total",
		Help: "Total number of food-web analyses started.",
	})

	AnalysesSucceeded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "foodweb_analyses_succeeded_total",
		Help: "Total number of food-web analyses completed successfully.",
	})

	AnalysesFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "foodweb_analyses_failed_total",
		Help: "Total number of food-web analyses that ended in an error.",
	})

	AnalysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "foodweb_analysis_duration_seconds",
		Help:    "Wall-clock duration of one file's full analysis pipeline.",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
	})

	CascadeSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "foodweb_cascade_size",
		Help:    "Species lost per removal operation, primary plus secondary.",
		Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
	})

	LastRobustness = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "foodweb_last_robustness_ratio",
		Help: "Robustness of the most recently completed case study (0-1).",
	})
)

// Handler returns the Prometheus scrape handler for the default
// registry.
func Handler() http.Handler { return promhttp.Handler() }

// Serve exposes /metrics on addr until ctx is cancelled. It returns the
// bound address once the listener is up; errors after that point are
// logged, never fatal.
func Serve(ctx context.Context, addr string, log *slog.Logger) (string, error) {
	if log == nil {
		log = slog.Default()
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return "", fmt.Errorf("metrics: listen %s: %w", addr, err)
	}

	mux := http.NewServeMux()
	mux.Handle("GET /metrics", Handler())

	srv := &http.Server{
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutCtx)
	}()

	go func() {
		log.Info("metrics endpoint up", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server error", "err", err)
		}
	}()

	return ln.Addr().String(), nil
}
