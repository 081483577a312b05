// Package metrics exposes renderer frame statistics as Prometheus
// collectors.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dshills/cellgrid/internal/logging"
	"github.com/dshills/cellgrid/internal/renderer/dirty"
)

// Namespace prefixes every metric name.
const Namespace = "cellgrid"

// Metrics records frame statistics on its own registry. A nil *Metrics
// ignores observations.
type Metrics struct {
	registry *prometheus.Registry

	frames       prometheus.Counter
	emptyFrames  prometheus.Counter
	cells        prometheus.Counter
	runs         prometheus.Counter
	frameCells   prometheus.Histogram
	drawDuration prometheus.Histogram
}

// New creates the collectors and registers them on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		frames: factory.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "frames_total",
			Help:      "Number of frames drawn.",
		}),
		emptyFrames: factory.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "frames_unchanged_total",
			Help:      "Number of frames that produced no cell changes.",
		}),
		cells: factory.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "cells_drawn_total",
			Help:      "Number of changed cells sent to the backend.",
		}),
		runs: factory.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "runs_drawn_total",
			Help:      "Number of contiguous runs of changed cells sent to the backend.",
		}),
		frameCells: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "frame_cells",
			Help:      "Changed cells per frame.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		drawDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "frame_draw_seconds",
			Help:      "Time spent rendering, diffing and flushing one frame.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12),
		}),
	}
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveFrame records the statistics of one drawn frame.
func (m *Metrics) ObserveFrame(stats dirty.Stats, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.frames.Inc()
	if stats.Cells == 0 {
		m.emptyFrames.Inc()
	}
	m.cells.Add(float64(stats.Cells))
	m.runs.Add(float64(stats.Runs))
	m.frameCells.Observe(float64(stats.Cells))
	m.drawDuration.Observe(elapsed.Seconds())
}

// Handler returns an HTTP handler serving the registry in the Prometheus
// exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes Handler at /metrics on addr until ctx is cancelled.
func (m *Metrics) Serve(ctx context.Context, addr string, logger *logging.Logger) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return m.serve(ctx, ln, logger)
}

func (m *Metrics) serve(ctx context.Context, ln net.Listener, logger *logging.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	logger.Info("serving metrics on %s", ln.Addr())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown metrics server: %w", err)
		}
		return nil
	}
}
