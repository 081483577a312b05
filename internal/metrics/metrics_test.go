package metrics

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/cellgrid/internal/logging"
	"github.com/dshills/cellgrid/internal/renderer/dirty"
)

func TestObserveFrame(t *testing.T) {
	m := New()

	m.ObserveFrame(dirty.Stats{Cells: 12, Runs: 3, Rows: 2}, 2*time.Millisecond)
	m.ObserveFrame(dirty.Stats{}, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.frames))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.emptyFrames))
	assert.Equal(t, 12.0, testutil.ToFloat64(m.cells))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.runs))
	assert.Equal(t, 1, testutil.CollectAndCount(m.frameCells))
	assert.Equal(t, 1, testutil.CollectAndCount(m.drawDuration))
}

func TestNilMetricsIgnoresObservations(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveFrame(dirty.Stats{Cells: 1, Runs: 1, Rows: 1}, time.Millisecond)
	})
}

func TestRegistryHoldsAllCollectors(t *testing.T) {
	m := New()
	m.ObserveFrame(dirty.Stats{Cells: 1, Runs: 1, Rows: 1}, time.Millisecond)

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{
		"cellgrid_frames_total",
		"cellgrid_frames_unchanged_total",
		"cellgrid_cells_drawn_total",
		"cellgrid_runs_drawn_total",
		"cellgrid_frame_cells",
		"cellgrid_frame_draw_seconds",
	}, names)
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveFrame(dirty.Stats{Cells: 5, Runs: 1, Rows: 1}, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cellgrid_cells_drawn_total 5")
	assert.Contains(t, rec.Body.String(), "cellgrid_frames_total 1")
}

func TestServeStopsOnCancel(t *testing.T) {
	m := New()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- m.serve(ctx, ln, logging.Null())
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)
	assert.Contains(t, string(body), "cellgrid_frames_total 0")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

func TestServeInvalidAddress(t *testing.T) {
	err := New().Serve(context.Background(), "not-an-address", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen on not-an-address")
}
