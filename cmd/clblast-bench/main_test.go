package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fxnlabs/clblast/fixtures"
	"github.com/fxnlabs/clblast/internal/bench"
	"github.com/fxnlabs/clblast/internal/config"
	"github.com/fxnlabs/clblast/internal/opencl"
	"github.com/fxnlabs/clblast/pkg/clblast"
	"github.com/fxnlabs/clblast/pkg/clblast/clblasttest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		e := &env{}
		require.NoError(t, e.load("", ""))
		assert.Equal(t, config.Default(), e.cfg)
		assert.NotNil(t, e.log)
	})

	t.Run("file and verbosity override", func(t *testing.T) {
		e := &env{}
		require.NoError(t, e.load("../../fixtures/tests/config/valid_config.yaml", "warn"))
		assert.Equal(t, "warn", e.cfg.Logger.Verbosity)
		assert.Equal(t, 30*time.Second, e.cfg.Serve.Interval)
		assert.False(t, e.log.Core().Enabled(zapcore.InfoLevel))
	})

	t.Run("missing file", func(t *testing.T) {
		e := &env{}
		assert.Error(t, e.load("does-not-exist.yaml", ""))
	})

	t.Run("bad verbosity", func(t *testing.T) {
		e := &env{}
		assert.Error(t, e.load("", "loud"))
	})
}

func TestWriteTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, writeTemplate(path, false))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, fixtures.ConfigTemplate, data)

	err = writeTemplate(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))
	require.NoError(t, writeTemplate(path, true))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, fixtures.ConfigTemplate, data)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestPrintDevices(t *testing.T) {
	platforms := []opencl.PlatformInfo{{
		Name: "Portable Computing Language",
		Devices: []opencl.DeviceInfo{
			{Name: "cpu-haswell", Type: opencl.DeviceTypeCPU, MaxComputeUnits: 8, GlobalMemBytes: 2 << 30},
			{Name: "gfx1030", Type: opencl.DeviceTypeGPU, MaxComputeUnits: 40, GlobalMemBytes: 16 << 30, DoublePrecision: true},
		},
	}}

	var out bytes.Buffer
	require.NoError(t, printDevices(&out, platforms, 0, 1))
	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Contains(t, string(lines[0]), "COMPUTE UNITS")
	assert.Contains(t, string(lines[1]), "cpu-haswell")
	assert.NotContains(t, string(lines[1]), "*")
	assert.Contains(t, string(lines[2]), "*")
	assert.Contains(t, string(lines[2]), "16384")
	assert.Contains(t, string(lines[2]), "true")
}

func TestPrintResults(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printResults(&out, []bench.Result{{
		Size:     config.GemmSize{Streams: 64, Samples: 100},
		Runs:     3,
		Mean:     1500 * time.Microsecond,
		GFLOPS:   0.55,
		Verified: true,
	}}))
	assert.Contains(t, out.String(), "GFLOPS")
	assert.Contains(t, out.String(), "1.5ms")
	assert.Contains(t, out.String(), "0.55")
}

func TestResultsEndpoint(t *testing.T) {
	res := &results{device: "host"}
	mux := newMux(res)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/results", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var view resultsView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "host", view.Device)
	assert.Nil(t, view.At)
	assert.Empty(t, view.Results)

	res.set([]bench.Result{{Size: config.GemmSize{Streams: 8, Samples: 4}, Runs: 1, Mean: 2 * time.Millisecond}}, bench.ErrMismatch)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/results", nil))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	require.Len(t, view.Results, 1)
	assert.Equal(t, 8, view.Results[0].Streams)
	assert.Equal(t, 2.0, view.Results[0].MeanMs)
	assert.Equal(t, bench.ErrMismatch.Error(), view.Error)
	assert.NotNil(t, view.At)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/results", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `clblast_endpoint_responses_total{endpoint="/results",status_code="405"} 1`)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// hostBackend is a bench.Backend over clblasttest buffers.
type hostBackend struct {
	clblasttest.Queue
}

func (h *hostBackend) Name() string { return "host" }
func (h *hostBackend) Alloc(n int) (bench.Buffer, error) {
	return clblasttest.NewBuffer[float32](n), nil
}
func (h *hostBackend) Wait(ev *clblast.Event) error { ev.Reset(); return nil }
func (h *hostBackend) Finish() error                { return nil }

func TestLoop(t *testing.T) {
	api := clblasttest.New()
	lib, err := clblast.New(clblast.WithNative(api))
	require.NoError(t, err)
	cfg := config.Default()
	cfg.Bench.Sizes = []config.GemmSize{{Streams: 4, Samples: 2}}
	runner := bench.NewRunner(lib, &hostBackend{}, cfg, zap.NewNop())
	res := &results{device: "host"}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		loop(ctx, time.Hour, runner, res, zap.NewNop())
	}()

	require.Eventually(t, func() bool {
		res.mu.RLock()
		defer res.mu.RUnlock()
		return !res.at.IsZero()
	}, 5*time.Second, 10*time.Millisecond)
	cancel()
	<-done

	res.mu.RLock()
	defer res.mu.RUnlock()
	require.NoError(t, res.err)
	require.Len(t, res.last, 1)
	assert.True(t, res.last[0].Verified)
	assert.Equal(t, 1, api.Calls("Sgemm"))
}
