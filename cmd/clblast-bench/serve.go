package main

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/fxnlabs/clblast/internal/bench"
	"github.com/fxnlabs/clblast/internal/config"
	"github.com/fxnlabs/clblast/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func serveCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Benchmark periodically and expose the results on /metrics and /results",
		Action: func(c *cli.Context) error {
			figure.NewFigure("CLBlast", "", true).Print()

			app := fx.New(
				fx.Supply(e.cfg, e.log),
				fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
					return &fxevent.ZapLogger{Logger: log.Named("fx")}
				}),
				fx.Provide(newSession, newRunner, newResults, newServer),
				fx.Invoke(startLoop, func(*http.Server) {}),
			)
			if err := app.Start(c.Context); err != nil {
				return err
			}
			select {
			case sig := <-app.Done():
				e.log.Info("shutting down", zap.Stringer("signal", sig))
			case <-c.Context.Done():
			}
			stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
			defer cancel()
			return app.Stop(stopCtx)
		},
	}
}

func newSession(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (*session, error) {
	s, err := openSession(cfg, log)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{OnStop: func(context.Context) error {
		s.Close()
		return nil
	}})
	return s, nil
}

func newRunner(s *session, cfg *config.Config, log *zap.Logger) *bench.Runner {
	return bench.NewRunner(s.lib, s.backend, cfg, log)
}

// results holds the outcome of the most recent benchmark pass.
type results struct {
	mu     sync.RWMutex
	device string
	at     time.Time
	last   []bench.Result
	err    error
}

func newResults(s *session) *results {
	return &results{device: s.backend.Name()}
}

func (r *results) set(last []bench.Result, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.at = time.Now()
	r.last = last
	r.err = err
}

type resultView struct {
	Streams  int     `json:"streams"`
	Samples  int     `json:"samples"`
	Runs     int     `json:"runs"`
	MeanMs   float64 `json:"meanMs"`
	GFLOPS   float64 `json:"gflops"`
	Verified bool    `json:"verified"`
	MaxError float64 `json:"maxError"`
}

type resultsView struct {
	Device  string       `json:"device"`
	At      *time.Time   `json:"at,omitempty"`
	Error   string       `json:"error,omitempty"`
	Results []resultView `json:"results"`
}

func (r *results) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	r.mu.RLock()
	view := resultsView{Device: r.device, Results: make([]resultView, 0, len(r.last))}
	if !r.at.IsZero() {
		at := r.at
		view.At = &at
	}
	if r.err != nil {
		view.Error = r.err.Error()
	}
	for _, res := range r.last {
		view.Results = append(view.Results, resultView{
			Streams:  res.Size.Streams,
			Samples:  res.Size.Samples,
			Runs:     res.Runs,
			MeanMs:   float64(res.Mean.Microseconds()) / 1000,
			GFLOPS:   res.GFLOPS,
			Verified: res.Verified,
			MaxError: res.MaxError,
		})
	}
	r.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(view)
}

func newMux(res *results) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/results", res)
	return metrics.Instrument(mux)
}

func newServer(lc fx.Lifecycle, cfg *config.Config, res *results, log *zap.Logger) *http.Server {
	srv := &http.Server{Addr: cfg.Metrics.ListenAddress, Handler: newMux(res), ReadHeaderTimeout: 10 * time.Second}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("Starting server on", zap.String("address", ln.Addr().String()))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
	return srv
}

// startLoop runs the benchmark once on start and then every serve.interval.
func startLoop(lc fx.Lifecycle, cfg *config.Config, runner *bench.Runner, res *results, log *zap.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				loop(ctx, cfg.Serve.Interval, runner, res, log)
			}()
			return nil
		},
		OnStop: func(stop context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stop.Done():
				return stop.Err()
			}
		},
	})
}

func loop(ctx context.Context, interval time.Duration, runner *bench.Runner, res *results, log *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		last, err := runner.Run(ctx)
		if err != nil && ctx.Err() == nil {
			log.Error("benchmark pass failed", zap.Error(err))
		}
		if ctx.Err() != nil {
			return
		}
		res.set(last, err)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
