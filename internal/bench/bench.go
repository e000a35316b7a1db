// Package bench times single-precision GEMM on a device through the clblast
// bindings and checks the results against a host reference.
package bench

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/fxnlabs/clblast/internal/config"
	"github.com/fxnlabs/clblast/internal/metrics"
	"github.com/fxnlabs/clblast/pkg/clblast"
	"go.uber.org/zap"
)

// ErrMismatch is returned when a device result disagrees with the host
// reference beyond the configured tolerance.
var ErrMismatch = errors.New("bench: result mismatch")

// Result describes one benchmarked problem size. A is Streams×Streams, B and
// C are Streams×Samples.
type Result struct {
	Size     config.GemmSize
	Runs     int
	Mean     time.Duration
	GFLOPS   float64
	Verified bool
	MaxError float64
}

// FLOPs is the floating point operation count of one run: 2·m·n·k.
func (r Result) FLOPs() float64 {
	m, n := float64(r.Size.Streams), float64(r.Size.Samples)
	return 2 * m * n * m
}

type Runner struct {
	lib     *clblast.Library
	backend Backend
	log     *zap.Logger

	sizes     []config.GemmSize
	repeat    int
	verify    bool
	tolerance float64
	rng       *rand.Rand
}

// NewRunner prepares a benchmark over cfg.Bench. The input stream is seeded
// from cfg.Bench.Seed so two runners with the same config upload the same
// matrices.
func NewRunner(lib *clblast.Library, backend Backend, cfg *config.Config, log *zap.Logger) *Runner {
	seed := cfg.Bench.Seed
	return &Runner{
		lib:       lib,
		backend:   backend,
		log:       log,
		sizes:     cfg.Bench.Sizes,
		repeat:    max(cfg.Bench.Repeat, 1),
		verify:    cfg.Bench.Verify,
		tolerance: cfg.Bench.Tolerance,
		rng:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Run benchmarks every configured size in order. It stops at the first size
// that fails to run; a verification mismatch is reported after the remaining
// sizes have been measured.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	results := make([]Result, 0, len(r.sizes))
	var mismatch error
	for _, size := range r.sizes {
		res, err := r.RunSize(ctx, size)
		if errors.Is(err, ErrMismatch) {
			mismatch = errors.Join(mismatch, err)
			results = append(results, res)
			continue
		}
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, mismatch
}

// RunSize uploads fresh random operands, times repeat GEMM calls and, when
// verification is enabled, compares the last C with the host product.
func (r *Runner) RunSize(ctx context.Context, size config.GemmSize) (Result, error) {
	res := Result{Size: size}
	m, n := size.Streams, size.Samples
	if m <= 0 || n <= 0 {
		return res, fmt.Errorf("bench: invalid size %dx%d", m, n)
	}
	log := r.log.With(zap.Int("streams", m), zap.Int("samples", n))

	hostA := r.random(m * m)
	hostB := r.random(m * n)

	a, err := r.upload(hostA)
	if err != nil {
		return res, fmt.Errorf("upload A: %w", err)
	}
	defer a.Release()
	b, err := r.upload(hostB)
	if err != nil {
		return res, fmt.Errorf("upload B: %w", err)
	}
	defer b.Release()
	c, err := r.backend.Alloc(m * n)
	if err != nil {
		return res, fmt.Errorf("allocate C: %w", err)
	}
	defer c.Release()

	ma, err := clblast.NewMatrix[float32](a, m, m, clblast.RowMajor)
	if err != nil {
		return res, err
	}
	mb, err := clblast.NewMatrix[float32](b, m, n, clblast.RowMajor)
	if err != nil {
		return res, err
	}
	mc, err := clblast.NewMatrix[float32](c, m, n, clblast.RowMajor)
	if err != nil {
		return res, err
	}

	q := r.lib.Queue(r.backend)
	var total time.Duration
	for i := 0; i < r.repeat; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		var ev clblast.Event
		start := time.Now()
		if err := clblast.NewGemm(q, ma, mb, mc).Event(&ev).Run(); err != nil {
			return res, err
		}
		if err := r.backend.Wait(&ev); err != nil {
			return res, fmt.Errorf("wait for Sgemm: %w", err)
		}
		if err := r.backend.Finish(); err != nil {
			return res, fmt.Errorf("finish queue: %w", err)
		}
		elapsed := time.Since(start)
		total += elapsed
		res.Runs++
		metrics.BenchGemmDuration.Observe(float64(elapsed.Microseconds()) / 1000)
	}

	res.Mean = total / time.Duration(res.Runs)
	if res.Mean > 0 {
		res.GFLOPS = res.FLOPs() / res.Mean.Seconds() / 1e9
	}
	metrics.BenchGemmSize.Set(float64(m))
	metrics.BenchGemmGFLOPS.Set(res.GFLOPS)

	log.Info("GEMM benchmark completed",
		zap.Int("runs", res.Runs),
		zap.Duration("mean", res.Mean),
		zap.Float64("gflops", res.GFLOPS))

	if !r.verify {
		return res, nil
	}
	got := make([]float32, m*n)
	if err := c.Read(got); err != nil {
		return res, fmt.Errorf("read C: %w", err)
	}
	res.MaxError = maxError(reference(hostA, hostB, m, m, n), got)
	if res.MaxError > r.tolerance {
		metrics.BenchVerifyFailures.Inc()
		log.Error("GEMM result differs from host reference",
			zap.Float64("max_error", res.MaxError),
			zap.Float64("tolerance", r.tolerance))
		return res, fmt.Errorf("%w: %dx%d max error %g exceeds %g", ErrMismatch, m, n, res.MaxError, r.tolerance)
	}
	res.Verified = true
	log.Debug("GEMM result verified", zap.Float64("max_error", res.MaxError))
	return res, nil
}

func (r *Runner) upload(data []float32) (Buffer, error) {
	buf, err := r.backend.Alloc(len(data))
	if err != nil {
		return nil, err
	}
	if err := buf.Write(data); err != nil {
		buf.Release()
		return nil, err
	}
	return buf, nil
}

func (r *Runner) random(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = r.rng.Float32()
	}
	return out
}
