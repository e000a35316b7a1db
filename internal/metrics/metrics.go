package metrics

import (
	"time"

	"github.com/fxnlabs/clblast/pkg/clblast"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EndpointResponses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "clblast_endpoint_responses_total",
		Help: "The total number of HTTP responses served by the bench daemon",
	}, []string{"endpoint", "status_code"})

	EndpointDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "clblast_endpoint_duration_seconds",
		Help:    "Time spent serving a bench daemon endpoint",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})

	// Routine metrics, fed by Observer.
	RoutineCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "clblast_routine_calls_total",
		Help: "Total number of CLBlast routine invocations by outcome",
	}, []string{"routine", "result"})

	RoutineEnqueueSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "clblast_routine_enqueue_seconds",
		Help:    "Time spent inside the native call that enqueues a routine",
		Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12), // 1µs to ~4s
	}, []string{"routine"})

	// GEMM benchmark metrics
	BenchGemmDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "clblast_bench_gemm_duration_ms",
		Help:    "Duration of one benchmarked GEMM, enqueue to completion, in milliseconds",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 20), // 10µs to ~5s
	})

	BenchGemmGFLOPS = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "clblast_bench_gemm_gflops",
		Help: "Throughput of the last benchmarked GEMM size in GFLOPS",
	})

	BenchGemmSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "clblast_bench_gemm_size",
		Help: "Matrix order of the last benchmarked GEMM",
	})

	BenchVerifyFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clblast_bench_verify_failures_total",
		Help: "Benchmark results that disagreed with the host reference",
	})
)

// Observer records every clblast routine call into the routine metrics.
type Observer struct{}

func (Observer) ObserveCall(routine string, err error, elapsed time.Duration) {
	RoutineCalls.WithLabelValues(routine, clblast.CategoryOf(err).String()).Inc()
	if err == nil {
		RoutineEnqueueSeconds.WithLabelValues(routine).Observe(elapsed.Seconds())
	}
}

var _ clblast.Observer = Observer{}
