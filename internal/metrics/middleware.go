package metrics

import (
	"net/http"
	"strconv"
	"time"
)

// unmatched labels requests no route of the mux claimed, so stray paths
// cannot grow the label set.
const unmatched = "unmatched"

// statusRecorder remembers the status code written through it.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (s *statusRecorder) Unwrap() http.ResponseWriter { return s.ResponseWriter }

// Instrument counts and times every response mux serves. Responses are
// labelled with the ServeMux pattern that matched the request, not the raw
// path.
func Instrument(mux *http.ServeMux) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		mux.ServeHTTP(rec, r)

		endpoint := r.Pattern
		if endpoint == "" {
			endpoint = unmatched
		}
		EndpointDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
		EndpointResponses.WithLabelValues(endpoint, strconv.Itoa(rec.status)).Inc()
	})
}
