package httpserver

import (
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	_metricPrefix   = "biometric_terminal.status_server"
	_unmatchedRoute = "unmatched"
)

type httpMetrics struct {
	duration metric.Float64Histogram
	requests metric.Int64Counter
	inFlight metric.Int64UpDownCounter
}

func newHTTPMetrics(meter metric.Meter) (*httpMetrics, error) {
	duration, err := meter.Float64Histogram(
		fmt.Sprintf("%s.%s", _metricPrefix, "request.duration"),
		metric.WithDescription("Time spent answering status server requests"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1),
	)
	if err != nil {
		return nil, err
	}

	requests, err := meter.Int64Counter(
		fmt.Sprintf("%s.%s", _metricPrefix, "requests"),
		metric.WithDescription("Status server requests by route and status code"),
	)
	if err != nil {
		return nil, err
	}

	inFlight, err := meter.Int64UpDownCounter(
		fmt.Sprintf("%s.%s", _metricPrefix, "requests.in_flight"),
		metric.WithDescription("Status server requests being answered"),
	)
	if err != nil {
		return nil, err
	}

	return &httpMetrics{duration: duration, requests: requests, inFlight: inFlight}, nil
}

// createMetricsMiddleware labels each request with the pattern it matched on
// router, so the label set stays bounded by the registered routes.
func createMetricsMiddleware(router *http.ServeMux) func(http.Handler) http.Handler {
	metrics, err := newHTTPMetrics(otel.GetMeterProvider().Meter("biometric-terminal"))
	if err != nil {
		panic(err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			route := routeLabel(router, r)

			routeAttr := metric.WithAttributes(attribute.String("http.route", route))
			metrics.inFlight.Add(r.Context(), 1, routeAttr)
			defer metrics.inFlight.Add(r.Context(), -1, routeAttr)

			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			attrs := metric.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.route", route),
				attribute.Int("http.status_code", wrapped.statusCode),
			)
			metrics.duration.Record(r.Context(), time.Since(start).Seconds(), attrs)
			metrics.requests.Add(r.Context(), 1, attrs)
		})
	}
}

func routeLabel(router *http.ServeMux, r *http.Request) string {
	_, pattern := router.Handler(r)
	if pattern == "" {
		return _unmatchedRoute
	}
	return pattern
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
