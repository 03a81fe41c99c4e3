package usecases

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

const (
	_metricKeyTicks             = "ticks"
	_metricKeyTickErrors        = "tick_errors"
	_metricKeyRemotePolls       = "remote_polls"
	_metricKeyIdentifications   = "identifications"
	_metricKeyAttendanceReports = "attendance_reports"
	_metricKeyEnrollments       = "enrollments"
)

var _metricDescriptions = map[string]string{
	_metricKeyTicks:             "Total number of control loop ticks",
	_metricKeyTickErrors:        "Ticks that ended in an error and triggered a cooldown",
	_metricKeyRemotePolls:       "Remote command polls by outcome",
	_metricKeyIdentifications:   "Fingerprint identification passes that reached a search, by outcome",
	_metricKeyAttendanceReports: "Attendance reports by outcome",
	_metricKeyEnrollments:       "Finished enrollment sessions by outcome",
}

type controllerMetrics struct {
	counters map[string]metric.Int64Counter
}

func newControllerMetrics() *controllerMetrics {
	m := &controllerMetrics{counters: make(map[string]metric.Int64Counter)}
	if err := m.initialize(); err != nil {
		slog.Error("initializing controller metrics", slog.Any("error", err))
	}
	return m
}

func (m *controllerMetrics) initialize() error {
	meter := otel.Meter("biometric-terminal")
	for key, description := range _metricDescriptions {
		counter, err := meter.Int64Counter(
			fmt.Sprintf("%s.%s", "biometric_terminal", key),
			metric.WithDescription(description),
			metric.WithUnit("1"),
		)
		if err != nil {
			return fmt.Errorf("creating %s counter: %w", key, err)
		}
		m.counters[key] = counter
	}
	return nil
}

func (m *controllerMetrics) record(ctx context.Context, key, outcome string) {
	counter, exists := m.counters[key]
	if !exists {
		return
	}
	attrs := []attribute.KeyValue{semconv.ServiceNameKey.String("biometric-terminal")}
	if outcome != "" {
		attrs = append(attrs, attribute.String("outcome", outcome))
	}
	counter.Add(ctx, 1, metric.WithAttributes(attrs...))
}
