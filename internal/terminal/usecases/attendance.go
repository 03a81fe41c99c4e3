package usecases

import (
	"context"
	"errors"
	"log/slog"

	"biometric-terminal/internal/terminal/domain"
)

// reportAttendance sends one attendance event and shows the outcome. A lost
// event is not resent.
func (c *Controller) reportAttendance(ctx context.Context, id domain.BiometricID) {
	c.show(screenProcessing)

	event := domain.AttendanceEvent{BiometricID: id, DeviceID: c.config.DeviceID}
	result, err := c.remote.ReportAttendance(ctx, event)

	biometricID := int(id)
	telemetry := TerminalEvent{Type: EventAttendanceReported, BiometricID: &biometricID}

	var statusErr *domain.RemoteStatusError
	switch {
	case err == nil:
		slog.Info("attendance registered",
			slog.Int("biometric_id", biometricID),
			slog.String("name", result.Name),
			slog.String("type", result.Type),
		)
		c.show(screenGreeting(result.Name))
		telemetry.Outcome = "success"
		telemetry.Name = result.Name
		telemetry.RecordType = result.Type
	case errors.As(err, &statusErr):
		slog.Warn("attendance rejected", slog.Int("biometric_id", biometricID), slog.Int("status_code", statusErr.StatusCode))
		c.show(screenServerError(statusErr.StatusCode))
		telemetry.Outcome = "server_error"
	default:
		slog.Warn("attendance not delivered", slog.Int("biometric_id", biometricID), slog.Any("error", err))
		c.show(screenNetworkError)
		telemetry.Outcome = "network_error"
	}

	c.metrics.record(ctx, _metricKeyAttendanceReports, telemetry.Outcome)
	c.publish(ctx, telemetry)
}
