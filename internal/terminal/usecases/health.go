package usecases

import (
	"context"
	"log/slog"
	"time"
)

func (c *Controller) runHealthCheck(ctx context.Context, now time.Time) {
	if c.healthSchedule == nil || now.Before(c.nextHealthCheck) {
		return
	}
	c.nextHealthCheck = c.healthSchedule.Next(now)

	available := c.verifySensor(false)
	if available != c.sensorAvailable {
		slog.Warn("sensor availability changed", slog.Bool("available", available))
	}
	c.sensorAvailable = available
	if !available && c.state.IsEnrolling() {
		c.abortEnrollment(ctx, "sensor_unavailable", screenSensorUnavailable, c.config.MessageHold)
	}
}

// verifySensor checks the sensor handshake. At startup the result is shown
// on the display.
func (c *Controller) verifySensor(startup bool) bool {
	if c.sensor == nil {
		slog.Error("sensor not configured")
		if startup {
			c.show(screenSensorMissing)
		}
		return false
	}

	ok, err := c.sensor.VerifyPassword()
	switch {
	case err != nil:
		slog.Error("verifying sensor", slog.Any("error", err))
		if startup {
			c.show(screenSensorFault)
		}
		return false
	case !ok:
		slog.Error("sensor not found")
		if startup {
			c.show(screenSensorMissing)
		}
		return false
	}

	slog.Debug("sensor verified")
	if startup {
		c.show(screenSensorOK)
	}
	return true
}
