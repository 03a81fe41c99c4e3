package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"biometric-terminal/internal/terminal/domain"
)

// idle polls the remote queue when the poll interval has elapsed and then
// attempts one identification pass.
func (c *Controller) idle(ctx context.Context, now time.Time) error {
	if now.Sub(c.lastPoll) > c.config.PollInterval {
		c.pollCommands(ctx, now)
		c.lastPoll = now
	}

	// An accepted or rejected command takes over the screen for this tick.
	if !c.state.IsIdle() || c.paused(c.clock.Now()) {
		return nil
	}

	return c.identify(ctx)
}

// pollCommands never fails the tick: a failed poll is retried on the next
// interval.
func (c *Controller) pollCommands(ctx context.Context, now time.Time) {
	cmd, err := c.remote.PollCommand(ctx)
	if err != nil {
		slog.Warn("polling commands", slog.Any("error", err))
		c.metrics.record(ctx, _metricKeyRemotePolls, "error")
		return
	}
	if cmd == nil {
		c.metrics.record(ctx, _metricKeyRemotePolls, "empty")
		return
	}

	switch cmd.Type {
	case domain.CommandTypeEnroll:
		c.metrics.record(ctx, _metricKeyRemotePolls, "enroll")
		c.acceptEnroll(ctx, *cmd, now)
	default:
		slog.Debug("ignoring command", slog.String("command_id", cmd.ID), slog.String("command_type", string(cmd.Type)))
		c.metrics.record(ctx, _metricKeyRemotePolls, "ignored")
	}
}

func (c *Controller) acceptEnroll(ctx context.Context, cmd domain.Command, now time.Time) {
	target, err := cmd.EnrollTarget(c.config.SensorCapacity)
	if err != nil {
		slog.Warn("rejecting enroll command", slog.String("command_id", cmd.ID), slog.Any("error", err))
		c.show(screenInvalidCommand)
		c.holdThenRevert(c.config.MessageHold)
		c.pushStatus(ctx, domain.CommandStatusUpdate{
			CommandID: cmd.ID,
			Status:    domain.CommandStatusFailed,
			Result:    err.Error(),
		})
		return
	}

	slog.Info("enroll command received", slog.String("command_id", cmd.ID), slog.Int("biometric_id", int(target)))
	c.transition(ctx, domain.EnrollingState(target, cmd.ID, now))
	c.show(screenAssigned(target))
	c.hold(c.config.MessageHold)
	c.pushStatus(ctx, domain.CommandStatusUpdate{
		CommandID: cmd.ID,
		Status:    domain.CommandStatusProcessing,
	})
}

// identify runs one capture-convert-search pass. No finger, or an image the
// sensor cannot use, ends the pass silently.
func (c *Controller) identify(ctx context.Context) error {
	if !c.sensorReady() {
		return nil
	}

	status, err := c.sensor.CaptureImage()
	if err != nil {
		return fmt.Errorf("capturing image: %w", err)
	}
	if !status.OK() {
		return nil
	}

	status, err = c.sensor.ImageToTemplate(domain.BufferSlot1)
	if err != nil {
		return fmt.Errorf("converting image: %w", err)
	}
	if !status.OK() {
		slog.Debug("image conversion failed", slog.String("status", status.String()))
		return nil
	}

	c.show(screenReading)
	result, err := c.sensor.FastSearch()
	if err != nil {
		return fmt.Errorf("searching fingerprint: %w", err)
	}

	if !result.Found {
		slog.Info("unknown fingerprint")
		c.metrics.record(ctx, _metricKeyIdentifications, "denied")
		c.show(screenDenied)
		c.holdThenRevert(c.config.DeniedHold)
		return nil
	}

	slog.Info("fingerprint matched", slog.Int("biometric_id", int(result.ID)), slog.Int("score", int(result.Score)))
	c.metrics.record(ctx, _metricKeyIdentifications, "matched")
	c.reportAttendance(ctx, result.ID)
	c.holdThenRevert(c.config.GreetingHold)
	return nil
}

func (c *Controller) sensorReady() bool {
	return c.sensor != nil && c.sensorAvailable
}
