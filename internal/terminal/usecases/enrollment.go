package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"biometric-terminal/internal/terminal/domain"
)

// advanceEnrollment evaluates the current enrollment step once. Waiting for
// the user is just returning without advancing.
func (c *Controller) advanceEnrollment(ctx context.Context, now time.Time) error {
	enrollment := c.state.Enrollment

	if !c.sensorReady() {
		c.abortEnrollment(ctx, "sensor_unavailable", screenSensorUnavailable, c.config.MessageHold)
		return nil
	}
	if err := enrollment.CheckDeadline(now, c.config.EnrollTimeout); err != nil {
		slog.Warn("enrollment step timed out", slog.Any("error", err))
		c.abortEnrollment(ctx, fmt.Sprintf("timeout:%s", enrollment.Step), screenEnrollTimeout, c.config.MessageHold)
		return nil
	}

	switch enrollment.Step {
	case domain.StepAwaitFirstFinger:
		return c.awaitFirstFinger(ctx, now, enrollment)
	case domain.StepAwaitRemoval:
		return c.awaitRemoval(now, enrollment)
	case domain.StepAwaitSecondFinger:
		return c.awaitSecondFinger(ctx, enrollment)
	}
	return fmt.Errorf("unknown enrollment step %d", enrollment.Step)
}

func (c *Controller) awaitFirstFinger(ctx context.Context, now time.Time, enrollment *domain.PendingEnrollment) error {
	c.show(screenPlaceFinger)

	present, err := c.fingerPresent()
	if err != nil || !present {
		return err
	}

	status, err := c.sensor.ImageToTemplate(domain.BufferSlot1)
	if err != nil {
		return fmt.Errorf("converting first image: %w", err)
	}
	if !status.OK() {
		c.abortEnrollment(ctx, "first_capture:"+status.String(), screenFirstReadError, c.config.MessageHold)
		return nil
	}

	enrollment.Advance(domain.StepAwaitRemoval, now)
	enrollment.RemovalNotBefore = now.Add(c.config.RemovalDelay)
	c.show(screenRemoveFinger)
	return nil
}

func (c *Controller) awaitRemoval(now time.Time, enrollment *domain.PendingEnrollment) error {
	c.show(screenRemoveFinger)
	if now.Before(enrollment.RemovalNotBefore) {
		return nil
	}

	present, err := c.fingerPresent()
	if err != nil || present {
		return err
	}

	enrollment.Advance(domain.StepAwaitSecondFinger, now)
	c.show(screenPlaceSameFinger)
	return nil
}

func (c *Controller) awaitSecondFinger(ctx context.Context, enrollment *domain.PendingEnrollment) error {
	c.show(screenPlaceSameFinger)

	present, err := c.fingerPresent()
	if err != nil || !present {
		return err
	}

	status, err := c.sensor.ImageToTemplate(domain.BufferSlot2)
	if err != nil {
		return fmt.Errorf("converting second image: %w", err)
	}
	if !status.OK() {
		c.abortEnrollment(ctx, "second_capture:"+status.String(), screenSecondReadError, c.config.MessageHold)
		return nil
	}

	status, err = c.sensor.BuildModel()
	if err != nil {
		return fmt.Errorf("building model: %w", err)
	}
	if !status.OK() {
		c.abortEnrollment(ctx, "build_model:"+status.String(), screenModelMismatch, c.config.MessageHold)
		return nil
	}

	status, err = c.sensor.StoreModel(enrollment.TargetID)
	if err != nil {
		return fmt.Errorf("storing model: %w", err)
	}
	if !status.OK() {
		c.abortEnrollment(ctx, "store_model:"+status.String(), screenStorageFailure, c.config.ResultHold)
		return nil
	}

	c.completeEnrollment(ctx, enrollment)
	return nil
}

// fingerPresent captures an image; any non-OK status counts as no finger.
func (c *Controller) fingerPresent() (bool, error) {
	status, err := c.sensor.CaptureImage()
	if err != nil {
		return false, fmt.Errorf("capturing image: %w", err)
	}
	return status.OK(), nil
}

func (c *Controller) completeEnrollment(ctx context.Context, enrollment *domain.PendingEnrollment) {
	target := enrollment.TargetID
	slog.Info("fingerprint stored", slog.Int("biometric_id", int(target)), slog.String("command_id", enrollment.CommandID))

	c.show(screenStored(target))
	c.holdThenRevert(c.config.ResultHold)
	c.pushStatus(ctx, domain.CommandStatusUpdate{
		CommandID: enrollment.CommandID,
		Status:    domain.CommandStatusCompleted,
		Result:    fmt.Sprintf("stored:%d", target),
	})
	c.finishEnrollment(ctx, target, "completed")
}

// abortEnrollment ends the session on a step failure. The remote command is
// marked failed; nothing is retried.
func (c *Controller) abortEnrollment(ctx context.Context, reason string, screen domain.Screen, hold time.Duration) {
	enrollment := c.state.Enrollment
	if enrollment == nil {
		return
	}
	slog.Warn("enrollment aborted",
		slog.Int("biometric_id", int(enrollment.TargetID)),
		slog.String("step", enrollment.Step.String()),
		slog.String("reason", reason),
	)

	c.show(screen)
	c.holdThenRevert(hold)
	c.pushStatus(ctx, domain.CommandStatusUpdate{
		CommandID: enrollment.CommandID,
		Status:    domain.CommandStatusFailed,
		Result:    reason,
	})
	c.finishEnrollment(ctx, enrollment.TargetID, "failed")
}

func (c *Controller) finishEnrollment(ctx context.Context, target domain.BiometricID, outcome string) {
	c.transition(ctx, domain.IdleState())
	c.metrics.record(ctx, _metricKeyEnrollments, outcome)

	biometricID := int(target)
	c.publish(ctx, TerminalEvent{
		Type:        EventEnrollmentFinished,
		BiometricID: &biometricID,
		Outcome:     outcome,
	})
}
