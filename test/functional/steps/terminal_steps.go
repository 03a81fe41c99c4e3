package steps

import (
	"context"
	"fmt"
	"strings"
	"time"

	"biometric-terminal/internal/terminal/domain"
	"biometric-terminal/internal/terminal/usecases"
)

func (fc *FeatureContext) theSensorIsUnplugged() error {
	fc.sensor.SetConnected(false)
	return nil
}

func (fc *FeatureContext) theFingerprintIsStoredInSlot(finger string, slot int) error {
	return fc.sensor.Enroll(domain.BiometricID(slot), finger)
}

func (fc *FeatureContext) theTerminalHasStarted() error {
	controller, err := usecases.NewController(
		fc.config,
		fc.sensor,
		fc.display,
		fc.remoteClient(),
		nil,
		fc.clock,
		fc.board,
	)
	if err != nil {
		return err
	}
	fc.controller = controller
	fc.controller.Start(context.Background())
	return nil
}

func (fc *FeatureContext) placesAFingerOnTheSensor(finger string) error {
	fc.sensor.PlaceFinger(finger)
	return nil
}

func (fc *FeatureContext) theFingerIsRemoved() error {
	fc.sensor.RemoveFinger()
	return nil
}

// theTerminalRunsFor ticks the controller on the manual clock, honoring the
// delay each tick asks for, up to and including the end instant.
func (fc *FeatureContext) theTerminalRunsFor(amount int, unit string) error {
	if fc.controller == nil {
		return fmt.Errorf("the terminal has not started")
	}

	d := time.Duration(amount) * time.Second
	if strings.HasPrefix(unit, "millisecond") {
		d = time.Duration(amount) * time.Millisecond
	}

	ctx := context.Background()
	end := fc.clock.Now().Add(d)
	for !fc.clock.Now().After(end) {
		delay := fc.controller.Tick(ctx, fc.clock.Now())
		fc.clock.Advance(delay)
	}
	return nil
}

func (fc *FeatureContext) theDisplayShows(line1, line2 string) error {
	fc.require.Equal(domain.Screen{Line1: line1, Line2: line2}, fc.display.Last())
	fc.require.Contains(fc.screen.String(), fmt.Sprintf("|%-16s|", line1))
	return nil
}

func (fc *FeatureContext) theTerminalIsIdle() error {
	fc.require.True(fc.controller.State().IsIdle(), "state is %s", fc.controller.State())
	fc.require.Equal(domain.StateIdle, fc.board.Snapshot().State)
	return nil
}

func (fc *FeatureContext) theTerminalIsEnrollingSlot(slot int) error {
	target, ok := fc.controller.State().TargetID()
	fc.require.True(ok, "state is %s", fc.controller.State())
	fc.require.Equal(domain.BiometricID(slot), target)
	return nil
}

func (fc *FeatureContext) slotHoldsTheFingerprint(slot int, finger string) error {
	stored, ok := fc.sensor.Stored(domain.BiometricID(slot))
	fc.require.True(ok, "slot %d is empty", slot)
	fc.require.Equal(finger, stored)
	return nil
}

func (fc *FeatureContext) slotIsEmpty(slot int) error {
	_, ok := fc.sensor.Stored(domain.BiometricID(slot))
	fc.require.False(ok, "slot %d holds a model", slot)
	return nil
}
