package domain

import (
	"fmt"
	"time"
)

// StateKind identifies which of the two operating modes the terminal is in.
type StateKind uint8

const (
	StateIdle StateKind = iota
	StateEnrolling
)

func (k StateKind) String() string {
	switch k {
	case StateIdle:
		return "idle"
	case StateEnrolling:
		return "enrolling"
	}
	return "unknown"
}

// EnrollmentStep is the sub-state of an enrollment session. Each step is
// re-evaluated once per scheduler tick.
type EnrollmentStep uint8

const (
	StepAwaitFirstFinger EnrollmentStep = iota
	StepAwaitRemoval
	StepAwaitSecondFinger
)

func (s EnrollmentStep) String() string {
	switch s {
	case StepAwaitFirstFinger:
		return "await_first_finger"
	case StepAwaitRemoval:
		return "await_removal"
	case StepAwaitSecondFinger:
		return "await_second_finger"
	}
	return "unknown"
}

// PendingEnrollment holds the transient data of an enrollment session. It
// is discarded as soon as the terminal goes back to idle.
type PendingEnrollment struct {
	TargetID      BiometricID
	CommandID     string
	Step          EnrollmentStep
	StepEnteredAt time.Time
	// RemovalNotBefore is the earliest time the removal step may confirm the
	// finger is gone.
	RemovalNotBefore time.Time
}

// Advance moves the session to the given step.
func (e *PendingEnrollment) Advance(step EnrollmentStep, now time.Time) {
	e.Step = step
	e.StepEnteredAt = now
}

// Expired reports whether the current step has been waiting longer than
// timeout. A zero timeout never expires.
func (e *PendingEnrollment) Expired(now time.Time, timeout time.Duration) bool {
	return timeout > 0 && now.Sub(e.StepEnteredAt) > timeout
}

// CheckDeadline returns an error wrapping ErrEnrollmentTimeout once the
// current step has expired.
func (e *PendingEnrollment) CheckDeadline(now time.Time, timeout time.Duration) error {
	if !e.Expired(now, timeout) {
		return nil
	}
	return fmt.Errorf("%w: %s waited %s", ErrEnrollmentTimeout, e.Step, now.Sub(e.StepEnteredAt))
}

// DeviceState is either idle (Enrollment == nil) or enrolling.
type DeviceState struct {
	Enrollment *PendingEnrollment
}

func IdleState() DeviceState {
	return DeviceState{}
}

func EnrollingState(targetID BiometricID, commandID string, startedAt time.Time) DeviceState {
	return DeviceState{
		Enrollment: &PendingEnrollment{
			TargetID:      targetID,
			CommandID:     commandID,
			Step:          StepAwaitFirstFinger,
			StepEnteredAt: startedAt,
		},
	}
}

func (s DeviceState) Kind() StateKind {
	if s.Enrollment != nil {
		return StateEnrolling
	}
	return StateIdle
}

func (s DeviceState) IsIdle() bool {
	return s.Enrollment == nil
}

func (s DeviceState) IsEnrolling() bool {
	return s.Enrollment != nil
}

// TargetID returns the slot being enrolled, or false when idle.
func (s DeviceState) TargetID() (BiometricID, bool) {
	if s.Enrollment == nil {
		return 0, false
	}
	return s.Enrollment.TargetID, true
}

func (s DeviceState) String() string {
	return s.Kind().String()
}
