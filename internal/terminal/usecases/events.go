package usecases

import (
	"context"
	"time"
)

type TerminalEventType string

const (
	EventStateChanged       TerminalEventType = "state_changed"
	EventAttendanceReported TerminalEventType = "attendance_reported"
	EventEnrollmentFinished TerminalEventType = "enrollment_finished"
)

// TerminalEvent is a telemetry record of something the controller did.
type TerminalEvent struct {
	Type        TerminalEventType `json:"type" msgpack:"type"`
	DeviceID    string            `json:"device_id" msgpack:"device_id"`
	State       string            `json:"state,omitempty" msgpack:"state,omitempty"`
	BiometricID *int              `json:"biometric_id,omitempty" msgpack:"biometric_id,omitempty"`
	Name        string            `json:"name,omitempty" msgpack:"name,omitempty"`
	RecordType  string            `json:"record_type,omitempty" msgpack:"record_type,omitempty"`
	Outcome     string            `json:"outcome,omitempty" msgpack:"outcome,omitempty"`
	Timestamp   time.Time         `json:"timestamp" msgpack:"timestamp"`
}

type noopPublisher struct{}

func (noopPublisher) Publish(_ context.Context, _ TerminalEvent) error {
	return nil
}
