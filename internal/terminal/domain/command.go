package domain

import "fmt"

// BiometricID is the slot index of a model in the sensor's onboard store.
type BiometricID int

type CommandType string

const (
	CommandTypeEnroll CommandType = "ENROLL"
)

// CommandStatus is the lifecycle status the terminal reports back for a
// remote command.
type CommandStatus string

const (
	CommandStatusProcessing CommandStatus = "processing"
	CommandStatusCompleted  CommandStatus = "completed"
	CommandStatusFailed     CommandStatus = "failed"
)

// Command is an instruction fetched from the remote command queue.
type Command struct {
	ID      string
	Type    CommandType
	Payload CommandPayload
}

type CommandPayload struct {
	// BiometricID is nil when the payload did not carry the field.
	BiometricID *BiometricID
}

// EnrollTarget validates an ENROLL command and returns the slot it targets.
// Valid slots are 1..capacity.
func (c Command) EnrollTarget(capacity int) (BiometricID, error) {
	if c.Type != CommandTypeEnroll {
		return 0, fmt.Errorf("%w: command type %q is not %s", ErrMalformedCommand, c.Type, CommandTypeEnroll)
	}
	if c.Payload.BiometricID == nil {
		return 0, fmt.Errorf("%w: missing biometric_id", ErrMalformedCommand)
	}
	id := *c.Payload.BiometricID
	if id < 1 || int(id) > capacity {
		return 0, fmt.Errorf("%w: %d not in 1..%d", ErrInvalidBiometricID, id, capacity)
	}
	return id, nil
}

// CommandStatusUpdate is pushed to the remote service to acknowledge or
// resolve a command.
type CommandStatusUpdate struct {
	CommandID string
	Status    CommandStatus
	Result    string
}
