package internal

import "biometric-terminal/internal/terminal/domain"

type PollResponse struct {
	Command *Command `json:"command"`
}

type Command struct {
	ID          string         `json:"id"`
	DeviceID    string         `json:"device_id,omitempty"`
	CommandType string         `json:"command_type"`
	Status      string         `json:"status,omitempty"`
	Payload     CommandPayload `json:"payload"`
}

type CommandPayload struct {
	BiometricID *int `json:"biometric_id"`
}

func (c Command) ToDomain() domain.Command {
	cmd := domain.Command{
		ID:   c.ID,
		Type: domain.CommandType(c.CommandType),
	}
	if c.Payload.BiometricID != nil {
		id := domain.BiometricID(*c.Payload.BiometricID)
		cmd.Payload.BiometricID = &id
	}
	return cmd
}

type CommandStatusRequest struct {
	CommandID string `json:"command_id"`
	Status    string `json:"status"`
	Result    string `json:"result,omitempty"`
}

func FromCommandStatusUpdate(update domain.CommandStatusUpdate) CommandStatusRequest {
	return CommandStatusRequest{
		CommandID: update.CommandID,
		Status:    string(update.Status),
		Result:    update.Result,
	}
}

type AttendanceRequest struct {
	BiometricID int    `json:"biometric_id"`
	DeviceID    string `json:"device_id"`
}

func FromAttendanceEvent(event domain.AttendanceEvent) AttendanceRequest {
	return AttendanceRequest{
		BiometricID: int(event.BiometricID),
		DeviceID:    event.DeviceID,
	}
}
