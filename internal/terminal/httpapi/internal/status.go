package internal

import (
	"time"

	"biometric-terminal/internal/terminal/usecases"
)

type StatusResponse struct {
	DeviceID        string          `json:"device_id"`
	State           string          `json:"state"`
	TargetID        *int            `json:"target_id"`
	Step            string          `json:"step,omitempty"`
	SensorAvailable bool            `json:"sensor_available"`
	LastPoll        *time.Time      `json:"last_poll"`
	Display         DisplayResponse `json:"display"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type DisplayResponse struct {
	Line1 string `json:"line1"`
	Line2 string `json:"line2"`
}

func FromSnapshot(snapshot usecases.StatusSnapshot) StatusResponse {
	response := StatusResponse{
		DeviceID:        snapshot.DeviceID,
		State:           snapshot.State.String(),
		Step:            snapshot.Step,
		SensorAvailable: snapshot.SensorAvailable,
		Display: DisplayResponse{
			Line1: snapshot.Display.Line1,
			Line2: snapshot.Display.Line2,
		},
		UpdatedAt: snapshot.UpdatedAt,
	}
	if snapshot.TargetID != nil {
		target := int(*snapshot.TargetID)
		response.TargetID = &target
	}
	if !snapshot.LastPoll.IsZero() {
		lastPoll := snapshot.LastPoll
		response.LastPoll = &lastPoll
	}
	return response
}
