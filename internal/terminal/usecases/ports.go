package usecases

import (
	"context"
	"time"

	"biometric-terminal/internal/terminal/domain"
)

//go:generate mockgen -source=ports.go -destination=../../../test/unit/doubles/terminal/usecases/ports_mock.go -package=usecases -mock_names=Sensor=MockSensor,Display=MockDisplay,RemoteClient=MockRemoteClient,EventPublisher=MockEventPublisher,Clock=MockClock

// Sensor is the fingerprint module driver. A returned error is a transport
// fault (UART timeout, framing); protocol outcomes come back as a status.
type Sensor interface {
	VerifyPassword() (bool, error)
	CaptureImage() (domain.SensorStatus, error)
	ImageToTemplate(slot domain.BufferSlot) (domain.SensorStatus, error)
	FastSearch() (domain.SearchResult, error)
	BuildModel() (domain.SensorStatus, error)
	StoreModel(id domain.BiometricID) (domain.SensorStatus, error)
}

// Display renders two lines of text. Implementations must not fail.
type Display interface {
	Show(line1, line2 string)
}

// RemoteClient talks to the attendance service.
type RemoteClient interface {
	// PollCommand returns the next pending command for this device, or nil
	// when the queue is empty.
	PollCommand(ctx context.Context) (*domain.Command, error)
	UpdateCommandStatus(ctx context.Context, update domain.CommandStatusUpdate) error
	ReportAttendance(ctx context.Context, event domain.AttendanceEvent) (domain.AttendanceResult, error)
}

// EventPublisher mirrors terminal events to an external sink.
type EventPublisher interface {
	Publish(ctx context.Context, event TerminalEvent) error
}

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
