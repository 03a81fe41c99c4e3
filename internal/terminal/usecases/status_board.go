package usecases

import (
	"sync"
	"time"

	"biometric-terminal/internal/terminal/domain"
)

// StatusSnapshot is a read-only copy of the controller state, published
// after every tick for the local status endpoint.
type StatusSnapshot struct {
	DeviceID        string
	State           domain.StateKind
	TargetID        *domain.BiometricID
	Step            string
	SensorAvailable bool
	LastPoll        time.Time
	Display         domain.Screen
	UpdatedAt       time.Time
}

// StatusBoard is the only state shared outside the control loop goroutine.
type StatusBoard struct {
	mu       sync.RWMutex
	snapshot StatusSnapshot
}

func NewStatusBoard() *StatusBoard {
	return &StatusBoard{}
}

func (b *StatusBoard) Publish(snapshot StatusSnapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.snapshot = snapshot
}

func (b *StatusBoard) Snapshot() StatusSnapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snapshot
}
