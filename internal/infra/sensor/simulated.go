package sensor

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"biometric-terminal/internal/terminal/domain"
	"biometric-terminal/internal/terminal/usecases"
)

type Operation string

const (
	OperationVerifyPassword  Operation = "verify_password"
	OperationCaptureImage    Operation = "capture_image"
	OperationImageToTemplate Operation = "image_to_template"
	OperationFastSearch      Operation = "fast_search"
	OperationBuildModel      Operation = "build_model"
	OperationStoreModel      Operation = "store_model"
)

const (
	_defaultCapacity = 127
	_matchScore      = 100
)

var ErrBusFault = errors.New("sensor bus fault")

func NewSimulated(capacity int) *Simulated {
	if capacity <= 0 {
		capacity = _defaultCapacity
	}
	return &Simulated{
		capacity:  capacity,
		connected: true,
		store:     make(map[domain.BiometricID]string),
		failures:  make(map[Operation]domain.SensorStatus),
		faults:    make(map[Operation]error),
	}
}

var _ usecases.Sensor = (*Simulated)(nil)

// Simulated is an in-memory fingerprint module. A finger is an opaque
// string; two captures of the same string produce matching templates.
// It is safe for use from the control loop and a bench command listener.
type Simulated struct {
	mu        sync.Mutex
	capacity  int
	connected bool
	finger    string
	image     string
	buffers   [2]string
	model     string
	store     map[domain.BiometricID]string
	failures  map[Operation]domain.SensorStatus
	faults    map[Operation]error
}

func (s *Simulated) PlaceFinger(finger string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finger = finger
}

func (s *Simulated) RemoveFinger() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finger = ""
}

// FailNext makes the next call of op answer with status.
func (s *Simulated) FailNext(op Operation, status domain.SensorStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = status
}

// FaultNext makes the next call of op return a transport error.
func (s *Simulated) FaultNext(op Operation, err error) {
	if err == nil {
		err = ErrBusFault
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults[op] = err
}

func (s *Simulated) SetConnected(connected bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connected = connected
}

// Enroll stores finger at id directly, bypassing the capture steps.
func (s *Simulated) Enroll(id domain.BiometricID, finger string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.validSlot(id) {
		return fmt.Errorf("slot %d outside 1..%d", id, s.capacity)
	}
	s.store[id] = finger
	return nil
}

func (s *Simulated) Stored(id domain.BiometricID) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	finger, ok := s.store[id]
	return finger, ok
}

func (s *Simulated) VerifyPassword() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFault(OperationVerifyPassword); err != nil {
		return false, err
	}
	if status, ok := s.takeFailure(OperationVerifyPassword); ok {
		return status.OK(), nil
	}
	return s.connected, nil
}

func (s *Simulated) CaptureImage() (domain.SensorStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.precheck(OperationCaptureImage); err != nil {
		return domain.SensorPacketError, err
	}
	if status, ok := s.takeFailure(OperationCaptureImage); ok {
		return status, nil
	}
	if s.finger == "" {
		return domain.SensorNoFinger, nil
	}
	s.image = s.finger
	return domain.SensorOK, nil
}

func (s *Simulated) ImageToTemplate(slot domain.BufferSlot) (domain.SensorStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.precheck(OperationImageToTemplate); err != nil {
		return domain.SensorPacketError, err
	}
	if slot != domain.BufferSlot1 && slot != domain.BufferSlot2 {
		return domain.SensorPacketError, fmt.Errorf("unknown buffer slot %d", slot)
	}
	if status, ok := s.takeFailure(OperationImageToTemplate); ok {
		return status, nil
	}
	if s.image == "" {
		return domain.SensorImageFail, nil
	}
	s.buffers[slot-1] = s.image
	return domain.SensorOK, nil
}

func (s *Simulated) FastSearch() (domain.SearchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.precheck(OperationFastSearch); err != nil {
		return domain.NotFound(), err
	}
	if _, ok := s.takeFailure(OperationFastSearch); ok {
		return domain.NotFound(), nil
	}

	template := s.buffers[0]
	if template == "" {
		return domain.NotFound(), nil
	}
	for id := domain.BiometricID(1); int(id) <= s.capacity; id++ {
		if s.store[id] == template {
			return domain.SearchResult{Found: true, ID: id, Score: _matchScore}, nil
		}
	}
	return domain.NotFound(), nil
}

func (s *Simulated) BuildModel() (domain.SensorStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.precheck(OperationBuildModel); err != nil {
		return domain.SensorPacketError, err
	}
	if status, ok := s.takeFailure(OperationBuildModel); ok {
		return status, nil
	}
	if s.buffers[0] == "" || s.buffers[0] != s.buffers[1] {
		return domain.SensorEnrollMismatch, nil
	}
	s.model = s.buffers[0]
	return domain.SensorOK, nil
}

func (s *Simulated) StoreModel(id domain.BiometricID) (domain.SensorStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.precheck(OperationStoreModel); err != nil {
		return domain.SensorPacketError, err
	}
	if status, ok := s.takeFailure(OperationStoreModel); ok {
		return status, nil
	}
	if !s.validSlot(id) {
		return domain.SensorBadLocation, nil
	}
	if s.model == "" {
		return domain.SensorFlashError, nil
	}
	s.store[id] = s.model
	slog.Debug("simulated sensor stored model", slog.Int("biometric_id", int(id)))
	return domain.SensorOK, nil
}

func (s *Simulated) precheck(op Operation) error {
	if err := s.takeFault(op); err != nil {
		return err
	}
	if !s.connected {
		return fmt.Errorf("%s: %w", op, domain.ErrSensorUnavailable)
	}
	return nil
}

func (s *Simulated) takeFault(op Operation) error {
	err, ok := s.faults[op]
	if !ok {
		return nil
	}
	delete(s.faults, op)
	return fmt.Errorf("%s: %w", op, err)
}

func (s *Simulated) takeFailure(op Operation) (domain.SensorStatus, bool) {
	status, ok := s.failures[op]
	if ok {
		delete(s.failures, op)
	}
	return status, ok
}

func (s *Simulated) validSlot(id domain.BiometricID) bool {
	return id >= 1 && int(id) <= s.capacity
}
