package domain

import "fmt"

// SensorStatus is the confirmation code returned by the fingerprint module.
type SensorStatus uint8

const (
	SensorOK             SensorStatus = 0x00
	SensorPacketError    SensorStatus = 0x01
	SensorNoFinger       SensorStatus = 0x02
	SensorImageFail      SensorStatus = 0x03
	SensorImageMessy     SensorStatus = 0x06
	SensorFeatureFail    SensorStatus = 0x07
	SensorNoMatch        SensorStatus = 0x08
	SensorNotFound       SensorStatus = 0x09
	SensorEnrollMismatch SensorStatus = 0x0A
	SensorBadLocation    SensorStatus = 0x0B
	SensorFlashError     SensorStatus = 0x18
)

func (s SensorStatus) OK() bool {
	return s == SensorOK
}

func (s SensorStatus) String() string {
	switch s {
	case SensorOK:
		return "ok"
	case SensorPacketError:
		return "packet_error"
	case SensorNoFinger:
		return "no_finger"
	case SensorImageFail:
		return "image_fail"
	case SensorImageMessy:
		return "image_messy"
	case SensorFeatureFail:
		return "feature_fail"
	case SensorNoMatch:
		return "no_match"
	case SensorNotFound:
		return "not_found"
	case SensorEnrollMismatch:
		return "enroll_mismatch"
	case SensorBadLocation:
		return "bad_location"
	case SensorFlashError:
		return "flash_error"
	}
	return fmt.Sprintf("0x%02x", uint8(s))
}

// BufferSlot is one of the two scratch character buffers of the sensor.
type BufferSlot uint8

const (
	BufferSlot1 BufferSlot = 1
	BufferSlot2 BufferSlot = 2
)

// SearchResult is the outcome of a fast search against the stored models.
type SearchResult struct {
	Found bool
	ID    BiometricID
	Score uint16
}

func NotFound() SearchResult {
	return SearchResult{Found: false, ID: -1}
}
