package domain

const (
	_defaultAttendeeName = "Usuario"
	_defaultRecordType   = "Registro"
)

// AttendanceEvent reports a successful identification.
type AttendanceEvent struct {
	BiometricID BiometricID
	DeviceID    string
}

// AttendanceResult is what the remote service answers for an accepted
// attendance event. Type is the record label, e.g. "Entrada" or "Salida".
type AttendanceResult struct {
	Name string
	Type string
}

// NewAttendanceResult fills the fields the service left out.
func NewAttendanceResult(name, recordType string) AttendanceResult {
	if name == "" {
		name = _defaultAttendeeName
	}
	if recordType == "" {
		recordType = _defaultRecordType
	}
	return AttendanceResult{Name: name, Type: recordType}
}
