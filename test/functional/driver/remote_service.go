package driver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
)

type StatusUpdate struct {
	CommandID string `json:"command_id"`
	Status    string `json:"status"`
	Result    string `json:"result,omitempty"`
}

type AttendancePost struct {
	BiometricID int    `json:"biometric_id"`
	DeviceID    string `json:"device_id"`
}

type attendee struct {
	name   string
	record string
}

// RemoteService is an in-process stand-in for the command and attendance
// service the terminal talks to.
type RemoteService struct {
	mu         sync.Mutex
	server     *httptest.Server
	commands   []map[string]any
	attendees  map[int]attendee
	rejectWith int
	polls      int
	updates    []StatusUpdate
	attendance []AttendancePost
}

func NewRemoteService() *RemoteService {
	service := &RemoteService{attendees: make(map[int]attendee)}

	router := http.NewServeMux()
	router.HandleFunc("GET /poll-commands", service.pollCommands)
	router.HandleFunc("POST /command-status", service.commandStatus)
	router.HandleFunc("POST /attendance", service.recordAttendance)
	service.server = httptest.NewServer(router)

	return service
}

func (s *RemoteService) URL() string {
	return s.server.URL
}

func (s *RemoteService) Close() {
	s.server.Close()
}

func (s *RemoteService) QueueEnroll(commandID string, biometricID *int) {
	payload := map[string]any{}
	if biometricID != nil {
		payload["biometric_id"] = *biometricID
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.commands = append(s.commands, map[string]any{
		"id":           commandID,
		"command_type": "ENROLL",
		"status":       "pending",
		"payload":      payload,
	})
}

func (s *RemoteService) AddAttendee(biometricID int, name, record string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attendees[biometricID] = attendee{name: name, record: record}
}

// RejectAttendance makes the attendance endpoint answer with status from
// now on.
func (s *RemoteService) RejectAttendance(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rejectWith = status
}

func (s *RemoteService) Polls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.polls
}

func (s *RemoteService) StatusUpdates() []StatusUpdate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]StatusUpdate(nil), s.updates...)
}

func (s *RemoteService) AttendancePosts() []AttendancePost {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]AttendancePost(nil), s.attendance...)
}

func (s *RemoteService) pollCommands(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.polls++

	if r.URL.Query().Get("device_id") == "" {
		replyError(w, "Missing device_id")
		return
	}
	if len(s.commands) == 0 {
		reply(w, map[string]any{"command": nil})
		return
	}

	cmd := s.commands[0]
	s.commands = s.commands[1:]
	reply(w, map[string]any{"command": cmd})
}

func (s *RemoteService) commandStatus(w http.ResponseWriter, r *http.Request) {
	var update StatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		replyError(w, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.updates = append(s.updates, update)
	reply(w, map[string]any{"success": true})
}

func (s *RemoteService) recordAttendance(w http.ResponseWriter, r *http.Request) {
	var post AttendancePost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		replyError(w, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.attendance = append(s.attendance, post)
	if s.rejectWith != 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(s.rejectWith)
		fmt.Fprintf(w, `{"error":"rejected with %d"}`, s.rejectWith)
		return
	}

	known, ok := s.attendees[post.BiometricID]
	if !ok {
		replyError(w, "User not found for this biometric ID")
		return
	}
	reply(w, map[string]any{"type": known.record, "name": known.name})
}

func reply(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(body)
}

func replyError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
