package httpapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"biometric-terminal/internal/terminal/domain"
	"biometric-terminal/internal/terminal/httpapi"
	"biometric-terminal/internal/terminal/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("StatusController", func() {
	var (
		board    *usecases.StatusBoard
		router   *http.ServeMux
		recorder *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		board = usecases.NewStatusBoard()
		router = http.NewServeMux()
		httpapi.NewStatusController(board).AddRoutes(router)
		recorder = httptest.NewRecorder()
	})

	When("the controller has not published yet", func() {
		It("should answer service unavailable", func() {
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/status", nil))

			Expect(recorder.Code).To(Equal(http.StatusServiceUnavailable))
		})
	})

	When("the terminal is idle", func() {
		It("should render the snapshot without a target", func() {
			board.Publish(usecases.StatusSnapshot{
				DeviceID:        "ESP32-001",
				State:           domain.StateIdle,
				SensorAvailable: true,
				Display:         domain.NewScreen("MODO ASISTENCIA", "Coloque Dedo..."),
				UpdatedAt:       time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC),
			})

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/status", nil))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(MatchJSON(`{
				"device_id": "ESP32-001",
				"state": "idle",
				"target_id": null,
				"sensor_available": true,
				"last_poll": null,
				"display": {"line1": "MODO ASISTENCIA", "line2": "Coloque Dedo..."},
				"updated_at": "2026-03-02T08:00:00Z"
			}`))
		})
	})

	When("the terminal is enrolling", func() {
		It("should include the target slot and the current step", func() {
			target := domain.BiometricID(7)
			lastPoll := time.Date(2026, 3, 2, 8, 0, 5, 0, time.UTC)
			board.Publish(usecases.StatusSnapshot{
				DeviceID:  "ESP32-001",
				State:     domain.StateEnrolling,
				TargetID:  &target,
				Step:      "await_removal",
				LastPoll:  lastPoll,
				UpdatedAt: lastPoll,
			})

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/status", nil))

			var body map[string]any
			Expect(json.Unmarshal(recorder.Body.Bytes(), &body)).To(Succeed())
			Expect(body).To(HaveKeyWithValue("state", "enrolling"))
			Expect(body).To(HaveKeyWithValue("target_id", BeNumerically("==", 7)))
			Expect(body).To(HaveKeyWithValue("step", "await_removal"))
			Expect(body).To(HaveKeyWithValue("last_poll", "2026-03-02T08:00:05Z"))
		})
	})
})
