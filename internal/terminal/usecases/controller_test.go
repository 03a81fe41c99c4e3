package usecases_test

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"biometric-terminal/internal/terminal/domain"
	"biometric-terminal/internal/terminal/usecases"
	usecases_mocks "biometric-terminal/test/unit/doubles/terminal/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("Controller", func() {
	var (
		ctrl       *gomock.Controller
		sensor     *usecases_mocks.MockSensor
		remote     *usecases_mocks.MockRemoteClient
		publisher  *usecases_mocks.MockEventPublisher
		display    *displayRecorder
		events     *eventRecorder
		clock      *fakeClock
		board      *usecases.StatusBoard
		config     usecases.ControllerConfig
		controller *usecases.Controller
		ctx        context.Context
	)

	tick := func() time.Duration {
		return controller.Tick(ctx, clock.Now())
	}

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		sensor = usecases_mocks.NewMockSensor(ctrl)
		remote = usecases_mocks.NewMockRemoteClient(ctrl)
		publisher = usecases_mocks.NewMockEventPublisher(ctrl)
		display = &displayRecorder{}
		events = &eventRecorder{}
		clock = &fakeClock{now: time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)}
		board = usecases.NewStatusBoard()
		ctx = context.Background()

		config = usecases.DefaultControllerConfig()
		config.DeviceID = "ESP32-001"

		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(events.record).AnyTimes()
	})

	JustBeforeEach(func() {
		var err error
		controller, err = usecases.NewController(config, sensor, display, remote, publisher, clock, board)
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("Start", func() {
		When("the sensor answers the handshake", func() {
			It("should report the sensor as available and then show the idle screen", func() {
				sensor.EXPECT().VerifyPassword().Return(true, nil)

				controller.Start(ctx)

				Expect(controller.SensorAvailable()).To(BeTrue())
				Expect(display.screens).To(Equal([]domain.Screen{
					screen("Iniciando...", "Cargando Sistema"),
					screen("Chequeo Sistema", "Sensor: OK"),
				}))

				clock.Advance(config.MessageHold)
				remote.EXPECT().PollCommand(gomock.Any()).Return(nil, nil)
				sensor.EXPECT().CaptureImage().Return(domain.SensorNoFinger, nil)
				tick()

				Expect(display.Last()).To(Equal(screen("MODO ASISTENCIA", "Coloque Dedo...")))
			})
		})

		When("the sensor is not found", func() {
			It("should keep running in degraded mode without scanning", func() {
				sensor.EXPECT().VerifyPassword().Return(false, nil)

				controller.Start(ctx)

				Expect(controller.SensorAvailable()).To(BeFalse())
				Expect(display.Last()).To(Equal(screen("ERROR FATAL", "Sensor Ausente")))

				clock.Advance(config.MessageHold)
				remote.EXPECT().PollCommand(gomock.Any()).Return(nil, nil)
				delay := tick()

				Expect(delay).To(Equal(config.TickInterval))
				Expect(controller.State().IsIdle()).To(BeTrue())
			})
		})

		When("the sensor handshake fails", func() {
			It("should ask to check the wiring", func() {
				sensor.EXPECT().VerifyPassword().Return(false, errors.New("uart read timeout"))

				controller.Start(ctx)

				Expect(controller.SensorAvailable()).To(BeFalse())
				Expect(display.Last()).To(Equal(screen("Excepcion", "Verificar Cables")))
			})
		})
	})

	Context("Idle", func() {
		JustBeforeEach(func() {
			sensor.EXPECT().VerifyPassword().Return(true, nil)
			controller.Start(ctx)
			clock.Advance(config.MessageHold)
			display.Reset()
		})

		When("no command is pending and no finger is present", func() {
			It("should only poll and stay idle", func() {
				remote.EXPECT().PollCommand(gomock.Any()).Return(nil, nil).Times(1)
				sensor.EXPECT().CaptureImage().Return(domain.SensorNoFinger, nil)

				delay := tick()

				Expect(delay).To(Equal(50 * time.Millisecond))
				Expect(controller.State().IsIdle()).To(BeTrue())
				Expect(controller.LastPoll()).To(Equal(clock.Now()))
				Expect(display.Last()).To(Equal(screen("MODO ASISTENCIA", "Coloque Dedo...")))
			})
		})

		When("the poll interval has not elapsed", func() {
			It("should poll only when strictly more than the interval has passed", func() {
				remote.EXPECT().PollCommand(gomock.Any()).Return(nil, nil).Times(2)
				sensor.EXPECT().CaptureImage().Return(domain.SensorNoFinger, nil).Times(3)

				tick()
				firstPoll := clock.Now()

				clock.Advance(config.PollInterval)
				tick()
				Expect(controller.LastPoll()).To(Equal(firstPoll))

				clock.Advance(time.Millisecond)
				tick()
				Expect(controller.LastPoll()).To(Equal(clock.Now()))
			})
		})

		When("the poll fails with a network error", func() {
			It("should swallow the error, keep the state and still update the poll timestamp", func() {
				remote.EXPECT().PollCommand(gomock.Any()).Return(nil, errors.New("dial tcp: connection refused"))
				sensor.EXPECT().CaptureImage().Return(domain.SensorNoFinger, nil).Times(2)

				delay := tick()

				Expect(delay).To(Equal(config.TickInterval))
				Expect(controller.State().IsIdle()).To(BeTrue())
				Expect(controller.LastPoll()).To(Equal(clock.Now()))

				clock.Advance(config.TickInterval)
				Expect(tick()).To(Equal(config.TickInterval))
			})
		})

		When("an ENROLL command is pending", func() {
			It("should start enrolling the given slot and acknowledge the command", func() {
				remote.EXPECT().PollCommand(gomock.Any()).Return(enrollCommand("cmd-42", 7), nil)
				remote.EXPECT().UpdateCommandStatus(gomock.Any(), domain.CommandStatusUpdate{
					CommandID: "cmd-42",
					Status:    domain.CommandStatusProcessing,
				}).Return(nil)

				tick()

				target, ok := controller.State().TargetID()
				Expect(ok).To(BeTrue())
				Expect(target).To(Equal(domain.BiometricID(7)))
				Expect(display.Last()).To(Equal(screen("NUEVO REGISTRO", "ID Asignado: 7")))
				Expect(events.OfType(usecases.EventStateChanged)).To(HaveLen(1))

				snapshot := board.Snapshot()
				Expect(snapshot.State).To(Equal(domain.StateEnrolling))
				Expect(*snapshot.TargetID).To(Equal(domain.BiometricID(7)))
				Expect(snapshot.Step).To(Equal("await_first_finger"))
			})
		})

		When("an ENROLL command has no biometric id", func() {
			It("should reject it and report the failure", func() {
				var update domain.CommandStatusUpdate
				remote.EXPECT().PollCommand(gomock.Any()).Return(&domain.Command{ID: "cmd-9", Type: domain.CommandTypeEnroll}, nil)
				remote.EXPECT().UpdateCommandStatus(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u domain.CommandStatusUpdate) error {
						update = u
						return nil
					})

				tick()

				Expect(controller.State().IsIdle()).To(BeTrue())
				Expect(update.CommandID).To(Equal("cmd-9"))
				Expect(update.Status).To(Equal(domain.CommandStatusFailed))
				Expect(update.Result).To(ContainSubstring("missing biometric_id"))
				Expect(display.Last()).To(Equal(screen("Error Comando", "ID Invalido")))
			})
		})

		When("an unknown command type is pending", func() {
			It("should ignore it", func() {
				remote.EXPECT().PollCommand(gomock.Any()).Return(&domain.Command{ID: "cmd-3", Type: "REBOOT"}, nil)
				sensor.EXPECT().CaptureImage().Return(domain.SensorNoFinger, nil)

				tick()

				Expect(controller.State().IsIdle()).To(BeTrue())
			})
		})

		Context("identification", func() {
			BeforeEach(func() {
				remote.EXPECT().PollCommand(gomock.Any()).Return(nil, nil).AnyTimes()
			})

			When("a known finger is scanned", func() {
				It("should send exactly one attendance event and greet the user", func() {
					sensor.EXPECT().CaptureImage().Return(domain.SensorOK, nil)
					sensor.EXPECT().ImageToTemplate(domain.BufferSlot1).Return(domain.SensorOK, nil)
					sensor.EXPECT().FastSearch().Return(domain.SearchResult{Found: true, ID: 3, Score: 120}, nil)
					remote.EXPECT().ReportAttendance(gomock.Any(), domain.AttendanceEvent{BiometricID: 3, DeviceID: "ESP32-001"}).
						Return(domain.AttendanceResult{Name: "Ana Torres", Type: "entrada"}, nil).Times(1)

					tick()

					Expect(display.screens).To(ContainElements(
						screen("Leyendo Huella", "Identificando..."),
						screen("Procesando...", "Espere por favor"),
					))
					Expect(display.Last()).To(Equal(screen("HOLA Ana Torres", "Registro Exitoso")))

					reported := events.OfType(usecases.EventAttendanceReported)
					Expect(reported).To(HaveLen(1))
					Expect(reported[0].Outcome).To(Equal("success"))
					Expect(reported[0].RecordType).To(Equal("entrada"))
				})

				It("should keep the greeting on screen for the settle delay", func() {
					sensor.EXPECT().CaptureImage().Return(domain.SensorOK, nil)
					sensor.EXPECT().ImageToTemplate(domain.BufferSlot1).Return(domain.SensorOK, nil)
					sensor.EXPECT().FastSearch().Return(domain.SearchResult{Found: true, ID: 3}, nil)
					remote.EXPECT().ReportAttendance(gomock.Any(), gomock.Any()).Return(domain.AttendanceResult{Name: "Ana Torres"}, nil)
					tick()

					clock.Advance(config.GreetingHold - time.Millisecond)
					tick()
					Expect(display.Last()).To(Equal(screen("HOLA Ana Torres", "Registro Exitoso")))

					clock.Advance(time.Millisecond)
					sensor.EXPECT().CaptureImage().Return(domain.SensorNoFinger, nil)
					tick()
					Expect(display.Last()).To(Equal(screen("MODO ASISTENCIA", "Coloque Dedo...")))
				})

				It("should truncate long names to the display width", func() {
					sensor.EXPECT().CaptureImage().Return(domain.SensorOK, nil)
					sensor.EXPECT().ImageToTemplate(domain.BufferSlot1).Return(domain.SensorOK, nil)
					sensor.EXPECT().FastSearch().Return(domain.SearchResult{Found: true, ID: 11}, nil)
					remote.EXPECT().ReportAttendance(gomock.Any(), gomock.Any()).
						Return(domain.AttendanceResult{Name: "Maria Guadalupe Hernandez", Type: "Salida"}, nil)

					tick()

					Expect(display.Last()).To(Equal(screen("HOLA Maria Guada", "Registro Exitoso")))
					for _, shown := range display.screens {
						Expect(utf8.RuneCountInString(shown.Line1)).To(BeNumerically("<=", domain.DisplayColumns))
						Expect(utf8.RuneCountInString(shown.Line2)).To(BeNumerically("<=", domain.DisplayColumns))
					}
				})
			})

			When("the attendance service answers with an error status", func() {
				It("should show the status code", func() {
					sensor.EXPECT().CaptureImage().Return(domain.SensorOK, nil)
					sensor.EXPECT().ImageToTemplate(domain.BufferSlot1).Return(domain.SensorOK, nil)
					sensor.EXPECT().FastSearch().Return(domain.SearchResult{Found: true, ID: 5}, nil)
					remote.EXPECT().ReportAttendance(gomock.Any(), gomock.Any()).
						Return(domain.AttendanceResult{}, &domain.RemoteStatusError{Operation: "attendance", StatusCode: 400})

					tick()

					Expect(display.Last()).To(Equal(screen("Error Servidor", "Codigo: 400")))
				})
			})

			When("the attendance service cannot be reached", func() {
				It("should show a connectivity error", func() {
					sensor.EXPECT().CaptureImage().Return(domain.SensorOK, nil)
					sensor.EXPECT().ImageToTemplate(domain.BufferSlot1).Return(domain.SensorOK, nil)
					sensor.EXPECT().FastSearch().Return(domain.SearchResult{Found: true, ID: 5}, nil)
					remote.EXPECT().ReportAttendance(gomock.Any(), gomock.Any()).
						Return(domain.AttendanceResult{}, errors.New("context deadline exceeded"))

					tick()

					Expect(display.Last()).To(Equal(screen("Error de Red", "Sin conexion")))
				})
			})

			When("the finger is not enrolled", func() {
				It("should deny access without reporting attendance", func() {
					sensor.EXPECT().CaptureImage().Return(domain.SensorOK, nil)
					sensor.EXPECT().ImageToTemplate(domain.BufferSlot1).Return(domain.SensorOK, nil)
					sensor.EXPECT().FastSearch().Return(domain.NotFound(), nil)

					tick()

					Expect(display.Last()).To(Equal(screen("ACCESO DENEGADO", "Huella No Valida")))

					clock.Advance(config.DeniedHold)
					sensor.EXPECT().CaptureImage().Return(domain.SensorNoFinger, nil)
					tick()
					Expect(display.Last()).To(Equal(screen("MODO ASISTENCIA", "Coloque Dedo...")))
				})
			})

			When("the image cannot be converted", func() {
				It("should end the pass silently", func() {
					sensor.EXPECT().CaptureImage().Return(domain.SensorOK, nil)
					sensor.EXPECT().ImageToTemplate(domain.BufferSlot1).Return(domain.SensorImageMessy, nil)

					delay := tick()

					Expect(delay).To(Equal(config.TickInterval))
					Expect(display.screens).ToNot(ContainElement(screen("Leyendo Huella", "Identificando...")))
				})
			})

			When("the sensor bus fails", func() {
				It("should cool down instead of stopping", func() {
					sensor.EXPECT().CaptureImage().Return(domain.SensorOK, errors.New("uart read timeout"))

					delay := tick()

					Expect(delay).To(Equal(config.ErrorCooldown))
					Expect(controller.State().IsIdle()).To(BeTrue())
				})
			})

			When("the search fails after the reading notice", func() {
				It("should replace the notice and bring the idle screen back after the cooldown", func() {
					sensor.EXPECT().CaptureImage().Return(domain.SensorOK, nil)
					sensor.EXPECT().ImageToTemplate(domain.BufferSlot1).Return(domain.SensorOK, nil)
					sensor.EXPECT().FastSearch().Return(domain.SearchResult{}, errors.New("uart checksum mismatch"))

					Expect(tick()).To(Equal(config.ErrorCooldown))
					Expect(display.Last()).To(Equal(screen("Excepcion", "Verificar Cables")))

					clock.Advance(config.ErrorCooldown - time.Millisecond)
					tick()
					Expect(display.Last()).To(Equal(screen("Excepcion", "Verificar Cables")))

					clock.Advance(time.Millisecond)
					sensor.EXPECT().CaptureImage().Return(domain.SensorNoFinger, nil)
					tick()
					Expect(display.Last()).To(Equal(screen("MODO ASISTENCIA", "Coloque Dedo...")))
				})
			})

			When("the sensor stops answering", func() {
				It("should mark it unavailable and stop scanning", func() {
					sensor.EXPECT().CaptureImage().Return(domain.SensorOK, fmt.Errorf("capture_image: %w", domain.ErrSensorUnavailable))

					Expect(tick()).To(Equal(config.ErrorCooldown))
					Expect(controller.SensorAvailable()).To(BeFalse())
					Expect(display.Last()).To(Equal(screen("Error Sensor", "No Disponible")))
					Expect(board.Snapshot().SensorAvailable).To(BeFalse())

					clock.Advance(config.MessageHold)
					Expect(tick()).To(Equal(config.TickInterval))
					Expect(display.Last()).To(Equal(screen("MODO ASISTENCIA", "Coloque Dedo...")))
				})
			})

			When("a behavior panics", func() {
				It("should recover, cool down and return to the idle screen", func() {
					sensor.EXPECT().CaptureImage().DoAndReturn(func() (domain.SensorStatus, error) {
						panic("driver bug")
					})

					delay := tick()

					Expect(delay).To(Equal(config.ErrorCooldown))
					Expect(display.Last()).To(Equal(screen("Excepcion", "Verificar Cables")))

					clock.Advance(config.ErrorCooldown)
					sensor.EXPECT().CaptureImage().Return(domain.SensorNoFinger, nil)
					tick()
					Expect(display.Last()).To(Equal(screen("MODO ASISTENCIA", "Coloque Dedo...")))
				})
			})
		})
	})

	Context("Enrolling", func() {
		var statusUpdates []domain.CommandStatusUpdate

		JustBeforeEach(func() {
			statusUpdates = nil
			sensor.EXPECT().VerifyPassword().Return(true, nil)
			controller.Start(ctx)
			clock.Advance(config.MessageHold)

			remote.EXPECT().PollCommand(gomock.Any()).Return(enrollCommand("cmd-42", 7), nil).Times(1)
			remote.EXPECT().UpdateCommandStatus(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, u domain.CommandStatusUpdate) error {
					statusUpdates = append(statusUpdates, u)
					return nil
				}).AnyTimes()
			tick()
			clock.Advance(config.MessageHold)
		})

		captureFirst := func() {
			sensor.EXPECT().CaptureImage().Return(domain.SensorOK, nil)
			sensor.EXPECT().ImageToTemplate(domain.BufferSlot1).Return(domain.SensorOK, nil)
			tick()
		}

		removeFinger := func() {
			clock.Advance(config.RemovalDelay)
			sensor.EXPECT().CaptureImage().Return(domain.SensorNoFinger, nil)
			tick()
		}

		When("no finger has been placed yet", func() {
			It("should keep waiting on the first capture without polling", func() {
				sensor.EXPECT().CaptureImage().Return(domain.SensorNoFinger, nil).Times(3)

				for i := 0; i < 3; i++ {
					clock.Advance(config.PollInterval)
					tick()
				}

				Expect(controller.State().IsEnrolling()).To(BeTrue())
				Expect(controller.State().Enrollment.Step).To(Equal(domain.StepAwaitFirstFinger))
				Expect(display.Last()).To(Equal(screen("REGISTRO HUELLA", "Coloque Dedo...")))
			})
		})

		When("all five steps succeed", func() {
			It("should store the model at the target slot and return to idle", func() {
				captureFirst()
				Expect(controller.State().Enrollment.Step).To(Equal(domain.StepAwaitRemoval))
				Expect(display.Last()).To(Equal(screen("REGISTRO HUELLA", "Retire el dedo")))

				clock.Advance(config.TickInterval)
				tick()
				Expect(controller.State().Enrollment.Step).To(Equal(domain.StepAwaitRemoval))

				removeFinger()
				Expect(controller.State().Enrollment.Step).To(Equal(domain.StepAwaitSecondFinger))
				Expect(display.Last()).To(Equal(screen("REGISTRO HUELLA", "Poner el MISMO")))

				sensor.EXPECT().CaptureImage().Return(domain.SensorOK, nil)
				sensor.EXPECT().ImageToTemplate(domain.BufferSlot2).Return(domain.SensorOK, nil)
				sensor.EXPECT().BuildModel().Return(domain.SensorOK, nil)
				sensor.EXPECT().StoreModel(domain.BiometricID(7)).Return(domain.SensorOK, nil)
				clock.Advance(config.TickInterval)
				tick()

				Expect(controller.State().IsIdle()).To(BeTrue())
				Expect(display.Last()).To(Equal(screen("REGISTRO EXITOSO", "ID Guardado: 7")))
				Expect(statusUpdates).To(Equal([]domain.CommandStatusUpdate{
					{CommandID: "cmd-42", Status: domain.CommandStatusProcessing},
					{CommandID: "cmd-42", Status: domain.CommandStatusCompleted, Result: "stored:7"},
				}))

				finished := events.OfType(usecases.EventEnrollmentFinished)
				Expect(finished).To(HaveLen(1))
				Expect(finished[0].Outcome).To(Equal("completed"))
			})
		})

		When("the finger is not lifted", func() {
			It("should stay on the removal step", func() {
				captureFirst()

				clock.Advance(config.RemovalDelay)
				sensor.EXPECT().CaptureImage().Return(domain.SensorOK, nil).Times(2)
				tick()
				clock.Advance(config.TickInterval)
				tick()

				Expect(controller.State().Enrollment.Step).To(Equal(domain.StepAwaitRemoval))
			})
		})

		When("the first image cannot be converted", func() {
			It("should abort to idle with a read error", func() {
				sensor.EXPECT().CaptureImage().Return(domain.SensorOK, nil)
				sensor.EXPECT().ImageToTemplate(domain.BufferSlot1).Return(domain.SensorFeatureFail, nil)

				tick()

				Expect(controller.State().IsIdle()).To(BeTrue())
				Expect(display.Last()).To(Equal(screen("Error Lectura", "Intente de nuevo")))
				Expect(statusUpdates[len(statusUpdates)-1].Status).To(Equal(domain.CommandStatusFailed))
			})
		})

		When("the second image cannot be converted", func() {
			It("should abort to idle", func() {
				captureFirst()
				removeFinger()

				sensor.EXPECT().CaptureImage().Return(domain.SensorOK, nil)
				sensor.EXPECT().ImageToTemplate(domain.BufferSlot2).Return(domain.SensorImageMessy, nil)
				tick()

				Expect(controller.State().IsIdle()).To(BeTrue())
				Expect(display.Last()).To(Equal(screen("Error Lectura", "No coincide")))
			})
		})

		When("the two captures are different fingers", func() {
			It("should abort without storing anything", func() {
				captureFirst()
				removeFinger()

				sensor.EXPECT().CaptureImage().Return(domain.SensorOK, nil)
				sensor.EXPECT().ImageToTemplate(domain.BufferSlot2).Return(domain.SensorOK, nil)
				sensor.EXPECT().BuildModel().Return(domain.SensorEnrollMismatch, nil)
				sensor.EXPECT().StoreModel(gomock.Any()).Times(0)
				tick()

				Expect(controller.State().IsIdle()).To(BeTrue())
				Expect(display.Last()).To(Equal(screen("Error Modelo", "Huellas distinta")))
				last := statusUpdates[len(statusUpdates)-1]
				Expect(last.Status).To(Equal(domain.CommandStatusFailed))
				Expect(last.Result).To(Equal("build_model:enroll_mismatch"))
			})
		})

		When("the sensor cannot store the model", func() {
			It("should report a storage failure and return to idle", func() {
				captureFirst()
				removeFinger()

				sensor.EXPECT().CaptureImage().Return(domain.SensorOK, nil)
				sensor.EXPECT().ImageToTemplate(domain.BufferSlot2).Return(domain.SensorOK, nil)
				sensor.EXPECT().BuildModel().Return(domain.SensorOK, nil)
				sensor.EXPECT().StoreModel(domain.BiometricID(7)).Return(domain.SensorFlashError, nil)
				tick()

				Expect(controller.State().IsIdle()).To(BeTrue())
				Expect(display.Last()).To(Equal(screen("Error Guardado", "Fallo Memoria")))

				clock.Advance(config.ResultHold + config.PollInterval)
				remote.EXPECT().PollCommand(gomock.Any()).Return(nil, nil)
				sensor.EXPECT().CaptureImage().Return(domain.SensorNoFinger, nil)
				tick()
				Expect(display.Last()).To(Equal(screen("MODO ASISTENCIA", "Coloque Dedo...")))
			})
		})

		When("the user never places a finger", func() {
			It("should give up after the enrollment timeout", func() {
				clock.Advance(config.EnrollTimeout + time.Millisecond)
				tick()

				Expect(controller.State().IsIdle()).To(BeTrue())
				Expect(display.Last()).To(Equal(screen("TIEMPO AGOTADO", "Reintente luego")))
				last := statusUpdates[len(statusUpdates)-1]
				Expect(last.Status).To(Equal(domain.CommandStatusFailed))
				Expect(last.Result).To(Equal("timeout:await_first_finger"))
			})
		})

		When("the sensor bus fails mid enrollment", func() {
			It("should cool down and keep the session", func() {
				sensor.EXPECT().CaptureImage().Return(domain.SensorOK, errors.New("uart read timeout"))

				Expect(tick()).To(Equal(config.ErrorCooldown))
				Expect(controller.State().IsEnrolling()).To(BeTrue())
				Expect(display.Last()).To(Equal(screen("Excepcion", "Verificar Cables")))

				clock.Advance(config.ErrorCooldown)
				sensor.EXPECT().CaptureImage().Return(domain.SensorNoFinger, nil)
				tick()
				Expect(display.Last()).To(Equal(screen("REGISTRO HUELLA", "Coloque Dedo...")))
			})
		})

		When("the sensor becomes unavailable mid enrollment", func() {
			BeforeEach(func() {
				config.EnrollTimeout = 0
			})

			It("should abort the session right away", func() {
				captureFirst()
				clock.Advance(config.RemovalDelay)
				sensor.EXPECT().CaptureImage().Return(domain.SensorOK, fmt.Errorf("capture_image: %w", domain.ErrSensorUnavailable))

				Expect(tick()).To(Equal(config.ErrorCooldown))

				Expect(controller.State().IsIdle()).To(BeTrue())
				Expect(controller.SensorAvailable()).To(BeFalse())
				Expect(display.Last()).To(Equal(screen("Error Sensor", "No Disponible")))
				last := statusUpdates[len(statusUpdates)-1]
				Expect(last.Status).To(Equal(domain.CommandStatusFailed))
				Expect(last.Result).To(Equal("sensor_unavailable"))

				remote.EXPECT().PollCommand(gomock.Any()).Return(nil, nil).AnyTimes()
				for i := 0; i < 300; i++ {
					clock.Advance(time.Second)
					tick()
				}
				Expect(controller.State().IsIdle()).To(BeTrue())
			})
		})
	})

	Context("health check", func() {
		BeforeEach(func() {
			config.HealthCheckSchedule = "@every 1m"
		})

		It("should mark the sensor unavailable and abort a running enrollment", func() {
			sensor.EXPECT().VerifyPassword().Return(true, nil)
			controller.Start(ctx)
			clock.Advance(config.MessageHold)

			remote.EXPECT().PollCommand(gomock.Any()).Return(enrollCommand("cmd-8", 2), nil)
			remote.EXPECT().UpdateCommandStatus(gomock.Any(), gomock.Any()).Return(nil).Times(2)
			tick()

			clock.Advance(time.Minute)
			sensor.EXPECT().VerifyPassword().Return(false, nil)
			tick()

			Expect(controller.SensorAvailable()).To(BeFalse())
			Expect(controller.State().IsIdle()).To(BeTrue())
			Expect(display.Last()).To(Equal(screen("Error Sensor", "No Disponible")))
		})
	})

	Context("NewController", func() {
		It("should reject an invalid health check schedule", func() {
			config.HealthCheckSchedule = "every now and then"
			_, err := usecases.NewController(config, sensor, display, remote, publisher, clock, board)
			Expect(err).To(HaveOccurred())
		})
	})
})
