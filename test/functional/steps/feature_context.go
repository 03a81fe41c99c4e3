package steps

import (
	"bytes"
	"context"
	"time"

	"biometric-terminal/internal/infra/display"
	"biometric-terminal/internal/infra/remote"
	"biometric-terminal/internal/infra/sensor"
	"biometric-terminal/internal/terminal/usecases"
	"biometric-terminal/test/functional/driver"

	"github.com/cucumber/godog"
	"github.com/stretchr/testify/require"
)

const _deviceID = "ESP32-001"

type manualClock struct {
	now time.Time
}

func (c *manualClock) Now() time.Time {
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type FeatureContext struct {
	require *require.Assertions
	t       godog.TestingT

	service    *driver.RemoteService
	sensor     *sensor.Simulated
	screen     *bytes.Buffer
	display    *display.Console
	clock      *manualClock
	board      *usecases.StatusBoard
	config     usecases.ControllerConfig
	controller *usecases.Controller
}

func NewFeatureContext() *FeatureContext {
	return &FeatureContext{}
}

func (fc *FeatureContext) RegisterSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the sensor is unplugged$`, fc.theSensorIsUnplugged)
	ctx.Given(`^the fingerprint "([^"]*)" is stored in slot (\d+)$`, fc.theFingerprintIsStoredInSlot)
	ctx.Given(`^the attendance service knows slot (\d+) as "([^"]*)"$`, fc.theAttendanceServiceKnowsSlotAs)
	ctx.Given(`^the attendance service answers with status (\d+)$`, fc.theAttendanceServiceAnswersWithStatus)
	ctx.Given(`^the remote service is unreachable$`, fc.theRemoteServiceIsUnreachable)
	ctx.Given(`^an ENROLL command "([^"]*)" for slot (\d+) is pending$`, fc.anEnrollCommandForSlotIsPending)
	ctx.Given(`^an ENROLL command "([^"]*)" without a biometric id is pending$`, fc.anEnrollCommandWithoutBiometricIDIsPending)
	ctx.Step(`^the terminal has started$`, fc.theTerminalHasStarted)

	ctx.When(`^"([^"]*)" places a finger on the sensor$`, fc.placesAFingerOnTheSensor)
	ctx.When(`^the finger is removed$`, fc.theFingerIsRemoved)
	ctx.When(`^the terminal runs for (\d+) (seconds?|milliseconds?)$`, fc.theTerminalRunsFor)

	ctx.Then(`^the display shows "([^"]*)" and "([^"]*)"$`, fc.theDisplayShows)
	ctx.Then(`^exactly (\d+) attendance reports? for slot (\d+) (?:was|were) sent$`, fc.exactlyAttendanceReportsWereSent)
	ctx.Then(`^the command "([^"]*)" was reported as "([^"]*)"$`, fc.theCommandWasReportedAs)
	ctx.Then(`^the command "([^"]*)" was reported as "([^"]*)" with result "([^"]*)"$`, fc.theCommandWasReportedAsWithResult)
	ctx.Then(`^the terminal is idle$`, fc.theTerminalIsIdle)
	ctx.Then(`^the terminal is enrolling slot (\d+)$`, fc.theTerminalIsEnrollingSlot)
	ctx.Then(`^slot (\d+) holds the fingerprint "([^"]*)"$`, fc.slotHoldsTheFingerprint)
	ctx.Then(`^slot (\d+) is empty$`, fc.slotIsEmpty)
	ctx.Then(`^the remote service received (\d+) polls?$`, fc.theRemoteServiceReceivedPolls)
	ctx.Then(`^the last poll time is recorded$`, fc.theLastPollTimeIsRecorded)

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.t = godog.T(ctx)
		fc.require = require.New(fc.t)
		fc.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		fc.service.Close()
		return ctx, nil
	})
}

func (fc *FeatureContext) reset() {
	fc.service = driver.NewRemoteService()
	fc.sensor = sensor.NewSimulated(0)
	fc.screen = &bytes.Buffer{}
	fc.display = display.NewConsole(fc.screen, 0)
	fc.clock = &manualClock{now: time.Date(2025, time.March, 3, 8, 0, 0, 0, time.UTC)}
	fc.board = usecases.NewStatusBoard()
	fc.controller = nil

	fc.config = usecases.DefaultControllerConfig()
	fc.config.DeviceID = _deviceID
}

func (fc *FeatureContext) remoteClient() *remote.Client {
	return remote.NewClient(remote.ClientConfig{
		BaseURL:  fc.service.URL(),
		DeviceID: _deviceID,
		Timeout:  2 * time.Second,
	})
}
