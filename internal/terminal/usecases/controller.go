package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"biometric-terminal/internal/infra/async"
	"biometric-terminal/internal/terminal/domain"

	"github.com/robfig/cron/v3"
)

const (
	_defaultTickInterval   = 50 * time.Millisecond
	_defaultPollInterval   = 5 * time.Second
	_defaultErrorCooldown  = time.Second
	_defaultEnrollTimeout  = time.Minute
	_defaultRemovalDelay   = 2 * time.Second
	_defaultDeniedHold     = 1500 * time.Millisecond
	_defaultGreetingHold   = 2500 * time.Millisecond
	_defaultMessageHold    = time.Second
	_defaultResultHold     = 2 * time.Second
	_defaultSensorCapacity = 127
)

type ControllerConfig struct {
	DeviceID      string
	TickInterval  time.Duration
	PollInterval  time.Duration
	ErrorCooldown time.Duration
	// EnrollTimeout bounds each enrollment wait step. Zero waits forever.
	EnrollTimeout  time.Duration
	RemovalDelay   time.Duration
	DeniedHold     time.Duration
	GreetingHold   time.Duration
	MessageHold    time.Duration
	ResultHold     time.Duration
	SensorCapacity int
	// HealthCheckSchedule is a cron spec for re-verifying the sensor. Empty
	// disables periodic checks.
	HealthCheckSchedule string
}

func DefaultControllerConfig() ControllerConfig {
	return ControllerConfig{
		TickInterval:   _defaultTickInterval,
		PollInterval:   _defaultPollInterval,
		ErrorCooldown:  _defaultErrorCooldown,
		EnrollTimeout:  _defaultEnrollTimeout,
		RemovalDelay:   _defaultRemovalDelay,
		DeniedHold:     _defaultDeniedHold,
		GreetingHold:   _defaultGreetingHold,
		MessageHold:    _defaultMessageHold,
		ResultHold:     _defaultResultHold,
		SensorCapacity: _defaultSensorCapacity,
	}
}

func NewController(
	config ControllerConfig,
	sensor Sensor,
	display Display,
	remote RemoteClient,
	publisher EventPublisher,
	clock Clock,
	board *StatusBoard,
) (*Controller, error) {
	var schedule cron.Schedule
	if config.HealthCheckSchedule != "" {
		parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
		parsed, err := parser.Parse(config.HealthCheckSchedule)
		if err != nil {
			return nil, fmt.Errorf("parsing health check schedule: %w", err)
		}
		schedule = parsed
	}
	if publisher == nil {
		publisher = noopPublisher{}
	}
	if board == nil {
		board = NewStatusBoard()
	}

	return &Controller{
		config:         config,
		sensor:         sensor,
		display:        display,
		remote:         remote,
		publisher:      publisher,
		clock:          clock,
		board:          board,
		metrics:        newControllerMetrics(),
		healthSchedule: schedule,
		state:          domain.IdleState(),
	}, nil
}

var _ async.Worker = (*Controller)(nil)

// Controller owns the terminal state and drives it one tick at a time.
// Every field is touched only by the goroutine calling Tick.
type Controller struct {
	config    ControllerConfig
	sensor    Sensor
	display   Display
	remote    RemoteClient
	publisher EventPublisher
	clock     Clock
	board     *StatusBoard
	metrics   *controllerMetrics

	state           domain.DeviceState
	lastPoll        time.Time
	pauseUntil      time.Time
	revertToIdle    bool
	sensorAvailable bool
	screen          domain.Screen
	healthSchedule  cron.Schedule
	nextHealthCheck time.Time
}

func (c *Controller) State() domain.DeviceState {
	return c.state
}

func (c *Controller) LastPoll() time.Time {
	return c.lastPoll
}

func (c *Controller) SensorAvailable() bool {
	return c.sensorAvailable
}

// Start runs the power-on sequence: it checks the sensor and leaves the
// check result on screen for a moment before the idle screen. A missing
// sensor does not stop the terminal, it keeps running without scanning.
func (c *Controller) Start(ctx context.Context) {
	now := c.clock.Now()
	c.show(screenStarting)
	c.sensorAvailable = c.verifySensor(true)
	if c.healthSchedule != nil {
		c.nextHealthCheck = c.healthSchedule.Next(now)
	}
	c.holdThenRevert(c.config.MessageHold)
	slog.Info("terminal started",
		slog.String("device_id", c.config.DeviceID),
		slog.Bool("sensor_available", c.sensorAvailable),
	)
	c.publishStatus(now)
}

func (c *Controller) Run(ctx context.Context, done func()) {
	slog.Debug("controller run with context initialized")
	defer done()

	c.Start(ctx)

	timer := time.NewTimer(0)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			slog.Info("controller cancelled")
			return
		case <-timer.C:
			delay := c.Tick(ctx, c.clock.Now())
			timer.Reset(delay)
		}
	}
}

func (c *Controller) Shutdown() {
	slog.Debug("controller shutdown")
	c.show(screenOutOfService)
}

// Tick runs one pass of the control loop and returns how long to wait
// before the next one. Errors never escape: they are logged and turned
// into the error cooldown.
func (c *Controller) Tick(ctx context.Context, now time.Time) (delay time.Duration) {
	c.metrics.record(ctx, _metricKeyTicks, "")
	defer func() {
		if r := recover(); r != nil {
			slog.Error("tick panicked", slog.String("state", c.state.String()), slog.Any("panic", r))
			c.metrics.record(ctx, _metricKeyTickErrors, "panic")
			c.show(screenSensorFault)
			c.holdThenRevert(c.config.ErrorCooldown)
			delay = c.config.ErrorCooldown
		}
		c.publishStatus(now)
	}()

	if err := c.step(ctx, now); err != nil {
		slog.Error("tick failed", slog.String("state", c.state.String()), slog.Any("error", err))
		c.metrics.record(ctx, _metricKeyTickErrors, "error")
		c.recoverFromError(ctx, err)
		return c.config.ErrorCooldown
	}
	return c.config.TickInterval
}

// recoverFromError leaves a notice on screen until the cooldown is over.
// A sensor that stopped answering is marked unavailable, which also ends an
// enrollment in progress.
func (c *Controller) recoverFromError(ctx context.Context, err error) {
	if !errors.Is(err, domain.ErrSensorUnavailable) {
		c.show(screenSensorFault)
		c.holdThenRevert(c.config.ErrorCooldown)
		return
	}

	c.sensorAvailable = false
	if c.state.IsEnrolling() {
		c.abortEnrollment(ctx, "sensor_unavailable", screenSensorUnavailable, c.config.MessageHold)
		return
	}
	c.show(screenSensorUnavailable)
	c.holdThenRevert(c.config.MessageHold)
}

func (c *Controller) step(ctx context.Context, now time.Time) error {
	if c.paused(now) {
		return nil
	}
	if c.revertToIdle {
		c.revertToIdle = false
		if c.state.IsIdle() {
			c.show(screenIdle)
		}
	}

	c.runHealthCheck(ctx, now)
	if c.paused(c.clock.Now()) {
		return nil
	}

	if c.state.IsEnrolling() {
		return c.advanceEnrollment(ctx, now)
	}
	return c.idle(ctx, now)
}

func (c *Controller) paused(now time.Time) bool {
	return now.Before(c.pauseUntil)
}

// holdThenRevert keeps the current screen for d, suspending every tick in
// the meantime, then shows the idle screen if the terminal is idle.
func (c *Controller) holdThenRevert(d time.Duration) {
	c.pauseUntil = c.clock.Now().Add(d)
	c.revertToIdle = true
}

// hold keeps the current screen for d without scheduling a revert.
func (c *Controller) hold(d time.Duration) {
	c.pauseUntil = c.clock.Now().Add(d)
}

func (c *Controller) show(screen domain.Screen) {
	if screen == c.screen {
		return
	}
	c.screen = screen
	c.display.Show(screen.Line1, screen.Line2)
}

func (c *Controller) transition(ctx context.Context, next domain.DeviceState) {
	previous := c.state
	c.state = next
	slog.Info("state changed",
		slog.String("from", previous.String()),
		slog.String("to", next.String()),
	)
	c.publish(ctx, TerminalEvent{Type: EventStateChanged, State: next.String()})
}

func (c *Controller) pushStatus(ctx context.Context, update domain.CommandStatusUpdate) {
	if err := c.remote.UpdateCommandStatus(ctx, update); err != nil {
		slog.Warn("updating command status",
			slog.String("command_id", update.CommandID),
			slog.String("status", string(update.Status)),
			slog.Any("error", err),
		)
	}
}

func (c *Controller) publish(ctx context.Context, event TerminalEvent) {
	event.DeviceID = c.config.DeviceID
	event.Timestamp = c.clock.Now()
	if err := c.publisher.Publish(ctx, event); err != nil {
		slog.Warn("publishing terminal event", slog.String("type", string(event.Type)), slog.Any("error", err))
	}
}

func (c *Controller) publishStatus(now time.Time) {
	snapshot := StatusSnapshot{
		DeviceID:        c.config.DeviceID,
		State:           c.state.Kind(),
		SensorAvailable: c.sensorAvailable,
		LastPoll:        c.lastPoll,
		Display:         c.screen,
		UpdatedAt:       now,
	}
	if enrollment := c.state.Enrollment; enrollment != nil {
		target := enrollment.TargetID
		snapshot.TargetID = &target
		snapshot.Step = enrollment.Step.String()
	}
	c.board.Publish(snapshot)
}
