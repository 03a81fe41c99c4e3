package wire

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"biometric-terminal/cmd/config"
	"biometric-terminal/internal/infra/display"
	"biometric-terminal/internal/infra/httpserver"
	"biometric-terminal/internal/infra/mqtt"
	"biometric-terminal/internal/infra/remote"
	"biometric-terminal/internal/infra/sensor"
	"biometric-terminal/internal/infra/telemetry"
	"biometric-terminal/internal/terminal/httpapi"
	"biometric-terminal/internal/terminal/usecases"
)

const (
	_sensorDriverSimulated = "simulated"
	_displayDriverConsole  = "console"
)

// Terminal groups what main needs to run the device.
type Terminal struct {
	Controller   *usecases.Controller
	StatusServer *httpserver.StandardServer
	Sensor       *sensor.Simulated
	Board        *usecases.StatusBoard
}

func newTerminal(
	controller *usecases.Controller,
	server *httpserver.StandardServer,
	simulated *sensor.Simulated,
	board *usecases.StatusBoard,
) *Terminal {
	return &Terminal{
		Controller:   controller,
		StatusServer: server,
		Sensor:       simulated,
		Board:        board,
	}
}

func provideAppConfig() config.AppConfig {
	return config.LoadConfig()
}

func provideControllerConfig(cfg config.AppConfig) usecases.ControllerConfig {
	controllerConfig := usecases.DefaultControllerConfig()
	controllerConfig.DeviceID = cfg.Device.ID
	controllerConfig.SensorCapacity = cfg.Sensor.Capacity
	controllerConfig.HealthCheckSchedule = cfg.Sensor.HealthCheckSchedule

	overrides := []struct {
		target *time.Duration
		value  time.Duration
	}{
		{&controllerConfig.TickInterval, cfg.Controller.TickInterval},
		{&controllerConfig.PollInterval, cfg.Controller.PollInterval},
		{&controllerConfig.ErrorCooldown, cfg.Controller.ErrorCooldown},
		{&controllerConfig.RemovalDelay, cfg.Controller.RemovalDelay},
		{&controllerConfig.DeniedHold, cfg.Controller.DeniedHold},
		{&controllerConfig.GreetingHold, cfg.Controller.GreetingHold},
		{&controllerConfig.MessageHold, cfg.Controller.MessageHold},
		{&controllerConfig.ResultHold, cfg.Controller.ResultHold},
	}
	for _, override := range overrides {
		if override.value > 0 {
			*override.target = override.value
		}
	}
	// zero is meaningful here: it disables the timeout
	controllerConfig.EnrollTimeout = cfg.Controller.EnrollTimeout

	return controllerConfig
}

func provideSimulatedSensor(cfg config.AppConfig) (*sensor.Simulated, error) {
	if cfg.Sensor.Driver != _sensorDriverSimulated {
		return nil, fmt.Errorf("unsupported sensor driver %q", cfg.Sensor.Driver)
	}
	return sensor.NewSimulated(cfg.Sensor.Capacity), nil
}

func provideConsoleDisplay(cfg config.AppConfig) (*display.Console, error) {
	if cfg.Display.Driver != _displayDriverConsole {
		return nil, fmt.Errorf("unsupported display driver %q", cfg.Display.Driver)
	}
	return display.NewConsole(os.Stdout, cfg.Display.Columns), nil
}

func provideRemoteClient(cfg config.AppConfig) *remote.Client {
	return remote.NewClient(remote.ClientConfig{
		BaseURL:  cfg.Remote.BaseURL,
		APIKey:   cfg.Remote.APIKey,
		DeviceID: cfg.Device.ID,
		Timeout:  cfg.Remote.Timeout,
	})
}

func provideCodec(cfg config.AppConfig) (telemetry.Codec, error) {
	return telemetry.NewCodec(cfg.Telemetry.Encoding)
}

// provideEventPublisher returns nil when telemetry is disabled; the
// controller then drops events.
func provideEventPublisher(cfg config.AppConfig, client mqtt.Client, codec telemetry.Codec) usecases.EventPublisher {
	if client == nil {
		return nil
	}
	return telemetry.NewEventPublisher(client, codec, cfg.Telemetry.TopicPrefix, cfg.Device.ID)
}

func provideClock() usecases.Clock {
	return usecases.SystemClock{}
}

func provideStatusServer(cfg config.AppConfig, statusController *httpapi.StatusController) *httpserver.StandardServer {
	if cfg.Status.Addr == "" {
		slog.Info("status server disabled")
		return nil
	}
	return httpserver.NewServer(cfg.Status.Addr, statusController)
}
