//go:build wireinject
// +build wireinject

package wire

import (
	"biometric-terminal/internal/infra/display"
	"biometric-terminal/internal/infra/mqtt"
	"biometric-terminal/internal/infra/remote"
	"biometric-terminal/internal/infra/sensor"
	"biometric-terminal/internal/terminal/httpapi"
	"biometric-terminal/internal/terminal/usecases"

	"github.com/google/wire"
)

var DeviceSet = wire.NewSet(
	provideSimulatedSensor,
	wire.Bind(new(usecases.Sensor), new(*sensor.Simulated)),
	provideConsoleDisplay,
	wire.Bind(new(usecases.Display), new(*display.Console)),
)

func InitializeTerminal(mqttClient mqtt.Client) (*Terminal, error) {
	wire.Build(
		provideAppConfig,
		provideControllerConfig,
		DeviceSet,
		provideRemoteClient,
		wire.Bind(new(usecases.RemoteClient), new(*remote.Client)),
		provideCodec,
		provideEventPublisher,
		provideClock,
		usecases.NewStatusBoard,
		usecases.NewController,
		httpapi.NewStatusController,
		wire.Bind(new(httpapi.StatusSource), new(*usecases.StatusBoard)),
		provideStatusServer,
		newTerminal,
	)
	return nil, nil
}
