package sensor

import (
	"fmt"
	"log/slog"

	"biometric-terminal/internal/infra/mqtt"
	"biometric-terminal/internal/terminal/domain"
)

const (
	BenchActionPlace   = "place"
	BenchActionRemove  = "remove"
	BenchActionFail    = "fail"
	BenchActionConnect = "connect"
	BenchActionUnplug  = "unplug"

	_benchTopicSuffix = "simulator"
	_benchQoS         = 1
)

// BenchCommand drives the simulated sensor from outside the process, e.g.
// {"action":"place","finger":"ana"} or
// {"action":"fail","operation":"store_model","status":24}.
type BenchCommand struct {
	Action    string `json:"action" msgpack:"action"`
	Finger    string `json:"finger,omitempty" msgpack:"finger,omitempty"`
	Operation string `json:"operation,omitempty" msgpack:"operation,omitempty"`
	Status    uint8  `json:"status,omitempty" msgpack:"status,omitempty"`
}

func BenchTopic(prefix, deviceID string) string {
	return mqtt.Topic(prefix, deviceID, _benchTopicSuffix)
}

func (s *Simulated) Apply(cmd BenchCommand) error {
	switch cmd.Action {
	case BenchActionPlace:
		if cmd.Finger == "" {
			return fmt.Errorf("place: missing finger")
		}
		s.PlaceFinger(cmd.Finger)
	case BenchActionRemove:
		s.RemoveFinger()
	case BenchActionFail:
		if cmd.Operation == "" {
			return fmt.Errorf("fail: missing operation")
		}
		s.FailNext(Operation(cmd.Operation), domain.SensorStatus(cmd.Status))
	case BenchActionConnect:
		s.SetConnected(true)
	case BenchActionUnplug:
		s.SetConnected(false)
	default:
		return fmt.Errorf("unknown bench action %q", cmd.Action)
	}
	return nil
}

type decoder interface {
	Decode(data []byte, target any) error
}

// ListenBench subscribes the simulator to its bench topic.
func ListenBench(client mqtt.Client, codec decoder, simulated *Simulated, topic string) error {
	handler := func(_ mqtt.Client, msg mqtt.Message) {
		defer msg.Ack()

		var cmd BenchCommand
		if err := codec.Decode(msg.Payload(), &cmd); err != nil {
			slog.Warn("invalid bench command", slog.String("topic", msg.Topic()), slog.Any("error", err))
			return
		}
		if err := simulated.Apply(cmd); err != nil {
			slog.Warn("rejected bench command", slog.String("action", cmd.Action), slog.Any("error", err))
			return
		}
		slog.Info("bench command applied", slog.String("action", cmd.Action))
	}

	if err := client.Subscribe(topic, _benchQoS, handler); err != nil {
		return fmt.Errorf("listening for bench commands: %w", err)
	}
	return nil
}
