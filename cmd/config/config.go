package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvPrefix  = "biometric_terminal"
	ConfigName = "terminal"
)

var loadConfigOnce sync.Once
var configInstance AppConfig

// LoadConfig reads the process-wide configuration once. A missing file is
// fine: every key has a default and can come from the environment.
func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		config, err := Read(viper.GetViper())
		if err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		configInstance = config
	})

	return configInstance
}

// Read applies defaults, environment and config file to v and decodes the
// result.
func Read(v *viper.Viper) (AppConfig, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigName(ConfigName)
	v.AddConfigPath("config")
	v.AddConfigPath("/config")
	v.AddConfigPath("/etc/biometric-terminal")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return AppConfig{}, fmt.Errorf("reading config: %w", err)
		}
	}

	return AppConfig{
		General: GeneralConfig{
			LogLevel: v.GetString("general.log_level"),
		},
		Device: DeviceConfig{
			ID: v.GetString("device.id"),
		},
		Remote: RemoteConfig{
			BaseURL: v.GetString("remote.base_url"),
			APIKey:  v.GetString("remote.api_key"),
			Timeout: v.GetDuration("remote.timeout"),
		},
		Sensor: SensorConfig{
			Driver:              v.GetString("sensor.driver"),
			UART:                v.GetInt("sensor.uart"),
			BaudRate:            v.GetInt("sensor.baud_rate"),
			TXPin:               v.GetInt("sensor.tx_pin"),
			RXPin:               v.GetInt("sensor.rx_pin"),
			Password:            v.GetUint32("sensor.password"),
			Capacity:            v.GetInt("sensor.capacity"),
			HealthCheckSchedule: v.GetString("sensor.health_check_schedule"),
		},
		Display: DisplayConfig{
			Driver:  v.GetString("display.driver"),
			I2CBus:  v.GetInt("display.i2c_bus"),
			Address: v.GetInt("display.address"),
			SDAPin:  v.GetInt("display.sda_pin"),
			SCLPin:  v.GetInt("display.scl_pin"),
			Columns: v.GetInt("display.columns"),
			Rows:    v.GetInt("display.rows"),
		},
		Controller: ControllerConfig{
			TickInterval:  v.GetDuration("controller.tick_interval"),
			PollInterval:  v.GetDuration("controller.poll_interval"),
			ErrorCooldown: v.GetDuration("controller.error_cooldown"),
			EnrollTimeout: v.GetDuration("controller.enroll_timeout"),
			RemovalDelay:  v.GetDuration("controller.removal_delay"),
			DeniedHold:    v.GetDuration("controller.denied_hold"),
			GreetingHold:  v.GetDuration("controller.greeting_hold"),
			MessageHold:   v.GetDuration("controller.message_hold"),
			ResultHold:    v.GetDuration("controller.result_hold"),
		},
		Telemetry: TelemetryConfig{
			MQTT: MQTTClientConfig{
				Broker:   v.GetString("telemetry.mqtt.broker"),
				ClientID: v.GetString("telemetry.mqtt.client_id"),
				Username: v.GetString("telemetry.mqtt.username"),
				Password: v.GetString("telemetry.mqtt.password"),
			},
			TopicPrefix: v.GetString("telemetry.topic_prefix"),
			Encoding:    v.GetString("telemetry.encoding"),
		},
		Status: StatusConfig{
			Addr: v.GetString("status.addr"),
		},
		OTel: OTelConfig{
			Enabled:  v.GetBool("otel.enabled"),
			Endpoint: v.GetString("otel.endpoint"),
		},
	}, nil
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("general.log_level", "info")
	v.SetDefault("device.id", "ESP32-001")

	v.SetDefault("remote.timeout", 10*time.Second)

	v.SetDefault("sensor.driver", "simulated")
	v.SetDefault("sensor.uart", 2)
	v.SetDefault("sensor.baud_rate", 57600)
	v.SetDefault("sensor.tx_pin", 16)
	v.SetDefault("sensor.rx_pin", 17)
	v.SetDefault("sensor.password", 0)
	v.SetDefault("sensor.capacity", 127)
	v.SetDefault("sensor.health_check_schedule", "*/15 * * * *")

	v.SetDefault("display.driver", "console")
	v.SetDefault("display.i2c_bus", 0)
	v.SetDefault("display.address", 0x27)
	v.SetDefault("display.sda_pin", 21)
	v.SetDefault("display.scl_pin", 22)
	v.SetDefault("display.columns", 16)
	v.SetDefault("display.rows", 2)

	v.SetDefault("controller.tick_interval", 50*time.Millisecond)
	v.SetDefault("controller.poll_interval", 5*time.Second)
	v.SetDefault("controller.error_cooldown", time.Second)
	v.SetDefault("controller.enroll_timeout", time.Minute)
	v.SetDefault("controller.removal_delay", 2*time.Second)
	v.SetDefault("controller.denied_hold", 1500*time.Millisecond)
	v.SetDefault("controller.greeting_hold", 2500*time.Millisecond)
	v.SetDefault("controller.message_hold", time.Second)
	v.SetDefault("controller.result_hold", 2*time.Second)

	v.SetDefault("telemetry.topic_prefix", "terminals")
	v.SetDefault("telemetry.encoding", "json")

	v.SetDefault("status.addr", ":8080")

	v.SetDefault("otel.enabled", false)
	v.SetDefault("otel.endpoint", "localhost:4317")
}

type AppConfig struct {
	General    GeneralConfig
	Device     DeviceConfig
	Remote     RemoteConfig
	Sensor     SensorConfig
	Display    DisplayConfig
	Controller ControllerConfig
	Telemetry  TelemetryConfig
	Status     StatusConfig
	OTel       OTelConfig
}

type GeneralConfig struct {
	LogLevel string
}

type DeviceConfig struct {
	ID string
}

type RemoteConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// SensorConfig carries the wiring of the fingerprint module. Only the
// simulated driver ships; the pin fields document the reference board.
type SensorConfig struct {
	Driver              string
	UART                int
	BaudRate            int
	TXPin               int
	RXPin               int
	Password            uint32
	Capacity            int
	HealthCheckSchedule string
}

type DisplayConfig struct {
	Driver  string
	I2CBus  int
	Address int
	SDAPin  int
	SCLPin  int
	Columns int
	Rows    int
}

type ControllerConfig struct {
	TickInterval  time.Duration
	PollInterval  time.Duration
	ErrorCooldown time.Duration
	EnrollTimeout time.Duration
	RemovalDelay  time.Duration
	DeniedHold    time.Duration
	GreetingHold  time.Duration
	MessageHold   time.Duration
	ResultHold    time.Duration
}

type TelemetryConfig struct {
	MQTT        MQTTClientConfig
	TopicPrefix string
	Encoding    string
}

type MQTTClientConfig struct {
	Broker   string
	ClientID string
	Username string
	Password string
}

type StatusConfig struct {
	Addr string
}

type OTelConfig struct {
	Enabled  bool
	Endpoint string
}
