package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"biometric-terminal/cmd/config"
	"biometric-terminal/cmd/terminal/wire"
	"biometric-terminal/internal/infra/async"
	"biometric-terminal/internal/infra/mqtt"
	"biometric-terminal/internal/infra/node"
	"biometric-terminal/internal/infra/sensor"
	"biometric-terminal/internal/infra/telemetry"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

var (
	logLevelMapping = map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
)

func main() {
	flags := pflag.NewFlagSet("biometric-terminal", pflag.ExitOnError)
	configDir := flags.String("config-dir", "", "additional directory to search for terminal.yaml")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.Parse(os.Args[1:])

	if *configDir != "" {
		viper.AddConfigPath(*configDir)
	}
	if err := viper.BindPFlag("general.log_level", flags.Lookup("log-level")); err != nil {
		panic(err)
	}
	config := config.LoadConfig()

	level := logLevelMapping[config.General.LogLevel]
	baseHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{AddSource: true, Level: level, ReplaceAttr: slogReplaceAttr})
	handler := baseHandler.WithAttrs([]slog.Attr{
		slog.String("version", node.Version),
		slog.String("device_id", config.Device.ID),
	})
	slog.SetDefault(slog.New(handler))
	slog.Info("biometric terminal is initializing")
	slog.Debug("config loaded", "data", config)

	shutdownOtel := func() error { return nil }
	if config.OTel.Enabled {
		shutdownOtel = startOTel(config.OTel.Endpoint)
	}

	mqttClient := connectTelemetry(config)
	terminal := handleWireInjector(wire.InitializeTerminal(mqttClient)).(*wire.Terminal)
	if mqttClient != nil {
		listenBench(config, mqttClient, terminal.Sensor)
	}

	appCtx, cancelFn := context.WithCancel(context.Background())
	workers := async.NewGroup()
	workers.Go(appCtx, terminal.Controller)
	if terminal.StatusServer != nil {
		workers.Go(appCtx, terminal.StatusServer)
	}

	signalChannel := make(chan os.Signal, 2)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)

	<-signalChannel
	cancelFn()
	workers.Wait()

	if mqttClient != nil {
		mqttClient.Disconnect()
	}
	if err := shutdownOtel(); err != nil {
		slog.Error("shutting down otel", slog.Any("error", err))
	}
	slog.Info("good bye!!!")
	os.Exit(0)
}

// connectTelemetry returns nil when no broker is configured or it cannot be
// reached; the terminal runs without telemetry in that case.
func connectTelemetry(config config.AppConfig) mqtt.Client {
	if config.Telemetry.MQTT.Broker == "" {
		return nil
	}

	clientID := config.Telemetry.MQTT.ClientID
	if clientID == "" {
		clientID = fmt.Sprintf("%s-%s", config.Device.ID, node.GetNodeInfo().ID[:8])
	}
	client, err := mqtt.NewSimpleClient(mqtt.SimpleClientOpts{
		Broker:   config.Telemetry.MQTT.Broker,
		ClientID: clientID,
		Username: config.Telemetry.MQTT.Username,
		Password: config.Telemetry.MQTT.Password, //pragma: allowlist secret
	})
	if err != nil {
		slog.Warn("telemetry disabled", slog.Any("error", err))
		return nil
	}
	return client
}

func listenBench(config config.AppConfig, client mqtt.Client, simulated *sensor.Simulated) {
	codec, err := telemetry.NewCodec(config.Telemetry.Encoding)
	if err != nil {
		slog.Warn("bench commands disabled", slog.Any("error", err))
		return
	}
	topic := sensor.BenchTopic(config.Telemetry.TopicPrefix, config.Device.ID)
	if err := sensor.ListenBench(client, codec, simulated, topic); err != nil {
		slog.Warn("bench commands disabled", slog.Any("error", err))
	}
}

func slogReplaceAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.SourceKey {
		source := a.Value.Any().(*slog.Source)
		source.File = filepath.Base(source.File)
		return slog.Any(a.Key, source)
	}
	return a
}

type ShutdownFunc func() error

const (
	_collectPeriod   = 30 * time.Second
	_collectTimeout  = 35 * time.Second
	_minimumInterval = time.Minute
)

var (
	_histogramBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}
)

func startOTel(endpoint string) ShutdownFunc {
	slog.Info("starting OTel providers", slog.String("endpoint", endpoint))
	shutdown, err := otelStart(context.Background(), endpoint)
	if err != nil {
		panic(err)
	}

	return shutdown
}

func otelStart(ctx context.Context, endpoint string) (ShutdownFunc, error) {
	metricsShutdownFunc, err := startMetricsProvider(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	traceShutdownFunc, err := startTraceProvider(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	return func() error {
		if err := metricsShutdownFunc(); err != nil {
			return err
		}
		if err := traceShutdownFunc(); err != nil {
			return err
		}
		return nil
	}, nil
}

func serviceResource() *resource.Resource {
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String("biometric-terminal"),
		semconv.ServiceVersionKey.String(node.Version),
	)
}

func startTraceProvider(ctx context.Context, endpoint string) (ShutdownFunc, error) {
	exp, err := otlptracegrpc.New(
		ctx,
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exp),
		trace.WithResource(serviceResource()),
	)
	otel.SetTracerProvider(tp)

	return func() error {
		return tp.Shutdown(ctx)
	}, nil
}

func startMetricsProvider(ctx context.Context, endpoint string) (ShutdownFunc, error) {
	exp, err := otlpmetricgrpc.New(
		ctx,
		otlpmetricgrpc.WithEndpoint(endpoint),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	mp := newMeterProvider(exp)
	otel.SetMeterProvider(mp)

	err = runtime.Start(runtime.WithMinimumReadMemStatsInterval(_minimumInterval))
	if err != nil {
		return nil, err
	}

	return func() error {
		return mp.Shutdown(ctx)
	}, nil
}

func newMeterProvider(metricExporter metric.Exporter) *metric.MeterProvider {
	return metric.NewMeterProvider(
		metric.WithResource(serviceResource()),
		metric.WithReader(
			metric.NewPeriodicReader(
				metricExporter,
				metric.WithTimeout(_collectTimeout),
				metric.WithInterval(_collectPeriod))),
		metric.WithView(metric.NewView(
			metric.Instrument{
				Name: "*",
				Kind: metric.InstrumentKindHistogram,
			},
			metric.Stream{
				Aggregation: metric.AggregationExplicitBucketHistogram{
					Boundaries: _histogramBuckets,
				},
			},
		)),
	)
}

func handleWireInjector(value any, err error) any {
	if err != nil {
		panic(err)
	}

	return value
}
