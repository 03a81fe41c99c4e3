package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"biometric-terminal/internal/infra/remote/internal"
	"biometric-terminal/internal/terminal/domain"
	"biometric-terminal/internal/terminal/usecases"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"go.opentelemetry.io/contrib/propagators/b3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

var ErrMalformedResponse = errors.New("malformed response body")

const (
	_pollCommandsPath  = "poll-commands"
	_commandStatusPath = "command-status"
	_attendancePath    = "attendance"

	_operationPollCommands  = "poll_commands"
	_operationCommandStatus = "command_status"
	_operationAttendance    = "attendance"

	_defaultTimeout   = 10 * time.Second
	_maxResponseBytes = 64 << 10
)

type ClientConfig struct {
	BaseURL  string
	APIKey   string
	DeviceID string
	Timeout  time.Duration
}

func NewClient(config ClientConfig) *Client {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = _defaultTimeout
	}

	client := &Client{
		config:     config,
		httpClient: &http.Client{Timeout: timeout},
		tracer:     otel.Tracer("biometric-terminal"),
		propagator: b3.New(),
	}

	duration, err := otel.Meter("biometric-terminal").Float64Histogram(
		fmt.Sprintf("%s.%s", "biometric_terminal", "remote.request.duration"),
		metric.WithDescription("Duration of requests to the remote command service"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10),
	)
	if err != nil {
		slog.Error("creating remote request histogram", slog.Any("error", err))
	}
	client.duration = duration

	return client
}

var _ usecases.RemoteClient = (*Client)(nil)

// Client talks to the command and attendance service over HTTP. Each call
// is a single attempt; the controller decides what a failure means.
type Client struct {
	config     ClientConfig
	httpClient *http.Client
	tracer     trace.Tracer
	propagator propagation.TextMapPropagator
	duration   metric.Float64Histogram
}

func (c *Client) PollCommand(ctx context.Context) (*domain.Command, error) {
	query := url.Values{}
	query.Set("device_id", c.config.DeviceID)

	body, err := c.do(ctx, _operationPollCommands, http.MethodGet, _pollCommandsPath, query, nil)
	if err != nil {
		return nil, err
	}

	var response internal.PollResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("decoding poll response: %w", err)
	}
	if response.Command == nil {
		return nil, nil
	}

	cmd := response.Command.ToDomain()
	return &cmd, nil
}

func (c *Client) UpdateCommandStatus(ctx context.Context, update domain.CommandStatusUpdate) error {
	request := internal.FromCommandStatusUpdate(update)
	_, err := c.do(ctx, _operationCommandStatus, http.MethodPost, _commandStatusPath, nil, request)
	return err
}

// ReportAttendance posts an attendance event. Fields missing from the
// answer fall back to defaults; an answer that is not a JSON object is an
// error.
func (c *Client) ReportAttendance(ctx context.Context, event domain.AttendanceEvent) (domain.AttendanceResult, error) {
	request := internal.FromAttendanceEvent(event)
	body, err := c.do(ctx, _operationAttendance, http.MethodPost, _attendancePath, nil, request)
	if err != nil {
		return domain.AttendanceResult{}, err
	}

	if !gjson.ValidBytes(body) || !gjson.ParseBytes(body).IsObject() {
		return domain.AttendanceResult{}, fmt.Errorf("decoding attendance response: %w", ErrMalformedResponse)
	}

	fields := gjson.GetManyBytes(body, "name", "type")
	return domain.NewAttendanceResult(fields[0].String(), fields[1].String()), nil
}

func (c *Client) do(ctx context.Context, operation, method, path string, query url.Values, payload any) ([]byte, error) {
	ctx, span := c.tracer.Start(ctx, "remote."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("remote.operation", operation),
			attribute.String("device.id", c.config.DeviceID),
		),
	)
	defer span.End()

	start := time.Now()
	statusCode := 0
	defer func() {
		if c.duration == nil {
			return
		}
		c.duration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
			attribute.String("remote.operation", operation),
			attribute.Int("http.status_code", statusCode),
		))
	}()

	endpoint, err := c.endpoint(path, query)
	if err != nil {
		return nil, err
	}

	var reader io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshaling %s request: %w", operation, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("creating %s request: %w", operation, err)
	}
	if c.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	c.propagator.Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return nil, fmt.Errorf("sending %s request: %w", operation, err)
	}
	defer resp.Body.Close()

	statusCode = resp.StatusCode
	span.SetAttributes(attribute.Int("http.status_code", statusCode))

	body, err := io.ReadAll(io.LimitReader(resp.Body, _maxResponseBytes))
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("reading %s response: %w", operation, err)
	}

	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		span.SetStatus(codes.Error, http.StatusText(statusCode))
		slog.Warn("remote service rejected request",
			slog.String("operation", operation),
			slog.Int("status_code", statusCode),
			slog.String("reason", gjson.GetBytes(body, "error").String()),
		)
		return nil, &domain.RemoteStatusError{Operation: operation, StatusCode: statusCode}
	}

	return body, nil
}

func (c *Client) endpoint(path string, query url.Values) (string, error) {
	endpoint, err := url.JoinPath(c.config.BaseURL, path)
	if err != nil {
		return "", fmt.Errorf("building %s url: %w", path, err)
	}
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	return endpoint, nil
}
