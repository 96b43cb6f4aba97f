// Package telemetry records screen sessions and taps as OpenTelemetry spans.
// Export is over OTLP/HTTP when an endpoint is configured; otherwise every
// call is a no-op.
package telemetry

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"animplay/internal/config"
)

const instrumentationName = "animplay/ui"

// Tracer brackets each open screen with a span and hangs one child span off
// it per tap.
type Tracer struct {
	provider *sdktrace.TracerProvider // nil when disabled
	tracer   oteltrace.Tracer

	mu      sync.Mutex
	screens map[string]screenSpan
}

type screenSpan struct {
	ctx  context.Context
	span oteltrace.Span
}

// New returns a Tracer exporting to cfg.Endpoint, or a disabled Tracer when
// no endpoint is configured. Endpoints may be host:port (plain HTTP) or a
// full URL.
func New(ctx context.Context, cfg config.TracingConfig) (*Tracer, error) {
	if cfg.Endpoint == "" {
		return Disabled(), nil
	}

	var opts []otlptracehttp.Option
	if strings.Contains(cfg.Endpoint, "://") {
		opts = append(opts, otlptracehttp.WithEndpointURL(cfg.Endpoint))
	} else {
		opts = append(opts, otlptracehttp.WithEndpoint(cfg.Endpoint), otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("otlp exporter: %w", err)
	}

	service := cfg.Service
	if service == "" {
		service = "animplay"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(service),
	)
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return newWithProvider(provider), nil
}

// Disabled returns a Tracer that records nothing.
func Disabled() *Tracer {
	return &Tracer{
		tracer:  noop.NewTracerProvider().Tracer(instrumentationName),
		screens: map[string]screenSpan{},
	}
}

func newWithProvider(provider *sdktrace.TracerProvider) *Tracer {
	return &Tracer{
		provider: provider,
		tracer:   provider.Tracer(instrumentationName),
		screens:  map[string]screenSpan{},
	}
}

// Enabled reports whether spans are exported anywhere.
func (t *Tracer) Enabled() bool {
	return t != nil && t.provider != nil
}

// ScreenOpened starts a screen span and returns the new screen instance ID.
func (t *Tracer) ScreenOpened(ctx context.Context, screen string, demos int) string {
	id := uuid.NewString()
	if t == nil {
		return id
	}
	ctx, span := t.tracer.Start(ctx, "screen "+screen,
		oteltrace.WithAttributes(
			attribute.String("animplay.screen.name", screen),
			attribute.String("animplay.screen.id", id),
			attribute.Int("animplay.screen.demos", demos),
		))
	t.mu.Lock()
	t.screens[id] = screenSpan{ctx: ctx, span: span}
	t.mu.Unlock()
	return id
}

// ScreenClosed ends the screen span for id. Unknown IDs are ignored.
func (t *Tracer) ScreenClosed(id string, taps int) {
	if t == nil {
		return
	}
	t.mu.Lock()
	s, ok := t.screens[id]
	delete(t.screens, id)
	t.mu.Unlock()
	if !ok {
		return
	}
	s.span.SetAttributes(attribute.Int("animplay.screen.taps", taps))
	s.span.End()
}

// Tap describes one tap for tracing.
type Tap struct {
	Demo    string
	Action  string
	Handled bool
	// Status is the demo's status line after the tap.
	Status string
}

// RecordTap emits a span for a tap on screen id. Taps on unknown screens
// become root spans.
func (t *Tracer) RecordTap(ctx context.Context, id string, tap Tap) {
	if t == nil {
		return
	}
	t.mu.Lock()
	if s, ok := t.screens[id]; ok {
		ctx = s.ctx
	}
	t.mu.Unlock()

	_, span := t.tracer.Start(ctx, "tap "+tap.Demo,
		oteltrace.WithAttributes(
			attribute.String("animplay.screen.id", id),
			attribute.String("animplay.demo.name", tap.Demo),
			attribute.String("animplay.tap.action", tap.Action),
			attribute.Bool("animplay.tap.handled", tap.Handled),
			attribute.String("animplay.demo.status", tap.Status),
		))
	if !tap.Handled {
		span.AddEvent("ignored")
	}
	span.End()
}

// Shutdown ends any open screen spans and flushes the exporter.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}
	t.mu.Lock()
	open := t.screens
	t.screens = map[string]screenSpan{}
	t.mu.Unlock()
	for _, s := range open {
		s.span.End()
	}
	if t.provider == nil {
		return nil
	}
	if err := t.provider.Shutdown(ctx); err != nil {
		return fmt.Errorf("tracer shutdown: %w", err)
	}
	return nil
}
