// Package telemetry wires an OpenTelemetry tracer provider that reports
// lifecycle phase durations through the application logger.
package telemetry

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/weld/internal/core/ports"
)

// EnvTrace enables span reporting when set in the environment.
const EnvTrace = "WELD_TRACE"

// Provider owns the process-wide tracer provider.
type Provider struct {
	tp *sdktrace.TracerProvider
}

// NewProvider installs a tracer provider. Span logging is only active when
// EnvTrace is set; otherwise spans are recorded but not reported.
func NewProvider(logger ports.Logger) *Provider {
	var opts []sdktrace.TracerProviderOption
	if os.Getenv(EnvTrace) != "" {
		opts = append(opts, sdktrace.WithSpanProcessor(&logProcessor{logger: logger}))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)

	return &Provider{tp: tp}
}

// Shutdown flushes and stops the tracer provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.tp.Shutdown(ctx)
}

// logProcessor implements sdktrace.SpanProcessor by logging span completion.
type logProcessor struct {
	logger ports.Logger
}

func (l *logProcessor) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

func (l *logProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	elapsed := s.EndTime().Sub(s.StartTime()).Round(time.Microsecond)
	l.logger.Info(fmt.Sprintf("%s completed in %s", s.Name(), elapsed))
}

func (l *logProcessor) Shutdown(_ context.Context) error   { return nil }
func (l *logProcessor) ForceFlush(_ context.Context) error { return nil }
