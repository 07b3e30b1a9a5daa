// Package otel configures OpenTelemetry tracing for portfolio processes.
package otel

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// Options selects the trace exporter target.
type Options struct {
	// Endpoint is an OTLP/HTTP collector URL. Empty disables tracing.
	Endpoint string
	// Disabled turns tracing off even when Endpoint is set.
	Disabled bool
}

// Setup registers a global tracer provider for serviceName.
//
// Tracing is opt-in: with no endpoint, or when disabled, Setup installs
// nothing and returns a no-op shutdown. The returned shutdown flushes
// pending spans and should be deferred by the caller.
func Setup(ctx context.Context, serviceName string, opts Options) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }

	endpoint := strings.TrimSpace(opts.Endpoint)
	if opts.Disabled || endpoint == "" {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
	if err != nil {
		return noop, err
	}

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(serviceName)))
	if err != nil {
		return noop, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns a named tracer from the global provider. Before Setup (or
// when tracing is off) the global provider is a no-op.
func Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}
