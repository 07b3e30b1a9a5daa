package otel_test

import (
	"context"
	"testing"

	"github.com/ezmnysniper7/portfolio/internal/platform/otel"
)

func TestSetupNoopWhenEndpointEmpty(t *testing.T) {
	shutdown, err := otel.Setup(context.Background(), "portfolio-test", otel.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetupNoopWhenDisabled(t *testing.T) {
	shutdown, err := otel.Setup(context.Background(), "portfolio-test", otel.Options{
		Endpoint: "http://localhost:4318",
		Disabled: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetupCreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address so no export is attempted before shutdown.
	shutdown, err := otel.Setup(context.Background(), "portfolio-test", otel.Options{Endpoint: "http://192.0.2.1:4318"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestNoopShutdownIgnoresCancelledContext(t *testing.T) {
	shutdown, err := otel.Setup(context.Background(), "portfolio-test", otel.Options{Endpoint: "   "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := shutdown(ctx); err != nil {
		t.Fatalf("noop shutdown should not error: %v", err)
	}
}

func TestTracerStartsSpanWithoutSetup(t *testing.T) {
	ctx, span := otel.Tracer("portfolio/test").Start(context.Background(), "noop")
	defer span.End()
	if ctx == nil {
		t.Fatal("expected span context")
	}
}
