// Package telemetry provides OpenTelemetry tracing for generation runs.
package telemetry

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName = "tilecollapse"

	// Environment variables read by ConfigureEnv.
	EnvHoneycombKey     = "TILECOLLAPSE_HONEYCOMB_API_KEY"
	EnvHoneycombDataset = "TILECOLLAPSE_HONEYCOMB_DATASET"

	envEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envHeaders  = "OTEL_EXPORTER_OTLP_HEADERS"

	honeycombEndpoint = "https://api.honeycomb.io"
)

// ConfigureEnv maps our Honeycomb variables onto the standard OTEL_* ones.
// Explicit OTEL_* settings win. Without a key nothing is changed.
func ConfigureEnv() {
	apiKey := os.Getenv(EnvHoneycombKey)
	if apiKey == "" {
		return
	}
	dataset := os.Getenv(EnvHoneycombDataset)
	if dataset == "" {
		dataset = serviceName
	}

	if os.Getenv(envEndpoint) == "" {
		os.Setenv(envEndpoint, honeycombEndpoint)
	}
	if os.Getenv(envHeaders) == "" {
		os.Setenv(envHeaders, fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}

// Enabled reports whether an OTLP endpoint is configured.
func Enabled() bool {
	return os.Getenv(envEndpoint) != ""
}

// Setup initializes OpenTelemetry with an OTLP HTTP exporter configured from the
// standard OTEL_* environment variables. When no endpoint is set the global
// provider is left as the no-op default and the returned shutdown does nothing.
//
// Returns a shutdown function that should be called on application exit.
func Setup(ctx context.Context, version string) (shutdown func(context.Context) error, err error) {
	if !Enabled() {
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("create OTLP exporter: %w", err)
	}

	// Built without resource.Default() to avoid schema URL conflicts
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", version),
			attribute.String("telemetry.sdk.language", "go"),
			attribute.String("host.name", getHostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("build resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns a named tracer for the given component.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

// NoopTracer returns a tracer that records nothing, for tests and disabled runs.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer(serviceName + "/noop")
}

// getHostname returns the system hostname, or "unknown" if it cannot be determined.
func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
