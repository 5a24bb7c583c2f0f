package telemetry

import (
	"context"
	"os"
	"testing"
)

func TestConfigureEnvWithoutKey(t *testing.T) {
	t.Setenv(EnvHoneycombKey, "")
	t.Setenv(envEndpoint, "")
	t.Setenv(envHeaders, "")

	ConfigureEnv()

	if Enabled() {
		t.Error("Telemetry should stay disabled without an API key")
	}
}

func TestConfigureEnvWithKey(t *testing.T) {
	t.Setenv(EnvHoneycombKey, "secret")
	t.Setenv(EnvHoneycombDataset, "")
	t.Setenv(envEndpoint, "")
	t.Setenv(envHeaders, "")

	ConfigureEnv()

	if !Enabled() {
		t.Fatal("Telemetry should be enabled with an API key")
	}
	want := "x-honeycomb-team=secret,x-honeycomb-dataset=tilecollapse"
	if got := os.Getenv(envHeaders); got != want {
		t.Errorf("Headers = %q, want %q", got, want)
	}
}

func TestConfigureEnvKeepsExplicitEndpoint(t *testing.T) {
	t.Setenv(EnvHoneycombKey, "secret")
	t.Setenv(envEndpoint, "http://localhost:4318")
	t.Setenv(envHeaders, "")

	ConfigureEnv()

	if got := os.Getenv(envEndpoint); got != "http://localhost:4318" {
		t.Errorf("Endpoint overwritten: %q", got)
	}
}

func TestSetupDisabled(t *testing.T) {
	t.Setenv(envEndpoint, "")

	shutdown, err := Setup(context.Background(), "test")
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown failed: %v", err)
	}
}

func TestNoopTracer(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "test")
	defer span.End()

	if span.SpanContext().IsValid() {
		t.Error("No-op tracer should produce invalid span contexts")
	}
}
