package internal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestNewResource_CarriesNodeAttributes(t *testing.T) {
	t.Parallel()

	res, err := NewResource(&Config{
		ServiceName: "stone_prover",
		ResourceAttributes: map[string]string{
			"stone.tool":      "prover",
			"stone.workspace": "/workspace",
		},
	})
	require.NoError(t, err)

	values := make(map[attribute.Key]string)
	for _, kv := range res.Attributes() {
		values[kv.Key] = kv.Value.Emit()
	}
	require.Equal(t, "stone_prover", values["service.name"])
	require.Equal(t, "prover", values["stone.tool"])
	require.Equal(t, "/workspace", values["stone.workspace"])
}

func TestConfig_MetricExportInterval(t *testing.T) {
	t.Parallel()

	require.Equal(t, DefaultMetricExportInterval, (&Config{}).metricExportInterval())
	require.Equal(t, time.Minute, (&Config{MetricExportInterval: time.Minute}).metricExportInterval())
}

func TestStart_DisabledExports(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	providers, err := Start(ctx, &Config{
		ServiceName:       "stone_prover",
		TraceExportOption: ExportOptionStdout,
	})
	require.NoError(t, err)
	require.Nil(t, providers.Meters)
	require.Nil(t, providers.Tracers, "zero sampling rate disables tracing")
	require.NoError(t, providers.Shutdown(ctx))
}

func TestStart_UnknownExportOption(t *testing.T) {
	t.Parallel()

	_, err := Start(context.Background(), &Config{MetricExportOption: ExportOption(42)})
	require.ErrorContains(t, err, "unknown metric export option")
}
