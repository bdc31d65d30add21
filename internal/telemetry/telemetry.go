package telemetry

import (
	"context"

	"github.com/NilFoundation/stone/internal/telemetry/internal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type (
	Config       = internal.Config
	ExportOption = internal.ExportOption

	Meter  = metric.Meter
	Tracer = trace.Tracer

	// ShutdownFunc flushes and stops whatever Init started.
	ShutdownFunc = func(ctx context.Context) error
)

const (
	ExportOptionNone   = internal.ExportOptionNone
	ExportOptionStdout = internal.ExportOptionStdout
	ExportOptionGrpc   = internal.ExportOptionGrpc

	DefaultMetricExportInterval = internal.DefaultMetricExportInterval
)

func NewDefaultConfig(serviceName string) *Config {
	return &Config{
		ServiceName:          serviceName,
		MetricExportOption:   ExportOptionNone,
		MetricExportInterval: DefaultMetricExportInterval,
		TraceExportOption:    ExportOptionNone,
	}
}

func ParseExportOption(name string) (ExportOption, error) {
	return internal.ParseExportOption(name)
}

// Init installs the global meter and tracer providers enabled by config.
// A nil config or disabled exports leave the otel no-op globals in place.
func Init(ctx context.Context, config *Config) (ShutdownFunc, error) {
	providers, err := internal.Start(ctx, config)
	if err != nil {
		return nil, err
	}
	return providers.Shutdown, nil
}

func NewMeter(name string) Meter {
	return otel.Meter(name)
}

func NewTracer(name string) Tracer {
	return otel.Tracer(name)
}
