package internal

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Providers holds the meter and tracer providers installed by Start.
// A nil provider means the corresponding export is disabled.
type Providers struct {
	Meters  *sdkmetric.MeterProvider
	Tracers *sdktrace.TracerProvider
}

// Start builds providers for the enabled exports and installs them as the otel globals.
func Start(ctx context.Context, config *Config) (*Providers, error) {
	providers := &Providers{}
	if config == nil || (!config.metricsEnabled() && !config.tracingEnabled()) {
		return providers, nil
	}

	res, err := NewResource(config)
	if err != nil {
		return nil, fmt.Errorf("failed to build telemetry resource: %w", err)
	}

	if config.metricsEnabled() {
		if providers.Meters, err = newMeterProvider(ctx, config, res); err != nil {
			return nil, fmt.Errorf("failed to initialize metric provider: %w", err)
		}
		otel.SetMeterProvider(providers.Meters)
	}

	if config.tracingEnabled() {
		if providers.Tracers, err = newTracerProvider(ctx, config, res); err != nil {
			return nil, errors.Join(
				fmt.Errorf("failed to initialize trace provider: %w", err),
				providers.Shutdown(ctx),
			)
		}
		otel.SetTracerProvider(providers.Tracers)
	}

	return providers, nil
}

// Shutdown flushes pending telemetry and stops the exporters.
func (p *Providers) Shutdown(ctx context.Context) error {
	var errs []error
	if p.Meters != nil {
		errs = append(errs, p.Meters.Shutdown(ctx))
	}
	if p.Tracers != nil {
		errs = append(errs, p.Tracers.Shutdown(ctx))
	}
	return errors.Join(errs...)
}

func newMeterProvider(ctx context.Context, config *Config, res *resource.Resource) (*sdkmetric.MeterProvider, error) {
	var exporter sdkmetric.Exporter
	var err error

	switch config.MetricExportOption {
	case ExportOptionStdout:
		exporter, err = stdoutmetric.New(stdoutmetric.WithPrettyPrint())
	case ExportOptionGrpc:
		exporter, err = otlpmetricgrpc.New(ctx)
	default:
		return nil, fmt.Errorf("unknown metric export option: %s", config.MetricExportOption)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize metric exporter: %w", err)
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(config.metricExportInterval()))
	return sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(reader),
		sdkmetric.WithResource(res),
	), nil
}

func newTracerProvider(ctx context.Context, config *Config, res *resource.Resource) (*sdktrace.TracerProvider, error) {
	var exporter sdktrace.SpanExporter
	var err error

	switch config.TraceExportOption {
	case ExportOptionStdout:
		exporter, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
	case ExportOptionGrpc:
		exporter, err = otlptracegrpc.New(ctx)
	default:
		return nil, fmt.Errorf("unknown trace export option: %s", config.TraceExportOption)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize trace exporter: %w", err)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.TraceIDRatioBased(config.TraceSamplingRate)),
		sdktrace.WithResource(res),
	), nil
}
