package internal

import (
	"fmt"
	"strings"
	"time"
)

type ExportOption int

const (
	ExportOptionNone ExportOption = iota
	ExportOptionStdout
	ExportOptionGrpc
)

const DefaultMetricExportInterval = 10 * time.Second

var exportOptionNames = map[ExportOption]string{
	ExportOptionNone:   "none",
	ExportOptionStdout: "stdout",
	ExportOptionGrpc:   "grpc",
}

func (o ExportOption) String() string {
	if name, ok := exportOptionNames[o]; ok {
		return name
	}
	return fmt.Sprintf("ExportOption(%d)", int(o))
}

func (o ExportOption) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *ExportOption) UnmarshalText(text []byte) error {
	parsed, err := ParseExportOption(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

func ParseExportOption(name string) (ExportOption, error) {
	for option, optionName := range exportOptionNames {
		if strings.EqualFold(optionName, name) {
			return option, nil
		}
	}
	return ExportOptionNone, fmt.Errorf("unknown export option %q", name)
}

type Config struct {
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`

	MetricExportOption   ExportOption  `mapstructure:"metric_export" yaml:"metric_export"`
	MetricExportInterval time.Duration `mapstructure:"metric_export_interval" yaml:"metric_export_interval"`

	TraceExportOption ExportOption `mapstructure:"trace_export" yaml:"trace_export"`
	TraceSamplingRate float64      `mapstructure:"trace_sampling_rate" yaml:"trace_sampling_rate"`

	// ResourceAttributes are set by the node itself (tool name, workspace root), not read from config files.
	ResourceAttributes map[string]string `mapstructure:"-" yaml:"-"`
}

func (c *Config) metricsEnabled() bool {
	return c.MetricExportOption != ExportOptionNone
}

func (c *Config) tracingEnabled() bool {
	return c.TraceExportOption != ExportOptionNone && c.TraceSamplingRate > 0
}

func (c *Config) metricExportInterval() time.Duration {
	if c.MetricExportInterval <= 0 {
		return DefaultMetricExportInterval
	}
	return c.MetricExportInterval
}
