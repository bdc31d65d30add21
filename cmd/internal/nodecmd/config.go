package nodecmd

import (
	"fmt"

	"github.com/NilFoundation/stone/internal/telemetry"
	"github.com/NilFoundation/stone/services/stonenode"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configFlag               = "config"
	workspaceFlag            = "workspace"
	orchestratorEndpointFlag = "orchestrator-endpoint"
	taskPollingIntervalFlag  = "task-polling-interval"
	singleTaskFlag           = "single-task"
	logLevelFlag             = "log-level"
	metricsFlag              = "metrics"

	workspaceEnv = "WORKSPACE_PATH"
)

func addConfigFlags(flags *pflag.FlagSet, defaults *stonenode.Config) {
	flags.String(configFlag, "", "path to a YAML config file")
	flags.String(workspaceFlag, defaults.WorkspaceRoot, "workspace root, all task paths are resolved against it (env "+workspaceEnv+")")
	flags.String(orchestratorEndpointFlag, defaults.OrchestratorEndpoint, "orchestrator rpc endpoint")
	flags.Duration(taskPollingIntervalFlag, defaults.TaskPollingInterval, "interval between task requests to the orchestrator")
	flags.Bool(singleTaskFlag, defaults.SingleTask, "exit after the first task is handled")
	flags.String(logLevelFlag, "info", "log level: trace|debug|info|warn|error|fatal|panic")
	flags.Bool(metricsFlag, false, "export metrics via grpc")
}

// newViper resolves settings as flags > env > config file > defaults.
func newViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}
	if err := v.BindEnv(workspaceFlag, workspaceEnv); err != nil {
		return nil, fmt.Errorf("failed to bind env: %w", err)
	}
	return v, nil
}

func loadConfig(v *viper.Viper, serviceName string) (*stonenode.Config, error) {
	if configFile := v.GetString(configFlag); configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := stonenode.NewDefaultConfig(serviceName)
	if err := v.Unmarshal(cfg, updateDecoderConfig); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if cfg.Telemetry == nil {
		cfg.Telemetry = telemetry.NewDefaultConfig(serviceName)
	}
	if v.GetBool(metricsFlag) {
		cfg.Telemetry.MetricExportOption = telemetry.ExportOptionGrpc
	}
	return cfg, nil
}

func updateDecoderConfig(config *mapstructure.DecoderConfig) {
	config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		config.DecodeHook,
		mapstructure.TextUnmarshallerHookFunc(),
	)
}

// configView is the YAML rendering of the effective config, keyed as in config files.
type configView struct {
	Workspace            string        `yaml:"workspace"`
	OrchestratorEndpoint string        `yaml:"orchestrator-endpoint"`
	TaskPollingInterval  string        `yaml:"task-polling-interval"`
	SingleTask           bool          `yaml:"single-task"`
	Telemetry            telemetryView `yaml:"telemetry"`
}

type telemetryView struct {
	ServiceName          string  `yaml:"service_name"`
	MetricExport         string  `yaml:"metric_export"`
	MetricExportInterval string  `yaml:"metric_export_interval"`
	TraceExport          string  `yaml:"trace_export"`
	TraceSamplingRate    float64 `yaml:"trace_sampling_rate"`
}

func newConfigView(cfg *stonenode.Config) configView {
	return configView{
		Workspace:            cfg.WorkspaceRoot,
		OrchestratorEndpoint: cfg.OrchestratorEndpoint,
		TaskPollingInterval:  cfg.TaskPollingInterval.String(),
		SingleTask:           cfg.SingleTask,
		Telemetry: telemetryView{
			ServiceName:          cfg.Telemetry.ServiceName,
			MetricExport:         cfg.Telemetry.MetricExportOption.String(),
			MetricExportInterval: cfg.Telemetry.MetricExportInterval.String(),
			TraceExport:          cfg.Telemetry.TraceExportOption.String(),
			TraceSamplingRate:    cfg.Telemetry.TraceSamplingRate,
		},
	}
}
