package stonenode

import (
	"time"

	"github.com/NilFoundation/stone/internal/telemetry"
	"github.com/NilFoundation/stone/services/stonenode/internal/executor"
	"github.com/NilFoundation/stone/services/stonenode/internal/workspace"
)

const (
	DefaultOrchestratorEndpoint = "tcp://127.0.0.1:8531"
)

type Config struct {
	WorkspaceRoot        string            `mapstructure:"workspace" yaml:"workspace"`
	OrchestratorEndpoint string            `mapstructure:"orchestrator-endpoint" yaml:"orchestrator-endpoint"`
	TaskPollingInterval  time.Duration     `mapstructure:"task-polling-interval" yaml:"task-polling-interval"`
	SingleTask           bool              `mapstructure:"single-task" yaml:"single-task"`
	Telemetry            *telemetry.Config `mapstructure:"telemetry" yaml:"telemetry"`
}

func NewDefaultConfig(serviceName string) *Config {
	return &Config{
		WorkspaceRoot:        workspace.DefaultRoot,
		OrchestratorEndpoint: DefaultOrchestratorEndpoint,
		TaskPollingInterval:  executor.DefaultTaskPollingInterval,
		SingleTask:           true,
		Telemetry:            telemetry.NewDefaultConfig(serviceName),
	}
}
