package stonenode

import (
	"context"
	"fmt"
	"io"

	"github.com/NilFoundation/stone/common/logging"
	"github.com/NilFoundation/stone/internal/telemetry"
	"github.com/NilFoundation/stone/services/stonenode/internal/api"
	"github.com/NilFoundation/stone/services/stonenode/internal/executor"
	"github.com/NilFoundation/stone/services/stonenode/internal/metrics"
	"github.com/NilFoundation/stone/services/stonenode/internal/process"
	"github.com/NilFoundation/stone/services/stonenode/internal/rpc"
	"github.com/NilFoundation/stone/services/stonenode/internal/workspace"
)

const (
	resourceAttributeTool      = "stone.tool"
	resourceAttributeWorkspace = "stone.workspace"
)

type Node struct {
	config Config
	root   workspace.Root
	tool   Tool
	stdout io.Writer

	runner process.Runner
	// source is created from config.OrchestratorEndpoint on demand if nil
	source api.TaskSource

	logger logging.Logger
}

// New creates a node running the given tool. Operator output and child stdout go to stdout.
func New(config *Config, tool Tool, stdout io.Writer) (*Node, error) {
	root, err := workspace.NewRoot(config.WorkspaceRoot)
	if err != nil {
		return nil, fmt.Errorf("invalid workspace root: %w", err)
	}

	logger := logging.NewLogger(tool.Name()).With().
		Str(logging.FieldWorkspace, root.String()).
		Logger()

	return &Node{
		config: *config,
		root:   root,
		tool:   tool,
		stdout: stdout,
		runner: process.NewExecutor(stdout, logger),
		logger: logger,
	}, nil
}

func (n *Node) Root() workspace.Root {
	return n.root
}

func (n *Node) Run(ctx context.Context, mode Mode) error {
	if _, err := fmt.Fprintln(n.stdout, n.root); err != nil {
		return fmt.Errorf("failed to print workspace root: %w", err)
	}

	shutdownTelemetry, err := telemetry.Init(ctx, n.telemetryConfig())
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		if err := shutdownTelemetry(context.WithoutCancel(ctx)); err != nil {
			n.logger.Warn().Err(err).Msg("Failed to shut down telemetry")
		}
	}()

	switch mode := mode.(type) {
	case StandaloneMode:
		return n.runStandalone(ctx, mode.Params)
	case TaskDrivenMode:
		return n.runTaskDriven(ctx)
	default:
		return fmt.Errorf("unsupported mode %T", mode)
	}
}

// telemetryConfig tags exported metrics and spans with the tool and workspace of this node.
func (n *Node) telemetryConfig() *telemetry.Config {
	if n.config.Telemetry == nil {
		return nil
	}
	config := *n.config.Telemetry
	config.ResourceAttributes = map[string]string{
		resourceAttributeTool:      n.tool.Name(),
		resourceAttributeWorkspace: n.root.String(),
	}
	return &config
}

func (n *Node) runStandalone(ctx context.Context, params Params) error {
	n.logger.Info().Msg("Running in standalone mode")

	request, err := params.Request(n.root)
	if err != nil {
		return err
	}

	outputs, err := n.newPipeline().run(ctx, request)
	if err != nil {
		return err
	}

	return printArtifacts(n.stdout, n.tool.ArtifactLabel(), outputs)
}

func (n *Node) runTaskDriven(ctx context.Context) error {
	source := n.source
	if source == nil {
		var err error
		source, err = rpc.NewTaskSourceRpcClient(n.config.OrchestratorEndpoint, n.logger)
		if err != nil {
			return fmt.Errorf("failed to create orchestrator client: %w", err)
		}
	}

	nodeMetrics, err := metrics.NewNodeMetrics(n.tool.Name())
	if err != nil {
		return err
	}

	executorConfig := &executor.Config{
		Tool:                n.tool.Name(),
		TaskPollingInterval: n.config.TaskPollingInterval,
		SingleTask:          n.config.SingleTask,
	}
	taskExecutor, err := executor.New(executorConfig, source, n.newPipeline(), nodeMetrics, n.logger)
	if err != nil {
		return fmt.Errorf("failed to create task executor: %w", err)
	}

	n.logger.Info().
		Str(logging.FieldUrl, n.config.OrchestratorEndpoint).
		Uint32(logging.FieldExecutorId, uint32(taskExecutor.Id())).
		Msg("Running in task-driven mode")

	return taskExecutor.Run(ctx)
}

func (n *Node) newPipeline() *pipeline {
	return &pipeline{
		tool:   n.tool,
		root:   n.root,
		runner: n.runner,
		logger: n.logger,
	}
}
