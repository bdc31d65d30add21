package tool

import (
	"github.com/NilFoundation/stone/services/stonenode/internal/command"
	"github.com/NilFoundation/stone/services/stonenode/internal/types"
	"github.com/NilFoundation/stone/services/stonenode/internal/workspace"
)

// Request is one fully resolved run of an external tool.
type Request interface {
	// Command is the process to start, with absolute paths only.
	Command() command.Spec

	// Outputs lists the artifacts a successful run produces.
	Outputs() []string
}

// Param is a single standalone parameter, an empty Value means it was not supplied.
type Param struct {
	Name  string
	Value string
}

func (p Param) IsSet() bool {
	return p.Value != ""
}

// Params are the standalone parameters of a tool, supplied by the operator.
type Params interface {
	List() []Param
	Request(root workspace.Root) (Request, error)
}

type Tool interface {
	// Name identifies the tool in logs, metrics and task requests, e.g. "prover".
	Name() string

	// ArtifactLabel prefixes produced artifact paths in standalone output.
	ArtifactLabel() string

	// FromTask builds a request from orchestrator task arguments.
	FromTask(root workspace.Root, task *types.Task) (Request, error)
}
