package prover

import (
	"github.com/NilFoundation/stone/services/stonenode/internal/command"
	"github.com/NilFoundation/stone/services/stonenode/internal/tool"
	"github.com/NilFoundation/stone/services/stonenode/internal/types"
	"github.com/NilFoundation/stone/services/stonenode/internal/workspace"
)

const (
	Name          = "prover"
	ArtifactLabel = "stone proof file"

	ExecutablePathParam = "prover-path"
	DataDirParam        = "data-dir"
	ProgramNameParam    = "program-name"
)

var commandSchema = command.NewSchema(
	"--out-file",
	"--private_input_file",
	"--public_input_file",
	"--prover_config_file",
	"--parameter_file",
)

type Request struct {
	spec   command.Spec
	layout Layout
}

var _ tool.Request = (*Request)(nil)

func newRequest(executable string, layout Layout) (*Request, error) {
	spec, err := commandSchema.Build(executable, layout.values()...)
	if err != nil {
		return nil, err
	}
	return &Request{spec: spec, layout: layout}, nil
}

func (r *Request) Command() command.Spec {
	return r.spec
}

func (r *Request) Layout() Layout {
	return r.layout
}

// Outputs is the proof file, the only artifact of a successful run.
func (r *Request) Outputs() []string {
	return []string{r.layout.OutFile}
}

// Params are the standalone parameters. The executable path is used as given,
// the data directory is resolved against the workspace root.
type Params struct {
	ExecutablePath string
	DataDir        string
	ProgramName    string
}

var _ tool.Params = Params{}

func (p Params) List() []tool.Param {
	return []tool.Param{
		{Name: ExecutablePathParam, Value: p.ExecutablePath},
		{Name: DataDirParam, Value: p.DataDir},
		{Name: ProgramNameParam, Value: p.ProgramName},
	}
}

func (p Params) Request(root workspace.Root) (tool.Request, error) {
	dataDir, err := root.Resolve(p.DataDir)
	if err != nil {
		return nil, err
	}

	layout, err := NewLayout(dataDir, p.ProgramName)
	if err != nil {
		return nil, err
	}

	return newRequest(p.ExecutablePath, layout)
}

type Tool struct{}

var _ tool.Tool = Tool{}

func NewTool() Tool {
	return Tool{}
}

func (Tool) Name() string {
	return Name
}

func (Tool) ArtifactLabel() string {
	return ArtifactLabel
}

// FromTask expects task args [_, executable, data_dir, program_name].
// Executable and data directory are relative to the workspace root, the program name is a plain name.
func (Tool) FromTask(root workspace.Root, task *types.Task) (tool.Request, error) {
	values, err := task.NamedArgs("executable", "data_dir", "program_name")
	if err != nil {
		return nil, err
	}

	paths, err := root.ResolveAll(values[0], values[1])
	if err != nil {
		return nil, err
	}

	layout, err := NewLayout(paths[1], values[2])
	if err != nil {
		return nil, err
	}

	return newRequest(paths[0], layout)
}
