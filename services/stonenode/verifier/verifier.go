package verifier

import (
	"github.com/NilFoundation/stone/services/stonenode/internal/command"
	"github.com/NilFoundation/stone/services/stonenode/internal/tool"
	"github.com/NilFoundation/stone/services/stonenode/internal/types"
	"github.com/NilFoundation/stone/services/stonenode/internal/workspace"
)

const (
	Name = "verifier"

	ExecutablePathParam = "verifier-path"
	InFileParam         = "in-file"
)

var commandSchema = command.NewSchema("--in-file")

type Request struct {
	spec   command.Spec
	inFile string
}

var _ tool.Request = (*Request)(nil)

func newRequest(executable string, inFile string) (*Request, error) {
	spec, err := commandSchema.Build(executable, inFile)
	if err != nil {
		return nil, err
	}
	return &Request{spec: spec, inFile: inFile}, nil
}

func (r *Request) Command() command.Spec {
	return r.spec
}

func (r *Request) InFile() string {
	return r.inFile
}

// Outputs is always empty: a successful exit is the verification verdict.
func (r *Request) Outputs() []string {
	return []string{}
}

type Params struct {
	ExecutablePath string
	InFile         string
}

var _ tool.Params = Params{}

func (p Params) List() []tool.Param {
	return []tool.Param{
		{Name: ExecutablePathParam, Value: p.ExecutablePath},
		{Name: InFileParam, Value: p.InFile},
	}
}

func (p Params) Request(root workspace.Root) (tool.Request, error) {
	inFile, err := root.Resolve(p.InFile)
	if err != nil {
		return nil, err
	}
	return newRequest(p.ExecutablePath, inFile)
}

type Tool struct{}

var _ tool.Tool = Tool{}

func NewTool() Tool {
	return Tool{}
}

func (Tool) Name() string {
	return Name
}

// ArtifactLabel is empty, the verifier produces no artifacts.
func (Tool) ArtifactLabel() string {
	return ""
}

// FromTask expects task args [_, executable, in_file], both relative to the workspace root.
func (Tool) FromTask(root workspace.Root, task *types.Task) (tool.Request, error) {
	values, err := task.NamedArgs("executable", "in_file")
	if err != nil {
		return nil, err
	}

	paths, err := root.ResolveAll(values...)
	if err != nil {
		return nil, err
	}

	return newRequest(paths[0], paths[1])
}
