package main

import (
	"os"

	"github.com/NilFoundation/stone/cmd/internal/nodecmd"
	"github.com/NilFoundation/stone/services/stonenode"
	"github.com/NilFoundation/stone/services/stonenode/verifier"
)

func main() {
	os.Exit(nodecmd.Execute(nodecmd.Definition{
		Tool:  verifier.NewTool(),
		Short: "Run stone verifier node",
		ParamFlags: []nodecmd.ParamFlag{
			{Name: verifier.ExecutablePathParam, Usage: "path to the stone-verifier executable"},
			{Name: verifier.InFileParam, Usage: "path to the proof file"},
		},
		NewParams: func(values []string) stonenode.Params {
			return verifier.Params{
				ExecutablePath: values[0],
				InFile:         values[1],
			}
		},
	}))
}
