package stonenode

import (
	"fmt"
	"io"

	"github.com/NilFoundation/stone/services/stonenode/internal/types"
	"github.com/fatih/color"
)

// newTaskResult reports produced artifacts only, consumed inputs are not tracked.
func newTaskResult(task *types.Task, sender types.TaskExecutorId, outputs []string) *types.TaskResult {
	return types.NewTaskResult(task.Id, sender, nil, outputs)
}

var artifactLabelColor = color.New(color.FgGreen, color.Bold)

// printArtifacts writes one "<label>: <path>" line per artifact.
func printArtifacts(w io.Writer, label string, outputs []string) error {
	for _, output := range outputs {
		if _, err := fmt.Fprintf(w, "%s: %s\n", artifactLabelColor.Sprint(label), output); err != nil {
			return fmt.Errorf("failed to print artifact: %w", err)
		}
	}
	return nil
}
