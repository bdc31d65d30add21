package command

import (
	"strings"

	"github.com/NilFoundation/stone/services/stonenode/internal/types"
)

// Spec is a fully built invocation of an external executable.
type Spec struct {
	Executable string
	Args       []string
}

func (s Spec) String() string {
	parts := make([]string, 0, len(s.Args)+1)
	parts = append(parts, s.Executable)
	parts = append(parts, s.Args...)
	return strings.Join(parts, " ")
}

// Schema is the ordered list of flags an external tool expects.
// Each flag is emitted as "<flag>=<value>".
type Schema struct {
	flags []string
}

func NewSchema(flags ...string) Schema {
	return Schema{flags: flags}
}

func (s Schema) Flags() []string {
	return append([]string(nil), s.flags...)
}

// Build pairs values with the schema flags positionally.
func (s Schema) Build(executable string, values ...string) (Spec, error) {
	if executable == "" {
		return Spec{}, types.NewConfigurationError("executable path is empty")
	}
	if len(values) != len(s.flags) {
		return Spec{}, types.NewConfigurationError(
			"expected %d value(s) for flags [%s], got %d",
			len(s.flags), strings.Join(s.flags, ", "), len(values),
		)
	}

	args := make([]string, len(s.flags))
	for i, flag := range s.flags {
		if values[i] == "" {
			return Spec{}, types.NewConfigurationError("value for %s is empty", flag)
		}
		args[i] = flag + "=" + values[i]
	}

	return Spec{Executable: executable, Args: args}, nil
}
