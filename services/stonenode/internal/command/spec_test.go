package command

import (
	"strings"
	"testing"

	"github.com/NilFoundation/stone/services/stonenode/internal/types"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSchema_Build(t *testing.T) {
	t.Parallel()

	schema := NewSchema("--out-file", "--parameter_file")
	spec, err := schema.Build("/workspace/bin/prover", "/workspace/out.json", "/workspace/params.json")
	require.NoError(t, err)
	require.Equal(t, "/workspace/bin/prover", spec.Executable)
	require.Equal(t, []string{"--out-file=/workspace/out.json", "--parameter_file=/workspace/params.json"}, spec.Args)
	require.Equal(t, "/workspace/bin/prover --out-file=/workspace/out.json --parameter_file=/workspace/params.json", spec.String())
}

func TestSchema_Build_RejectsMissingInputs(t *testing.T) {
	t.Parallel()

	schema := NewSchema("--in-file")

	_, err := schema.Build("", "/workspace/proof.json")
	require.ErrorIs(t, err, types.ErrConfiguration)

	_, err = schema.Build("/workspace/bin/verifier")
	require.ErrorIs(t, err, types.ErrConfiguration)

	_, err = schema.Build("/workspace/bin/verifier", "a", "b")
	require.ErrorIs(t, err, types.ErrConfiguration)

	_, err = schema.Build("/workspace/bin/verifier", "")
	require.ErrorIs(t, err, types.ErrConfiguration)
}

func TestSchema_FlagsIsACopy(t *testing.T) {
	t.Parallel()

	schema := NewSchema("--a", "--b")
	flags := schema.Flags()
	flags[0] = "--mutated"
	require.Equal(t, []string{"--a", "--b"}, schema.Flags())
}

func TestSchema_Build_PreservesOrderProperty(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		flags := rapid.SliceOfN(rapid.StringMatching(`--[a-z_-]{1,12}`), 0, 8).Draw(t, "flags")
		values := make([]string, len(flags))
		for i := range flags {
			values[i] = rapid.StringMatching(`/[a-z/._]{1,20}`).Draw(t, "value")
		}

		spec, err := NewSchema(flags...).Build("/bin/tool", values...)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(spec.Args) != len(flags) {
			t.Fatalf("expected %d args, got %d", len(flags), len(spec.Args))
		}
		for i, arg := range spec.Args {
			flag, value, found := strings.Cut(arg, "=")
			if !found || flag != flags[i] || value != values[i] {
				t.Fatalf("arg %d is %q, expected %s=%s", i, arg, flags[i], values[i])
			}
		}
	})
}
