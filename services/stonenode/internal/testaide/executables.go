package testaide

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteExecutable writes a /bin/sh script into dir and makes it executable.
func WriteExecutable(t *testing.T, dir string, name string, script string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755)) //nolint:gosec
	return path
}

// SucceedingScript prints its arguments one per line and exits with 0.
const SucceedingScript = `for arg in "$@"; do echo "$arg"; done`

// FailingScript writes to both streams and exits with 1.
const FailingScript = `echo "proving..."
echo "bad input" >&2
exit 1`

// MarkerScript creates markerPath, which lets tests detect that the executable was started.
func MarkerScript(markerPath string) string {
	return "touch '" + markerPath + "'"
}
