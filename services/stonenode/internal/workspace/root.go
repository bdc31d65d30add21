package workspace

import (
	"path/filepath"
	"strings"

	"github.com/NilFoundation/stone/services/stonenode/internal/types"
)

const DefaultRoot = "/workspace"

// Root is the directory under which every task-relative name is resolved.
type Root struct {
	path string
}

func NewRoot(path string) (Root, error) {
	if path == "" {
		return Root{}, types.NewConfigurationError("workspace root is empty")
	}
	if !filepath.IsAbs(path) {
		return Root{}, types.NewConfigurationError("workspace root %q is not an absolute path", path)
	}
	return Root{path: filepath.Clean(path)}, nil
}

func (r Root) String() string {
	return r.path
}

// Resolve joins name onto the root. A name that is already an absolute path inside
// the root is returned cleaned instead of being prefixed twice.
// Names that resolve outside the root are rejected.
func (r Root) Resolve(name string) (string, error) {
	if r.path == "" {
		return "", types.NewConfigurationError("workspace root is not set")
	}
	if name == "" {
		return "", types.NewConfigurationError("cannot resolve an empty name under %s", r.path)
	}

	if filepath.IsAbs(name) {
		if cleaned := filepath.Clean(name); r.contains(cleaned) {
			return cleaned, nil
		}
	}

	resolved := filepath.Join(r.path, name)
	if !r.contains(resolved) {
		return "", types.NewConfigurationError("%q escapes workspace root %s", name, r.path)
	}
	return resolved, nil
}

// ResolveAll resolves names in order and stops at the first failure.
func (r Root) ResolveAll(names ...string) ([]string, error) {
	resolved := make([]string, len(names))
	for i, name := range names {
		path, err := r.Resolve(name)
		if err != nil {
			return nil, err
		}
		resolved[i] = path
	}
	return resolved, nil
}

func (r Root) contains(path string) bool {
	if path == r.path {
		return true
	}
	prefix := r.path
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(path, prefix)
}
