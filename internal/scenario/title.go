package scenario

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
)

// Title returns the window title for a scenario loaded from path: the
// scenario name, prefixed with the last element of the enclosing Go module
// path when the file lives inside a module.
func Title(sc *Scenario, path string) string {
	mod := enclosingModule(filepath.Dir(path))
	if mod == "" {
		return sc.Name
	}
	return mod + ": " + sc.Name
}

// enclosingModule walks up from dir to the nearest go.mod and returns the
// last element of its module path, without a major version suffix.
func enclosingModule(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	for {
		data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
		if err == nil {
			path := modfile.ModulePath(data)
			if path == "" {
				return ""
			}
			prefix, _, ok := module.SplitPathVersion(path)
			if !ok {
				prefix = path
			}
			parts := strings.Split(prefix, "/")
			return parts[len(parts)-1]
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
