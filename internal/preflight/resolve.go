package preflight

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/flex-plugins/flex-plugin/internal/paths"
)

// ResolveModule looks for node_modules/<name>/package.json in fromDir and
// every parent directory, the way Node resolves a bare import. It returns
// the directory of the first match.
func ResolveModule(fsys afero.Fs, fromDir, name string) (string, bool) {
	dir := filepath.Clean(fromDir)
	for {
		moduleDir := filepath.Join(dir, paths.NodeModulesDir, filepath.FromSlash(name))
		if ok, _ := afero.Exists(fsys, filepath.Join(moduleDir, paths.PackageFile)); ok {
			return moduleDir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
