package preflight

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"github.com/spf13/afero"

	"github.com/flex-plugins/flex-plugin/internal/paths"
	"github.com/flex-plugins/flex-plugin/internal/scaffold"
)

var (
	typedSourceGlob = glob.MustCompile("**.{ts,tsx}", '/')
	declarationGlob = glob.MustCompile("**.d.ts", '/')
)

var errFound = errors.New("found")

// IsTypedSource reports whether a slash-separated path names a .ts or .tsx
// file that is not a declaration file.
func IsTypedSource(path string) bool {
	return typedSourceGlob.Match(path) && !declarationGlob.Match(path)
}

// HasTypedSources walks the project looking for a typed source file.
// node_modules and hidden directories are not searched.
func HasTypedSources(fsys afero.Fs, root string) (bool, error) {
	err := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != root && (info.Name() == paths.NodeModulesDir || strings.HasPrefix(info.Name(), ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if IsTypedSource(filepath.ToSlash(rel)) {
			return errFound
		}
		return nil
	})
	if errors.Is(err, errFound) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("scanning %s for TypeScript sources: %w", root, err)
	}
	return false, nil
}

// ValidateTypeScript checks typed projects have the compiler installed and a
// tsconfig.json. A missing tsconfig.json is created from the bundled
// default, which is the one place this check writes to the project.
func ValidateTypeScript(fsys afero.Fs, s Settings, r Reporter) error {
	typed, err := HasTypedSources(fsys, s.Project.Dir)
	if err != nil {
		return err
	}
	if !typed {
		return nil
	}

	if _, ok := ResolveModule(fsys, s.Project.Dir, paths.TypeScriptModule); !ok {
		return fatal(ToolchainNotInstalled, "this project has TypeScript sources but %s is not installed", paths.TypeScriptModule).
			withSuggestion("Run npm install --save-dev %s and try again.", paths.TypeScriptModule)
	}

	ok, err := afero.Exists(fsys, s.Project.TSConfig)
	if err != nil {
		return fmt.Errorf("checking %s: %w", s.Project.TSConfig, err)
	}
	if ok {
		return nil
	}

	r.Warn("No tsconfig.json was found, creating a default one.")
	if err := scaffold.WriteFile(fsys, scaffold.TSConfig, s.Project.TSConfig, scaffold.Data{Name: s.Project.Name}); err != nil {
		return fatal(FileSyncFailure, "could not create %s", s.Project.TSConfig).
			withDetail("%v", err).
			wrap(err)
	}
	return nil
}
