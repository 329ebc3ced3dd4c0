package preflight

import (
	"github.com/spf13/afero"

	"github.com/flex-plugins/flex-plugin/internal/scaffold"
)

// SyncPublicDir rewrites public/index.html from the bundled template.
// Any write failure is fatal, even when skipping is allowed.
func SyncPublicDir(fsys afero.Fs, s Settings) error {
	err := scaffold.WriteFile(fsys, scaffold.IndexHTML, s.Project.IndexHTML, scaffold.Data{Name: s.Project.Name})
	if err != nil {
		e := fatal(FileSyncFailure, "could not copy %s into the public directory", scaffold.IndexHTML).
			withDetail("%v", err).
			wrap(err)
		if s.AllowSkip {
			e.withSuggestion("Skipping the preflight check does not cover this step. Make sure %s is writable.", s.Project.IndexHTML)
		} else {
			e.withSuggestion("Make sure %s is writable.", s.Project.IndexHTML)
		}
		return e
	}
	return nil
}
