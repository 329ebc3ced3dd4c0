package preflight

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/flex-plugins/flex-plugin/internal/paths"
)

const testProjectDir = "/work/plugin-test"

type recorder struct {
	reports  []*Error
	warnings []string
}

func (r *recorder) Report(e *Error) { r.reports = append(r.reports, e) }
func (r *recorder) Warn(msg string) { r.warnings = append(r.warnings, msg) }

func testSettings() Settings {
	return Settings{
		Project: paths.NewProject(testProjectDir, "plugin-test"),
		CLI:     paths.NewCLI("/home/user/.twilio-cli"),
	}
}

func writeFile(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0644))
}

// healthyProject lays out a JavaScript plugin that passes every check.
func healthyProject(t *testing.T) (afero.Fs, Settings) {
	t.Helper()
	fsys := afero.NewMemMapFs()
	s := testSettings()

	writeFile(t, fsys, s.Project.PackageJSON, `{"name":"plugin-test","version":"0.0.1"}`)
	writeFile(t, fsys, s.Project.AppConfig, `var appConfig = {};`)
	writeFile(t, fsys, s.Project.FlexUIManifest(), `{
  "name": "@twilio/flex-ui",
  "version": "1.18.0",
  "dependencies": {"react": "^16.5.2", "react-dom": "^16.5.2"}
}`)
	writeFile(t, fsys, s.Project.PackageManifest("react"), `{"name":"react","version":"16.5.2"}`)
	writeFile(t, fsys, s.Project.PackageManifest("react-dom"), `{"name":"react-dom","version":"16.5.2"}`)
	writeFile(t, fsys, filepath.Join(s.Project.SrcDir, "index.js"), `import * as FlexPlugin from 'flex-plugin';
import MyPlugin from './MyPlugin';

FlexPlugin.loadPlugin(MyPlugin);
`)
	return fsys, s
}
