//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	CLIDir     string // FLEX_PLUGIN_CLI_DIR, holds flex/plugins.json
	WorkDir    string // parent of ProjectDir; node_modules here are found by module resolution
	ProjectDir string // a mock plugin project
}

// setupTestEnv creates isolated temp directories and points the CLI home at
// one of them. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	work := t.TempDir()
	env := &testEnv{
		CLIDir:     t.TempDir(),
		WorkDir:    work,
		ProjectDir: filepath.Join(work, "plugin-sample"),
	}

	t.Setenv("FLEX_PLUGIN_CLI_DIR", env.CLIDir)
	t.Setenv("SKIP_PREFLIGHT_CHECK", "")
	t.Setenv("UNBUNDLED_REACT", "")

	return env
}

// setupProject lays out a JavaScript plugin whose dependencies match what
// @twilio/flex-ui declares.
func setupProject(t *testing.T, dir, name string) {
	t.Helper()

	writeFile(t, filepath.Join(dir, "package.json"), `{
  "name": "`+name+`",
  "version": "0.0.1",
  "dependencies": {"flex-plugin": "^3.0.0"}
}
`)
	writeFile(t, filepath.Join(dir, "public", "appConfig.js"), "var appConfig = { serviceBaseUrl: '' };\n")
	writeFile(t, filepath.Join(dir, "src", "index.js"), `import * as FlexPlugin from 'flex-plugin';
import SamplePlugin from './SamplePlugin';

FlexPlugin.loadPlugin(SamplePlugin);
`)
	writeFile(t, filepath.Join(dir, "src", "SamplePlugin.js"), "export default class SamplePlugin {}\n")

	writePackage(t, dir, "@twilio/flex-ui", `{
  "name": "@twilio/flex-ui",
  "version": "1.18.1",
  "dependencies": {"react": "^16.5.2", "react-dom": "^16.5.2"}
}`)
	writePackage(t, dir, "react", `{"name":"react","version":"16.5.2"}`)
	writePackage(t, dir, "react-dom", `{"name":"react-dom","version":"16.5.2"}`)
}

// writePackage writes node_modules/<name>/package.json under dir.
func writePackage(t *testing.T, dir, name, content string) {
	t.Helper()
	writeFile(t, filepath.Join(dir, "node_modules", filepath.FromSlash(name), "package.json"), content)
}

// writeFile creates a file with the given content, creating parent dirs as needed.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// assertFileExists fails the test if path does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}

// assertFileNotExists fails the test if path exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file to not exist: %s", path)
	}
}

// assertContains fails the test if s does not contain substr.
func assertContains(t *testing.T, s, substr string) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Errorf("expected %q to contain %q", s, substr)
	}
}
