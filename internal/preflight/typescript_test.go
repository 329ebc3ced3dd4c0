package preflight

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTypedSource(t *testing.T) {
	tests := map[string]bool{
		"index.ts":              true,
		"src/index.tsx":         true,
		"src/components/a/b.ts": true,
		"src/types.d.ts":        false,
		"index.js":              false,
		"src/App.jsx":           false,
		"src/notes.ts.bak":      false,
	}
	for path, want := range tests {
		assert.Equal(t, want, IsTypedSource(path), path)
	}
}

func TestHasTypedSources(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  bool
	}{
		{name: "javascript only", files: []string{"src/index.js", "src/App.jsx"}, want: false},
		{name: "typescript", files: []string{"src/index.js", "src/App.tsx"}, want: true},
		{name: "declarations only", files: []string{"src/index.js", "src/global.d.ts"}, want: false},
		{name: "node_modules ignored", files: []string{"src/index.js", "node_modules/x/index.ts"}, want: false},
		{name: "hidden dirs ignored", files: []string{"src/index.js", ".cache/a.ts"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			for _, f := range tt.files {
				writeFile(t, fsys, filepath.Join(testProjectDir, f), "")
			}
			got, err := HasTypedSources(fsys, testProjectDir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveModule(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/work/node_modules/typescript/package.json", `{"version":"4.9.5"}`)

	dir, ok := ResolveModule(fsys, testProjectDir, "typescript")
	require.True(t, ok)
	assert.Equal(t, filepath.Join("/work", "node_modules", "typescript"), dir)

	_, ok = ResolveModule(fsys, testProjectDir, "missing")
	assert.False(t, ok)
}

func TestValidateTypeScript(t *testing.T) {
	t.Run("no typed sources", func(t *testing.T) {
		fsys, s := healthyProject(t)
		rec := &recorder{}
		require.NoError(t, ValidateTypeScript(fsys, s, rec))

		exists, err := afero.Exists(fsys, s.Project.TSConfig)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("compiler missing", func(t *testing.T) {
		fsys, s := healthyProject(t)
		writeFile(t, fsys, filepath.Join(s.Project.SrcDir, "App.tsx"), "")

		err := ValidateTypeScript(fsys, s, &recorder{})
		assert.True(t, IsKind(err, ToolchainNotInstalled))
	})

	t.Run("existing tsconfig kept", func(t *testing.T) {
		fsys, s := healthyProject(t)
		writeFile(t, fsys, filepath.Join(s.Project.SrcDir, "App.tsx"), "")
		writeFile(t, fsys, s.Project.PackageManifest("typescript"), `{"version":"4.9.5"}`)
		writeFile(t, fsys, s.Project.TSConfig, `{"custom":true}`)
		rec := &recorder{}

		require.NoError(t, ValidateTypeScript(fsys, s, rec))
		data, err := afero.ReadFile(fsys, s.Project.TSConfig)
		require.NoError(t, err)
		assert.Equal(t, `{"custom":true}`, string(data))
		assert.Empty(t, rec.warnings)
	})

	t.Run("default tsconfig created", func(t *testing.T) {
		fsys, s := healthyProject(t)
		writeFile(t, fsys, filepath.Join(s.Project.SrcDir, "App.tsx"), "")
		writeFile(t, fsys, s.Project.PackageManifest("typescript"), `{"version":"4.9.5"}`)
		rec := &recorder{}

		require.NoError(t, ValidateTypeScript(fsys, s, rec))
		data, err := afero.ReadFile(fsys, s.Project.TSConfig)
		require.NoError(t, err)
		assert.True(t, json.Valid(data))
		assert.Equal(t, []string{"No tsconfig.json was found, creating a default one."}, rec.warnings)
	})

	t.Run("tsconfig write failure", func(t *testing.T) {
		base, s := healthyProject(t)
		writeFile(t, base, filepath.Join(s.Project.SrcDir, "App.tsx"), "")
		writeFile(t, base, s.Project.PackageManifest("typescript"), `{"version":"4.9.5"}`)

		err := ValidateTypeScript(afero.NewReadOnlyFs(base), s, &recorder{})
		assert.True(t, IsKind(err, FileSyncFailure))
	})
}
