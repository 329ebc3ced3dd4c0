package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("FLEX_PLUGIN_CLI_DIR", dir)
	t.Setenv("SKIP_PREFLIGHT_CHECK", "")
	t.Setenv("UNBUNDLED_REACT", "")
	t.Setenv("FLEX_PLUGIN_SKIP_PREFLIGHT_CHECK", "")
	t.Setenv("FLEX_PLUGIN_UNBUNDLED_REACT", "")
	viper.Reset()
	t.Cleanup(viper.Reset)
	return dir
}

func TestFilePath(t *testing.T) {
	dir := setup(t)
	assert.Equal(t, filepath.Join(dir, "flex", "config.yaml"), FilePath())
}

func TestPreflightFlags_Defaults(t *testing.T) {
	setup(t)
	require.NoError(t, Load())
	assert.False(t, SkipPreflightCheck())
	assert.False(t, AllowUnbundledReact())
}

func TestPreflightFlags_Environment(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		wantSkip  bool
		wantReact bool
	}{
		{name: "bare variables", env: map[string]string{"SKIP_PREFLIGHT_CHECK": "true", "UNBUNDLED_REACT": "true"}, wantSkip: true, wantReact: true},
		{name: "numeric truthy", env: map[string]string{"SKIP_PREFLIGHT_CHECK": "1"}, wantSkip: true},
		{name: "false value", env: map[string]string{"SKIP_PREFLIGHT_CHECK": "false"}},
		{name: "prefixed variables", env: map[string]string{"FLEX_PLUGIN_UNBUNDLED_REACT": "true"}, wantReact: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			require.NoError(t, Load())
			assert.Equal(t, tt.wantSkip, SkipPreflightCheck())
			assert.Equal(t, tt.wantReact, AllowUnbundledReact())
		})
	}
}

func TestSetAndGet(t *testing.T) {
	setup(t)
	require.NoError(t, Load())
	require.NoError(t, Set(KeyUnbundledReact, "true"))

	_, err := os.Stat(FilePath())
	require.NoError(t, err)

	viper.Reset()
	require.NoError(t, Load())
	assert.Equal(t, "true", Get(KeyUnbundledReact))
	assert.True(t, AllowUnbundledReact())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		wantErr bool
	}{
		{KeySkipPreflightCheck, "true", false},
		{KeySkipPreflightCheck, "0", false},
		{KeyUnbundledReact, "FALSE", false},
		{KeySkipPreflightCheck, "maybe", true},
		{KeyUnbundledReact, "", true},
		{"editor", "maybe", false},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			err := Validate(tt.key, tt.value)
			if tt.wantErr {
				assert.ErrorContains(t, err, "must be true or false")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSet_RejectsInvalidBool(t *testing.T) {
	setup(t)
	require.NoError(t, Load())

	require.Error(t, Set(KeySkipPreflightCheck, "maybe"))
	_, err := os.Stat(FilePath())
	assert.True(t, os.IsNotExist(err))
}
