package paths

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/flex-plugins/flex-plugin/internal/branding"
)

// File and directory name constants for the user-level CLI directory.
const (
	PluginsFile = "plugins.json"
	ConfigFile  = "config.yaml"
)

// DirPermNormal is used for every directory this CLI creates.
const DirPermNormal os.FileMode = 0755

// CLI holds the user-level locations shared by every plugin on the machine.
type CLI struct {
	// Dir is the CLI home, e.g. ~/.twilio-cli.
	Dir string
	// FlexDir holds Flex-specific state, e.g. ~/.twilio-cli/flex.
	FlexDir string
	// PluginsJSON is the local plugin registry file.
	PluginsJSON string
	// ConfigFile is the user settings file read by viper.
	ConfigFile string
}

// GetCLIDir returns the CLI home directory.
// It checks the FLEX_PLUGIN_CLI_DIR environment variable first,
// then falls back to ~/.twilio-cli.
func GetCLIDir() (string, error) {
	if v := os.Getenv(branding.EnvVar("CLI_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.HomeDir()), nil
}

// ResolveCLI returns the user-level CLI locations.
func ResolveCLI() (CLI, error) {
	dir, err := GetCLIDir()
	if err != nil {
		return CLI{}, err
	}
	return NewCLI(dir), nil
}

// NewCLI derives the CLI locations from a CLI home directory.
func NewCLI(dir string) CLI {
	flexDir := filepath.Join(dir, branding.FlexDir())
	return CLI{
		Dir:         dir,
		FlexDir:     flexDir,
		PluginsJSON: filepath.Join(flexDir, PluginsFile),
		ConfigFile:  filepath.Join(flexDir, ConfigFile),
	}
}
