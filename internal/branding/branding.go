// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed. Hard defaults cover a missing or partial file.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	FlexDir     string `yaml:"flex_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:     "flex-plugin",
			DisplayName: "Flex Plugin",
			Description: "Build, start and validate Flex plugin projects",
			HomeDir:     ".twilio-cli",
			FlexDir:     "flex",
			EnvPrefix:   "FLEX_PLUGIN",
			GoModule:    "github.com/flex-plugins/flex-plugin",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "flex-plugin").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".twilio-cli").
func HomeDir() string { load(); return defaults.HomeDir }

// FlexDir returns the sub-directory of HomeDir holding Flex state (e.g., "flex").
func FlexDir() string { load(); return defaults.FlexDir }

// EnvPrefix returns the environment variable prefix (e.g., "FLEX_PLUGIN").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("cli_dir") → "FLEX_PLUGIN_CLI_DIR".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
