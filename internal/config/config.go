package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/flex-plugins/flex-plugin/internal/branding"
	"github.com/flex-plugins/flex-plugin/internal/paths"
)

const fileType = "yaml"

// Preflight setting keys. Each is also read from the unprefixed environment
// variable of the same name in upper case.
const (
	KeySkipPreflightCheck = "skip_preflight_check"
	KeyUnbundledReact     = "unbundled_react"
)

var envKeys = []string{KeySkipPreflightCheck, KeyUnbundledReact}

// Keys returns the preflight setting keys in display order.
func Keys() []string {
	return append([]string(nil), envKeys...)
}

// Validate rejects values viper could not read back for a known key.
// Unknown keys are accepted as free-form strings.
func Validate(key, value string) error {
	for _, k := range envKeys {
		if k != key {
			continue
		}
		if _, err := cast.ToBoolE(value); err != nil {
			return fmt.Errorf("%s must be true or false, got %q", key, value)
		}
	}
	return nil
}

// Dir returns the directory holding the config file (~/.twilio-cli/flex/).
func Dir() string {
	cli, err := paths.ResolveCLI()
	if err != nil {
		return filepath.Join(".", branding.HomeDir(), branding.FlexDir())
	}
	return cli.FlexDir
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), paths.ConfigFile)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, paths.DirPermNormal); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() error {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	for _, key := range envKeys {
		if err := viper.BindEnv(key, branding.EnvVar(key), strings.ToUpper(key)); err != nil {
			return fmt.Errorf("binding %s: %w", key, err)
		}
	}

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
	return nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// SkipPreflightCheck reports whether version mismatches are downgraded to
// warnings.
func SkipPreflightCheck() bool {
	return viper.GetBool(KeySkipPreflightCheck)
}

// AllowUnbundledReact reports whether a plugin may ship its own React.
func AllowUnbundledReact() bool {
	return viper.GetBool(KeyUnbundledReact)
}

// Set validates and writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := Validate(key, value); err != nil {
		return err
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
