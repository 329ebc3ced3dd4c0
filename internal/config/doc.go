// Package config manages user-level settings stored at
// ~/.twilio-cli/flex/config.yaml. Values can be overridden by FLEX_PLUGIN_*
// environment variables; the preflight flags also honour the bare
// SKIP_PREFLIGHT_CHECK and UNBUNDLED_REACT variables.
package config
