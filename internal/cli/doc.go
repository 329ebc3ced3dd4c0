// Package cli defines the Cobra command tree for the flex-plugin CLI. Each
// file registers one top-level command with the root command. Commands only
// parse flags, wire collaborators and format output; the checks themselves
// live in internal/preflight.
package cli
