// Package paths resolves the fixed locations the CLI works with: files inside
// the plugin project being built, and the user-level CLI directory that holds
// the local plugin registry and config file.
package paths
