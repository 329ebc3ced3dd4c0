// Package registry manages the local plugin registry, a JSON file under the
// user-level CLI directory that maps every known plugin name to the directory
// it was last started from and its dev-server port. The file is read and
// rewritten in full; entries are appended or re-pointed, never removed.
package registry
