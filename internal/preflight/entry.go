package preflight

import (
	"strings"

	"github.com/spf13/afero"

	"github.com/flex-plugins/flex-plugin/internal/paths"
)

// PluginMarker is the call every plugin entry file makes exactly once.
const PluginMarker = "loadPlugin"

// FindEntryFile returns the first src/index.<ext> that exists.
func FindEntryFile(fsys afero.Fs, p paths.Project) (string, error) {
	for _, candidate := range p.EntryCandidates() {
		ok, err := afero.Exists(fsys, candidate)
		if err != nil {
			return "", fatal(NoEntryFile, "could not check %s", candidate).wrap(err)
		}
		if ok {
			return candidate, nil
		}
	}
	return "", fatal(NoEntryFile, "no index file was found in %s", p.SrcDir).
		withSuggestion("Create src/index.js (or .jsx, .ts, .tsx) that loads your plugin.")
}

// CountPluginLoads counts non-overlapping occurrences of PluginMarker.
// The scan is textual, so mentions in comments or strings count too.
func CountPluginLoads(content string) int {
	return strings.Count(content, PluginMarker)
}

// CheckPluginCount requires the entry file to load exactly one plugin.
func CheckPluginCount(fsys afero.Fs, s Settings) error {
	entry, err := FindEntryFile(fsys, s.Project)
	if err != nil {
		return err
	}

	data, err := afero.ReadFile(fsys, entry)
	if err != nil {
		return fatal(NoEntryFile, "could not read %s", entry).wrap(err)
	}

	n := CountPluginLoads(string(data))
	if n == 1 {
		return nil
	}

	e := fatal(PluginLoadCountError, "found %d %s calls in %s, expected exactly one", n, PluginMarker, entry)
	e.Count = n
	if n == 0 {
		return e.withSuggestion("Call FlexPlugin.%s with your plugin class in the entry file.", PluginMarker)
	}
	return e.withSuggestion("A plugin bundle can only load one plugin. Move the others into their own projects.")
}
