package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	dirPerm  fs.FileMode = 0755
	filePerm fs.FileMode = 0644
)

// Registry reads and mutates the registry file at Path.
// It is not safe for concurrent use across processes: writes are
// last-writer-wins with no locking.
type Registry struct {
	fs      afero.Fs
	path    string
	confirm Confirmer
	logger  *slog.Logger
}

// New returns a Registry backed by the file at path. confirm is consulted
// when a known plugin is started from a different directory.
func New(fsys afero.Fs, path string, confirm Confirmer, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Registry{fs: fsys, path: path, confirm: confirm, logger: logger}
}

// EnsureExists creates the registry file with an empty plugin list if it does
// not exist. The parent directory is created as needed.
func (r *Registry) EnsureExists() error {
	exists, err := afero.Exists(r.fs, r.path)
	if err != nil {
		return fmt.Errorf("checking %s: %w", r.path, err)
	}
	if exists {
		return nil
	}

	dir := filepath.Dir(r.path)
	if err := r.fs.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("creating registry directory %s: %w", dir, err)
	}

	r.logger.Debug("creating plugin registry", "path", r.path)
	return r.Save(&File{})
}

// Load reads and validates the registry file. A missing file is an error;
// call EnsureExists first.
func (r *Registry) Load() (*File, error) {
	data, err := afero.ReadFile(r.fs, r.path)
	if err != nil {
		return nil, fmt.Errorf("reading plugin registry: %w", err)
	}

	if err := validate(data); err != nil {
		return nil, fmt.Errorf("validating %s: %w", r.path, err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", r.path, err)
	}

	seen := make(map[string]bool, len(f.Plugins))
	for _, p := range f.Plugins {
		if p.Name == "" {
			continue
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("%s: duplicate plugin name %q", r.path, p.Name)
		}
		seen[p.Name] = true
	}

	return &f, nil
}

// Save rewrites the whole registry file, pretty-printed with two-space
// indentation and keys in name, dir, port order. Unknown keys read by Load
// are written back after the known ones.
func (r *Registry) Save(f *File) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling plugin registry: %w", err)
	}

	if err := afero.WriteFile(r.fs, r.path, data, filePerm); err != nil {
		return fmt.Errorf("writing plugin registry %s: %w", r.path, err)
	}
	return nil
}

// List returns every entry in file order, creating the registry if needed.
func (r *Registry) List() ([]Entry, error) {
	if err := r.EnsureExists(); err != nil {
		return nil, err
	}
	f, err := r.Load()
	if err != nil {
		return nil, err
	}
	return f.Plugins, nil
}

// Find returns the entry for name, or false if the plugin is not registered.
func (r *Registry) Find(name string) (Entry, bool, error) {
	entries, err := r.List()
	if err != nil {
		return Entry{}, false, err
	}
	for _, e := range entries {
		if e.Name == name {
			return e, true, nil
		}
	}
	return Entry{}, false, nil
}

// Reconcile makes sure the registry has an entry for name pointing at dir.
//
// An unknown name is appended with port 0. A known name with the same dir is
// left alone and nothing is written. A known name with another dir is only
// re-pointed if the Confirmer agrees (the question defaults to yes).
func (r *Registry) Reconcile(ctx context.Context, name, dir string) (Outcome, error) {
	if err := r.EnsureExists(); err != nil {
		return 0, err
	}

	f, err := r.Load()
	if err != nil {
		return 0, err
	}

	entry := f.Find(name)
	if entry == nil {
		f.Plugins = append(f.Plugins, Entry{Name: name, Dir: dir, Port: 0})
		if err := r.Save(f); err != nil {
			return 0, err
		}
		r.logger.Debug("registered plugin", "name", name, "dir", dir)
		return Added, nil
	}

	if entry.Dir == dir {
		return Unchanged, nil
	}

	if r.confirm == nil {
		return 0, errors.New("plugin directory changed but no confirmation prompt is available")
	}

	question := fmt.Sprintf(
		"You already have a plugin called %s in the local Flex configuration file, but it is located at %s. Do you want to update the directory path to %s?",
		entry.Name, entry.Dir, dir,
	)
	ok, err := r.confirm.Confirm(ctx, question, true)
	if err != nil {
		return 0, fmt.Errorf("confirming directory update for %s: %w", name, err)
	}
	if !ok {
		r.logger.Debug("kept registered plugin directory", "name", name, "dir", entry.Dir)
		return Declined, nil
	}

	previous := entry.Dir
	entry.Dir = dir
	if err := r.Save(f); err != nil {
		return 0, err
	}
	r.logger.Debug("updated plugin directory", "name", name, "from", previous, "to", dir)
	return Updated, nil
}
