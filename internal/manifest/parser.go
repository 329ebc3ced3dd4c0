package manifest

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"
)

// PackageDescriptor is the subset of package.json the preflight checks use.
type PackageDescriptor struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

// Dependency returns the declared version range for name.
// An empty range counts as not declared.
func (p *PackageDescriptor) Dependency(name string) (string, bool) {
	if p == nil {
		return "", false
	}
	r, ok := p.Dependencies[name]
	if !ok || r == "" {
		return "", false
	}
	return r, true
}

// Parse decodes package.json bytes.
func Parse(data []byte) (*PackageDescriptor, error) {
	var pkg PackageDescriptor
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, err
	}
	return &pkg, nil
}

// Read reads and decodes the package.json at path.
func Read(fsys afero.Fs, path string) (*PackageDescriptor, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	pkg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return pkg, nil
}

// InstalledVersion reads the version field of an installed package manifest.
func InstalledVersion(fsys afero.Fs, path string) (string, error) {
	pkg, err := Read(fsys, path)
	if err != nil {
		return "", err
	}
	if pkg.Version == "" {
		return "", fmt.Errorf("%s has no version field", path)
	}
	return pkg.Version, nil
}
