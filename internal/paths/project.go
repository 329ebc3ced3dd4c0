package paths

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/flex-plugins/flex-plugin/internal/manifest"
)

// Project file layout constants.
const (
	PackageFile      = "package.json"
	PublicDir        = "public"
	AppConfigFile    = "appConfig.js"
	IndexHTMLFile    = "index.html"
	SrcDir           = "src"
	EntryBase        = "index"
	TSConfigFile     = "tsconfig.json"
	NodeModulesDir   = "node_modules"
	FlexUIPackage    = "@twilio/flex-ui"
	TypeScriptModule = "typescript"
)

// EntryExtensions is the probe order for the project entry file.
var EntryExtensions = []string{"js", "jsx", "ts", "tsx"}

// Project holds the locations inside a single plugin project.
type Project struct {
	Name        string
	Dir         string
	PackageJSON string
	AppConfig   string
	IndexHTML   string
	SrcDir      string
	TSConfig    string
	NodeModules string
}

// NewProject derives the project layout rooted at dir.
func NewProject(dir, name string) Project {
	return Project{
		Name:        name,
		Dir:         dir,
		PackageJSON: filepath.Join(dir, PackageFile),
		AppConfig:   filepath.Join(dir, PublicDir, AppConfigFile),
		IndexHTML:   filepath.Join(dir, PublicDir, IndexHTMLFile),
		SrcDir:      filepath.Join(dir, SrcDir),
		TSConfig:    filepath.Join(dir, TSConfigFile),
		NodeModules: filepath.Join(dir, NodeModulesDir),
	}
}

// ResolveProject makes dir absolute and reads the plugin name from the
// project's package.json.
func ResolveProject(fsys afero.Fs, dir string) (Project, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Project{}, fmt.Errorf("resolving project directory %s: %w", dir, err)
	}

	pkg, err := manifest.Read(fsys, filepath.Join(abs, PackageFile))
	if err != nil {
		return Project{}, err
	}
	if pkg.Name == "" {
		return Project{}, fmt.Errorf("%s has no name field", filepath.Join(abs, PackageFile))
	}

	return NewProject(abs, pkg.Name), nil
}

// EntryCandidates returns src/index.<ext> for every extension, in probe order.
func (p Project) EntryCandidates() []string {
	base := filepath.Join(p.SrcDir, EntryBase)
	out := make([]string, len(EntryExtensions))
	for i, ext := range EntryExtensions {
		out[i] = base + "." + ext
	}
	return out
}

// PackageManifest returns the installed package.json path of a dependency,
// e.g. node_modules/react/package.json. Scoped names keep their slash.
func (p Project) PackageManifest(name string) string {
	return filepath.Join(p.NodeModules, filepath.FromSlash(name), PackageFile)
}

// FlexUIManifest returns the installed @twilio/flex-ui package.json path.
func (p Project) FlexUIManifest() string {
	return p.PackageManifest(FlexUIPackage)
}
