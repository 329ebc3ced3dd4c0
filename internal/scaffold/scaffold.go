package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"text/template"

	"github.com/spf13/afero"
)

//go:embed templates
var templateFS embed.FS

// Names of the embedded files, as passed to Render and WriteFile.
const (
	IndexHTML = "index.html"
	TSConfig  = "tsconfig.json"
)

// Data holds the values available to .tmpl templates.
type Data struct {
	Name string // plugin name, e.g. "plugin-sample"
}

// Render returns the contents of the embedded file name. Files stored with a
// .tmpl suffix are executed as text/template with data; others are returned
// verbatim.
func Render(name string, data Data) ([]byte, error) {
	tmplPath := path.Join("templates", name+".tmpl")
	raw, err := fs.ReadFile(templateFS, tmplPath)
	if err != nil {
		plain, plainErr := fs.ReadFile(templateFS, path.Join("templates", name))
		if plainErr != nil {
			return nil, fmt.Errorf("template %q not found", name)
		}
		return plain, nil
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// WriteFile renders name and writes it to dst, replacing any existing file.
// The parent directory of dst must already exist.
func WriteFile(fsys afero.Fs, name, dst string, data Data) error {
	content, err := Render(name, data)
	if err != nil {
		return err
	}
	if err := afero.WriteFile(fsys, dst, content, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}
