package montage

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/born-ml/montage/internal/layout"
	"gopkg.in/yaml.v3"
)

// builtinDir is the embedded directory holding the reference layouts.
const builtinDir = "layouts"

// manifestName lists the reference layouts inside builtinDir.
const manifestName = "layouts.yaml"

//go:embed layouts
var builtinFS embed.FS

// BuiltinLayout describes a reference layout shipped with the package.
type BuiltinLayout struct {
	Kind        string        `yaml:"kind"`
	Description string        `yaml:"description"`
	Units       string        `yaml:"units"`
	Format      layout.Format `yaml:"-"`
}

type manifest struct {
	Layouts []BuiltinLayout `yaml:"layouts"`
}

// Builtin lists the bundled reference layouts. Any entry can be passed to
// ReadMontage as kind.
func Builtin() ([]BuiltinLayout, error) {
	data, err := builtinFS.ReadFile(path.Join(builtinDir, manifestName))
	if err != nil {
		return nil, fmt.Errorf("read layout manifest: %w", err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse layout manifest: %w", err)
	}

	for i := range m.Layouts {
		f, err := layout.DetectFormat(m.Layouts[i].Kind)
		if err != nil {
			return nil, fmt.Errorf("layout manifest entry %d: %w", i, err)
		}
		m.Layouts[i].Format = f
	}
	return m.Layouts, nil
}

// openBuiltin opens a bundled layout by file name.
func openBuiltin(name string) (fs.File, error) {
	return builtinFS.Open(path.Join(builtinDir, name))
}
