package registry

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// catalogueDocument is the shape of one YAML catalogue file: exactly one
// of its three slices is populated, matching the teacher's EntityConfig
// shape in schema/registry.go's embedded-YAML loader.
type catalogueDocument struct {
	Formats        []Format        `yaml:"formats,omitempty"`
	Platforms      []Platform      `yaml:"platforms,omitempty"`
	Specifications []Specification `yaml:"specifications,omitempty"`
}

//go:embed data/*.yaml
var embeddedData embed.FS

// LoadEmbedded loads the catalogue shipped inside the binary and validates
// it, returning a ready-to-use Registry. This is the production entrypoint:
// the shipped catalogue never needs a filesystem path at runtime.
func LoadEmbedded() (*Registry, error) {
	r := New()
	if err := loadFS(r, embeddedData, "data"); err != nil {
		return nil, err
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// LoadFromPath loads catalogue YAML from a file or directory on disk,
// primarily for tests that want to override the shipped tables.
func LoadFromPath(path string) (*Registry, error) {
	r := New()
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		if err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !isYAMLFile(p) {
				return nil
			}
			return loadFile(r, os.ReadFile, p)
		}); err != nil {
			return nil, err
		}
	} else {
		if err := loadFile(r, os.ReadFile, path); err != nil {
			return nil, err
		}
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func loadFS(r *Registry, fsys fs.FS, root string) error {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() || !isYAMLFile(e.Name()) {
			continue
		}
		data, err := fs.ReadFile(fsys, filepath.Join(root, e.Name()))
		if err != nil {
			return err
		}
		if err := loadDocument(r, data, e.Name()); err != nil {
			return err
		}
	}
	return nil
}

func loadFile(r *Registry, read func(string) ([]byte, error), path string) error {
	data, err := read(path)
	if err != nil {
		return err
	}
	return loadDocument(r, data, path)
}

func loadDocument(r *Registry, data []byte, source string) error {
	var doc catalogueDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("registry: parsing %s: %w", source, err)
	}
	for _, f := range doc.Formats {
		r.addFormat(f)
	}
	for _, p := range doc.Platforms {
		r.addPlatform(p)
	}
	for _, s := range doc.Specifications {
		r.addSpecification(s)
	}
	return nil
}

func isYAMLFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
