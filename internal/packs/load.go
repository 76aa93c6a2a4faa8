package packs

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ErrEmptyCatalog is returned when a catalog file declares no packs.
var ErrEmptyCatalog = errors.New("catalog contains no packs")

// catalogFile is the on-disk layout of a YAML pack catalog.
type catalogFile struct {
	Packs []PageConfig `yaml:"packs"`
}

// Load reads a YAML pack catalog from fs. Packs keep the order they are
// declared in.
func Load(fs afero.Fs, path string) ([]PageConfig, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	var file catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	if len(file.Packs) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyCatalog)
	}

	seen := make(map[string]struct{}, len(file.Packs))
	for i, p := range file.Packs {
		if p.Filename == "" {
			return nil, fmt.Errorf("%s: pack #%d has no filename", path, i+1)
		}
		if _, dup := seen[p.Filename]; dup {
			return nil, fmt.Errorf("%s: duplicate pack filename %q", path, p.Filename)
		}
		seen[p.Filename] = struct{}{}
	}
	return file.Packs, nil
}

// Save writes catalog to fs as YAML. It is the inverse of Load and is used
// by the CLI to export the built-in catalog as a starting point for edits.
func Save(fs afero.Fs, path string, catalog []PageConfig) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(catalogFile{Packs: catalog}); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := afero.WriteFile(fs, path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write catalog %s: %w", path, err)
	}
	return nil
}

// LoadOrDefault loads the catalog at path, or returns Default when path is empty.
func LoadOrDefault(fs afero.Fs, path string) ([]PageConfig, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(fs, path)
}
