package input

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/relextract/slotscan/internal/model"
)

// YAMLAdapter reads documents from the YAML corpus format.
type YAMLAdapter struct{}

// NewYAMLAdapter creates a new YAML adapter.
func NewYAMLAdapter() *YAMLAdapter {
	return &YAMLAdapter{}
}

// Name returns the adapter name.
func (a *YAMLAdapter) Name() string {
	return "yaml"
}

// CanHandle checks the file extension.
func (a *YAMLAdapter) CanHandle(path string) bool {
	return hasExt(path, ".yaml", ".yml")
}

// Read parses documents from YAML.
func (a *YAMLAdapter) Read(r io.Reader) ([]*model.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	var file wireFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode YAML: %w", err)
	}
	return file.build()
}
