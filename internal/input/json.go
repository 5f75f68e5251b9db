package input

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/relextract/slotscan/internal/model"
)

// JSONAdapter reads documents from the JSON corpus format.
type JSONAdapter struct{}

// NewJSONAdapter creates a new JSON adapter.
func NewJSONAdapter() *JSONAdapter {
	return &JSONAdapter{}
}

// Name returns the adapter name.
func (a *JSONAdapter) Name() string {
	return "json"
}

// CanHandle checks the file extension.
func (a *JSONAdapter) CanHandle(path string) bool {
	return hasExt(path, ".json")
}

// Read parses documents from JSON.
func (a *JSONAdapter) Read(r io.Reader) ([]*model.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	var file wireFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}
	return file.build()
}
