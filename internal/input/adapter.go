// Package input reads pre-annotated documents (tokens with POS/NER/coref
// annotations, primary entity mentions, and bracketed parses) from disk.
// Producing those annotations is the upstream pipeline's job; this package
// only deserializes them.
package input

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/relextract/slotscan/internal/model"
)

// Adapter reads documents from one serialization format.
type Adapter interface {
	// Name returns the adapter name
	Name() string

	// CanHandle checks if this adapter handles the given file path
	CanHandle(path string) bool

	// Read parses documents from the reader
	Read(r io.Reader) ([]*model.Document, error)
}

// Registry manages format adapters and picks one per input file.
type Registry struct {
	adapters []Adapter
	fallback Adapter
}

// NewRegistry creates a registry with the built-in adapters registered.
func NewRegistry() *Registry {
	registry := &Registry{}
	registry.Register(NewYAMLAdapter())
	registry.Register(NewCoNLLAdapter())

	// JSON doubles as the fallback for unknown extensions
	jsonAdapter := NewJSONAdapter()
	registry.Register(jsonAdapter)
	registry.fallback = jsonAdapter

	return registry
}

// Register registers an additional adapter.
func (r *Registry) Register(adapter Adapter) {
	r.adapters = append(r.adapters, adapter)
}

// FindAdapter returns the adapter for the given path.
func (r *Registry) FindAdapter(path string) Adapter {
	for _, adapter := range r.adapters {
		if adapter.CanHandle(path) {
			return adapter
		}
	}
	return r.fallback
}

// ReadFile reads all documents from a file using the matching adapter.
func (r *Registry) ReadFile(path string) ([]*model.Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = file.Close() }()

	adapter := r.FindAdapter(path)
	docs, err := adapter.Read(file)
	if err != nil {
		return nil, fmt.Errorf("read %s as %s: %w", filepath.Base(path), adapter.Name(), err)
	}
	return docs, nil
}

func hasExt(path string, exts ...string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
