package overlay

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is a parsed overlay document.
type File struct {
	Version string        `yaml:"version"`
	Types   []TypeOverlay `yaml:"types"`
}

// TypeOverlay adjusts the bindings of one registered type.
type TypeOverlay struct {
	// Type names the registered descriptor this overlay targets.
	Type string `yaml:"type"`
	// Naming optionally selects the wire-name strategy for members of this
	// type that carry no explicit override.
	Naming string `yaml:"naming"`
	// Names maps declared member identifiers to explicit wire names.
	Names map[string]string `yaml:"names"`
	// Transient lists member identifiers to exclude from encode and decode.
	Transient []string `yaml:"transient"`
}

// LoadFile loads and parses a YAML overlay file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read overlay file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse overlay YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}
