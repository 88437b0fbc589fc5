package api

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadComponent reads a component manifest, sets FilePath, and validates it.
func LoadComponent(filename string) (*Component, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading component file: %w", err)
	}

	var c Component
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing component file: %w", err)
	}

	absPath, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("resolving absolute path: %w", err)
	}
	c.FilePath = absPath

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validating component %s: %w", filename, err)
	}

	return &c, nil
}
