// pkg/manifest/manifest.go
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest declares the packages a project expects on the host. Names are
// carried verbatim; validation happens during the batch check so invalid
// entries surface in the report instead of failing the load.
type Manifest struct {
	// System packages, checked against the host package manager
	System []string `yaml:"system"`

	// Python modules, checked against the host interpreter
	Python []string `yaml:"python"`
}

// Load reads a manifest from a YAML file
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	return &m, nil
}
