// Package manifest loads the properties.yaml manifest that propdoc renders.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
	"gopkg.in/yaml.v3"
)

// Manifest lists the attached property groups a project declares.
type Manifest struct {
	Groups []Group `yaml:"groups"`
}

// Group collects the properties one package declares, typically the
// descriptors a single container type attaches to its children.
type Group struct {
	Name       string     `yaml:"name"`
	Package    string     `yaml:"package"`
	Doc        string     `yaml:"doc,omitempty"`
	Properties []Property `yaml:"properties"`
}

// Property documents one attached descriptor.
type Property struct {
	Name    string `yaml:"name"`
	Owner   string `yaml:"owner"`
	Type    string `yaml:"type"`
	Default string `yaml:"default,omitempty"`
	Coerce  string `yaml:"coerce,omitempty"`
	Doc     string `yaml:"doc,omitempty"`
}

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if len(m.Groups) == 0 {
		return nil, fmt.Errorf("%s declares no property groups", path)
	}
	for _, g := range m.Groups {
		if g.Name == "" {
			return nil, fmt.Errorf("%s contains a group without a name", path)
		}
		if len(g.Properties) == 0 {
			return nil, fmt.Errorf("group %q declares no properties", g.Name)
		}
		for _, p := range g.Properties {
			if p.Name == "" || p.Type == "" || p.Owner == "" {
				return nil, fmt.Errorf("group %q has a property missing name, owner, or type", g.Name)
			}
		}
	}

	return &m, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

// ModulePath reads the module path from the go.mod in dir.
func ModulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}
