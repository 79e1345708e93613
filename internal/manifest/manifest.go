// Package manifest holds the static dependency manifest of the logging module.
//
// The manifest is declarative data: which configurations a module declares,
// which projects and libraries each pulls in, and the capabilities that
// wiring provides. Nothing here resolves or fetches dependencies.
package manifest

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed manifests/logging.yaml
var loggingManifest []byte

// Dependency kinds.
const (
	KindProject      = "project"
	KindLibrary      = "library"
	KindTestFixtures = "testFixtures"
)

// Configurations in declaration order.
var knownConfigurations = []string{
	"api",
	"implementation",
	"runtimeOnly",
	"testImplementation",
	"integTestImplementation",
	"integTestRuntimeOnly",
	"testFixturesImplementation",
}

// capabilityOf maps a dependency name to the capability it provides to the
// module. Dependencies not listed provide no named capability.
var capabilityOf = map[string]string{
	"slf4j_api": "logging-api",
	"messaging": "messaging",
	"cli":       "cli-parsing",
	"native":    "native-bridging",
	"jansi":     "ansi-console",
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid manifest")

// Dependency is one declared dependency.
type Dependency struct {
	Configuration string `yaml:"configuration" json:"configuration"`
	Kind          string `yaml:"kind" json:"kind"`
	Name          string `yaml:"name" json:"name"`
}

func (d Dependency) String() string {
	switch d.Kind {
	case KindProject:
		return fmt.Sprintf("%s(project(%q))", d.Configuration, ":"+d.Name)
	case KindTestFixtures:
		return fmt.Sprintf("%s(testFixtures(project(%q)))", d.Configuration, ":"+d.Name)
	default:
		return fmt.Sprintf("%s(library(%q))", d.Configuration, d.Name)
	}
}

// Manifest is the dependency wiring of one module.
type Manifest struct {
	Module          string       `yaml:"module" json:"module"`
	Description     string       `yaml:"description" json:"description"`
	Plugins         []string     `yaml:"plugins" json:"plugins"`
	UsedInWorkers   bool         `yaml:"used_in_workers" json:"used_in_workers"`
	Dependencies    []Dependency `yaml:"dependencies" json:"dependencies"`
	ExcludePatterns []string     `yaml:"exclude_patterns" json:"exclude_patterns"`
}

// Load parses and validates the embedded logging module manifest.
func Load() (*Manifest, error) {
	return Parse(loggingManifest)
}

// Parse decodes a YAML manifest and validates it. Unknown fields are rejected.
func Parse(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks required fields, configuration and kind names, and
// duplicate entries.
func (m *Manifest) Validate() error {
	if m.Module == "" {
		return fmt.Errorf("%w: module is required", ErrInvalid)
	}

	seen := make(map[Dependency]bool, len(m.Dependencies))
	for i, d := range m.Dependencies {
		if !slices.Contains(knownConfigurations, d.Configuration) {
			return fmt.Errorf("%w: dependency %d: unknown configuration %q", ErrInvalid, i, d.Configuration)
		}
		switch d.Kind {
		case KindProject, KindLibrary, KindTestFixtures:
		default:
			return fmt.Errorf("%w: dependency %d: unknown kind %q", ErrInvalid, i, d.Kind)
		}
		if d.Name == "" {
			return fmt.Errorf("%w: dependency %d: name is required", ErrInvalid, i)
		}
		if seen[d] {
			return fmt.Errorf("%w: duplicate dependency %s", ErrInvalid, d)
		}
		seen[d] = true
	}
	return nil
}

// Configurations returns the configurations used by the manifest in the
// order they first appear.
func (m *Manifest) Configurations() []string {
	var out []string
	for _, d := range m.Dependencies {
		if !slices.Contains(out, d.Configuration) {
			out = append(out, d.Configuration)
		}
	}
	return out
}

// ByConfiguration returns the dependencies declared under configuration.
func (m *Manifest) ByConfiguration(configuration string) []Dependency {
	var out []Dependency
	for _, d := range m.Dependencies {
		if d.Configuration == configuration {
			out = append(out, d)
		}
	}
	return out
}

// Capabilities returns the sorted capabilities provided by the module's api
// and implementation dependencies.
func (m *Manifest) Capabilities() []string {
	var out []string
	for _, d := range m.Dependencies {
		if d.Configuration != "api" && d.Configuration != "implementation" {
			continue
		}
		if c, ok := capabilityOf[d.Name]; ok && !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	slices.Sort(out)
	return out
}
