// Package registry holds the static category configuration: which domain
// substrings and keyword vocabularies map to which content category. The
// table is loaded once, is immutable afterwards, and is injected into every
// analyzer that needs it, so any number of goroutines may read it without
// coordination.
package registry

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ticofinder/webtriage/models"
)

// ErrUnknownCategory is returned for lookups of categories the registry does
// not define. This indicates a programming error, not noisy input.
var ErrUnknownCategory = errors.New("unknown category")

// Profile is the configuration for one content category.
type Profile struct {
	Category    models.Category `yaml:"category"`
	Label       string          `yaml:"label"`
	Icon        string          `yaml:"icon"`
	Description string          `yaml:"description"`

	// Domains are case-insensitive substrings matched against a URL host
	// (with any leading "www." stripped).
	Domains []string `yaml:"domains"`

	// Keywords are case-insensitive substrings matched against extracted
	// page text.
	Keywords []string `yaml:"keywords"`
}

// Registry is an ordered, read-only set of category profiles. Iteration
// order is the declaration order of the profiles; matchers and scorers use
// it as the documented tie-break (first profile wins).
type Registry struct {
	profiles []Profile
	index    map[models.Category]int
}

// New builds a registry from an ordered profile list.
func New(profiles []Profile) (*Registry, error) {
	if len(profiles) == 0 {
		return nil, fmt.Errorf("registry requires at least one profile")
	}

	index := make(map[models.Category]int, len(profiles))
	for i, p := range profiles {
		if p.Category == "" {
			return nil, fmt.Errorf("profile %d has no category key", i)
		}
		if _, dup := index[p.Category]; dup {
			return nil, fmt.Errorf("duplicate profile for category %q", p.Category)
		}
		index[p.Category] = i
	}

	return &Registry{profiles: profiles, index: index}, nil
}

// registryFile is the YAML shape accepted by LoadFile.
type registryFile struct {
	Categories []Profile `yaml:"categories"`
}

// LoadFile reads an ordered profile list from a YAML file.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file: %w", err)
	}

	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse registry file: %w", err)
	}

	return New(file.Categories)
}

// Profiles returns the profiles in registry order. Callers must not mutate
// the returned slice.
func (r *Registry) Profiles() []Profile {
	return r.profiles
}

// Profile looks up the configuration for a category.
func (r *Registry) Profile(category models.Category) (Profile, error) {
	i, ok := r.index[category]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return r.profiles[i], nil
}

// Valid reports whether the category is defined by this registry.
func (r *Registry) Valid(category models.Category) bool {
	_, ok := r.index[category]
	return ok
}

// Label returns the human-readable label for a category, falling back to the
// raw key for unknown categories.
func (r *Registry) Label(category models.Category) string {
	if i, ok := r.index[category]; ok {
		return r.profiles[i].Label
	}
	return string(category)
}

// Icon returns the icon token for a category, with a generic fallback.
func (r *Registry) Icon(category models.Category) string {
	if i, ok := r.index[category]; ok {
		return r.profiles[i].Icon
	}
	return "📄"
}
