// Package registry holds the static mapping from jurisdiction to source
// descriptors. The registry is built once at process start and never
// mutated afterwards, so lookups need no synchronization.
package registry

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/lexafrica/lexsearch/configs"
	"github.com/lexafrica/lexsearch/internal/errors"
	"github.com/lexafrica/lexsearch/internal/research"
)

// Registry is the immutable jurisdiction → sources mapping.
type Registry struct {
	byJurisdiction map[research.Jurisdiction][]research.SourceDescriptor
}

// file is the YAML shape of a registry definition.
type file struct {
	Sources []research.SourceDescriptor `yaml:"sources"`
}

// Load reads a registry definition from a YAML file.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfigNotFound, err)
	}
	return parse(data)
}

// LoadDefault builds the registry from the embedded default definition,
// which covers every supported jurisdiction.
func LoadDefault() (*Registry, error) {
	return parse([]byte(configs.DefaultSources))
}

func parse(data []byte) (*Registry, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.ConfigError("invalid source registry YAML", err)
	}
	if len(f.Sources) == 0 {
		return nil, errors.ConfigError("source registry defines no sources", nil)
	}

	r := &Registry{byJurisdiction: make(map[research.Jurisdiction][]research.SourceDescriptor)}
	for _, s := range f.Sources {
		j := research.Jurisdiction(s.Jurisdiction)
		r.byJurisdiction[j] = append(r.byJurisdiction[j], s)
	}
	return r, nil
}

// SourcesFor returns the descriptors registered for a jurisdiction.
// The returned slice must be treated as read-only.
func (r *Registry) SourcesFor(j research.Jurisdiction) []research.SourceDescriptor {
	return r.byJurisdiction[j]
}

// PrimarySourceFor returns the highest-credibility source for a
// jurisdiction, or an error when none is registered.
func (r *Registry) PrimarySourceFor(j research.Jurisdiction) (research.SourceDescriptor, error) {
	sources := r.byJurisdiction[j]
	if len(sources) == 0 {
		return research.SourceDescriptor{}, errors.Collaborator(errors.ErrCodeSourceUnavailable,
			fmt.Sprintf("no sources registered for jurisdiction %s", j), nil)
	}
	best := sources[0]
	for _, s := range sources[1:] {
		if s.CredibilityTier < best.CredibilityTier {
			best = s
		}
	}
	return best, nil
}

// Jurisdictions lists the jurisdictions with at least one registered
// source, sorted for stable output.
func (r *Registry) Jurisdictions() []research.Jurisdiction {
	out := make([]research.Jurisdiction, 0, len(r.byJurisdiction))
	for j := range r.byJurisdiction {
		out = append(out, j)
	}
	sort.Slice(out, func(i, k int) bool { return out[i] < out[k] })
	return out
}

// All returns every registered descriptor, ordered by jurisdiction.
func (r *Registry) All() []research.SourceDescriptor {
	var out []research.SourceDescriptor
	for _, j := range r.Jurisdictions() {
		out = append(out, r.byJurisdiction[j]...)
	}
	return out
}
