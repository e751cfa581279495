// Package registry is the static catalogue of formats, platforms, and
// specifications, and the tripartite relation format <-> specification <->
// platform that the export core dispatches on. The catalogue is data, not
// code: it loads once at process start from embedded YAML and is
// thereafter an immutable, process-wide singleton — the only one the
// export core has (§9's design note).
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/oabooks/exportcore/exporterrors"
)

// Format is a wire encoding family, e.g. "onix_3.0" or "bibtex".
type Format struct {
	ID             string   `yaml:"id"`
	Name           string   `yaml:"name"`
	Specifications []string `yaml:"specifications"`
}

// Platform is a distribution target, e.g. "jstor" or "google_books".
type Platform struct {
	ID      string   `yaml:"id"`
	Name    string   `yaml:"name"`
	Accepts []string `yaml:"accepts"`
}

// Specification names the Format that carries it and the Platforms it
// serves.
type Specification struct {
	ID        string   `yaml:"id"`
	FormatID  string   `yaml:"format_id"`
	Platforms []string `yaml:"platforms"`
}

// Registry is an immutable, concurrency-safe catalogue. The mutex guards
// only construction (Load*); after Validate succeeds callers treat it as
// read-only, matching the teacher's schema.Registry shape.
type Registry struct {
	mu             sync.RWMutex
	formats        map[string]Format
	platforms      map[string]Platform
	specifications map[string]Specification
}

// New builds an empty Registry; LoadEmbedded and LoadFromPath populate one
// from YAML and call Validate before returning it.
func New() *Registry {
	return &Registry{
		formats:        make(map[string]Format),
		platforms:      make(map[string]Platform),
		specifications: make(map[string]Specification),
	}
}

func (r *Registry) addFormat(f Format) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.formats[f.ID] = f
}

func (r *Registry) addPlatform(p Platform) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.platforms[p.ID] = p
}

func (r *Registry) addSpecification(s Specification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.specifications[s.ID] = s
}

// FindFormat returns the Format or InvalidMetadataSpecification.
func (r *Registry) FindFormat(id string) (Format, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.formats[id]
	if !ok {
		return Format{}, exporterrors.InvalidMetadataSpecification(id)
	}
	return f, nil
}

// FindPlatform returns the Platform or InvalidMetadataSpecification.
func (r *Registry) FindPlatform(id string) (Platform, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.platforms[id]
	if !ok {
		return Platform{}, exporterrors.InvalidMetadataSpecification(id)
	}
	return p, nil
}

// FindSpecification returns the Specification or InvalidMetadataSpecification.
func (r *Registry) FindSpecification(id string) (Specification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.specifications[id]
	if !ok {
		return Specification{}, exporterrors.InvalidMetadataSpecification(id)
	}
	return s, nil
}

// ListSpecifications returns every Specification sorted by ID.
func (r *Registry) ListSpecifications() []Specification {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Specification, 0, len(r.specifications))
	for _, s := range r.specifications {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ListFormats returns every Format sorted by ID.
func (r *Registry) ListFormats() []Format {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Format, 0, len(r.formats))
	for _, f := range r.formats {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ListPlatforms returns every Platform sorted by ID.
func (r *Registry) ListPlatforms() []Platform {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Platform, 0, len(r.platforms))
	for _, p := range r.platforms {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Validate checks every invariant named in §4.3:
//   - Every Specification's Format is in the Formats catalogue.
//   - Every Specification's Platform is in the Platforms catalogue.
//   - Every Specification appears in its Format's specifications list.
//   - Every Platform's accepts and every Format's specifications point to
//     existing Specifications.
//   - A Specification ID begins with its Format ID.
//   - A Format ID is "{name.lowercase}" or "{name.lowercase}_{version}".
func (r *Registry) Validate() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for id, f := range r.formats {
		if id != f.ID {
			return fmt.Errorf("registry: format key %q does not match Format.ID %q", id, f.ID)
		}
		lower := strings.ToLower(f.Name)
		if f.ID != lower && !strings.HasPrefix(f.ID, lower+"_") {
			return fmt.Errorf("registry: format id %q is not derived from name %q", f.ID, f.Name)
		}
		for _, specID := range f.Specifications {
			if _, ok := r.specifications[specID]; !ok {
				return fmt.Errorf("registry: format %q lists unknown specification %q", f.ID, specID)
			}
		}
	}

	for id, p := range r.platforms {
		if id != p.ID {
			return fmt.Errorf("registry: platform key %q does not match Platform.ID %q", id, p.ID)
		}
		for _, specID := range p.Accepts {
			if _, ok := r.specifications[specID]; !ok {
				return fmt.Errorf("registry: platform %q accepts unknown specification %q", p.ID, specID)
			}
		}
	}

	for id, s := range r.specifications {
		if id != s.ID {
			return fmt.Errorf("registry: specification key %q does not match Specification.ID %q", id, s.ID)
		}
		f, ok := r.formats[s.FormatID]
		if !ok {
			return fmt.Errorf("registry: specification %q names unknown format %q", s.ID, s.FormatID)
		}
		if !strings.HasPrefix(s.ID, s.FormatID) {
			return fmt.Errorf("registry: specification id %q does not begin with its format id %q", s.ID, s.FormatID)
		}
		if !containsString(f.Specifications, s.ID) {
			return fmt.Errorf("registry: specification %q missing from format %q's specifications list", s.ID, f.ID)
		}
		for _, platformID := range s.Platforms {
			plat, ok := r.platforms[platformID]
			if !ok {
				return fmt.Errorf("registry: specification %q names unknown platform %q", s.ID, platformID)
			}
			if !containsString(plat.Accepts, s.ID) {
				return fmt.Errorf("registry: specification %q missing from platform %q's accepts list", s.ID, plat.ID)
			}
		}
	}
	return nil
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
