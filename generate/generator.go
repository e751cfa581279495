// Package generate holds one record generator per specification (C4).
// Dispatch is a closed map built at startup from the registry's
// specification IDs — no dynamic plugin loading, matching the teacher's
// format.DefaultRegistry package-level-singleton idiom in format/registry.go.
package generate

import (
	"github.com/oabooks/exportcore/work"
)

// Generator consumes an ordered list of Works and yields a deterministic
// byte stream in one wire format. Implementations enforce their own
// preconditions and return *exporterrors.Error (IncompleteMetadataRecord)
// on failure; they never suspend.
type Generator interface {
	Generate(works []*work.Work) ([]byte, error)
}

// GeneratorFunc adapts a plain function to the Generator interface.
type GeneratorFunc func(works []*work.Work) ([]byte, error)

func (f GeneratorFunc) Generate(works []*work.Work) ([]byte, error) { return f(works) }

// Registry maps specification id -> Generator. It is built once at
// startup (buildGeneratorRegistry in cmd/wiring.go) and treated as
// read-only thereafter.
type Registry struct {
	generators map[string]Generator
}

func NewRegistry() *Registry {
	return &Registry{generators: make(map[string]Generator)}
}

func (r *Registry) Register(specID string, g Generator) {
	r.generators[specID] = g
}

func (r *Registry) Get(specID string) (Generator, bool) {
	g, ok := r.generators[specID]
	return g, ok
}
