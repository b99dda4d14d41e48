package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// Manifest holds everything the orchestrator supplies for one build: the
// source-group hierarchy and the declared compilation passes.
type Manifest struct {
	Groups *GroupSet
	Passes map[string]CompilationPass
}

// Pass returns the declared pass with the given name.
func (m *Manifest) Pass(name string) (CompilationPass, error) {
	p, ok := m.Passes[name]
	if !ok {
		return CompilationPass{}, zerr.With(zerr.Wrap(ErrUnknownPass, "failed to resolve pass"), "pass", name)
	}
	return p, nil
}

// PassNames returns all declared pass names in sorted order.
func (m *Manifest) PassNames() []string {
	names := make([]string, 0, len(m.Passes))
	for name := range m.Passes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
