// Package domain contains the core domain models for the source-group
// hierarchy and the shared-analysis metadata records built on top of it.
package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// SourceGroup is a named grouping of source files with zero or more declared
// parent groups from which it inherits visible declarations.
// A group has no identity beyond its name.
type SourceGroup struct {
	Name    InternedString
	Parents []InternedString
}

// GroupSet is the declared "depends-on" DAG of source groups for one build,
// stored as an adjacency structure keyed by group name. It is supplied once
// by the build orchestrator and never mutated afterwards.
type GroupSet struct {
	groups map[InternedString]SourceGroup
}

// NewGroupSet creates a new empty GroupSet.
func NewGroupSet() *GroupSet {
	return &GroupSet{
		groups: make(map[InternedString]SourceGroup),
	}
}

// AddGroup adds a source group to the set. Parent names are sorted and
// deduplicated so traversal and serialization order is deterministic.
// It returns an error if a group with the same name already exists.
func (s *GroupSet) AddGroup(g *SourceGroup) error {
	if _, exists := s.groups[g.Name]; exists {
		return zerr.With(zerr.Wrap(ErrGroupAlreadyExists, "failed to add source group"), "group", g.Name.String())
	}
	stored := SourceGroup{
		Name:    g.Name,
		Parents: canonicalizeParents(g.Parents),
	}
	s.groups[g.Name] = stored
	return nil
}

// Lookup returns the group with the given name.
func (s *GroupSet) Lookup(name InternedString) (SourceGroup, bool) {
	g, ok := s.groups[name]
	return g, ok
}

// Len returns the number of groups in the set.
func (s *GroupSet) Len() int {
	return len(s.groups)
}

// Names returns all group names in sorted order.
func (s *GroupSet) Names() []string {
	names := make([]string, 0, len(s.groups))
	for name := range s.groups {
		names = append(names, name.String())
	}
	slices.Sort(names)
	return names
}

// Closure returns every group reachable from start by following parent edges
// upward, including start itself. Traversal is breadth-first with a
// visited-set, so diamond inheritance yields each shared ancestor exactly
// once and the walk terminates even on input that slipped past Validate.
// The result order is deterministic: BFS layers, parents in sorted order.
func (s *GroupSet) Closure(start InternedString) ([]SourceGroup, error) {
	if _, ok := s.groups[start]; !ok {
		return nil, zerr.With(zerr.Wrap(ErrUnknownGroup, "failed to resolve closure"), "group", start.String())
	}

	visited := make(map[InternedString]bool, len(s.groups))
	queue := []InternedString{start}
	visited[start] = true

	result := make([]SourceGroup, 0, len(s.groups))
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]

		g, ok := s.groups[name]
		if !ok {
			return nil, zerr.With(zerr.Wrap(ErrUnknownGroup, "failed to resolve closure"), "group", name.String())
		}
		result = append(result, g)

		for _, parent := range g.Parents {
			if !visited[parent] {
				visited[parent] = true
				queue = append(queue, parent)
			}
		}
	}

	return result, nil
}

// HierarchyMap returns, for every group in the closure of start, the group's
// own direct parent names in sorted order.
func (s *GroupSet) HierarchyMap(start InternedString) (map[string][]string, error) {
	closure, err := s.Closure(start)
	if err != nil {
		return nil, err
	}

	m := make(map[string][]string, len(closure))
	for _, g := range closure {
		parents := make([]string, len(g.Parents))
		for i, p := range g.Parents {
			parents[i] = p.String()
		}
		m[g.Name.String()] = parents
	}
	return m, nil
}

// Validate checks that every declared parent exists and that the hierarchy
// is acyclic. A cyclic or dangling configuration is a fatal upstream error.
func (s *GroupSet) Validate() error {
	visited := make(map[InternedString]int, len(s.groups)) // 0: unvisited, 1: visiting, 2: visited
	var path []InternedString

	var visit func(u InternedString) error
	visit = func(u InternedString) error {
		visited[u] = 1
		path = append(path, u)

		g, exists := s.groups[u]
		if !exists {
			return zerr.With(zerr.Wrap(ErrUnknownGroup, "hierarchy references undeclared parent"), "group", u.String())
		}

		for _, parent := range g.Parents {
			if visited[parent] == 1 {
				return s.buildCycleError(path, parent)
			}
			if visited[parent] == 0 {
				if err := visit(parent); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		return nil
	}

	// Sorted roots keep the reported cycle stable across runs.
	for _, name := range s.Names() {
		interned := NewInternedString(name)
		if visited[interned] == 0 {
			if err := visit(interned); err != nil {
				return err
			}
		}
	}

	return nil
}

// buildCycleError constructs an error with cycle path metadata.
func (s *GroupSet) buildCycleError(path []InternedString, parent InternedString) error {
	cyclePath := ""
	startIdx := -1
	for i, node := range path {
		if node == parent {
			startIdx = i
			break
		}
	}
	for i := startIdx; i < len(path); i++ {
		cyclePath += path[i].String() + " -> "
	}
	cyclePath += parent.String()
	return zerr.With(zerr.Wrap(ErrGroupCycle, "hierarchy validation failed"), "cycle", cyclePath)
}

func canonicalizeParents(parents []InternedString) []InternedString {
	if len(parents) == 0 {
		return nil
	}

	sorted := make([]string, len(parents))
	for i, p := range parents {
		sorted[i] = p.String()
	}
	slices.Sort(sorted)
	unique := slices.Compact(sorted)

	res := make([]InternedString, len(unique))
	for i, s := range unique {
		res[i] = NewInternedString(s)
	}
	return res
}
