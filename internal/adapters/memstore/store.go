// Package memstore implements the in-memory analysis store handed to cache
// loads and the downstream code-generation stage. The store is plain
// caller-owned mutable state; there is no package-level instance.
package memstore

import (
	"sync"

	"go.trai.ch/fanout/internal/core/domain"
	"go.trai.ch/fanout/internal/core/ports"
)

var _ ports.AnalysisStore = (*Store)(nil)

// Store is a map-backed AnalysisStore keyed by declaration identifier.
// Put is idempotent per identifier, so repeated loads of the same artifact
// do not duplicate entries.
type Store struct {
	mu    sync.RWMutex
	units map[string]domain.CachedUnit
	order []string
}

// New creates a new empty Store.
func New() *Store {
	return &Store{
		units: make(map[string]domain.CachedUnit),
	}
}

// Put inserts or replaces the unit with its identifier as key.
func (s *Store) Put(unit domain.CachedUnit) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.units[unit.Identifier]; !exists {
		s.order = append(s.order, unit.Identifier)
	}
	s.units[unit.Identifier] = unit
}

// Get retrieves the unit for a declaration identifier.
func (s *Store) Get(identifier string) (domain.CachedUnit, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	unit, ok := s.units[identifier]
	return unit, ok
}

// Len returns the number of stored units.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.units)
}

// Units returns all stored units in insertion order.
func (s *Store) Units() []domain.CachedUnit {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]domain.CachedUnit, 0, len(s.order))
	for _, id := range s.order {
		res = append(res, s.units[id])
	}
	return res
}
