package ports

import "go.trai.ch/fanout/internal/core/domain"

// AnalysisStore is the destination for analysis results, keyed by
// declaration identifier. The store is owned by the caller and passed into
// load operations explicitly; the downstream code-generation stage cannot
// distinguish cache-sourced entries from freshly analyzed ones.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type AnalysisStore interface {
	// Put inserts or replaces the unit with its identifier as key.
	Put(unit domain.CachedUnit)

	// Get retrieves the unit for a declaration identifier.
	Get(identifier string) (domain.CachedUnit, bool)

	// Len returns the number of stored units.
	Len() int

	// Units returns all stored units in insertion order.
	Units() []domain.CachedUnit
}
