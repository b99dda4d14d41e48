package domain

import "go.trai.ch/zerr"

var (
	// ErrGroupAlreadyExists is returned when attempting to add a source group with a name that already exists.
	ErrGroupAlreadyExists = zerr.New("source group already exists")

	// ErrUnknownGroup is returned when a group name is not present in the group set.
	// A pass descriptor referencing an unknown default group is a fatal configuration error.
	ErrUnknownGroup = zerr.New("unknown source group")

	// ErrGroupCycle is returned when the declared group hierarchy is not a DAG.
	ErrGroupCycle = zerr.New("cycle in source group hierarchy")

	// ErrUnknownPass is returned when a requested compilation pass is not declared in the configuration.
	ErrUnknownPass = zerr.New("unknown compilation pass")

	// ErrUnattributablePath is returned when an origin path matches no known source layout convention.
	// Callers must not fall back to the current pass's own group.
	ErrUnattributablePath = zerr.New("origin path matches no source group convention")

	// ErrDecodeContext is returned when a transported compilation context cannot be decoded.
	ErrDecodeContext = zerr.New("malformed compilation context payload")

	// ErrCacheRole is returned when a cache operation is invoked on an instance
	// constructed for a different role.
	ErrCacheRole = zerr.New("operation not permitted for cache role")

	// ErrCacheWrite is returned when persisting the cache artifact fails.
	// The producer's own in-memory results remain valid.
	ErrCacheWrite = zerr.New("failed to persist cache artifact")

	// ErrCacheArtifactMissing indicates no artifact exists at the consumer's location.
	ErrCacheArtifactMissing = zerr.New("cache artifact not found")

	// ErrCacheCorrupt indicates the artifact exists but cannot be parsed.
	ErrCacheCorrupt = zerr.New("cache artifact is corrupt")

	// ErrCacheVersionMismatch indicates the artifact was written with a different format version.
	ErrCacheVersionMismatch = zerr.New("cache artifact format version mismatch")

	// ErrCacheUnitMissingSource indicates a cached unit's origin file no longer exists.
	ErrCacheUnitMissingSource = zerr.New("cached unit origin file missing")

	// ErrCacheSignatureMismatch indicates a cached unit's origin file changed since the artifact was written.
	ErrCacheSignatureMismatch = zerr.New("cached unit origin signature mismatch")
)
