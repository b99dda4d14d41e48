package cache

import "go.trai.ch/fanout/internal/core/domain"

// FormatVersion is the artifact format this build of the tool reads and
// writes. A consumer rejects any artifact whose version differs, without
// parsing the rest.
const FormatVersion = 1

// artifact is the on-disk record: a self-describing JSON document carrying
// the format version, the order-independent aggregate signature of every
// unit, and the unit collections by kind. An artifact is valid only as a
// whole; there is no partial validity.
type artifact struct {
	FormatVersion     int                            `json:"formatVersion"`
	CombinedSignature string                         `json:"combinedSignature"`
	Units             map[string][]domain.CachedUnit `json:"units"`
}

// artifactHeader is the version-only view used to reject foreign artifacts
// before the unit collections are parsed.
type artifactHeader struct {
	FormatVersion int `json:"formatVersion"`
}
