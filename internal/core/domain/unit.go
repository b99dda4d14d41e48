package domain

import "encoding/json"

// DeclarationUnitKind is the collection name under which analyzed
// declarations are stored in the cache artifact.
const DeclarationUnitKind = "declarations"

// AnalyzedDeclaration is the result of analyzing one declaration. The
// payload is produced by the external analysis stage and is opaque here.
type AnalyzedDeclaration struct {
	Identifier string          `json:"identifier"`
	OriginPath string          `json:"originPath"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

// CachedUnit is one persisted analysis result. OriginSignature is a
// deterministic function of the origin file's byte content at write time.
type CachedUnit struct {
	Identifier      string          `json:"identifier"`
	OriginPath      string          `json:"originPath"`
	OriginSignature string          `json:"originSignature"`
	Payload         json.RawMessage `json:"payload,omitempty"`
}
