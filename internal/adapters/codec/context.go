// Package codec serializes compilation contexts for transport across the
// process boundary to the downstream analysis stage.
package codec

import (
	"encoding/base64"
	"encoding/json"

	"go.trai.ch/fanout/internal/core/domain"
	"go.trai.ch/zerr"
)

// Encode renders the context as a single line safe for newline-intolerant
// plain-text channels such as a command-line option value: compact JSON
// wrapped in URL-safe base64.
func Encode(cc domain.CompilationContext) (string, error) {
	data, err := json.Marshal(cc)
	if err != nil {
		return "", zerr.Wrap(err, "failed to marshal compilation context")
	}
	return base64.URLEncoding.EncodeToString(data), nil
}

// Decode is the inverse of Encode: Decode(Encode(x)) is structurally equal
// to x for every valid x. Malformed input yields ErrDecodeContext; callers
// log and fall back to a default context rather than terminating.
func Decode(encoded string) (domain.CompilationContext, error) {
	data, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return domain.CompilationContext{}, zerr.With(zerr.Wrap(domain.ErrDecodeContext, "failed to decode"), "cause", err.Error())
	}

	var cc domain.CompilationContext
	if err := json.Unmarshal(data, &cc); err != nil {
		return domain.CompilationContext{}, zerr.With(zerr.Wrap(domain.ErrDecodeContext, "failed to decode"), "cause", err.Error())
	}

	if cc.CompilationName == "" || cc.DefaultSourceGroup.Name == "" {
		return domain.CompilationContext{}, zerr.With(zerr.Wrap(domain.ErrDecodeContext, "failed to decode"), "cause", "missing required fields")
	}

	return cc, nil
}
