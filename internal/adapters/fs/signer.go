// Package fs implements filesystem-backed signature computation.
package fs

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/fanout/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileSigner = (*Signer)(nil)

// Signer computes XXHash content signatures for origin files.
type Signer struct{}

// NewSigner creates a new Signer.
func NewSigner() *Signer {
	return &Signer{}
}

// SignFile computes the signature of a file's byte content.
func (s *Signer) SignFile(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open origin file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to hash origin file"), "path", path)
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// CombineSignatures aggregates unit signatures into one signature that does
// not depend on input order: signatures are sorted before hashing.
func (s *Signer) CombineSignatures(signatures []string) string {
	sorted := make([]string, len(signatures))
	copy(sorted, signatures)
	slices.Sort(sorted)

	hasher := xxhash.New()
	for _, sig := range sorted {
		_, _ = hasher.WriteString(sig)
		_, _ = hasher.Write([]byte{0}) // Separator
	}
	return fmt.Sprintf("%016x", hasher.Sum64())
}
