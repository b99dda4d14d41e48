// Package declfile implements the file-based boundary to the external
// analysis stage: the stage emits its analyzed declarations as a JSON list,
// and the loader presents them through the Analyzer port.
package declfile

import (
	"context"
	"encoding/json"
	"os"

	"go.trai.ch/fanout/internal/core/domain"
	"go.trai.ch/fanout/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Analyzer = (*Loader)(nil)

// Loader reads analyzed declarations from a JSON file.
type Loader struct {
	Path string
}

// NewLoader creates a Loader reading from the given path.
func NewLoader(path string) *Loader {
	return &Loader{Path: path}
}

// Analyze returns the declarations recorded by the external analysis stage
// for this pass. The compilation context is accepted for interface
// conformance; the file already corresponds to exactly one pass.
func (l *Loader) Analyze(_ context.Context, _ domain.CompilationContext) ([]domain.AnalyzedDeclaration, error) {
	data, err := os.ReadFile(l.Path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read declarations file"), "path", l.Path)
	}

	var decls []domain.AnalyzedDeclaration
	if err := json.Unmarshal(data, &decls); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse declarations file"), "path", l.Path)
	}

	return decls, nil
}
