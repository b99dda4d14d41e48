package ports

import (
	"context"

	"go.trai.ch/fanout/internal/core/domain"
)

// Analyzer is the boundary to the external analysis stage. The payload of
// each returned declaration is opaque to this subsystem.
//
//go:generate go run go.uber.org/mock/mockgen -source=analyzer.go -destination=mocks/mock_analyzer.go -package=mocks
type Analyzer interface {
	// Analyze performs local analysis of the declarations visible to the
	// given compilation pass.
	Analyze(ctx context.Context, cc domain.CompilationContext) ([]domain.AnalyzedDeclaration, error)
}
