// Package cache implements the producer/consumer metadata cache: one pass
// persists its analysis results and every other pass of the same build
// revision reuses them, guarded by content-signature invalidation.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"go.trai.ch/fanout/internal/core/domain"
	"go.trai.ch/fanout/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

type mode int

const (
	modeStandalone mode = iota
	modeProducer
	modeConsumer
)

func (m mode) String() string {
	switch m {
	case modeProducer:
		return "producer"
	case modeConsumer:
		return "consumer"
	default:
		return "standalone"
	}
}

// Cache is configured into exactly one of three roles at construction:
// producer (given a write location), consumer (given a read location), or
// standalone (never touches the filesystem). The role is immutable for the
// lifetime of the instance.
//
// Ordering between the producer's write and consumers' reads is the build
// orchestrator's responsibility; the cache assumes temporally disjoint
// single-writer-then-multiple-readers access and takes no locks.
type Cache struct {
	mode         mode
	artifactPath string
	signer       ports.FileSigner
	logger       ports.Logger
}

// NewProducer creates a cache that writes its artifact to artifactPath.
func NewProducer(artifactPath string, signer ports.FileSigner, logger ports.Logger) *Cache {
	return &Cache{
		mode:         modeProducer,
		artifactPath: filepath.Clean(artifactPath),
		signer:       signer,
		logger:       logger,
	}
}

// NewConsumer creates a cache that reads the artifact at artifactPath.
func NewConsumer(artifactPath string, signer ports.FileSigner, logger ports.Logger) *Cache {
	return &Cache{
		mode:         modeConsumer,
		artifactPath: filepath.Clean(artifactPath),
		signer:       signer,
		logger:       logger,
	}
}

// NewStandalone creates a cache that always reports a miss and never writes.
func NewStandalone(logger ports.Logger) *Cache {
	return &Cache{
		mode:   modeStandalone,
		logger: logger,
	}
}

// Role returns the configured role name, for diagnostics.
func (c *Cache) Role() string {
	return c.mode.String()
}

// Writable reports whether this instance's role permits WriteCache. Only
// the producer writes; consumers falling back to local analysis have no
// further cache interaction for that run.
func (c *Cache) Writable() bool {
	return c.mode == modeProducer
}

// WriteCache persists the analysis results as a whole, replacing any prior
// artifact. It must only be called after analysis has fully completed in
// memory: the artifact is assembled first and becomes visible atomically
// via rename, so an aborted pass never leaves a partial artifact
// observable as valid. A persistence failure does not invalidate the
// producer's own in-memory results; only future consumers are affected.
func (c *Cache) WriteCache(ctx context.Context, decls []domain.AnalyzedDeclaration) error {
	if c.mode != modeProducer {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrCacheRole, "write rejected"), "role", c.Role()), "operation", "write")
	}

	units, err := c.signDeclarations(ctx, decls)
	if err != nil {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrCacheWrite, "failed to sign origin files"), "artifact", c.artifactPath), "cause", err.Error())
	}

	signatures := make([]string, len(units))
	for i, u := range units {
		signatures[i] = u.OriginSignature
	}

	art := artifact{
		FormatVersion:     FormatVersion,
		CombinedSignature: c.signer.CombineSignatures(signatures),
		Units: map[string][]domain.CachedUnit{
			domain.DeclarationUnitKind: units,
		},
	}

	if err := c.persist(&art); err != nil {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrCacheWrite, "failed to replace artifact"), "artifact", c.artifactPath), "cause", err.Error())
	}

	c.logger.Info("cache artifact written", "artifact", c.artifactPath, "units", len(units))
	return nil
}

// TryLoadCache loads the artifact and populates dest with every unit's
// payload. Validation is all-or-nothing: the format version must match
// exactly, every origin file must still exist, and every freshly
// recomputed signature must match its stored one. On any failure it
// returns false and leaves dest untouched; every failure degrades to a
// miss, never to a crash. Loading the same artifact into an already
// populated destination does not duplicate entries.
func (c *Cache) TryLoadCache(ctx context.Context, dest ports.AnalysisStore) bool {
	if c.mode != modeConsumer {
		c.logger.Debug("cache lookup skipped", "role", c.Role())
		return false
	}

	art, err := c.readArtifact()
	if err != nil {
		c.logger.Info("cache miss", "artifact", c.artifactPath, "reason", err.Error())
		return false
	}

	if err := c.verifyUnits(ctx, art); err != nil {
		c.logger.Info("cache miss", "artifact", c.artifactPath, "reason", err.Error())
		return false
	}

	// Validation passed as a whole; only now touch the destination.
	total := 0
	for _, kind := range sortedKinds(art.Units) {
		for _, unit := range art.Units[kind] {
			dest.Put(unit)
			total++
		}
	}

	c.logger.Info("cache hit", "artifact", c.artifactPath, "units", total)
	return true
}

func (c *Cache) signDeclarations(ctx context.Context, decls []domain.AnalyzedDeclaration) ([]domain.CachedUnit, error) {
	units := make([]domain.CachedUnit, len(decls))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, decl := range decls {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sig, err := c.signer.SignFile(decl.OriginPath)
			if err != nil {
				return err
			}
			units[i] = domain.CachedUnit{
				Identifier:      decl.Identifier,
				OriginPath:      decl.OriginPath,
				OriginSignature: sig,
				Payload:         decl.Payload,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(units, func(a, b domain.CachedUnit) int {
		switch {
		case a.Identifier < b.Identifier:
			return -1
		case a.Identifier > b.Identifier:
			return 1
		default:
			return 0
		}
	})
	return units, nil
}

func (c *Cache) verifyUnits(ctx context.Context, art *artifact) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for _, kind := range sortedKinds(art.Units) {
		for _, unit := range art.Units[kind] {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				if _, err := os.Stat(unit.OriginPath); err != nil {
					return zerr.With(
						zerr.With(zerr.Wrap(domain.ErrCacheUnitMissingSource, "unit validation failed"), "identifier", unit.Identifier),
						"path", unit.OriginPath,
					)
				}
				sig, err := c.signer.SignFile(unit.OriginPath)
				if err != nil {
					return err
				}
				if sig != unit.OriginSignature {
					return zerr.With(
						zerr.With(zerr.Wrap(domain.ErrCacheSignatureMismatch, "unit validation failed"), "identifier", unit.Identifier),
						"path", unit.OriginPath,
					)
				}
				return nil
			})
		}
	}

	return g.Wait()
}

func (c *Cache) readArtifact() (*artifact, error) {
	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(c.artifactPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrCacheArtifactMissing, "lookup failed"), "artifact", c.artifactPath)
		}
		return nil, zerr.Wrap(err, "failed to read cache artifact")
	}

	// Peek at the version before parsing the unit collections.
	var hdr artifactHeader
	if err := json.Unmarshal(data, &hdr); err != nil {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrCacheCorrupt, "failed to parse"), "artifact", c.artifactPath), "cause", err.Error())
	}
	if hdr.FormatVersion != FormatVersion {
		return nil, zerr.With(
			zerr.With(zerr.With(zerr.Wrap(domain.ErrCacheVersionMismatch, "artifact rejected"), "artifact", c.artifactPath),
				"artifact_version", hdr.FormatVersion),
			"expected_version", FormatVersion,
		)
	}

	var art artifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrCacheCorrupt, "failed to parse"), "artifact", c.artifactPath), "cause", err.Error())
	}

	return &art, nil
}

func (c *Cache) persist(art *artifact) error {
	// Compact encoding keeps the opaque unit payloads byte-identical across
	// a write/load cycle; indented encoding would reformat them.
	data, err := json.Marshal(art)
	if err != nil {
		return zerr.Wrap(err, "failed to marshal cache artifact")
	}

	dir := filepath.Dir(c.artifactPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create cache artifact directory")
	}

	// Stage in the target directory so the final rename is atomic.
	tmp, err := os.CreateTemp(dir, ".artifact-*.json")
	if err != nil {
		return zerr.Wrap(err, "failed to create staging file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, "failed to write staging file")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, "failed to close staging file")
	}

	if err := os.Rename(tmpName, c.artifactPath); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, "failed to replace cache artifact")
	}

	return nil
}

func sortedKinds(units map[string][]domain.CachedUnit) []string {
	kinds := make([]string, 0, len(units))
	for kind := range units {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)
	return kinds
}
