// Package app implements the application layer: per-pass orchestration of
// context building, cache reuse and fallback analysis.
package app

import (
	"context"

	"go.trai.ch/fanout/internal/adapters/cache"
	"go.trai.ch/fanout/internal/adapters/codec"
	"go.trai.ch/fanout/internal/core/domain"
	"go.trai.ch/fanout/internal/core/ports"
	"go.trai.ch/zerr"
)

// App wires the core components for one tool invocation.
type App struct {
	loader    ports.ConfigLoader
	signer    ports.FileSigner
	logger    ports.Logger
	telemetry ports.Telemetry
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, signer ports.FileSigner, logger ports.Logger, telemetry ports.Telemetry) *App {
	return &App{
		loader:    loader,
		signer:    signer,
		logger:    logger,
		telemetry: telemetry,
	}
}

// RunPassOptions describes one pass invocation.
type RunPassOptions struct {
	ConfigPath string
	PassName   string
	BuildRoot  string

	// Role is one of "producer", "consumer" or "standalone"; producer and
	// consumer carry the artifact location.
	Role         string
	ArtifactPath string

	// Analyzer supplies the fallback/local analysis results.
	Analyzer ports.Analyzer
}

// PassResult is what the downstream code-generation stage receives: the
// pass's context, the populated store (owned by the caller), and the
// test-role-aware output routing per declaration. Whether units came from
// the cache or fresh analysis is not observable downstream.
type PassResult struct {
	Context   domain.CompilationContext
	FromCache bool

	// Routed maps declaration identifiers to the source group their
	// generated output belongs to. Unattributable declarations are absent.
	Routed map[string]string
}

// EncodeContext builds the context for the named pass and encodes it for
// the transport channel.
func (a *App) EncodeContext(configPath, passName, buildRoot string) (string, error) {
	cc, err := a.buildContext(configPath, passName, buildRoot)
	if err != nil {
		return "", err
	}
	return codec.Encode(cc)
}

// DecodeContext decodes a transported context. Malformed payloads degrade
// to the default context with an informational diagnostic; performance is
// affected, correctness is not.
func (a *App) DecodeContext(encoded string) domain.CompilationContext {
	cc, err := codec.Decode(encoded)
	if err != nil {
		a.logger.Info("falling back to default compilation context", "reason", err.Error())
		return domain.DefaultContext()
	}
	return cc
}

// Hierarchy returns the closure of the named group as a map from each
// member to its sorted direct parents.
func (a *App) Hierarchy(configPath, groupName string) (map[string][]string, error) {
	manifest, err := a.loader.Load(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return manifest.Groups.HierarchyMap(domain.NewInternedString(groupName))
}

// Attribute resolves the source group owning originPath, optionally
// rewritten to its test-role counterpart.
func (a *App) Attribute(originPath string, testRole bool) (string, error) {
	group, err := domain.AttributeSourceGroup(originPath)
	if err != nil {
		return "", err
	}
	if testRole {
		group = domain.ToTestRole(group)
	}
	return group, nil
}

// RunPass drives one compilation pass through the cache state machine:
// consumers try the artifact first and fall back to local analysis on a
// miss; the producer analyzes and persists; standalone only analyzes.
func (a *App) RunPass(ctx context.Context, opts RunPassOptions, dest ports.AnalysisStore) (*PassResult, error) {
	cc, err := a.buildContext(opts.ConfigPath, opts.PassName, opts.BuildRoot)
	if err != nil {
		return nil, err
	}

	mc, err := a.newCache(opts.Role, opts.ArtifactPath)
	if err != nil {
		return nil, err
	}

	ctx, vtx := a.telemetry.Record(ctx, "pass:"+opts.PassName)

	result, err := a.runPass(ctx, cc, mc, opts.Analyzer, dest)
	if err != nil {
		vtx.Complete(err)
		return nil, err
	}
	if result.FromCache {
		vtx.Cached()
	}
	vtx.Complete(nil)
	return result, nil
}

func (a *App) runPass(
	ctx context.Context,
	cc domain.CompilationContext,
	mc *cache.Cache,
	analyzer ports.Analyzer,
	dest ports.AnalysisStore,
) (*PassResult, error) {
	if mc.TryLoadCache(ctx, dest) {
		return &PassResult{
			Context:   cc,
			FromCache: true,
			Routed:    a.routeDeclarations(cc, dest.Units()),
		}, nil
	}

	// Miss or non-consumer role: do the local analysis.
	decls, err := analyzer.Analyze(ctx, cc)
	if err != nil {
		return nil, zerr.Wrap(err, "local analysis failed")
	}

	// Only the producer persists; a consumer that missed has no further
	// cache interaction for this run.
	if mc.Writable() {
		if err := mc.WriteCache(ctx, decls); err != nil {
			// Affects future consumers only; this pass's results stay valid.
			a.logger.Error(err)
		}
	}

	for _, decl := range decls {
		dest.Put(a.toUnit(decl))
	}

	return &PassResult{
		Context: cc,
		Routed:  a.routeDeclarations(cc, dest.Units()),
	}, nil
}

func (a *App) buildContext(configPath, passName, buildRoot string) (domain.CompilationContext, error) {
	manifest, err := a.loader.Load(configPath)
	if err != nil {
		return domain.CompilationContext{}, zerr.Wrap(err, "failed to load configuration")
	}

	pass, err := manifest.Pass(passName)
	if err != nil {
		return domain.CompilationContext{}, err
	}

	return domain.BuildContext(pass, manifest.Groups, buildRoot)
}

func (a *App) newCache(role, artifactPath string) (*cache.Cache, error) {
	switch role {
	case "producer":
		if artifactPath == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrCacheRole, "invalid cache configuration"), "reason", "producer requires an artifact path")
		}
		return cache.NewProducer(artifactPath, a.signer, a.logger), nil
	case "consumer":
		if artifactPath == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrCacheRole, "invalid cache configuration"), "reason", "consumer requires an artifact path")
		}
		return cache.NewConsumer(artifactPath, a.signer, a.logger), nil
	case "", "standalone":
		return cache.NewStandalone(a.logger), nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrCacheRole, "invalid cache configuration"), "role", role)
	}
}

// routeDeclarations attributes each unit to its true origin group so
// generated output follows the declaration's origin, not the pass's
// nominal default group. For test passes the group is rewritten to its
// test-role counterpart. Attribution failures are surfaced and skipped;
// whether to fail the pass is the caller's policy.
func (a *App) routeDeclarations(cc domain.CompilationContext, units []domain.CachedUnit) map[string]string {
	routed := make(map[string]string, len(units))
	for _, unit := range units {
		group, err := domain.AttributeSourceGroup(unit.OriginPath)
		if err != nil {
			a.logger.Warn("declaration left unrouted", "identifier", unit.Identifier, "path", unit.OriginPath)
			continue
		}
		if cc.IsTest {
			group = domain.ToTestRole(group)
		}
		routed[unit.Identifier] = group
	}
	return routed
}

func (a *App) toUnit(decl domain.AnalyzedDeclaration) domain.CachedUnit {
	unit := domain.CachedUnit{
		Identifier: decl.Identifier,
		OriginPath: decl.OriginPath,
		Payload:    decl.Payload,
	}
	if sig, err := a.signer.SignFile(decl.OriginPath); err == nil {
		unit.OriginSignature = sig
	} else {
		a.logger.Debug("origin signature unavailable", "identifier", decl.Identifier, "path", decl.OriginPath)
	}
	return unit
}
