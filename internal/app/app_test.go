package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/fanout/internal/adapters/fs"
	"go.trai.ch/fanout/internal/adapters/memstore"
	"go.trai.ch/fanout/internal/adapters/telemetry"
	"go.trai.ch/fanout/internal/app"
	"go.trai.ch/fanout/internal/core/domain"
	"go.trai.ch/fanout/internal/core/ports/mocks"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(error)          {}

// errCountLogger counts error-severity logs and swallows the rest.
type errCountLogger struct {
	nopLogger
	errs int
}

func (l *errCountLogger) Error(error) { l.errs++ }

func testManifest(t *testing.T) *domain.Manifest {
	t.Helper()

	groups := domain.NewGroupSet()
	require.NoError(t, groups.AddGroup(&domain.SourceGroup{
		Name: domain.NewInternedString("commonMain"),
	}))
	require.NoError(t, groups.AddGroup(&domain.SourceGroup{
		Name:    domain.NewInternedString("jvmMain"),
		Parents: []domain.InternedString{domain.NewInternedString("commonMain")},
	}))

	return &domain.Manifest{
		Groups: groups,
		Passes: map[string]domain.CompilationPass{
			"compileKotlinJvm": {
				PassName:     "compileKotlinJvm",
				TargetID:     "jvm",
				PlatformKind: "jvm",
				DefaultGroup: "jvmMain",
			},
			"compileTestKotlinJvm": {
				PassName:     "compileTestKotlinJvm",
				TargetID:     "jvm",
				PlatformKind: "jvm",
				IsTestPass:   true,
				DefaultGroup: "jvmMain",
			},
		},
	}
}

func newApp(t *testing.T, loader *mocks.MockConfigLoader) *app.App {
	t.Helper()
	return app.New(loader, fs.NewSigner(), nopLogger{}, telemetry.NewNoOp())
}

func writeOrigin(t *testing.T, dir, rel, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestApp_EncodeDecodeContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load("fanout.yaml").Return(testManifest(t), nil)

	a := newApp(t, loader)

	encoded, err := a.EncodeContext("fanout.yaml", "compileKotlinJvm", "/build")
	require.NoError(t, err)

	cc := a.DecodeContext(encoded)
	assert.Equal(t, "compileKotlinJvm", cc.CompilationName)
	assert.Equal(t, "jvmMain", cc.DefaultSourceGroup.Name)
	require.Len(t, cc.AllSourceGroups, 2)
	assert.Equal(t, "commonMain", cc.AllSourceGroups[1].Name)
}

func TestApp_DecodeContext_FallsBackOnGarbage(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := newApp(t, mocks.NewMockConfigLoader(ctrl))

	cc := a.DecodeContext("%%% not base64 %%%")
	assert.Equal(t, domain.DefaultContext(), cc)
}

func TestApp_EncodeContext_UnknownPass(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load("fanout.yaml").Return(testManifest(t), nil)

	a := newApp(t, loader)

	_, err := a.EncodeContext("fanout.yaml", "compileWasm", "/build")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownPass)
}

func TestApp_Hierarchy(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load("fanout.yaml").Return(testManifest(t), nil)

	a := newApp(t, loader)

	hierarchy, err := a.Hierarchy("fanout.yaml", "jvmMain")
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"jvmMain":    {"commonMain"},
		"commonMain": {},
	}, hierarchy)
}

func TestApp_Attribute(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := newApp(t, mocks.NewMockConfigLoader(ctrl))

	group, err := a.Attribute("/project/src/jvmMain/kotlin/A.kt", false)
	require.NoError(t, err)
	assert.Equal(t, "jvmMain", group)

	group, err = a.Attribute("/project/src/jvmMain/kotlin/A.kt", true)
	require.NoError(t, err)
	assert.Equal(t, "jvmTest", group)

	_, err = a.Attribute("/tmp/scratch/A.kt", false)
	assert.ErrorIs(t, err, domain.ErrUnattributablePath)
}

func TestApp_RunPass_Standalone(t *testing.T) {
	ctrl := gomock.NewController(t)
	tmpDir := t.TempDir()
	origin := writeOrigin(t, tmpDir, "src/jvmMain/kotlin/A.kt", "class A")

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load("fanout.yaml").Return(testManifest(t), nil)

	analyzer := mocks.NewMockAnalyzer(ctrl)
	analyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return([]domain.AnalyzedDeclaration{
		{Identifier: "com.example.A", OriginPath: origin, Payload: json.RawMessage(`{}`)},
	}, nil)

	log := &errCountLogger{}
	a := app.New(loader, fs.NewSigner(), log, telemetry.NewNoOp())
	store := memstore.New()

	result, err := a.RunPass(context.Background(), app.RunPassOptions{
		ConfigPath: "fanout.yaml",
		PassName:   "compileKotlinJvm",
		BuildRoot:  tmpDir,
		Analyzer:   analyzer,
	}, store)
	require.NoError(t, err)

	assert.False(t, result.FromCache)
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, map[string]string{"com.example.A": "jvmMain"}, result.Routed)
	assert.Zero(t, log.errs)

	unit, ok := store.Get("com.example.A")
	require.True(t, ok)
	assert.NotEmpty(t, unit.OriginSignature)
}

func TestApp_RunPass_TestPassRoutesToTestRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	tmpDir := t.TempDir()
	origin := writeOrigin(t, tmpDir, "src/jvmMain/kotlin/A.kt", "class A")

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load("fanout.yaml").Return(testManifest(t), nil)

	analyzer := mocks.NewMockAnalyzer(ctrl)
	analyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return([]domain.AnalyzedDeclaration{
		{Identifier: "com.example.A", OriginPath: origin},
	}, nil)

	a := newApp(t, loader)

	result, err := a.RunPass(context.Background(), app.RunPassOptions{
		ConfigPath: "fanout.yaml",
		PassName:   "compileTestKotlinJvm",
		BuildRoot:  tmpDir,
		Analyzer:   analyzer,
	}, memstore.New())
	require.NoError(t, err)

	assert.True(t, result.Context.IsTest)
	assert.Equal(t, map[string]string{"com.example.A": "jvmTest"}, result.Routed)
}

func TestApp_RunPass_ProducerThenConsumer(t *testing.T) {
	ctrl := gomock.NewController(t)
	tmpDir := t.TempDir()
	origin := writeOrigin(t, tmpDir, "src/jvmMain/kotlin/A.kt", "class A")
	artifact := filepath.Join(tmpDir, "cache", "metadata.json")

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load("fanout.yaml").Return(testManifest(t), nil).Times(2)

	// Producer analyzes once; the consumer must not analyze at all.
	analyzer := mocks.NewMockAnalyzer(ctrl)
	analyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return([]domain.AnalyzedDeclaration{
		{Identifier: "com.example.A", OriginPath: origin, Payload: json.RawMessage(`{"v":1}`)},
	}, nil).Times(1)

	a := newApp(t, loader)

	producerStore := memstore.New()
	result, err := a.RunPass(context.Background(), app.RunPassOptions{
		ConfigPath:   "fanout.yaml",
		PassName:     "compileKotlinJvm",
		BuildRoot:    tmpDir,
		Role:         "producer",
		ArtifactPath: artifact,
		Analyzer:     analyzer,
	}, producerStore)
	require.NoError(t, err)
	assert.False(t, result.FromCache)

	consumerStore := memstore.New()
	result, err = a.RunPass(context.Background(), app.RunPassOptions{
		ConfigPath:   "fanout.yaml",
		PassName:     "compileKotlinJvm",
		BuildRoot:    tmpDir,
		Role:         "consumer",
		ArtifactPath: artifact,
		Analyzer:     analyzer,
	}, consumerStore)
	require.NoError(t, err)

	assert.True(t, result.FromCache)
	assert.Equal(t, 1, consumerStore.Len())
	unit, _ := consumerStore.Get("com.example.A")
	assert.Equal(t, `{"v":1}`, string(unit.Payload))
}

func TestApp_RunPass_ConsumerMissFallsBackToAnalysis(t *testing.T) {
	ctrl := gomock.NewController(t)
	tmpDir := t.TempDir()
	origin := writeOrigin(t, tmpDir, "src/commonMain/kotlin/B.kt", "class B")
	artifact := filepath.Join(tmpDir, "cache", "absent.json")

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load("fanout.yaml").Return(testManifest(t), nil)

	analyzer := mocks.NewMockAnalyzer(ctrl)
	analyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return([]domain.AnalyzedDeclaration{
		{Identifier: "com.example.B", OriginPath: origin},
	}, nil)

	log := &errCountLogger{}
	a := app.New(loader, fs.NewSigner(), log, telemetry.NewNoOp())
	store := memstore.New()

	result, err := a.RunPass(context.Background(), app.RunPassOptions{
		ConfigPath:   "fanout.yaml",
		PassName:     "compileKotlinJvm",
		BuildRoot:    tmpDir,
		Role:         "consumer",
		ArtifactPath: artifact,
		Analyzer:     analyzer,
	}, store)
	require.NoError(t, err)

	assert.False(t, result.FromCache)
	assert.Equal(t, 1, store.Len())

	// A consumer that missed has no further cache interaction: nothing is
	// written and the non-event produces no error-severity diagnostics.
	assert.NoFileExists(t, artifact)
	assert.Zero(t, log.errs)
}

func TestApp_RunPass_AnalyzerError(t *testing.T) {
	ctrl := gomock.NewController(t)

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load("fanout.yaml").Return(testManifest(t), nil)

	analyzer := mocks.NewMockAnalyzer(ctrl)
	analyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(nil, errors.New("analysis backend unavailable"))

	a := newApp(t, loader)

	_, err := a.RunPass(context.Background(), app.RunPassOptions{
		ConfigPath: "fanout.yaml",
		PassName:   "compileKotlinJvm",
		BuildRoot:  t.TempDir(),
		Analyzer:   analyzer,
	}, memstore.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "local analysis failed")
}

func TestApp_RunPass_UnknownRole(t *testing.T) {
	ctrl := gomock.NewController(t)

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load("fanout.yaml").Return(testManifest(t), nil)

	a := newApp(t, loader)

	_, err := a.RunPass(context.Background(), app.RunPassOptions{
		ConfigPath: "fanout.yaml",
		PassName:   "compileKotlinJvm",
		BuildRoot:  t.TempDir(),
		Role:       "observer",
		Analyzer:   mocks.NewMockAnalyzer(gomock.NewController(t)),
	}, memstore.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCacheRole)
}

func TestApp_RunPass_ProducerRequiresArtifactPath(t *testing.T) {
	ctrl := gomock.NewController(t)

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load("fanout.yaml").Return(testManifest(t), nil)

	a := newApp(t, loader)

	_, err := a.RunPass(context.Background(), app.RunPassOptions{
		ConfigPath: "fanout.yaml",
		PassName:   "compileKotlinJvm",
		BuildRoot:  t.TempDir(),
		Role:       "producer",
		Analyzer:   mocks.NewMockAnalyzer(gomock.NewController(t)),
	}, memstore.New())
	assert.ErrorIs(t, err, domain.ErrCacheRole)
}
