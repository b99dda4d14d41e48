package declfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/fanout/internal/adapters/declfile"
	"go.trai.ch/fanout/internal/core/domain"
)

func TestLoader_Analyze(t *testing.T) {
	path := filepath.Join(t.TempDir(), "declarations.json")
	content := `[
		{"identifier": "com.example.StateA", "originPath": "/src/jvmMain/A.kt", "payload": {"kind": "volatile"}},
		{"identifier": "com.example.StateB", "originPath": "/src/jvmMain/B.kt", "payload": {"kind": "plain"}}
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	decls, err := declfile.NewLoader(path).Analyze(context.Background(), domain.CompilationContext{})
	require.NoError(t, err)
	require.Len(t, decls, 2)
	assert.Equal(t, "com.example.StateA", decls[0].Identifier)
	assert.Equal(t, "/src/jvmMain/A.kt", decls[0].OriginPath)
	assert.JSONEq(t, `{"kind": "volatile"}`, string(decls[0].Payload))
}

func TestLoader_Analyze_MissingFile(t *testing.T) {
	_, err := declfile.NewLoader(filepath.Join(t.TempDir(), "absent.json")).
		Analyze(context.Background(), domain.CompilationContext{})
	require.Error(t, err)
}

func TestLoader_Analyze_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "declarations.json")
	require.NoError(t, os.WriteFile(path, []byte("{not a list"), 0o600))

	_, err := declfile.NewLoader(path).Analyze(context.Background(), domain.CompilationContext{})
	require.Error(t, err)
}
