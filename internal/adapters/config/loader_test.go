package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/fanout/internal/adapters/config"
	"go.trai.ch/fanout/internal/core/domain"
)

func writeGroupfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fanout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeGroupfile(t, `
version: "1"
groups:
  commonMain: {}
  jvmMain:
    dependsOn: [commonMain]
  commonTest:
    dependsOn: [commonMain]
passes:
  compileKotlinJvm:
    target: jvm
    platform: jvm
    defaultGroup: jvmMain
  compileTestKotlinJvm:
    target: jvm
    platform: jvm
    defaultGroup: commonTest
    test: true
`)

	manifest, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"compileKotlinJvm", "compileTestKotlinJvm"}, manifest.PassNames())

	pass, err := manifest.Pass("compileTestKotlinJvm")
	require.NoError(t, err)
	assert.True(t, pass.IsTestPass)
	assert.Equal(t, "commonTest", pass.DefaultGroup)

	closure, err := manifest.Groups.Closure(domain.NewInternedString("jvmMain"))
	require.NoError(t, err)
	require.Len(t, closure, 2)
	assert.Equal(t, "jvmMain", closure[0].Name.String())
	assert.Equal(t, "commonMain", closure[1].Name.String())
}

func TestLoad_UnknownParent(t *testing.T) {
	path := writeGroupfile(t, `
groups:
  jvmMain:
    dependsOn: [commonMain]
passes: {}
`)

	_, err := config.Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownGroup)
}

func TestLoad_CyclicHierarchy(t *testing.T) {
	path := writeGroupfile(t, `
groups:
  a:
    dependsOn: [b]
  b:
    dependsOn: [a]
passes: {}
`)

	_, err := config.Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGroupCycle)
}

func TestLoad_UnknownDefaultGroup(t *testing.T) {
	path := writeGroupfile(t, `
groups:
  commonMain: {}
passes:
  compileKotlinJvm:
    target: jvm
    platform: jvm
    defaultGroup: missingGroup
`)

	_, err := config.Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownGroup)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to read groupfile")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeGroupfile(t, "groups: [not, a, map")

	_, err := config.Load(path)
	require.Error(t, err)
}
