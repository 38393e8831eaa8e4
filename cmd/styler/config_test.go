package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".styler.yaml")
	configContent := `
verbose: true
color: true

import:
  gitignore: custom/.gitignore
  paths:
    - "site/**/*.html"

preview:
  breakpoint: tablet
  state: hover
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))
	assert.True(t, k.Bool("color"))
	assert.Equal(t, "custom/.gitignore", k.String("import.gitignore"))
	assert.Equal(t, []string{"site/**/*.html"}, k.Strings("import.paths"))
	assert.Equal(t, "tablet", k.String("preview.breakpoint"))
	assert.Equal(t, "hover", k.String("preview.state"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	require.NoError(t, loadConfigFromPath("/nonexistent/.styler.yaml"))

	assert.Equal(t, "desktop", getStringWithFallback("breakpoint", "preview.breakpoint", "desktop"))
	assert.Equal(t, []string{"**/*.html"}, getStringsWithFallback("paths", "import.paths", []string{"**/*.html"}))
	assert.False(t, getBoolWithFallback("verbose", "verbose", false))
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".styler.yaml")
	configContent := `
preview:
  breakpoint: tablet
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

	t.Setenv("STYLER_PREVIEW_BREAKPOINT", "mobile")
	t.Setenv("STYLER_VERBOSE", "true")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "mobile", k.String("preview.breakpoint"))
	assert.True(t, k.Bool("verbose"))
}

func TestFallbackHelpers(t *testing.T) {
	resetKoanf()
	require.NoError(t, k.Set("flat", "from-flag"))
	require.NoError(t, k.Set("section.nested", "from-file"))

	assert.Equal(t, "from-flag", getStringWithFallback("flat", "section.nested", "default"))
	assert.Equal(t, "from-file", getStringWithFallback("missing", "section.nested", "default"))
	assert.Equal(t, "default", getStringWithFallback("missing", "also.missing", "default"))
}
