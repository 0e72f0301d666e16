package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unikit-dev/unikit/pkg/config"
)

func TestLoadFrom_Defaults(t *testing.T) {
	settings, err := config.LoadFrom(t.TempDir())
	require.NoError(t, err)

	assert.NotEmpty(t, settings.IndexPath)
	assert.NotEmpty(t, settings.SourcesDir)
	assert.False(t, settings.NoPrompt)
}

func TestLoadFrom_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.yaml"), []byte(
		"index_path: /srv/unikit/index.yaml\nsources_dir: /srv/unikit/sources\n"), 0644))

	settings, err := config.LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, "/srv/unikit/index.yaml", settings.IndexPath)
	assert.Equal(t, "/srv/unikit/sources", settings.SourcesDir)
}

func TestLoadFrom_TOMLFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.toml"), []byte(
		"index_path = \"/opt/index.yaml\"\nno_prompt = true\n"), 0644))

	settings, err := config.LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, "/opt/index.yaml", settings.IndexPath)
	assert.True(t, settings.NoPrompt)
}

func TestLoadFrom_YAMLPreferredOverTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.yaml"), []byte(
		"index_path: /from/yaml\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.toml"), []byte(
		"index_path = \"/from/toml\"\n"), 0644))

	settings, err := config.LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, "/from/yaml", settings.IndexPath)
}

func TestLoadFrom_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.yaml"), []byte(
		"index_path: /from/file\n"), 0644))
	t.Setenv("UNIKIT_INDEX_PATH", "/from/env")

	settings, err := config.LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, "/from/env", settings.IndexPath)
}

func TestLoadFrom_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.yaml"), []byte(
		"index_path: [unclosed\n"), 0644))

	_, err := config.LoadFrom(dir)
	assert.Error(t, err)
}
