package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/torsten-liermann/migrate-ejb2spring-sub004/pkg/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "SpringMigrationConfig.java", cfg.ArtifactFile)
	assert.Equal(t, ".ejb2spring", cfg.FragmentFile)
	assert.Equal(t, []string{".java", ".kt"}, cfg.Extensions)
	assert.Contains(t, cfg.SkipDirs, ".git")
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingNamedFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ejb2spring.toml")
	content := `artifact_file = "Marker.java"
extensions = [".java"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Marker.java", cfg.ArtifactFile)
	assert.Equal(t, []string{".java"}, cfg.Extensions)
	// untouched keys keep their defaults
	assert.Equal(t, Default().FragmentFile, cfg.FragmentFile)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("EJB2SPRING_ARTIFACT_FILE", "EnvMarker.java")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "EnvMarker.java", cfg.ArtifactFile)
}

func TestEnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ejb2spring.toml")
	require.NoError(t, os.WriteFile(path, []byte(`artifact_file = "FromFile.java"`), 0644))
	t.Setenv("EJB2SPRING_ARTIFACT_FILE", "FromEnv.java")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "FromEnv.java", cfg.ArtifactFile)
}

func TestGenerateDefault(t *testing.T) {
	out, err := GenerateDefault()
	require.NoError(t, err)
	assert.Contains(t, out, "artifact_file")
	assert.Contains(t, out, "SpringMigrationConfig.java")
	assert.Contains(t, out, "fragment_file")
	assert.Contains(t, out, "skip_dirs")
}
