package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFeatures_EmptyPathReturnsDefaults(t *testing.T) {
	features, err := LoadFeatures("")
	require.NoError(t, err)
	assert.Equal(t, DefaultFeatures(), features)
}

func TestLoadFeatures_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "features.yaml")
	require.NoError(t, os.WriteFile(path, []byte("quiz: false\n"), 0o600))

	features, err := LoadFeatures(path)
	require.NoError(t, err)

	assert.False(t, features.Quiz)
	assert.True(t, features.Breakdown)
	assert.True(t, features.Summarizer)
	assert.True(t, features.Locator)
}

func TestLoadFeatures_MissingFile(t *testing.T) {
	_, err := LoadFeatures(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read features file")
}

func TestLoadFeatures_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "features.yaml")
	require.NoError(t, os.WriteFile(path, []byte("quiz: [broken\n"), 0o600))

	_, err := LoadFeatures(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse features file")
}
