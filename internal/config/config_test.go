package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upFrontEnd/good-mood-generator/internal/theme"
)

var _ theme.Store = (*PreferenceStore)(nil)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Empty(t, cfg.UI.Theme)
	assert.False(t, cfg.UI.Dense)
	assert.True(t, cfg.UI.ShowBio)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "goodmood.yaml")

	cfg := DefaultConfig()
	cfg.UI.Theme = "dark"
	cfg.UI.Dense = true
	cfg.Quotes.File = "/tmp/extra.yaml"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", loaded.UI.Theme)
	assert.True(t, loaded.UI.Dense)
	assert.Equal(t, "/tmp/extra.yaml", loaded.Quotes.File)
}

func TestPreferenceStore_EmptyBeforeFirstSet(t *testing.T) {
	store := NewPreferenceStore(filepath.Join(t.TempDir(), "goodmood.yaml"))

	value, err := store.Preference()
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestPreferenceStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goodmood.yaml")
	store := NewPreferenceStore(path)

	require.NoError(t, store.SetPreference("dark"))

	// A fresh store over the same file sees the value, like a page reload.
	value, err := NewPreferenceStore(path).Preference()
	require.NoError(t, err)
	assert.Equal(t, "dark", value)
}

func TestPreferenceStore_KeepsOtherSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goodmood.yaml")

	cfg := DefaultConfig()
	cfg.UI.Dense = true
	cfg.Quotes.File = "/tmp/extra.yaml"
	require.NoError(t, cfg.Save(path))

	require.NoError(t, NewPreferenceStore(path).SetPreference("light"))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "light", loaded.UI.Theme)
	assert.True(t, loaded.UI.Dense)
	assert.Equal(t, "/tmp/extra.yaml", loaded.Quotes.File)
}
