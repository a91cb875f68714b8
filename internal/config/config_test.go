package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("Budi")
	cfg.Report.WindowMonths = 12
	cfg.Git.AutoCommit = false

	path := filepath.Join(t.TempDir(), "kasku.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Profile.Name, got.Profile.Name)
	assert.Equal(t, cfg.Report.WindowMonths, got.Report.WindowMonths)
	assert.Equal(t, cfg.Report.TopCategories, got.Report.TopCategories)
	assert.Equal(t, cfg.Git.AutoCommit, got.Git.AutoCommit)
	assert.Equal(t, cfg.Git.AuthorName, got.Git.AuthorName)
	assert.Equal(t, cfg.Git.AuthorEmail, got.Git.AuthorEmail)
}

func TestDefaults(t *testing.T) {
	cfg := Default("Budi")

	assert.Equal(t, "Budi", cfg.Profile.Name)
	assert.Equal(t, 6, cfg.Report.WindowMonths)
	assert.Equal(t, 5, cfg.Report.TopCategories)
	assert.True(t, cfg.Git.AutoCommit)
	assert.Equal(t, "Kasku", cfg.Git.AuthorName)
	assert.Equal(t, "kasku@localhost", cfg.Git.AuthorEmail)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default("Budi")
	path := filepath.Join(t.TempDir(), "kasku.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Budi")
	assert.Contains(t, contents, "window_months: 6")
	assert.Contains(t, contents, "auto_commit: true")
}
