package toml

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/bnema/merchant-cli/internal/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo, err := NewRepository(filepath.Join(t.TempDir(), "merchant", "config.toml"))
	require.NoError(t, err)

	want := config.Config{
		API: config.APIConfig{
			BaseURI:   "https://api.example.com",
			Timeout:   15 * time.Second,
			UserAgent: "merchant-cli/test",
		},
		Log:     config.LogConfig{Level: "debug"},
		Secrets: config.SecretsConfig{Dir: "/tmp/secrets"},
	}

	require.NoError(t, repo.Save(context.Background(), want))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	info, err := os.Stat(repo.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(configFileMode), info.Mode().Perm())
}

func TestRepositoryLoadMissingFileReturnsEmptyConfig(t *testing.T) {
	t.Parallel()

	repo, err := NewRepository(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, config.Config{}, got)
}

func TestRepositorySetKeepsOtherKeys(t *testing.T) {
	t.Parallel()

	repo, err := NewRepository(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	require.NoError(t, repo.Set(context.Background(), config.KeyBaseURI, "https://api.example.com"))
	require.NoError(t, repo.Set(context.Background(), config.KeyTimeout, "5s"))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", got.API.BaseURI)
	assert.Equal(t, 5*time.Second, got.API.Timeout)
}

func TestRepositorySetRejectsInvalidValue(t *testing.T) {
	t.Parallel()

	repo, err := NewRepository(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	require.Error(t, repo.Set(context.Background(), config.KeyBaseURI, "not a url"))

	_, err = os.Stat(repo.Path())
	assert.True(t, os.IsNotExist(err))
}

func TestRepositoryRejectsNewerSchemaVersion(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 2\n"), 0o600))

	repo, err := NewRepository(path)
	require.NoError(t, err)

	_, err = repo.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config schema version 2")
}

func TestRepositoryFileIsReadableByConfigLoad(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	repo, err := NewRepository(path)
	require.NoError(t, err)
	require.NoError(t, repo.Set(context.Background(), config.KeyBaseURI, "https://api.example.com"))
	require.NoError(t, repo.Set(context.Background(), config.KeyTimeout, "3s"))

	cfg, err := config.Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", cfg.API.BaseURI)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
}

func TestRepositoryConcurrentSetsDoNotLoseWrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	first, err := NewRepository(path)
	require.NoError(t, err)
	second, err := NewRepository(path)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		assert.NoError(t, first.Set(context.Background(), config.KeyUserAgent, "merchant-cli/a"))
	}()
	go func() {
		defer wg.Done()
		assert.NoError(t, second.Set(context.Background(), config.KeyLogLevel, "error"))
	}()
	wg.Wait()

	got, err := first.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "merchant-cli/a", got.API.UserAgent)
	assert.Equal(t, "error", got.Log.Level)
}
