package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/learn-words-bot/internal/config"
	"github.com/aliskhannn/learn-words-bot/internal/repository"
)

func TestOpen_File(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		Dictionary: config.Dictionary{
			Path:     filepath.Join(dir, "words.txt"),
			SeedPath: filepath.Join(dir, "seed.txt"),
		},
		Storage: config.Storage{Driver: config.DriverFile},
	}

	store, closeFn, err := Open(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer closeFn()

	files, ok := store.(*repository.DictionaryRepository)
	require.True(t, ok)
	assert.Equal(t, cfg.Dictionary.Path, files.Path())
}

func TestOpen_PostgresWithoutURL(t *testing.T) {
	cfg := &config.Config{Storage: config.Storage{Driver: config.DriverPostgres}}

	_, _, err := Open(context.Background(), cfg, zap.NewNop())
	assert.ErrorIs(t, err, config.ErrMissingEnvironmentVariables)
}

func TestOpen_UnknownDriver(t *testing.T) {
	cfg := &config.Config{Storage: config.Storage{Driver: "redis"}}

	_, _, err := Open(context.Background(), cfg, zap.NewNop())
	assert.Error(t, err)
}
