package factory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindful-labs/mood-tracker/internal/config"
)

func TestNewStore_CSV(t *testing.T) {
	cfg := config.NewForTesting()
	cfg.CSVPath = filepath.Join(t.TempDir(), "mood_data.csv")

	s, err := NewStore(cfg, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Init(context.Background()))
	defer func() { _ = s.Close() }()

	entries, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestNewStore_SQLite(t *testing.T) {
	cfg := config.NewForTesting()
	cfg.StoreDriver = "sqlite"
	cfg.SQLitePath = filepath.Join(t.TempDir(), "mood.db")

	s, err := NewStore(cfg, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Init(context.Background()))
	defer func() { _ = s.Close() }()
}

func TestNewStore_UnknownDriver(t *testing.T) {
	cfg := config.NewForTesting()
	cfg.StoreDriver = "dynamo"

	_, err := NewStore(cfg, zerolog.Nop())
	assert.Error(t, err)
}
