package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petuhovskiy/prize-wheel/internal/conf"
	"github.com/petuhovskiy/prize-wheel/internal/log"
)

func testConfig(t *testing.T) *conf.App {
	t.Helper()
	_ = log.DefaultGlobals()

	return &conf.App{
		Store:          conf.StoreSQLite,
		SQLitePath:     filepath.Join(t.TempDir(), "wheel.db"),
		SpinDuration:   10 * time.Millisecond,
		ExtraSpins:     5,
		HistoryLimit:   10,
		MinItemsToSpin: 2,
	}
}

func TestNewApp_SettlesAndPersists(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	a, err := NewApp(ctx, cfg)
	require.NoError(t, err)

	assert.Len(t, a.Session.Items(), 4)
	_, ok := a.Session.Spin(ctx)
	require.True(t, ok)

	// shutdown waits for the pending settle
	require.NoError(t, a.Shutdown(ctx))
	state := a.Session.State()
	assert.False(t, state.IsSpinning)
	require.NotNil(t, state.Result)

	// restart with the same database
	a, err = NewApp(ctx, cfg)
	require.NoError(t, err)
	defer a.Shutdown(ctx)

	history := a.Session.History()
	require.Len(t, history, 1)
	assert.Equal(t, *state.Result, history[0])
}

func TestNewApp_DefaultItemsFile(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	cfg.Store = conf.StoreMemory
	cfg.DefaultItemsFile = filepath.Join(t.TempDir(), "items.yaml")

	err := os.WriteFile(cfg.DefaultItemsFile, []byte("items:\n  - label: A\n  - label: B\n  - label: C\n"), 0o644)
	require.NoError(t, err)

	a, err := NewApp(ctx, cfg)
	require.NoError(t, err)
	defer a.Shutdown(ctx)

	items := a.Session.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "A", items[0].Label)
}

func TestNewApp_BadConfig(t *testing.T) {
	ctx := context.Background()

	cfg := testConfig(t)
	cfg.Store = "redis"
	_, err := NewApp(ctx, cfg)
	assert.Error(t, err)

	cfg = testConfig(t)
	cfg.Store = conf.StorePostgres
	_, err = NewApp(ctx, cfg)
	assert.Error(t, err)

	cfg = testConfig(t)
	cfg.DefaultItemsFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = NewApp(ctx, cfg)
	assert.Error(t, err)
}
