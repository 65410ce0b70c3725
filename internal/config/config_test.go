package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exec-planner/internal/domain"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 1024, cfg.Cache.Size)

	// Defaults must round-trip to the engine's built-in presets.
	assert.Equal(t, domain.DefaultMarketSnapshot, cfg.Market.ToSnapshot())
	assert.Equal(t, domain.DefaultEngineParams, cfg.Engine.ToParams())
}

func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
server:
  addr: ":9191"
market:
  spot_price: 2000.5
engine:
  impact_multiplier: 3.1
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9191", cfg.Server.Addr)
	assert.Equal(t, 2000.5, cfg.Market.ToSnapshot().SpotPrice)
	assert.Equal(t, 3.1, cfg.Engine.ToParams().ImpactMultiplier)
	// Untouched sections keep their defaults.
	assert.Equal(t, domain.DefaultEngineParams.TrancheIntervalMinutes, cfg.Engine.TrancheIntervalMinutes)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.Market.SpotPrice = 0
	cfg.Engine.IcebergVisibleFraction = 1.5
	verr := cfg.Validate()
	require.Error(t, verr)
	assert.Contains(t, verr.Error(), "spot_price")
	assert.Contains(t, verr.Error(), "iceberg_visible_fraction")
}
