package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("TIMEZONE", "UTC")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "1", cfg.DefaultUserID)
	assert.Equal(t, 2*time.Second, cfg.ReceiptScanDelay)
	assert.Equal(t, 256, cfg.MirrorBufferSize)
	assert.Equal(t, "household", cfg.HouseholdGroupID)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.True(t, cfg.SeedDemoData)
	assert.Equal(t, 5*time.Second, cfg.DBConnTimeout)
	assert.Equal(t, int32(4), cfg.DBMaxConns)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("TIMEZONE", "America/New_York")
	t.Setenv("RECEIPT_SCAN_DELAY", "0s")
	t.Setenv("MIRROR_BUFFER_SIZE", "-4")
	t.Setenv("DEFAULT_USER_ID", "3")
	t.Setenv("IS_PRODUCTION", "true")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "America/New_York", cfg.Location.String())
	assert.Zero(t, cfg.ReceiptScanDelay)
	assert.Equal(t, 256, cfg.MirrorBufferSize)
	assert.Equal(t, "3", cfg.DefaultUserID)
	assert.True(t, cfg.IsProduction)
}

func TestLoadConfig_BadTimezone(t *testing.T) {
	t.Setenv("TIMEZONE", "Mars/Olympus_Mons")

	_, err := LoadConfig()

	assert.Error(t, err)
}
