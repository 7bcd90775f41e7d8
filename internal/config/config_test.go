package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, filepath.Join(os.TempDir(), "kvpage", "app.log"), cfg.Log.File)
	assert.Equal(t, 30, cfg.General.DefaultTimeout)

	assert.Equal(t, DisplayConfig{
		ItemHeight: 1,
		Padding:    1,
		LabelInset: 1,
		Touch:      true,
		Degenerate: "clamp",
	}, cfg.Display)
	assert.Equal(t, SnapshotConfig{
		Width:      240,
		Height:     240,
		ItemHeight: 16,
		Padding:    4,
		LabelInset: 6,
	}, cfg.Snapshot)
	assert.Equal(t, "auto", cfg.R2.Endpoint)
	assert.Equal(t, "auto", cfg.R2.Region)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := writeConfig(t, `
[display]
height = 12
touch = false

[r2]
account_id = "from-file"
`)
	t.Setenv("KVPAGE_DISPLAY_HEIGHT", "20")
	t.Setenv("KVPAGE_ACCOUNT_ID", "from-env")
	t.Setenv("KVPAGE_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Display.Height)
	assert.False(t, cfg.Display.Touch)
	assert.Equal(t, "from-env", cfg.R2.AccountID)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_InvalidFile(t *testing.T) {
	_, err := Load(writeConfig(t, "[display\nheight ="))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_ValidationFailure(t *testing.T) {
	_, err := Load(writeConfig(t, "[display]\ndegenerate = \"shrink\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid degenerate policy")
}

func TestEnvName(t *testing.T) {
	assert.Equal(t, "KVPAGE_DISPLAY_ITEM_HEIGHT", envName("display.item_height"))
	assert.Equal(t, "KVPAGE_ACCESS_KEY_ID", envName("r2.access_key_id"))
}
