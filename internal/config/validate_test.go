package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Log:      LogConfig{Level: "info", Format: "text"},
		General:  GeneralConfig{DefaultTimeout: 30},
		Display:  DisplayConfig{ItemHeight: 1, Padding: 1, LabelInset: 1, Degenerate: "clamp"},
		Snapshot: SnapshotConfig{Width: 240, Height: 240, ItemHeight: 16, Padding: 4, LabelInset: 6},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "invalid log level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "invalid log format"},
		{"zero timeout", func(c *Config) { c.General.DefaultTimeout = 0 }, "default_timeout must be positive"},
		{"negative width", func(c *Config) { c.Display.Width = -1 }, "must be non-negative"},
		{"zero item height", func(c *Config) { c.Display.ItemHeight = 0 }, "item_height must be positive"},
		{"fail policy", func(c *Config) { c.Display.Degenerate = "FAIL" }, ""},
		{"bad policy", func(c *Config) { c.Display.Degenerate = "" }, "invalid degenerate policy"},
		{"empty snapshot", func(c *Config) { c.Snapshot.Width = 0 }, "snapshot config validation failed"},
		{"r2 not checked eagerly", func(c *Config) { c.R2 = R2Config{} }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateR2(t *testing.T) {
	creds := R2Config{AccessKeyID: "id", AccessKeySecret: "secret", Endpoint: "auto"}

	withAccount := creds
	withAccount.AccountID = "acct"
	assert.NoError(t, ValidateR2(&withAccount))

	assert.ErrorContains(t, ValidateR2(&creds), "account_id is required")

	custom := creds
	custom.Endpoint = "http://localhost:9000"
	assert.NoError(t, ValidateR2(&custom))

	custom.Endpoint = "localhost"
	assert.ErrorContains(t, ValidateR2(&custom), "invalid endpoint")

	assert.ErrorContains(t, ValidateR2(&R2Config{AccessKeySecret: "s"}), "access_key_id is required")
}
