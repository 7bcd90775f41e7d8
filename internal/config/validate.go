package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate validates the configuration and returns an error if invalid.
// R2 credentials are checked by ValidateR2 when a remote source is opened.
func Validate(config *Config) error {
	if err := validateLogConfig(&config.Log); err != nil {
		return fmt.Errorf("log config validation failed: %w", err)
	}

	if err := validateGeneralConfig(&config.General); err != nil {
		return fmt.Errorf("general config validation failed: %w", err)
	}

	if err := validateDisplayConfig(&config.Display); err != nil {
		return fmt.Errorf("display config validation failed: %w", err)
	}

	if err := validateSnapshotConfig(&config.Snapshot); err != nil {
		return fmt.Errorf("snapshot config validation failed: %w", err)
	}

	return nil
}

// ValidateR2 validates R2 specific configuration
func ValidateR2(config *R2Config) error {
	if strings.TrimSpace(config.AccessKeyID) == "" {
		return fmt.Errorf("access_key_id is required")
	}

	if strings.TrimSpace(config.AccessKeySecret) == "" {
		return fmt.Errorf("access_key_secret is required")
	}

	endpoint := strings.TrimSpace(config.Endpoint)
	if endpoint == "" || endpoint == "auto" {
		if strings.TrimSpace(config.AccountID) == "" {
			return fmt.Errorf("account_id is required when endpoint is auto")
		}
		return nil
	}

	u, err := url.Parse(endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid endpoint: %s", config.Endpoint)
	}
	return nil
}

// validateLogConfig validates log configuration
func validateLogConfig(config *LogConfig) error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"fatal": true,
		"panic": true,
	}

	level := strings.ToLower(config.Level)
	if !validLevels[level] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error, fatal, panic)", config.Level)
	}

	validFormats := map[string]bool{
		"text": true,
		"json": true,
	}

	format := strings.ToLower(config.Format)
	if !validFormats[format] {
		return fmt.Errorf("invalid log format: %s (valid: text, json)", config.Format)
	}

	return nil
}

// validateGeneralConfig validates general configuration
func validateGeneralConfig(config *GeneralConfig) error {
	if config.DefaultTimeout <= 0 {
		return fmt.Errorf("default_timeout must be positive, got: %d", config.DefaultTimeout)
	}

	return nil
}

func validateDisplayConfig(config *DisplayConfig) error {
	if config.Width < 0 || config.Height < 0 {
		return fmt.Errorf("width and height must be non-negative, got: %dx%d", config.Width, config.Height)
	}

	if config.ItemHeight <= 0 {
		return fmt.Errorf("item_height must be positive, got: %d", config.ItemHeight)
	}

	if config.Padding < 0 || config.LabelInset < 0 {
		return fmt.Errorf("padding and label_inset must be non-negative")
	}

	switch strings.ToLower(config.Degenerate) {
	case "clamp", "fail":
	default:
		return fmt.Errorf("invalid degenerate policy: %s (valid: clamp, fail)", config.Degenerate)
	}

	return nil
}

func validateSnapshotConfig(config *SnapshotConfig) error {
	if config.Width <= 0 || config.Height <= 0 {
		return fmt.Errorf("width and height must be positive, got: %dx%d", config.Width, config.Height)
	}

	if config.ItemHeight <= 0 {
		return fmt.Errorf("item_height must be positive, got: %d", config.ItemHeight)
	}

	if config.Padding < 0 || config.LabelInset < 0 {
		return fmt.Errorf("padding and label_inset must be non-negative")
	}

	return nil
}
