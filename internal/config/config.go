package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the configuration reads.
const EnvPrefix = "KVPAGE"

// Config holds the complete application configuration
type Config struct {
	R2       R2Config       `mapstructure:"r2"`
	Log      LogConfig      `mapstructure:"log"`
	General  GeneralConfig  `mapstructure:"general"`
	Display  DisplayConfig  `mapstructure:"display"`
	Snapshot SnapshotConfig `mapstructure:"snapshot"`
}

// R2Config holds R2/S3 credentials used to fetch r2:// and s3:// sources
type R2Config struct {
	AccountID       string `mapstructure:"account_id"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	AccessKeySecret string `mapstructure:"access_key_secret"`
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// GeneralConfig holds general application configuration
type GeneralConfig struct {
	// DefaultTimeout bounds fetches and exec actions, in seconds.
	DefaultTimeout int `mapstructure:"default_timeout"`
}

// DisplayConfig describes the interactive terminal view. Units are cells.
type DisplayConfig struct {
	Width      int    `mapstructure:"width"`
	Height     int    `mapstructure:"height"`
	ItemHeight int    `mapstructure:"item_height"`
	Padding    int    `mapstructure:"padding"`
	LabelInset int    `mapstructure:"label_inset"`
	Touch      bool   `mapstructure:"touch"`
	Degenerate string `mapstructure:"degenerate"`
}

// SnapshotConfig describes PNG snapshots. Units are pixels.
type SnapshotConfig struct {
	Width      int `mapstructure:"width"`
	Height     int `mapstructure:"height"`
	ItemHeight int `mapstructure:"item_height"`
	Padding    int `mapstructure:"padding"`
	LabelInset int `mapstructure:"label_inset"`
}

// Load loads configuration from multiple sources with priority:
// 1. Command line flags (highest)
// 2. Environment variables
// 3. Configuration file
// 4. Defaults (lowest)
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	for _, key := range v.AllKeys() {
		v.BindEnv(key, envName(key))
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")

		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.kvpage")
		v.AddConfigPath("/etc/kvpage/")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// defaults and env vars are enough
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// envName maps "display.item_height" to "KVPAGE_DISPLAY_ITEM_HEIGHT". The
// r2 section keeps the shorter names, e.g. KVPAGE_ACCOUNT_ID.
func envName(key string) string {
	section, name, _ := strings.Cut(key, ".")
	if section == "r2" {
		return EnvPrefix + "_" + strings.ToUpper(name)
	}
	return EnvPrefix + "_" + strings.ToUpper(section+"_"+name)
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("r2.account_id", "")
	v.SetDefault("r2.access_key_id", "")
	v.SetDefault("r2.access_key_secret", "")
	v.SetDefault("r2.endpoint", "auto")
	v.SetDefault("r2.region", "auto")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", filepath.Join(os.TempDir(), "kvpage", "app.log"))

	v.SetDefault("general.default_timeout", 30)

	v.SetDefault("display.width", 0)
	v.SetDefault("display.height", 0)
	v.SetDefault("display.item_height", 1)
	v.SetDefault("display.padding", 1)
	v.SetDefault("display.label_inset", 1)
	v.SetDefault("display.touch", true)
	v.SetDefault("display.degenerate", "clamp")

	v.SetDefault("snapshot.width", 240)
	v.SetDefault("snapshot.height", 240)
	v.SetDefault("snapshot.item_height", 16)
	v.SetDefault("snapshot.padding", 4)
	v.SetDefault("snapshot.label_inset", 6)
}

// GetDefaultConfigPath returns the default configuration file path
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./config.toml"
	}
	return filepath.Join(homeDir, ".kvpage", "config.toml")
}
