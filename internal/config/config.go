// Package config loads command line settings from a YAML file
// and AES128_* environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/ericlagergren/aes128"
	"github.com/ericlagergren/aes128/internal/codec"
)

// EnvPrefix is prepended to every environment variable.
const EnvPrefix = "AES128"

// ErrNoKey is returned by KeyBytes when no key is configured.
var ErrNoKey = errors.New("config: no key configured")

// Config holds the settings shared by the aes128 subcommands.
// Field tags name the YAML keys; the environment variables are
// the same names upper-cased with the AES128_ prefix.
type Config struct {
	Key            string `mapstructure:"key"`
	KeyHex         string `mapstructure:"key_hex"`
	Encoding       string `mapstructure:"encoding"`
	OutputEncoding string `mapstructure:"output_encoding"`
	Workers        int    `mapstructure:"workers"`
	LogLevel       string `mapstructure:"log_level"`
	LogJSON        bool   `mapstructure:"log_json"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Encoding:       "hex",
		OutputEncoding: "hex",
		Workers:        1,
		LogLevel:       "warn",
	}
}

// Load reads the configuration into a Config.
//
// Values set directly on v take precedence over the environment,
// which takes precedence over the file, which takes precedence
// over Default. If file is empty, aes128.yaml is looked up in
// the working directory and in $HOME/.aes128, and a missing
// file is not an error.
func Load(v *viper.Viper, file string) (*Config, error) {
	cfg := Default()

	// Every key needs a default so that AutomaticEnv can see it
	// during Unmarshal.
	v.SetDefault("key", cfg.Key)
	v.SetDefault("key_hex", cfg.KeyHex)
	v.SetDefault("encoding", cfg.Encoding)
	v.SetDefault("output_encoding", cfg.OutputEncoding)
	v.SetDefault("workers", cfg.Workers)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("log_json", cfg.LogJSON)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("aes128")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.aes128")
	}
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("config: workers must be at least 1, got %d", c.Workers)
	}
	if _, err := codec.ParseEncoding(c.Encoding); err != nil {
		return fmt.Errorf("config: encoding: %w", err)
	}
	if _, err := codec.ParseEncoding(c.OutputEncoding); err != nil {
		return fmt.Errorf("config: output_encoding: %w", err)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log_level: %w", err)
	}
	if c.Key != "" && c.KeyHex != "" {
		return errors.New("config: key and key_hex are mutually exclusive")
	}
	return nil
}

// KeyBytes returns the configured AES-128 key.
func (c *Config) KeyBytes() ([]byte, error) {
	var key []byte
	switch {
	case c.Key != "" && c.KeyHex != "":
		return nil, errors.New("config: key and key_hex are mutually exclusive")
	case c.Key != "":
		key = []byte(c.Key)
	case c.KeyHex != "":
		var err error
		key, err = codec.Decode([]byte(c.KeyHex), codec.Hex)
		if err != nil {
			return nil, fmt.Errorf("config: key_hex: %w", err)
		}
	default:
		return nil, ErrNoKey
	}
	if len(key) != aes128.KeySize {
		return nil, fmt.Errorf("config: key must be %d bytes, got %d", aes128.KeySize, len(key))
	}
	return key, nil
}
