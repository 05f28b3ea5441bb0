// Package config holds the platform-level settings shared by sale engines:
// where persistent state lives, which network the deployment targets, and the
// default platform fee. Configuration is stored as a plain key=value file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds all platform configuration values.
type Config struct {
	DataDir              string // directory for persistent sale state
	Network              string // "mainnet", "testnet", or "regtest"
	LogLevel             string // "debug", "info", "warn", or "error"
	PlatformFeeRecipient string // hex address receiving default platform fees
	PlatformFeeBPS       uint32 // default platform fee share in basis points
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		DataDir:        filepath.Join(home, ".blueprints"),
		Network:        "mainnet",
		LogLevel:       "info",
		PlatformFeeBPS: 500,
	}
}

// LoadConfig reads a key=value configuration file. Blank lines and lines
// starting with '#' are skipped; unknown keys are ignored so older binaries
// tolerate newer files. Unset keys keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return cfg, err
	}

	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			return cfg, fmt.Errorf("%w: line %d: %q", ErrInvalidConfigLine, i+1, line)
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		switch key {
		case "datadir":
			cfg.DataDir = value
		case "network":
			cfg.Network = value
		case "loglevel":
			cfg.LogLevel = value
		case "platformfeerecipient":
			cfg.PlatformFeeRecipient = value
		case "platformfeebps":
			bps, err := strconv.ParseUint(value, 10, 32)
			if err != nil {
				return cfg, fmt.Errorf("%w: line %d: %q", ErrInvalidConfigLine, i+1, line)
			}
			cfg.PlatformFeeBPS = uint32(bps)
		}
	}
	return cfg, nil
}

// SaveConfig writes the configuration as a key=value file, creating parent
// directories as needed.
func SaveConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "datadir = %s\n", cfg.DataDir)
	fmt.Fprintf(&b, "network = %s\n", cfg.Network)
	fmt.Fprintf(&b, "loglevel = %s\n", cfg.LogLevel)
	fmt.Fprintf(&b, "platformfeerecipient = %s\n", cfg.PlatformFeeRecipient)
	fmt.Fprintf(&b, "platformfeebps = %d\n", cfg.PlatformFeeBPS)

	return os.WriteFile(path, []byte(b.String()), 0600)
}
