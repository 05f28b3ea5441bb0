package config

import (
	"strings"

	"github.com/asyncart/blueprints-go/feesplit"
	"github.com/ethereum/go-ethereum/common"
)

// validLogLevels lists the accepted log level strings.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// ValidateConfig checks that all configuration values are within acceptable
// ranges and returns the first error encountered, or nil if valid.
func ValidateConfig(cfg Config) error {
	if cfg.DataDir == "" {
		return ErrEmptyDataDir
	}

	if cfg.Network != "mainnet" && cfg.Network != "testnet" && cfg.Network != "regtest" {
		return ErrInvalidNetwork
	}

	if !validLogLevels[strings.ToLower(cfg.LogLevel)] {
		return ErrInvalidLogLevel
	}

	// An empty recipient falls back to the platform address at engine
	// construction, so only a set value is checked.
	if cfg.PlatformFeeRecipient != "" && !common.IsHexAddress(cfg.PlatformFeeRecipient) {
		return ErrInvalidFeeRecipient
	}

	if cfg.PlatformFeeBPS > feesplit.TotalBPS {
		return ErrFeeBPSRange
	}

	return nil
}
