package config

import (
	"time"

	"github.com/vietddude/relaywatch/internal/core/domain"
	"github.com/vietddude/relaywatch/internal/infra/command"
	"github.com/vietddude/relaywatch/internal/metrics"
)

// AppConfig represents the top-level configuration.
type AppConfig struct {
	Logging    LoggingConfig             `yaml:"logging"`
	Relayer    RelayerConfig             `yaml:"relayer"`
	Runner     RunnerConfig              `yaml:"runner"`
	Expiration ExpirationConfig          `yaml:"expiration"`
	Native     NativeConfig              `yaml:"native"`
	Categories map[string]CategoryConfig `yaml:"categories"`
	Metrics    metrics.Config            `yaml:"metrics"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// RelayerConfig describes the relayer CLI queried inside each deployment.
type RelayerConfig struct {
	Binary string `yaml:"binary"`
}

// RunnerConfig holds subprocess settings.
type RunnerConfig struct {
	Kubectl string              `yaml:"kubectl"`
	Context string              `yaml:"context"`
	Remote  *bool               `yaml:"remote"` // nil = true
	Timeout time.Duration       `yaml:"timeout"`
	Retry   command.RetryConfig `yaml:"retry"`
}

// ExpirationConfig holds the client expiration windows, in days.
type ExpirationConfig struct {
	WarnDays  int `yaml:"warn_days"`
	ErrorDays int `yaml:"error_days"`
}

// NativeConfig holds thresholds for the base chain token of every category.
type NativeConfig struct {
	Tokens domain.TokenThresholds `yaml:"tokens"`
}

// CategoryConfig holds one relayer fleet.
type CategoryConfig struct {
	Namespace string                `yaml:"namespace"`
	Relayer   string                `yaml:"relayer"`
	BaseChain string                `yaml:"base_chain"` // defaults to the category name
	Paths     map[string]PathConfig `yaml:"paths"`
}

// PathConfig holds settings for one cross-chain path.
type PathConfig struct {
	ChainName string                 `yaml:"chain_name"`
	Channel   string                 `yaml:"channel"`
	Tokens    domain.TokenThresholds `yaml:"tokens"`
}
