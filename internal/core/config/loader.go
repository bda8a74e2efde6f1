package config

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/vietddude/relaywatch/internal/control"
	"github.com/vietddude/relaywatch/internal/core/domain"
	"github.com/vietddude/relaywatch/internal/infra/command"
	"gopkg.in/yaml.v2"
)

const (
	defaultWarnDays  = 5
	defaultErrorDays = 2
)

// Load reads configuration from a YAML file.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration, expanding environment variables first.
func Parse(data []byte) (*AppConfig, error) {
	var cfg AppConfig
	expandedData := os.ExpandEnv(string(data))
	if err := yaml.UnmarshalStrict([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Set defaults if necessary
	if cfg.Relayer.Binary == "" {
		cfg.Relayer.Binary = "rly"
	}
	if cfg.Runner.Kubectl == "" {
		cfg.Runner.Kubectl = "kubectl"
	}
	if cfg.Runner.Remote == nil {
		remote := true
		cfg.Runner.Remote = &remote
	}
	if cfg.Runner.Timeout == 0 {
		cfg.Runner.Timeout = command.DefaultTimeout
	}
	if cfg.Expiration.WarnDays == 0 {
		cfg.Expiration.WarnDays = defaultWarnDays
	}
	if cfg.Expiration.ErrorDays == 0 {
		cfg.Expiration.ErrorDays = defaultErrorDays
	}
	if cfg.Metrics.Job == "" {
		cfg.Metrics.Job = "relaywatch"
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *AppConfig) validate() error {
	if len(c.Categories) == 0 {
		return fmt.Errorf("no categories configured")
	}
	if c.Runner.Retry.MaxAttempts < 0 {
		return fmt.Errorf("runner retry attempts must not be negative")
	}
	if c.Runner.Timeout < 0 {
		return fmt.Errorf("runner timeout must be positive, got %s", c.Runner.Timeout)
	}
	if c.Expiration.WarnDays < 0 || c.Expiration.ErrorDays < 0 {
		return fmt.Errorf("expiration windows must not be negative")
	}
	for name, cat := range c.Categories {
		for key, path := range cat.Paths {
			if path.ChainName == "" {
				return fmt.Errorf("category %q path %q: chain_name is required", name, key)
			}
		}
	}
	return nil
}

// Command returns the subprocess settings.
func (c *AppConfig) Command(timeout time.Duration) command.Config {
	if timeout <= 0 {
		timeout = c.Runner.Timeout
	}
	return command.Config{
		Kubectl: c.Runner.Kubectl,
		Context: c.Runner.Context,
		Remote:  c.Runner.Remote == nil || *c.Runner.Remote,
		Timeout: timeout,
		Retry:   c.Runner.Retry,
	}
}

// Fleet builds the walker configuration. Categories and paths are ordered by name.
// Missing namespaces or relayers are kept; the walker reports them per category.
func (c *AppConfig) Fleet() control.Config {
	fleet := control.Config{
		RelayerBinary: c.Relayer.Binary,
		Native:        c.Native.Tokens,
		Expiry: domain.ExpiryWindow{
			WarnDays:  c.Expiration.WarnDays,
			ErrorDays: c.Expiration.ErrorDays,
		},
	}

	for _, name := range sortedKeys(c.Categories) {
		cat := c.Categories[name]
		category := domain.Category{
			Name:      name,
			Namespace: cat.Namespace,
			Relayer:   cat.Relayer,
			BaseChain: cat.BaseChain,
		}
		if category.BaseChain == "" {
			category.BaseChain = name
		}
		for _, key := range sortedKeys(cat.Paths) {
			p := cat.Paths[key]
			category.Paths = append(category.Paths, domain.Path{
				Key:       key,
				ChainName: p.ChainName,
				Channel:   p.Channel,
				Tokens:    p.Tokens,
			})
		}
		fleet.Categories = append(fleet.Categories, category)
	}
	return fleet
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
