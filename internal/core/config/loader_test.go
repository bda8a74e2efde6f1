package config

import (
	"os"
	"testing"
	"time"
)

const sampleConfig = `
logging:
  level: debug
native:
  tokens:
    ukuji:
      warn_at: 214000000
      error_at: 42
expiration:
  warn_days: 7
categories:
  odin:
    namespace: customer-odin
    relayer: relayer--mainnet
    paths:
      mainnet-odin-osmosis:
        chain_name: osmosis
        channel: channel-3
        tokens:
          uosmo: {warn_at: 8000000, error_at: 1650000}
  kujira:
    namespace: customer-kujira
    relayer: relayer--mainnet
    base_chain: kaiyo
    paths:
      mainnet-kujira-neutron:
        chain_name: neutron
        channel: channel-75
        tokens:
          transfer/channel-1/uatom: {warn_at: 475000, error_at: 95100}
      mainnet-kujira-akash:
        chain_name: akash
        channel: channel-64
        tokens:
          uakt: {warn_at: 14000000, error_at: 3000000}
`

func TestLoad_EnvSubstitution(t *testing.T) {
	// Setup env var
	os.Setenv("TEST_RELAYER_NAMESPACE", "customer-kujira")
	defer os.Unsetenv("TEST_RELAYER_NAMESPACE")

	// Create temp config file
	configContent := `
categories:
  kujira:
    namespace: ${TEST_RELAYER_NAMESPACE}
    relayer: relayer--mainnet
`
	tmpFile, err := os.CreateTemp("", "config_*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write([]byte(configContent)); err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	tmpFile.Close()

	// Load config
	cfg, err := Load(tmpFile.Name())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Categories["kujira"].Namespace != "customer-kujira" {
		t.Errorf("Expected namespace customer-kujira, got %s", cfg.Categories["kujira"].Namespace)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/relaywatch.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Relayer.Binary != "rly" {
		t.Errorf("expected rly binary, got %q", cfg.Relayer.Binary)
	}
	if cfg.Runner.Timeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", cfg.Runner.Timeout)
	}
	if cfg.Runner.Remote == nil || !*cfg.Runner.Remote {
		t.Error("expected remote execution by default")
	}
	if cfg.Expiration.WarnDays != 7 || cfg.Expiration.ErrorDays != 2 {
		t.Errorf("unexpected expiration windows %+v", cfg.Expiration)
	}
	if cfg.Metrics.Job != "relaywatch" {
		t.Errorf("expected default job, got %q", cfg.Metrics.Job)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no categories", "logging:\n  level: info\n"},
		{"unknown field", "categories:\n  k:\n    namespace: n\n    relayers: r\n"},
		{"missing chain", "categories:\n  k:\n    paths:\n      p:\n        channel: channel-1\n"},
		{"negative window", "expiration:\n  warn_days: -1\ncategories:\n  k: {}\n"},
		{"bad timeout", "runner:\n  timeout: soon\ncategories:\n  k: {}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.content)); err == nil {
				t.Errorf("expected error")
			}
		})
	}
}

func TestFleet(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	fleet := cfg.Fleet()

	if fleet.RelayerBinary != "rly" {
		t.Errorf("unexpected binary %q", fleet.RelayerBinary)
	}
	if fleet.Expiry.WarnDays != 7 || fleet.Expiry.ErrorDays != 2 {
		t.Errorf("unexpected window %+v", fleet.Expiry)
	}
	if pair, ok := fleet.Native.Lookup("ukuji"); !ok || pair.ErrorAt != 42 {
		t.Errorf("native thresholds not carried: %+v", fleet.Native)
	}

	if len(fleet.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(fleet.Categories))
	}
	kujira, odin := fleet.Categories[0], fleet.Categories[1]
	if kujira.Name != "kujira" || odin.Name != "odin" {
		t.Fatalf("categories not sorted: %s, %s", kujira.Name, odin.Name)
	}
	if kujira.BaseChain != "kaiyo" {
		t.Errorf("expected explicit base chain, got %q", kujira.BaseChain)
	}
	if odin.BaseChain != "odin" {
		t.Errorf("expected base chain to default to category name, got %q", odin.BaseChain)
	}

	if len(kujira.Paths) != 2 || kujira.Paths[0].Key != "mainnet-kujira-akash" {
		t.Fatalf("paths not sorted: %+v", kujira.Paths)
	}
	pair, ok := kujira.Paths[1].Tokens.Lookup("transfer/channel-1/uatom")
	if !ok || pair.WarnAt != 475000 || pair.ErrorAt != 95100 {
		t.Errorf("unexpected ibc thresholds %+v", pair)
	}
}

func TestCommand(t *testing.T) {
	cfg, err := Parse([]byte("runner:\n  remote: false\n  timeout: 10s\n  retry:\n    max_attempts: 3\n    initial_delay: 2s\ncategories:\n  k: {}\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	cmd := cfg.Command(0)
	if cmd.Remote {
		t.Error("expected local execution")
	}
	if cmd.Timeout != 10*time.Second {
		t.Errorf("expected config timeout, got %v", cmd.Timeout)
	}
	if cmd.Retry.MaxAttempts != 3 || cmd.Retry.InitialDelay != 2*time.Second {
		t.Errorf("retry settings not carried: %+v", cmd.Retry)
	}
	if got := cfg.Command(time.Minute).Timeout; got != time.Minute {
		t.Errorf("expected override timeout, got %v", got)
	}
}

func TestLoad_ExampleConfig(t *testing.T) {
	cfg, err := Load("../../../config.example.yaml")
	if err != nil {
		t.Fatalf("example config does not load: %v", err)
	}

	fleet := cfg.Fleet()
	if len(fleet.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(fleet.Categories))
	}
	if len(fleet.Categories[0].Paths) != 6 {
		t.Errorf("expected 6 kujira paths, got %d", len(fleet.Categories[0].Paths))
	}
}
