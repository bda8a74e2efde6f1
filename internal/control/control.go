package control

import (
	"context"
	"errors"
	"fmt"

	"github.com/vietddude/relaywatch/internal/core/domain"
)

// Runner executes a relayer query inside a deployment.
type Runner interface {
	// Run returns the command's standard output, or "" when the command failed.
	// Failures are the runner's to log.
	Run(ctx context.Context, dep domain.Deployment, args ...string) string
}

// Sink receives classified observations.
type Sink interface {
	Report(obs domain.Observation)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(obs domain.Observation)

func (f SinkFunc) Report(obs domain.Observation) { f(obs) }

// Config is the immutable fleet description a Walker checks.
type Config struct {
	RelayerBinary string
	Categories    []domain.Category
	Native        domain.TokenThresholds
	Expiry        domain.ExpiryWindow
}

var (
	ErrCategoryNotFound = errors.New("category not found in the configuration")
	ErrNamespaceMissing = errors.New("namespace not found for category")
	ErrRelayerMissing   = errors.New("relayer not found for category")
)

// ConfigError is a configuration failure scoped to one category.
type ConfigError struct {
	Category string
	Err      error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("category %q: %v", e.Category, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }
