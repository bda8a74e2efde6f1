// Package command runs relayer queries as subprocesses, either locally or inside the
// relayer deployment through kubectl exec.
package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/vietddude/relaywatch/internal/core/domain"
)

// DefaultTimeout bounds a single command when the config leaves it unset.
const DefaultTimeout = 30 * time.Second

// Config holds subprocess settings.
type Config struct {
	Kubectl string        `yaml:"kubectl"`
	Context string        `yaml:"context"` // kubeconfig context, empty = current
	Remote  bool          `yaml:"remote"`  // wrap commands in kubectl exec
	Timeout time.Duration `yaml:"timeout"` // per attempt
	Retry   RetryConfig   `yaml:"retry"`
}

// Executor runs commands and returns their trimmed standard output.
// Failures are logged and reported as empty output.
type Executor struct {
	cfg    Config
	logger *slog.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(cfg Config, logger *slog.Logger) *Executor {
	if cfg.Kubectl == "" {
		cfg.Kubectl = "kubectl"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Retry.InitialDelay <= 0 {
		cfg.Retry.InitialDelay = DefaultRetryConfig.InitialDelay
	}
	if cfg.Retry.MaxDelay <= 0 {
		cfg.Retry.MaxDelay = DefaultRetryConfig.MaxDelay
	}
	if cfg.Retry.BackoffMultiple <= 0 {
		cfg.Retry.BackoffMultiple = DefaultRetryConfig.BackoffMultiple
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{cfg: cfg, logger: logger}
}

// Argv returns the full argument vector that Run executes for args.
func (e *Executor) Argv(dep domain.Deployment, args ...string) []string {
	if !e.cfg.Remote {
		return append([]string(nil), args...)
	}

	argv := []string{e.cfg.Kubectl}
	if e.cfg.Context != "" {
		argv = append(argv, "--context", e.cfg.Context)
	}
	argv = append(argv,
		"exec", "-q",
		"-n", dep.Namespace,
		"deploy/"+dep.Relayer,
		"--",
	)
	return append(argv, args...)
}

// Run executes args for dep. It returns "" when the command cannot start, exits
// non-zero, or runs past the timeout on every attempt.
func (e *Executor) Run(ctx context.Context, dep domain.Deployment, args ...string) string {
	argv := e.Argv(dep, args...)
	if len(argv) == 0 {
		return ""
	}
	line := strings.Join(argv, " ")
	attempts := e.cfg.Retry.attempts()

	for attempt := 0; attempt < attempts; attempt++ {
		start := time.Now()
		out, stderr, err := e.runOnce(ctx, argv)
		if err == nil {
			e.logger.Debug("Command finished", "command", line, "duration", time.Since(start).Round(time.Millisecond))
			return out
		}

		attrs := []any{
			"command", line,
			"attempt", attempt + 1,
			"duration", time.Since(start).Round(time.Millisecond),
			"error", err,
		}
		if stderr != "" {
			attrs = append(attrs, "stderr", stderr)
		}
		e.logger.Error("Error while running command", attrs...)

		if ClassifyError(err, stderr) == ActionFatal || attempt == attempts-1 {
			break
		}

		delay := calculateBackoff(attempt, e.cfg.Retry)
		select {
		case <-ctx.Done():
			return ""
		case <-time.After(delay):
		}
	}
	return ""
}

func (e *Executor) runOnce(ctx context.Context, argv []string) (string, string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second

	err := cmd.Run()
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		err = fmt.Errorf("timed out after %s: %w", e.cfg.Timeout, context.DeadlineExceeded)
	}
	return strings.TrimSpace(stdout.String()), strings.TrimSpace(stderr.String()), err
}
