package command

import (
	"context"
	"errors"
	"math"
	"os/exec"
	"strings"
	"time"
)

// RetryConfig defines retry behavior for transport failures. A MaxAttempts of 0 or 1
// runs every command exactly once.
type RetryConfig struct {
	MaxAttempts     int           `yaml:"max_attempts"`
	InitialDelay    time.Duration `yaml:"initial_delay"`
	MaxDelay        time.Duration `yaml:"max_delay"`
	BackoffMultiple float64       `yaml:"backoff_multiple"`
}

// DefaultRetryConfig provides sensible defaults once retries are enabled.
var DefaultRetryConfig = RetryConfig{
	MaxAttempts:     1,
	InitialDelay:    1 * time.Second,
	MaxDelay:        30 * time.Second,
	BackoffMultiple: 2.0,
}

// ErrorAction determines how to handle a failed command.
type ErrorAction int

const (
	ActionRetry ErrorAction = iota
	ActionFatal
)

// ClassifyError decides whether a failed command is worth running again. Only
// transport trouble between kubectl and the cluster is retried; the relayer's own
// errors are not.
func ClassifyError(err error, stderr string) ErrorAction {
	if err == nil {
		return ActionFatal // Should not happen
	}
	if errors.Is(err, exec.ErrNotFound) {
		return ActionFatal
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ActionRetry
	}

	s := strings.ToLower(stderr + " " + err.Error())

	// Fatal (RBAC, missing deployment)
	if strings.Contains(s, "forbidden") || strings.Contains(s, "notfound") ||
		strings.Contains(s, "unauthorized") {
		return ActionFatal
	}

	// Retry (API server or kubelet connectivity)
	if strings.Contains(s, "connection refused") || strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "tls handshake timeout") || strings.Contains(s, "connection reset") ||
		strings.Contains(s, "unable to upgrade connection") || strings.Contains(s, "error dialing backend") ||
		strings.Contains(s, "unexpected eof") || strings.Contains(s, "signal: killed") {
		return ActionRetry
	}

	return ActionFatal
}

func (c RetryConfig) attempts() int {
	if c.MaxAttempts < 1 {
		return 1
	}
	return c.MaxAttempts
}

func calculateBackoff(attempt int, config RetryConfig) time.Duration {
	multiple := config.BackoffMultiple
	if multiple < 1 {
		multiple = 1
	}
	delay := float64(config.InitialDelay) * math.Pow(multiple, float64(attempt))
	if config.MaxDelay > 0 && delay > float64(config.MaxDelay) {
		delay = float64(config.MaxDelay)
	}
	return time.Duration(delay)
}
