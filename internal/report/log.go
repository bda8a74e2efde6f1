// Package report writes observations as severity-tagged log lines.
package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vietddude/relaywatch/internal/core/domain"
	"github.com/vietddude/relaywatch/internal/evaluate"
)

// LogSink logs one line per observation at the level matching its severity.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink creates a new LogSink.
func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger}
}

// Level maps a severity to its log level.
func Level(s domain.Severity) slog.Level {
	switch s {
	case domain.SeverityError:
		return slog.LevelError
	case domain.SeverityWarn:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// Report implements control.Sink.
func (s *LogSink) Report(obs domain.Observation) {
	level, msg, attrs := format(obs)
	s.logger.Log(context.Background(), level, msg, attrs...)
}

func format(obs domain.Observation) (slog.Level, string, []any) {
	attrs := []any{"category", obs.Category}
	if obs.Path != "" {
		attrs = append(attrs, "path", obs.Path)
	}

	switch obs.Kind {
	case domain.CheckBalance:
		coin := obs.Coin
		attrs = append(attrs, "chain", obs.Chain, "amount", coin.Amount.String(), "denom", coin.Denom)
		if obs.Severity == domain.SeverityOK {
			return slog.LevelInfo, fmt.Sprintf("Balance ok on chain_name: %s. Balance: %s %s", obs.Chain, coin.Amount, coin.Denom), attrs
		}
		return Level(obs.Severity), fmt.Sprintf("Low balance detected on chain_name: %s. Balance: %s %s", obs.Chain, coin.Amount, coin.Denom), attrs

	case domain.CheckExpiration:
		client := obs.Client
		attrs = append(attrs, "client", client.ClientID, "chain", client.ChainID)
		if !obs.Determined() {
			return slog.LevelWarn, fmt.Sprintf("Could not determine expiration of client %s on %s", client.ClientID, client.ChainID), attrs
		}
		r := evaluate.Split(obs.Remaining)
		attrs = append(attrs, "expires_at", client.ExpiresAt.Format("2006-01-02"))
		return Level(obs.Severity), fmt.Sprintf(
			"Client %s on %s will expire in %d days %d hours %d minutes %d seconds",
			client.ClientID, client.ChainID, r.Days, r.Hours, r.Minutes, r.Seconds,
		), attrs

	case domain.CheckUnrelayed:
		attrs = append(attrs, "chain", obs.Chain)
		if !obs.Determined() {
			return slog.LevelError, fmt.Sprintf("Could not read unrelayed packets on chain_name: %s", obs.Chain), append(attrs, "error", obs.Err)
		}
		if obs.Backlog {
			return Level(obs.Severity), "There are unrelayed packets!", attrs
		}
		return Level(obs.Severity), fmt.Sprintf("No unrelayed packets found on chain_name: %s", obs.Chain), attrs
	}

	return slog.LevelWarn, "Unknown observation", append(attrs, "check", obs.Kind.String())
}
