package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"

	"github.com/vietddude/relaywatch/internal/control"
	"github.com/vietddude/relaywatch/internal/core/domain"
	"github.com/vietddude/relaywatch/internal/health"
)

func TestCheckKinds(t *testing.T) {
	tests := []struct {
		name                                string
		expiration, unrelayed, balance, all bool
		expect                              []domain.CheckKind
	}{
		{name: "none"},
		{name: "all", all: true, expect: domain.AllCheckKinds},
		{name: "all wins", all: true, balance: true, expect: domain.AllCheckKinds},
		{name: "balance", balance: true, expect: []domain.CheckKind{domain.CheckBalance}},
		{
			name:       "run order",
			balance:    true,
			expiration: true,
			expect:     []domain.CheckKind{domain.CheckExpiration, domain.CheckBalance},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := checkKinds(tt.expiration, tt.unrelayed, tt.balance, tt.all)
			if !reflect.DeepEqual(got, tt.expect) {
				t.Errorf("checkKinds() = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := logLevel(in); got != want {
			t.Errorf("logLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestRecordFailures(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	summary := health.NewSummary()

	err := errors.Join(
		&control.ConfigError{Category: "odin", Err: control.ErrNamespaceMissing},
		context.Canceled,
	)
	recordFailures(summary, err, logger)
	recordFailures(summary, nil, logger)

	report := summary.Snapshot()
	if len(report.Categories) != 2 {
		t.Fatalf("expected 2 failed entries, got %+v", report.Categories)
	}
	if report.Categories[0].Category != "odin" || len(report.Categories[0].Failures) != 1 {
		t.Errorf("unexpected odin entry %+v", report.Categories[0])
	}
	if !report.Failed() {
		t.Error("expected failed report")
	}
}
