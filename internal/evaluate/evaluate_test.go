package evaluate

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/vietddude/relaywatch/internal/core/domain"
)

func TestBalance(t *testing.T) {
	pair := domain.ThresholdPair{WarnAt: 14000000, ErrorAt: 3000000}

	tests := []struct {
		amount int64
		expect domain.Severity
	}{
		{0, domain.SeverityError},
		{2999999, domain.SeverityError},
		{3000000, domain.SeverityError},
		{3000001, domain.SeverityWarn},
		{13999999, domain.SeverityWarn},
		{14000000, domain.SeverityWarn},
		{14000001, domain.SeverityOK},
		{900000000, domain.SeverityOK},
	}

	for _, tt := range tests {
		if got := Balance(big.NewInt(tt.amount), pair); got != tt.expect {
			t.Errorf("Balance(%d) = %v, want %v", tt.amount, got, tt.expect)
		}
	}
}

func TestBalance_InvertedThresholds(t *testing.T) {
	// error above warn: the error check runs first, so WARN is unreachable
	pair := domain.ThresholdPair{WarnAt: 10, ErrorAt: 100}

	tests := []struct {
		amount int64
		expect domain.Severity
	}{
		{5, domain.SeverityError},
		{10, domain.SeverityError},
		{100, domain.SeverityError},
		{101, domain.SeverityOK},
	}

	for _, tt := range tests {
		if got := Balance(big.NewInt(tt.amount), pair); got != tt.expect {
			t.Errorf("Balance(%d) = %v, want %v", tt.amount, got, tt.expect)
		}
	}
}

func TestBalance_HugeAmount(t *testing.T) {
	amount, _ := new(big.Int).SetString("123456789012345678901234", 10)
	pair := domain.ThresholdPair{WarnAt: ^uint64(0), ErrorAt: ^uint64(0) - 1}

	if got := Balance(amount, pair); got != domain.SeverityOK {
		t.Errorf("expected ok, got %v", got)
	}
}

func TestExpiry(t *testing.T) {
	now := time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC)
	window := domain.ExpiryWindow{WarnDays: 5, ErrorDays: 2}

	tests := []struct {
		name   string
		at     time.Time
		expect domain.Severity
	}{
		{"already expired", now.Add(-time.Hour), domain.SeverityError},
		{"inside error window", now.Add(24 * time.Hour), domain.SeverityError},
		{"exactly error boundary", now.Add(2 * day), domain.SeverityError},
		{"just past error boundary", now.Add(2*day + time.Second), domain.SeverityWarn},
		{"inside warn window", now.Add(4 * day), domain.SeverityWarn},
		{"exactly warn boundary", now.Add(5 * day), domain.SeverityOK},
		{"past warn boundary", now.Add(30 * day), domain.SeverityOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at := tt.at
			got, err := Expiry(domain.ExpiringClient{ClientID: "07-tendermint-0", ExpiresAt: &at}, now, window)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expect {
				t.Errorf("got %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestExpiry_Undetermined(t *testing.T) {
	_, err := Expiry(domain.ExpiringClient{ClientID: "07-tendermint-0"}, time.Now(), domain.ExpiryWindow{WarnDays: 5, ErrorDays: 2})
	if !errors.Is(err, ErrExpiryUndetermined) {
		t.Fatalf("expected ErrExpiryUndetermined, got %v", err)
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		d      time.Duration
		expect Remaining
	}{
		{0, Remaining{}},
		{3*day + 4*time.Hour + 5*time.Minute + 6*time.Second, Remaining{3, 4, 5, 6}},
		{59*time.Second + 900*time.Millisecond, Remaining{0, 0, 0, 59}},
		{-90 * time.Second, Remaining{-1, 23, 58, 30}},
		{-time.Millisecond, Remaining{-1, 23, 59, 59}},
		{-2 * day, Remaining{-2, 0, 0, 0}},
	}

	for _, tt := range tests {
		if got := Split(tt.d); got != tt.expect {
			t.Errorf("Split(%v) = %+v, want %+v", tt.d, got, tt.expect)
		}
	}
}
