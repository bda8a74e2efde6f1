// Package evaluate applies threshold ladders to parsed observations.
package evaluate

import (
	"errors"
	"math/big"
	"time"

	"github.com/vietddude/relaywatch/internal/core/domain"
)

// ErrExpiryUndetermined is returned for clients whose expiration date could not be parsed.
var ErrExpiryUndetermined = errors.New("could not determine expiration")

const day = 24 * time.Hour

// Balance classifies a token amount. The error threshold is checked first and ties
// resolve toward the more severe tier.
func Balance(amount *big.Int, pair domain.ThresholdPair) domain.Severity {
	if amount.Cmp(new(big.Int).SetUint64(pair.ErrorAt)) <= 0 {
		return domain.SeverityError
	}
	if amount.Cmp(new(big.Int).SetUint64(pair.WarnAt)) <= 0 {
		return domain.SeverityWarn
	}
	return domain.SeverityOK
}

// Expiry classifies a client expiration against now. ERROR is inclusive of the
// error boundary, WARN is exclusive of the warn boundary.
func Expiry(client domain.ExpiringClient, now time.Time, window domain.ExpiryWindow) (domain.Severity, error) {
	if client.ExpiresAt == nil {
		return domain.SeverityOK, ErrExpiryUndetermined
	}
	expiresAt := *client.ExpiresAt

	if !expiresAt.After(now.Add(time.Duration(window.ErrorDays) * day)) {
		return domain.SeverityError, nil
	}
	if expiresAt.Before(now.Add(time.Duration(window.WarnDays) * day)) {
		return domain.SeverityWarn, nil
	}
	return domain.SeverityOK, nil
}
