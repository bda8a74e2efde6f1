package domain

import "time"

// ExpiringClient is one light client line of a clients-expiration query.
type ExpiringClient struct {
	ClientID string
	ChainID  string
	// ExpiresAt is nil when the line carried no recognizable date.
	ExpiresAt *time.Time
}

// ExpiryWindow holds the global day thresholds used to classify client expirations.
type ExpiryWindow struct {
	WarnDays  int
	ErrorDays int
}
