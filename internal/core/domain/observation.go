package domain

import "time"

// Observation is one classified result handed to a reporting sink.
type Observation struct {
	Category string
	Kind     CheckKind
	Path     string // empty for native balance checks
	Chain    string
	Severity Severity

	Coin      *Coin           // balance checks
	Client    *ExpiringClient // expiration checks
	Remaining time.Duration   // expiration checks
	Backlog   bool            // unrelayed checks

	// Err is set when the observation could not be classified at all.
	// Severity is meaningless in that case.
	Err error
}

// Determined reports whether the observation carries a severity.
func (o Observation) Determined() bool {
	return o.Err == nil
}
