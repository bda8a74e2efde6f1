package domain

// ThresholdPair holds the low balance thresholds of one token, in its smallest unit.
// ErrorAt is expected to be the smaller value but nothing enforces it.
type ThresholdPair struct {
	WarnAt  uint64 `yaml:"warn_at"`
	ErrorAt uint64 `yaml:"error_at"`
}

// TokenThresholds maps a denomination to its thresholds.
type TokenThresholds map[string]ThresholdPair

// Lookup returns the thresholds configured for denom.
func (t TokenThresholds) Lookup(denom string) (ThresholdPair, bool) {
	pair, ok := t[denom]
	return pair, ok
}
