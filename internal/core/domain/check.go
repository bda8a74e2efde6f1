package domain

import "fmt"

// CheckKind identifies one family of relayer queries.
type CheckKind int

const (
	CheckExpiration CheckKind = iota
	CheckUnrelayed
	CheckBalance
)

// AllCheckKinds lists every kind in the order a run executes them.
var AllCheckKinds = []CheckKind{CheckExpiration, CheckUnrelayed, CheckBalance}

func (k CheckKind) String() string {
	switch k {
	case CheckExpiration:
		return "expiration"
	case CheckUnrelayed:
		return "unrelayed"
	case CheckBalance:
		return "balance"
	default:
		return fmt.Sprintf("check(%d)", int(k))
	}
}
