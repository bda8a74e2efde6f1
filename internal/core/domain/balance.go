package domain

import "math/big"

// Coin is one entry of a balance query: an amount in the token's smallest unit and its denomination.
// Denominations are opaque and may contain slashes (IBC traces, factory tokens).
type Coin struct {
	Amount *big.Int
	Denom  string
}

// BalanceRecord is the parsed output of a balance query.
type BalanceRecord struct {
	Account  string
	Balances []Coin
}
