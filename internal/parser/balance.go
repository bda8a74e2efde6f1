package parser

import (
	"math/big"
	"regexp"
	"strings"

	"github.com/vietddude/relaywatch/internal/core/domain"
)

// coinPattern matches "<digits><denom>". The denom may be empty or contain slashes.
var coinPattern = regexp.MustCompile(`^(\d+)(.*)$`)

// ParseBalance parses `rly q balance` output, e.g.
//
//	address {kujira1abc} balance {100uakt,250uusk}
//
// The account is the second field with braces stripped. Every later field is split on
// commas and each piece without a leading amount is skipped.
func ParseBalance(output string) domain.BalanceRecord {
	var record domain.BalanceRecord

	fields := strings.Fields(output)
	if len(fields) < 2 {
		return record
	}
	record.Account = strings.Trim(fields[1], "{}")

	for _, field := range fields[2:] {
		for _, token := range strings.Split(strings.Trim(field, "{}"), ",") {
			m := coinPattern.FindStringSubmatch(token)
			if m == nil {
				continue
			}
			amount, ok := new(big.Int).SetString(m[1], 10)
			if !ok {
				continue
			}
			record.Balances = append(record.Balances, domain.Coin{Amount: amount, Denom: m[2]})
		}
	}
	return record
}
