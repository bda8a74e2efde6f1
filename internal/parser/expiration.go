package parser

import (
	"strings"
	"time"

	"github.com/vietddude/relaywatch/internal/core/domain"
)

const (
	shortDateLayout = "2 Jan 06"
	longDateLayout  = "2 Jan 2006"

	// minDateFields is the number of fields a client line needs to carry a date.
	minDateFields = 7
)

// ParseExpirations parses `rly q clients-expiration` output. Only lines starting with
// "client" are considered, e.g.
//
//	client 07-tendermint-12 (kaiyo-1) expires in 9d23h (15 Jan 24 10:00 UTC)
//
// Lines too short to carry ids or a date still yield a record with empty fields.
func ParseExpirations(output string) []domain.ExpiringClient {
	var clients []domain.ExpiringClient
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if !strings.HasPrefix(line, "client") {
			continue
		}
		clients = append(clients, ParseExpirationLine(line))
	}
	return clients
}

// ParseExpirationLine parses a single client line.
func ParseExpirationLine(line string) domain.ExpiringClient {
	var client domain.ExpiringClient

	fields := strings.Fields(line)
	if len(fields) >= 3 {
		client.ClientID = fields[1]
		client.ChainID = strings.Trim(fields[2], "()")
	}
	if t, ok := expirationDate(fields); ok {
		client.ExpiresAt = &t
	}
	return client
}

// expirationDate tries "(15 Jan 24" from fields[-5:-2] first, then "15 Jan 2024" from fields[-4:-1].
// Dates are read as UTC, the zone rly prints.
func expirationDate(fields []string) (time.Time, bool) {
	n := len(fields)
	if n < minDateFields {
		return time.Time{}, false
	}
	short := strings.Trim(strings.Join(fields[n-5:n-2], " "), "()")
	if t, err := time.ParseInLocation(shortDateLayout, short, time.UTC); err == nil {
		return t, true
	}
	long := strings.Trim(strings.Join(fields[n-4:n-1], " "), "()")
	if t, err := time.ParseInLocation(longDateLayout, long, time.UTC); err == nil {
		return t, true
	}
	return time.Time{}, false
}
