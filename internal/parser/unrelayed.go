package parser

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// ParseUnrelayed reports whether `rly q unrelayed-packets` output shows a backlog, i.e.
// whether the "src" or "dst" member is present and not null.
func ParseUnrelayed(output string) (bool, error) {
	if !gjson.Valid(output) {
		return false, fmt.Errorf("unrelayed packets: %w", ErrMalformedJSON)
	}
	doc := gjson.Parse(output)
	if !doc.IsObject() {
		return false, fmt.Errorf("unrelayed packets: %w", ErrNotObject)
	}
	return present(doc.Get("src")) || present(doc.Get("dst")), nil
}

func present(r gjson.Result) bool {
	return r.Exists() && r.Type != gjson.Null
}
