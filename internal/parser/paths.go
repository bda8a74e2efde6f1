package parser

import "strings"

// ParsePathList extracts path names from `rly paths list` output, e.g.
//
//	 0: mainnet-kujira-akash -> chns(✔) clnts(✔) conn(✔) (kaiyo-1<>akashnet-2)
//
// Names are returned once each, in order of first appearance.
func ParsePathList(output string) []string {
	var (
		names []string
		seen  = make(map[string]struct{})
	)
	for _, line := range strings.Split(output, "\n") {
		_, rest, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			continue
		}
		name := fields[0]
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}
