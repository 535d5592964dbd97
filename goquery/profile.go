package goquery

import "strings"

// Profile holds the CSS selector groups tuned to one chat product's DOM
// conventions. Each group is run as a single combined query, so the query
// engine's document-order tie-break decides which element wins within a
// group. Selector lists are ordered most-reliable first for readability;
// precedence between groups is enforced by the cascades, not here.
type Profile struct {
	name               string
	hosts              []string
	containerSelectors []string
	messageSelectors   []string
	timestampSelectors []string
	senderSelectors    []string
}

// Name returns the profile's identifier (e.g. "linkedin").
func (p *Profile) Name() string {
	return p.name
}

// MatchesHost reports whether the profile's heuristics apply to a page
// hostname. Subdomains of a registered host match.
func (p *Profile) MatchesHost(host string) bool {
	host = strings.ToLower(strings.TrimSpace(host))
	if host == "" {
		return false
	}
	for _, h := range p.hosts {
		if host == h || strings.HasSuffix(host, "."+h) {
			return true
		}
	}
	return false
}
