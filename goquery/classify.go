package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// genericMessageSelectors cover widely-used chat-message markers.
var genericMessageSelectors = []string{
	"[role=\"listitem\"]",
	"[data-message]",
	"[data-testid*=\"message\"]",
	".message",
	".chat-message",
	".msg",
	".message-item",
}

// classify selects the candidate message nodes under the container. Rules
// run most-specific first and the result of the first rule that yields at
// least one node wins:
//
//  1. the site profile's message selectors (only when the page host matched
//     the profile),
//  2. generic chat-message markers,
//  3. every direct child with non-empty trimmed text.
//
// The structural fallback guarantees classification never returns an empty
// set merely because no heuristic matched, at the cost of precision.
func classify(container *goquery.Selection, profile *Profile) []*goquery.Selection {
	if profile != nil {
		if nodes := collect(safeSelect(container, profile.messageSelectors)); len(nodes) > 0 {
			return nodes
		}
	}

	if nodes := collect(safeSelect(container, genericMessageSelectors)); len(nodes) > 0 {
		return nodes
	}

	var nodes []*goquery.Selection
	container.Children().Each(func(_ int, s *goquery.Selection) {
		if strings.TrimSpace(s.Text()) != "" {
			nodes = append(nodes, s)
		}
	})
	return nodes
}

// collect splits a selection into single-node selections in document order.
func collect(sel *goquery.Selection) []*goquery.Selection {
	if sel == nil || sel.Length() == 0 {
		return nil
	}
	nodes := make([]*goquery.Selection, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, s)
	})
	return nodes
}
