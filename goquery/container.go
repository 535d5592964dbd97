package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/chatscrape"
)

// genericContainerSelectors cover common chat-UI container conventions.
// Tried only after site-specific selectors (when a profile applies) yield
// nothing.
var genericContainerSelectors = []string{
	"[role=\"list\"]",
	".chat-list",
	".messages",
	".message-list",
	".conversation",
	".msg-list",
	".chat-messages",
}

// safeSelect runs a selector group as one combined query against root.
// A malformed group matches nothing rather than aborting extraction.
func safeSelect(root *goquery.Selection, selectors []string) *goquery.Selection {
	if len(selectors) == 0 {
		return nil
	}
	m, err := cascadia.Compile(strings.Join(selectors, ", "))
	if err != nil {
		return nil
	}
	return root.FindMatcher(m)
}

// resolveContainer locates the single element presumed to enclose all
// message nodes. The memorized selector is tried against the whole document
// first; otherwise resolution falls back through the site-specific group
// (when a profile applies), then the generic group. The first element in
// document order among a group's matches wins.
//
// The returned Container tells the caller how resolution happened: when
// auto-detection succeeded on an element with an id, Selector carries the
// simplified "#id" form for the caller to memorize; an id-less element
// leaves Selector empty so any previously memorized value stays untouched.
func resolveContainer(doc *goquery.Document, preferred string, profile *Profile) (*goquery.Selection, chatscrape.Container) {
	if preferred != "" {
		if m, err := cascadia.Compile(preferred); err == nil {
			if s := doc.FindMatcher(m); s.Length() > 0 {
				return s.First(), chatscrape.Container{Selector: preferred}
			}
		}
	}

	groups := [][]string{}
	if profile != nil {
		groups = append(groups, profile.containerSelectors)
	}
	groups = append(groups, genericContainerSelectors)

	for _, group := range groups {
		s := safeSelect(doc.Selection, group)
		if s == nil || s.Length() == 0 {
			continue
		}
		node := s.First()
		info := chatscrape.Container{AutoDetected: true}
		if id, ok := node.Attr("id"); ok && id != "" {
			info.Selector = "#" + id
		}
		return node, info
	}

	return nil, chatscrape.Container{}
}
