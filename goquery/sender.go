package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// genericSenderSelectors cover common sender/author markup conventions.
var genericSenderSelectors = []string{
	".sender",
	".author",
	".from",
	".nickname",
	".name",
	"[data-author]",
	"[data-sender]",
}

// fromMarkers are "from"-style words looked for in accessibility labels.
// English only for now; other locales fall through to the structural rules.
var fromMarkers = []string{"from ", "sent by "}

// findSender derives the sender display name for a message node. The site
// profile's selectors are tried first, then the generic group, then an
// accessibility label containing a "from"-style marker. Returns "" when
// nothing matches.
func findSender(node *goquery.Selection, profile *Profile) string {
	if profile != nil {
		if s := safeSelect(node, profile.senderSelectors); s != nil && s.Length() > 0 {
			if v := senderText(s.First()); v != "" {
				return v
			}
		}
	}

	if s := safeSelect(node, genericSenderSelectors); s != nil && s.Length() > 0 {
		if v := senderText(s.First()); v != "" {
			return v
		}
	}

	return ariaLabelMatching(node, containsFromMarker)
}

// senderText extracts the name from a matched element: text content first,
// falling back to the accessibility label, then the data attributes that
// may carry the name directly.
func senderText(s *goquery.Selection) string {
	if t := strings.TrimSpace(s.Text()); t != "" {
		return t
	}
	if v, ok := s.Attr("aria-label"); ok {
		if t := strings.TrimSpace(v); t != "" {
			return t
		}
	}
	for _, attr := range []string{"data-author", "data-sender"} {
		if v, ok := s.Attr(attr); ok {
			if t := strings.TrimSpace(v); t != "" {
				return t
			}
		}
	}
	return ""
}

func containsFromMarker(label string) bool {
	lower := strings.ToLower(label)
	for _, marker := range fromMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
