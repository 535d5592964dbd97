package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// datePattern matches a digit group plausibly belonging to a date or time
// inside an accessibility label: 1-4 digits, a separator, 1-2 digits.
// Locale-dependent formats make this inherently ambiguous; mismatches are
// accepted heuristic noise.
var datePattern = regexp.MustCompile(`\d{1,4}[./:\-]\d{1,2}`)

// clockPattern matches a clock time like "9:41", "09:41" or "9:41 PM".
var clockPattern = regexp.MustCompile(`\b\d{1,2}:\d{2}(?:\s?[AaPp][Mm])?\b`)

// findTimestamp derives a raw timestamp string for a message node. The
// matched string is returned as-is, in whatever format the page used;
// downstream consumers own parsing. Returns "" when no rule matches.
func findTimestamp(node *goquery.Selection, profile *Profile) string {
	// Site-specific timestamp elements, preferring the machine-readable
	// datetime attribute over the title attribute over visible text.
	if profile != nil {
		if s := safeSelect(node, profile.timestampSelectors); s != nil && s.Length() > 0 {
			el := s.First()
			if v, ok := el.Attr("datetime"); ok && v != "" {
				return v
			}
			if v, ok := el.Attr("title"); ok && v != "" {
				return v
			}
			if t := strings.TrimSpace(el.Text()); t != "" {
				return t
			}
		}
	}

	if v, ok := node.Attr("data-time"); ok && v != "" {
		return v
	}

	if s := node.Find("time[datetime]"); s.Length() > 0 {
		if v, ok := s.First().Attr("datetime"); ok && v != "" {
			return v
		}
	}

	if s := node.Find("[data-timestamp], [data-time], [data-utime]"); s.Length() > 0 {
		el := s.First()
		for _, attr := range []string{"data-timestamp", "data-time", "data-utime"} {
			if v, ok := el.Attr(attr); ok && v != "" {
				return v
			}
		}
	}

	if v := ariaLabelMatching(node, datePattern.MatchString); v != "" {
		return v
	}

	if m := clockPattern.FindString(node.Text()); m != "" {
		return m
	}

	return ""
}

// ariaLabelMatching returns the first aria-label value on the node or its
// descendants for which match returns true.
func ariaLabelMatching(node *goquery.Selection, match func(string) bool) string {
	if v, ok := node.Attr("aria-label"); ok && match(v) {
		return v
	}
	found := ""
	node.Find("[aria-label]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		v, _ := s.Attr("aria-label")
		if match(v) {
			found = v
			return false
		}
		return true
	})
	return found
}
