package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/chatscrape"
)

// mediaExtPattern matches URL path extensions of common image, video and
// audio formats. A file link with a matching extension is classified
// file/media instead of plain file.
var mediaExtPattern = regexp.MustCompile(`(?i)\.(png|jpe?g|gif|webp|svg|mp4|mov|webm|mp3|wav|ogg)$`)

// attachmentKey is the dedupe key: first occurrence of a (type, url) pair
// wins, later duplicates within the same node are discarded.
type attachmentKey struct {
	typ chatscrape.AttachmentType
	url string
}

// extractAttachments collects media and file references embedded within a
// message node. All URLs are resolved to absolute form against base before
// classification so extension matching and dedupe operate on canonical
// values. First-seen order is preserved.
func extractAttachments(node *goquery.Selection, base *url.URL) []chatscrape.Attachment {
	seen := make(map[attachmentKey]bool)
	var out []chatscrape.Attachment

	add := func(a chatscrape.Attachment) {
		if a.URL == "" {
			return
		}
		k := attachmentKey{typ: a.Type, url: a.URL}
		if seen[k] {
			return
		}
		seen[k] = true
		out = append(out, a)
	}

	node.Find("img").Each(func(_ int, s *goquery.Selection) {
		add(chatscrape.Attachment{
			Type: chatscrape.AttachmentImage,
			URL:  resolveAssetURL(base, firstAttr(s, "src", "data-src")),
		})
	})

	node.Find("video").Each(func(_ int, s *goquery.Selection) {
		add(chatscrape.Attachment{
			Type: chatscrape.AttachmentVideo,
			URL:  resolveAssetURL(base, mediaSourceURL(s)),
		})
	})

	node.Find("audio").Each(func(_ int, s *goquery.Selection) {
		add(chatscrape.Attachment{
			Type: chatscrape.AttachmentAudio,
			URL:  resolveAssetURL(base, mediaSourceURL(s)),
		})
	})

	node.Find("a").Each(func(_ int, s *goquery.Selection) {
		href, hasHref := s.Attr("href")
		_, hasDownload := s.Attr("download")
		if !hasDownload && (!hasHref || href == "") {
			return
		}

		resolved := resolveAssetURL(base, href)
		if resolved == "" {
			return
		}

		typ := chatscrape.AttachmentFile
		if isMediaURL(resolved) {
			typ = chatscrape.AttachmentFileMedia
		}

		add(chatscrape.Attachment{
			Type: typ,
			URL:  resolved,
			Name: strings.TrimSpace(s.Text()),
		})
	})

	return out
}

// mediaSourceURL resolves the source of a <video> or <audio> element: the
// src attribute, else a nested <source> element, else a data-src attribute.
func mediaSourceURL(s *goquery.Selection) string {
	if v, ok := s.Attr("src"); ok && v != "" {
		return v
	}
	if src := s.Find("source[src]"); src.Length() > 0 {
		if v, ok := src.First().Attr("src"); ok && v != "" {
			return v
		}
	}
	if v, ok := s.Attr("data-src"); ok && v != "" {
		return v
	}
	return ""
}

// firstAttr returns the first non-empty attribute value among attrs.
func firstAttr(s *goquery.Selection, attrs ...string) string {
	for _, attr := range attrs {
		if v, ok := s.Attr(attr); ok && v != "" {
			return v
		}
	}
	return ""
}

// resolveAssetURL resolves a possibly-relative asset URL against the page's
// base URL. With no base, the raw value is returned as-is. Unparseable
// values resolve to "" and the attachment is dropped.
func resolveAssetURL(base *url.URL, raw string) string {
	if raw == "" {
		return ""
	}
	if base == nil {
		return raw
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// isMediaURL reports whether the URL's path carries a known media extension.
func isMediaURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return mediaExtPattern.MatchString(raw)
	}
	return mediaExtPattern.MatchString(u.Path)
}
