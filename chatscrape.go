// Package chatscrape extracts structured message records from the rendered
// DOM of chat and messaging web pages. There is no authoritative schema for
// the pages it targets, so extraction is best-effort: cascades of heuristic
// rules tuned first to known site layouts, then to generic chat-UI
// conventions, with a structural fallback that guarantees forward progress.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g. goquery/, sqlite/, rod/).
package chatscrape
