package chatscrape

import "context"

// TranscriptWriter persists a scraped conversation as a human-readable
// transcript file.
type TranscriptWriter interface {
	// WriteTranscript writes the transcript body for a scrape result and
	// returns the path of the written file.
	WriteTranscript(ctx context.Context, res *ScrapeResult, body string) (string, error)
}
