package chatscrape

import (
	"context"
	"time"
)

// ScrapeResult is the payload returned by the extract command: an
// ExtractionResult merged with page metadata owned by the calling
// collaborator. ScrapedAt is stamped by the caller, not the extraction core,
// so extraction itself stays idempotent on static input.
type ScrapeResult struct {
	RunID             string     `json:"runId"`
	PageTitle         string     `json:"pageTitle"`
	PageURL           string     `json:"pageUrl"`
	ScrapedAt         time.Time  `json:"scrapedAt"`
	ContainerSelector string     `json:"containerSelector,omitempty"`
	Count             int        `json:"count"`
	Messages          []*Message `json:"messages"`
}

// Response is the command/response envelope honored at the boundary.
// Exactly one of Payload and Error is populated.
type Response struct {
	OK      bool          `json:"ok"`
	Payload *ScrapeResult `json:"payload,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// NewResponse wraps a scrape outcome in the boundary envelope.
func NewResponse(payload *ScrapeResult, err error) Response {
	if err != nil {
		return Response{OK: false, Error: ErrorMessage(err)}
	}
	return Response{OK: true, Payload: payload}
}

// ScrapeRecord is one persisted scrape run.
type ScrapeRecord struct {
	ID        string    `json:"id"`
	Origin    string    `json:"origin"`
	PageURL   string    `json:"pageUrl"`
	ScrapedAt time.Time `json:"scrapedAt"`
	Count     int       `json:"count"`

	// Payload is the full serialized ScrapeResult.
	Payload string `json:"payload"`
}

// Validate returns an error if the record contains invalid fields.
func (r *ScrapeRecord) Validate() error {
	if r.Origin == "" {
		return Errorf(EINVALID, "scrape record origin required")
	}
	if r.PageURL == "" {
		return Errorf(EINVALID, "scrape record page URL required")
	}
	return nil
}

// ScrapeFilter represents a filter for FindScrapes.
type ScrapeFilter struct {
	Origin *string `json:"origin"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// HistoryService persists past scrape runs.
type HistoryService interface {
	// CreateScrape stores a new scrape record.
	CreateScrape(ctx context.Context, rec *ScrapeRecord) error

	// FindScrapes retrieves records matching the filter, newest first.
	FindScrapes(ctx context.Context, filter ScrapeFilter) ([]*ScrapeRecord, error)

	// DeleteScrapesByOrigin removes all records for an origin.
	DeleteScrapesByOrigin(ctx context.Context, origin string) error
}
