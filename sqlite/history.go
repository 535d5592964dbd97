package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/chatscrape"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ chatscrape.HistoryService = (*HistoryService)(nil)

// HistoryService implements chatscrape.HistoryService using SQLite.
type HistoryService struct {
	db *DB
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(db *DB) *HistoryService {
	return &HistoryService{db: db}
}

// CreateScrape stores a new scrape record.
func (s *HistoryService) CreateScrape(ctx context.Context, rec *chatscrape.ScrapeRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	rec.ID = uuid.New().String()
	if rec.ScrapedAt.IsZero() {
		rec.ScrapedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO scrapes (id, origin, page_url, scraped_at, message_count, payload)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Origin, rec.PageURL, rec.ScrapedAt.Format(time.RFC3339), rec.Count, rec.Payload)

	return err
}

// FindScrapes retrieves records matching the filter, newest first.
func (s *HistoryService) FindScrapes(ctx context.Context, filter chatscrape.ScrapeFilter) ([]*chatscrape.ScrapeRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, origin, page_url, scraped_at, message_count, payload FROM scrapes WHERE 1=1")

	if filter.Origin != nil {
		query.WriteString(" AND origin = ?")
		args = append(args, *filter.Origin)
	}

	query.WriteString(" ORDER BY scraped_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*chatscrape.ScrapeRecord, 0)
	for rows.Next() {
		var rec chatscrape.ScrapeRecord
		var scrapedAt string
		if err := rows.Scan(&rec.ID, &rec.Origin, &rec.PageURL, &scrapedAt, &rec.Count, &rec.Payload); err != nil {
			return nil, err
		}
		rec.ScrapedAt, err = parseRFC3339(scrapedAt, "scraped_at")
		if err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}

	return records, rows.Err()
}

// DeleteScrapesByOrigin removes all records for an origin.
func (s *HistoryService) DeleteScrapesByOrigin(ctx context.Context, origin string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM scrapes WHERE origin = ?`, origin)
	return err
}
