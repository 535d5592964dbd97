package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/fwojciec/chatscrape"
)

// Compile-time interface verification.
var _ chatscrape.SelectorService = (*SelectorService)(nil)

// SelectorService implements chatscrape.SelectorService using SQLite.
// One row per page origin, keyed by chatscrape.SelectorKey(origin).
type SelectorService struct {
	db *DB
}

// NewSelectorService creates a new SelectorService.
func NewSelectorService(db *DB) *SelectorService {
	return &SelectorService{db: db}
}

// FindSelector retrieves the memorized selector for an origin.
func (s *SelectorService) FindSelector(ctx context.Context, origin string) (string, error) {
	var selector string
	err := s.db.QueryRowContext(ctx, `
		SELECT selector FROM selectors WHERE key = ?
	`, chatscrape.SelectorKey(origin)).Scan(&selector)

	if err == sql.ErrNoRows {
		return "", chatscrape.Errorf(chatscrape.ENOTFOUND, "no selector memorized for %q", origin)
	}
	if err != nil {
		return "", err
	}

	return selector, nil
}

// SetSelector memorizes a selector for an origin, replacing any previous value.
func (s *SelectorService) SetSelector(ctx context.Context, origin string, selector string) error {
	if origin == "" {
		return chatscrape.Errorf(chatscrape.EINVALID, "origin required")
	}
	if selector == "" {
		return chatscrape.Errorf(chatscrape.EINVALID, "selector required")
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO selectors (key, origin, selector, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET selector = excluded.selector, updated_at = excluded.updated_at
	`, chatscrape.SelectorKey(origin), origin, selector, now, now)

	return err
}

// DeleteSelector removes the memorized selector for an origin.
func (s *SelectorService) DeleteSelector(ctx context.Context, origin string) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM selectors WHERE key = ?
	`, chatscrape.SelectorKey(origin))
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return chatscrape.Errorf(chatscrape.ENOTFOUND, "no selector memorized for %q", origin)
	}

	return nil
}

// ListSelectors returns all memorized selectors, most recently updated first.
func (s *SelectorService) ListSelectors(ctx context.Context) ([]*chatscrape.StoredSelector, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT origin, selector, updated_at
		FROM selectors
		ORDER BY updated_at DESC, origin ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	selectors := make([]*chatscrape.StoredSelector, 0)
	for rows.Next() {
		var sel chatscrape.StoredSelector
		var updatedAt string
		if err := rows.Scan(&sel.Origin, &sel.Selector, &updatedAt); err != nil {
			return nil, err
		}
		sel.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at")
		if err != nil {
			return nil, err
		}
		selectors = append(selectors, &sel)
	}

	return selectors, rows.Err()
}
