package chatscrape

import (
	"context"
	"time"
)

// Namespace prefixes persisted selector keys so they can share a store with
// other state without collisions.
const Namespace = "chatscrape"

// SelectorKey returns the storage key for a page origin, laid out as
// "<namespace>::<origin>".
func SelectorKey(origin string) string {
	return Namespace + "::" + origin
}

// StoredSelector is a memorized container selector for one page origin.
type StoredSelector struct {
	Origin    string    `json:"origin"`
	Selector  string    `json:"selector"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SelectorService persists one memorized container selector per page origin.
// An absent entry means "use auto-detection".
type SelectorService interface {
	// FindSelector retrieves the memorized selector for an origin.
	// Returns ENOTFOUND if no selector is memorized.
	FindSelector(ctx context.Context, origin string) (string, error)

	// SetSelector memorizes a selector for an origin, replacing any
	// previous value. The selector is not validated: malformed selectors
	// are tolerated at extraction time instead.
	SetSelector(ctx context.Context, origin string, selector string) error

	// DeleteSelector removes the memorized selector for an origin.
	// Returns ENOTFOUND if no selector is memorized.
	DeleteSelector(ctx context.Context, origin string) error

	// ListSelectors returns all memorized selectors.
	ListSelectors(ctx context.Context) ([]*StoredSelector, error)
}
