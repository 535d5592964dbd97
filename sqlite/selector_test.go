package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/chatscrape"
	"github.com/fwojciec/chatscrape/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectorService_SetAndFind(t *testing.T) {
	t.Parallel()

	t.Run("round-trips a selector per origin", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSelectorService(db)
		ctx := context.Background()

		err := svc.SetSelector(ctx, "https://example.com", "#chat-root")
		require.NoError(t, err)

		got, err := svc.FindSelector(ctx, "https://example.com")
		require.NoError(t, err)
		assert.Equal(t, "#chat-root", got)
	})

	t.Run("replaces previous value for the same origin", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSelectorService(db)
		ctx := context.Background()

		require.NoError(t, svc.SetSelector(ctx, "https://example.com", ".old"))
		require.NoError(t, svc.SetSelector(ctx, "https://example.com", "#new"))

		got, err := svc.FindSelector(ctx, "https://example.com")
		require.NoError(t, err)
		assert.Equal(t, "#new", got)
	})

	t.Run("origins do not collide", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSelectorService(db)
		ctx := context.Background()

		require.NoError(t, svc.SetSelector(ctx, "https://a.example.com", "#a"))
		require.NoError(t, svc.SetSelector(ctx, "https://b.example.com", "#b"))

		got, err := svc.FindSelector(ctx, "https://a.example.com")
		require.NoError(t, err)
		assert.Equal(t, "#a", got)
	})

	t.Run("returns ENOTFOUND for unknown origin", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSelectorService(db)

		_, err := svc.FindSelector(context.Background(), "https://nowhere.example.com")
		require.Error(t, err)
		assert.Equal(t, chatscrape.ENOTFOUND, chatscrape.ErrorCode(err))
	})

	t.Run("rejects empty origin or selector", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSelectorService(db)
		ctx := context.Background()

		err := svc.SetSelector(ctx, "", "#x")
		assert.Equal(t, chatscrape.EINVALID, chatscrape.ErrorCode(err))

		err = svc.SetSelector(ctx, "https://example.com", "")
		assert.Equal(t, chatscrape.EINVALID, chatscrape.ErrorCode(err))
	})
}

func TestSelectorService_Delete(t *testing.T) {
	t.Parallel()

	t.Run("removes a memorized selector", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSelectorService(db)
		ctx := context.Background()

		require.NoError(t, svc.SetSelector(ctx, "https://example.com", "#gone"))
		require.NoError(t, svc.DeleteSelector(ctx, "https://example.com"))

		_, err := svc.FindSelector(ctx, "https://example.com")
		assert.Equal(t, chatscrape.ENOTFOUND, chatscrape.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND when nothing memorized", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSelectorService(db)

		err := svc.DeleteSelector(context.Background(), "https://example.com")
		assert.Equal(t, chatscrape.ENOTFOUND, chatscrape.ErrorCode(err))
	})
}

func TestSelectorService_List(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := sqlite.NewSelectorService(db)
	ctx := context.Background()

	require.NoError(t, svc.SetSelector(ctx, "https://a.example.com", "#a"))
	require.NoError(t, svc.SetSelector(ctx, "https://b.example.com", "#b"))

	selectors, err := svc.ListSelectors(ctx)
	require.NoError(t, err)
	require.Len(t, selectors, 2)

	origins := []string{selectors[0].Origin, selectors[1].Origin}
	assert.Contains(t, origins, "https://a.example.com")
	assert.Contains(t, origins, "https://b.example.com")
	assert.False(t, selectors[0].UpdatedAt.IsZero())
}
