package sqlstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/mnemo-app/mnemo-api/internal/platform/sqlstore"
	"github.com/mnemo-app/mnemo-api/internal/store"
)

func newTestStore(t *testing.T) *sqlstore.Store {
	t.Helper()
	s, err := sqlstore.Open(context.Background(), sqlstore.DriverSQLite, ":memory:", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := sqlstore.Open(context.Background(), "oracle", "dsn", nil)
	assert.Error(t, err)
}

func TestLeafRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	doc := store.Document{
		"kind":          "set",
		"flashcardID":   "11",
		"flashcardName": "Algebra",
		"cards": []any{
			map[string]any{"front": "f", "back": "b", "reviewStatus": "0.0", "lastReview": "never"},
		},
	}
	require.NoError(t, s.Put(ctx, "/users/alice/flashcards/11", doc))

	got, err := s.Get(ctx, "/users/alice/flashcards/11")
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestGetMissing(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Get(context.Background(), "/users/alice/flashcards")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestFolderViewAssembly(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Put(ctx, "/users/alice/flashcards/1", store.Document{"flashcardID": "1"}))
	require.NoError(t, s.Put(ctx, "/users/alice/flashcards/a/2", store.Document{"flashcardID": "2"}))
	require.NoError(t, s.Put(ctx, "/users/alice/flashcards/a/b/3", store.Document{"flashcardID": "3"}))
	// A different owner's data must never leak into the view.
	require.NoError(t, s.Put(ctx, "/users/bob/flashcards/9", store.Document{"flashcardID": "9"}))

	view, err := s.Get(ctx, "/users/alice/flashcards")
	require.NoError(t, err)
	assert.Equal(t, store.Document{
		"1": store.Document{"flashcardID": "1"},
		"a": store.Document{
			"2": store.Document{"flashcardID": "2"},
			"b": store.Document{
				"3": store.Document{"flashcardID": "3"},
			},
		},
	}, view)
	assert.NotContains(t, view, "9")
}

func TestPutIfAbsent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	path := "/users/alice/flashcards/11"

	created, err := s.PutIfAbsent(ctx, path, store.Document{"flashcardName": "first"})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = s.PutIfAbsent(ctx, path, store.Document{"flashcardName": "second"})
	require.NoError(t, err)
	assert.False(t, created)

	got, err := s.Get(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "first", got["flashcardName"])
}

func TestRenamePreservesContent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	doc := store.Document{"flashcardID": "11", "flashcardName": "Algebra"}
	require.NoError(t, s.Put(ctx, "/users/alice/flashcards/11", doc))

	require.NoError(t, s.Rename(ctx,
		"/users/alice/flashcards/11",
		"/users/alice/flashcards/maths/11"))

	_, err := s.Get(ctx, "/users/alice/flashcards/11")
	assert.ErrorIs(t, err, store.ErrNotFound)

	moved, err := s.Get(ctx, "/users/alice/flashcards/maths/11")
	require.NoError(t, err)
	assert.Equal(t, doc, moved)
}

func TestRenameMissingSource(t *testing.T) {
	s := newTestStore(t)
	err := s.Rename(context.Background(),
		"/users/alice/flashcards/404",
		"/users/alice/flashcards/maths/404")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRenameFailureLeavesSource(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, s.Put(ctx, "/users/alice/flashcards/11", store.Document{"flashcardID": "11"}))

	// The invalid destination aborts before any write; the transaction
	// leaves the source row in place.
	err := s.Rename(ctx, "/users/alice/flashcards/11", "")
	require.Error(t, err)

	_, err = s.Get(ctx, "/users/alice/flashcards/11")
	assert.NoError(t, err)
}

func TestPathsWithLikeMetacharacters(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	// An owner name containing % must not turn the folder scan into a
	// wildcard match.
	require.NoError(t, s.Put(ctx, "/users/a%b/flashcards/1", store.Document{"flashcardID": "1"}))
	require.NoError(t, s.Put(ctx, "/users/axb/flashcards/2", store.Document{"flashcardID": "2"}))

	view, err := s.Get(ctx, "/users/a%b/flashcards")
	require.NoError(t, err)
	assert.Contains(t, view, "1")
	assert.NotContains(t, view, "2")
}
