package library

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Entry{}))

	return &Store{db: db}
}

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func TestUpsertIsIdempotentOnIdentity(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, &Entry{
		UserID:   1,
		ItemID:   "603",
		ItemType: "movie",
		Title:    "The Matrix",
		Status:   "planning",
	}))

	first, err := store.Query(ctx, 1, "", "")
	require.NoError(t, err)
	require.Len(t, first, 1)
	originalID := first[0].ID
	require.NotZero(t, originalID)

	// Same identity triple, new snapshot values.
	require.NoError(t, store.Upsert(ctx, &Entry{
		UserID:    1,
		ItemID:    "603",
		ItemType:  "movie",
		Title:     "The Matrix (1999)",
		PosterURL: strPtr("https://image.tmdb.org/t/p/w500/matrix.jpg"),
		Status:    "completed",
		Rating:    f64Ptr(9.5),
	}))

	after, err := store.Query(ctx, 1, "", "")
	require.NoError(t, err)
	require.Len(t, after, 1, "re-upserting the same identity must not create a second row")

	got := after[0]
	assert.Equal(t, originalID, got.ID, "row identity must survive the upsert")
	assert.Equal(t, "The Matrix (1999)", got.Title)
	require.NotNil(t, got.PosterURL)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/matrix.jpg", *got.PosterURL)
	assert.Equal(t, "completed", got.Status)
	require.NotNil(t, got.Rating)
	assert.Equal(t, 9.5, *got.Rating)
}

func TestUpsertSameItemIDDifferentType(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// item_type is part of the identity: the same upstream id can be
	// tracked once per kind.
	require.NoError(t, store.Upsert(ctx, &Entry{UserID: 1, ItemID: "42", ItemType: "movie", Title: "A", Status: "planning"}))
	require.NoError(t, store.Upsert(ctx, &Entry{UserID: 1, ItemID: "42", ItemType: "tv", Title: "B", Status: "planning"}))

	entries, err := store.Query(ctx, 1, "", "")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestQueryFilters(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	seed := []Entry{
		{UserID: 1, ItemID: "1", ItemType: "movie", Title: "M1", Status: "watching"},
		{UserID: 1, ItemID: "2", ItemType: "movie", Title: "M2", Status: "completed"},
		{UserID: 1, ItemID: "3", ItemType: "tv", Title: "T1", Status: "watching"},
		{UserID: 2, ItemID: "1", ItemType: "movie", Title: "Other", Status: "watching"},
	}
	for i := range seed {
		require.NoError(t, store.Upsert(ctx, &seed[i]))
	}

	both, err := store.Query(ctx, 1, "movie", "watching")
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "M1", both[0].Title)

	byStatus, err := store.Query(ctx, 1, "", "watching")
	require.NoError(t, err)
	assert.Len(t, byStatus, 2)

	all, err := store.Query(ctx, 1, "", "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	for _, e := range all {
		assert.EqualValues(t, 1, e.UserID, "query must never leak other users' entries")
	}
}

func TestUpsertAcceptsArbitraryStatusAndType(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// This layer deliberately does not constrain status or item_type.
	require.NoError(t, store.Upsert(ctx, &Entry{UserID: 1, ItemID: "9", ItemType: "vhs", Title: "X", Status: "rewatching"}))

	entries, err := store.Query(ctx, 1, "vhs", "rewatching")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
