package library

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store persists library entries.
type Store struct {
	db *gorm.DB
}

// Upsert inserts the entry or, when the (user, item, type) identity
// already exists, overwrites title/poster_url/status/rating in place.
// The conflicting row keeps its original primary key.
func (s *Store) Upsert(ctx context.Context, entry *Entry) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"},
			{Name: "item_id"},
			{Name: "item_type"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"title", "poster_url", "status", "rating", "updated_at"}),
	}).Create(entry).Error
	if err != nil {
		return fmt.Errorf("library: upsert entry: %w", err)
	}
	return nil
}

// Query returns the user's entries, optionally narrowed by exact
// item_type and status matches. Both filters combine with AND; an empty
// filter value means "any". Results come back in storage order.
func (s *Store) Query(ctx context.Context, userID uint64, itemType, status string) ([]Entry, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if itemType != "" {
		q = q.Where("item_type = ?", itemType)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	entries := make([]Entry, 0)
	if err := q.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("library: query entries: %w", err)
	}
	return entries, nil
}
