package library

import "time"

// Entry is one tracked media item in a user's library. Its identity is
// the (user_id, item_id, item_type) triple: re-submitting the same triple
// updates the row in place and keeps the original primary key. Title and
// poster are denormalized snapshots and may drift from the upstream
// catalog; Rating is the user's personal score, not the community one.
type Entry struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_library_identity,priority:1" json:"user_id"`
	ItemID    string    `gorm:"size:64;not null;uniqueIndex:idx_library_identity,priority:2" json:"item_id"`
	ItemType  string    `gorm:"size:16;not null;uniqueIndex:idx_library_identity,priority:3" json:"item_type"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	PosterURL *string   `gorm:"size:512" json:"poster_url,omitempty"`
	Status    string    `gorm:"size:16;not null" json:"status"`
	Rating    *float64  `json:"rating,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Entry) TableName() string {
	return "library"
}

// UpsertRequest is the payload accepted by PUT /library. Status and
// item_type are stored verbatim; constraining their values is the
// caller's job.
type UpsertRequest struct {
	ItemID    string   `json:"item_id"`
	ItemType  string   `json:"item_type"`
	Title     string   `json:"title"`
	PosterURL *string  `json:"poster_url"`
	Status    string   `json:"status"`
	Rating    *float64 `json:"rating"`
}
