// Package catalog defines the normalized media schema shared by every
// upstream source adapter, plus small helpers for their HTTP handlers.
// Adapters convert at their own boundary: whatever scale or shape an
// upstream uses, only these types cross into the rest of the app.
package catalog

// Media kinds used as SearchItem.ItemType.
const (
	TypeAnime = "anime"
	TypeTV    = "tv"
	TypeMovie = "movie"
)

// SearchItem is the cross-source summary shape returned by search and
// discover. Pointer fields distinguish values the upstream omitted from
// genuine empties; CommunityRating is always on a 0-10 scale.
type SearchItem struct {
	ItemID               string   `json:"item_id"`
	ItemType             string   `json:"item_type"`
	Title                string   `json:"title"`
	PosterURL            *string  `json:"poster_url,omitempty"`
	Overview             *string  `json:"overview,omitempty"`
	CommunityRating      *float64 `json:"community_rating,omitempty"`
	CommunityRatingCount *int     `json:"community_rating_count,omitempty"`
}

// DetailItem extends SearchItem with year and genres for single-item
// views. Genres is always non-nil; an empty list means the source listed
// none.
type DetailItem struct {
	SearchItem
	Year   *int     `json:"year,omitempty"`
	Genres []string `json:"genres"`
}
