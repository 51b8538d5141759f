package tmdb

import (
	"strconv"

	"andrate_back/catalog"
)

// resolveTitle picks the kind-appropriate title field: `title` for
// movies, `name` for tv.
func resolveTitle(kind string, r result) string {
	field := r.Name
	if kind == KindMovie {
		field = r.Title
	}
	if field == nil {
		return ""
	}
	return *field
}

// posterURL joins TMDB's relative poster path with the fixed image CDN
// base. No path means no poster, not an empty URL.
func posterURL(path *string) *string {
	if path == nil || *path == "" {
		return nil
	}
	u := imageBaseURL + *path
	return &u
}

// releaseYear parses the four-digit year prefix of a TMDB date string.
// A missing or malformed date yields nil, never zero.
func releaseYear(date *string) *int {
	if date == nil || len(*date) < 4 {
		return nil
	}
	year, err := strconv.Atoi((*date)[:4])
	if err != nil {
		return nil
	}
	return &year
}

func mapSearchItem(kind string, r result) catalog.SearchItem {
	return catalog.SearchItem{
		ItemID:    strconv.FormatInt(r.ID, 10),
		ItemType:  kind,
		Title:     resolveTitle(kind, r),
		PosterURL: posterURL(r.PosterPath),
		Overview:  r.Overview,
		// TMDB scores are already on the shared 0-10 scale.
		CommunityRating:      r.VoteAverage,
		CommunityRatingCount: r.VoteCount,
	}
}

func mapSearchItems(kind string, results []result) []catalog.SearchItem {
	out := make([]catalog.SearchItem, 0, len(results))
	for _, r := range results {
		out = append(out, mapSearchItem(kind, r))
	}
	return out
}

func mapDetailItem(kind string, r result) catalog.DetailItem {
	date := r.ReleaseDate
	if kind != KindMovie {
		date = r.FirstAirDate
	}

	genres := make([]string, 0, len(r.Genres))
	for _, g := range r.Genres {
		genres = append(genres, g.Name)
	}

	return catalog.DetailItem{
		SearchItem: mapSearchItem(kind, r),
		Year:       releaseYear(date),
		Genres:     genres,
	}
}
