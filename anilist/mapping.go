package anilist

import (
	"strconv"

	"andrate_back/catalog"
)

// resolveTitle applies the fixed fallback chain: localized English first,
// then romanized, then native. All three missing yields an empty title.
func resolveTitle(t mediaTitle) string {
	for _, candidate := range []*string{t.English, t.Romaji, t.Native} {
		if candidate != nil && *candidate != "" {
			return *candidate
		}
	}
	return ""
}

// normalizeScore converts AniList's 0-100 averageScore to the shared
// 0-10 scale. The conversion happens here at the adapter boundary and
// nowhere else; a missing score stays absent.
func normalizeScore(score *float64) *float64 {
	if score == nil {
		return nil
	}
	v := *score / 10
	return &v
}

func mapSearchItem(m media) catalog.SearchItem {
	return catalog.SearchItem{
		ItemID:          strconv.FormatInt(m.ID, 10),
		ItemType:        catalog.TypeAnime,
		Title:           resolveTitle(m.Title),
		PosterURL:       m.CoverImage.Large,
		Overview:        m.Description,
		CommunityRating: normalizeScore(m.AverageScore),
		// AniList exposes no vote count; the field stays absent.
	}
}

func mapSearchItems(items []media) []catalog.SearchItem {
	out := make([]catalog.SearchItem, 0, len(items))
	for _, m := range items {
		out = append(out, mapSearchItem(m))
	}
	return out
}

func mapDetailItem(m media) catalog.DetailItem {
	genres := m.Genres
	if genres == nil {
		genres = []string{}
	}
	return catalog.DetailItem{
		SearchItem: mapSearchItem(m),
		Year:       m.SeasonYear,
		Genres:     genres,
	}
}
