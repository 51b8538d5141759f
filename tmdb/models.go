package tmdb

// result is the shared shape of TMDB list entries and detail payloads.
// Movies and TV shows differ only in which title and date fields are
// populated; Genres only appears on detail responses.
type result struct {
	ID           int64    `json:"id"`
	Title        *string  `json:"title"` // movies
	Name         *string  `json:"name"`  // tv
	PosterPath   *string  `json:"poster_path"`
	Overview     *string  `json:"overview"`
	VoteAverage  *float64 `json:"vote_average"`
	VoteCount    *int     `json:"vote_count"`
	ReleaseDate  *string  `json:"release_date"`   // movies
	FirstAirDate *string  `json:"first_air_date"` // tv
	Genres       []genre  `json:"genres"`
}

type genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type listResponse struct {
	Page    int      `json:"page"`
	Results []result `json:"results"`
}
