package anilist

// Typed views of the AniList GraphQL payloads. Only the fields the
// normalized schema consumes are declared; everything optional on the
// wire is a pointer so absence survives decoding.

// mediaTitle carries AniList's three title variants; any of them can be null.
type mediaTitle struct {
	English *string `json:"english"`
	Romaji  *string `json:"romaji"`
	Native  *string `json:"native"`
}

type coverImage struct {
	Large *string `json:"large"`
}

type media struct {
	ID           int64      `json:"id"`
	Title        mediaTitle `json:"title"`
	CoverImage   coverImage `json:"coverImage"`
	Description  *string    `json:"description"`
	AverageScore *float64   `json:"averageScore"`
	SeasonYear   *int       `json:"seasonYear"`
	Genres       []string   `json:"genres"`
}

type graphQLError struct {
	Message string `json:"message"`
}

// pageResponse matches data.Page.media list payloads.
type pageResponse struct {
	Data struct {
		Page struct {
			Media []media `json:"media"`
		} `json:"Page"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

// mediaResponse matches the single data.Media payload.
type mediaResponse struct {
	Data struct {
		Media *media `json:"Media"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}
