package anilist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"andrate_back/catalog"
)

const defaultBaseURL = "https://graphql.anilist.co"

// Page sizes are fixed in the queries: 12 results for search, 24 for the
// trending discover feed.
const (
	searchQuery   = `query ($query: String) { Page(perPage: 12) { media(search: $query, type: ANIME) { id title { romaji english native } coverImage { large } description(asHtml: false) averageScore } } }`
	discoverQuery = `query ($page: Int) { Page(page: $page, perPage: 24) { media(type: ANIME, sort: TRENDING_DESC) { id title { romaji english native } coverImage { large } description(asHtml: false) averageScore } } }`
	detailQuery   = `query ($id: Int) { Media(id: $id, type: ANIME) { id title { romaji english native } coverImage { large } description(asHtml: false) averageScore seasonYear genres } }`
)

// Client wraps the AniList GraphQL endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClientFromEnv constructs a Client. ANILIST_URL overrides the public
// endpoint, which is mainly useful for pointing tests at a fake server.
func NewClientFromEnv() *Client {
	baseURL := strings.TrimSpace(os.Getenv("ANILIST_URL"))
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

func (c *Client) post(ctx context.Context, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("anilist: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("anilist: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("anilist: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("anilist: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("anilist: status %d", resp.StatusCode)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("anilist: decode response: %w", err)
	}
	return nil
}

func firstError(errs []graphQLError) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("anilist: %s", errs[0].Message)
}

// Search returns up to 12 anime matching text.
func (c *Client) Search(ctx context.Context, text string) ([]catalog.SearchItem, error) {
	var out pageResponse
	if err := c.post(ctx, searchQuery, map[string]any{"query": text}, &out); err != nil {
		return nil, err
	}
	if err := firstError(out.Errors); err != nil {
		return nil, err
	}
	return mapSearchItems(out.Data.Page.Media), nil
}

// Discover returns one page of 24 anime sorted by descending trending
// signal. Pages below one are treated as the first page.
func (c *Client) Discover(ctx context.Context, page int) ([]catalog.SearchItem, error) {
	if page < 1 {
		page = 1
	}
	var out pageResponse
	if err := c.post(ctx, discoverQuery, map[string]any{"page": page}, &out); err != nil {
		return nil, err
	}
	if err := firstError(out.Errors); err != nil {
		return nil, err
	}
	return mapSearchItems(out.Data.Page.Media), nil
}

// Detail fetches one anime by its AniList id.
func (c *Client) Detail(ctx context.Context, id int) (*catalog.DetailItem, error) {
	var out mediaResponse
	if err := c.post(ctx, detailQuery, map[string]any{"id": id}, &out); err != nil {
		return nil, err
	}
	if err := firstError(out.Errors); err != nil {
		return nil, err
	}
	if out.Data.Media == nil {
		return nil, errors.New("anilist: media not found")
	}

	item := mapDetailItem(*out.Data.Media)
	return &item, nil
}
