package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"andrate_back/catalog"
)

const (
	defaultBaseURL = "https://api.themoviedb.org/3"
	imageBaseURL   = "https://image.tmdb.org/t/p/w500"
)

// Media kinds accepted by the TMDB endpoints.
const (
	KindMovie = catalog.TypeMovie
	KindTV    = catalog.TypeTV
)

// ErrCredentialsMissing is returned by every call when neither TMDB
// credential is configured.
var ErrCredentialsMissing = errors.New("tmdb: set TMDB_BEARER (v4) or TMDB_API_KEY (v3)")

// credential is the resolved authentication mode: either a v4 bearer
// token sent as a header, or a v3 api key sent as a query parameter.
// Exactly one is populated.
type credential struct {
	bearer string
	apiKey string
}

func (cr credential) apply(req *http.Request) {
	if cr.bearer != "" {
		req.Header.Set("Authorization", "Bearer "+cr.bearer)
		return
	}
	q := req.URL.Query()
	q.Set("api_key", cr.apiKey)
	req.URL.RawQuery = q.Encode()
}

// Client wraps the TMDB REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cred       *credential
}

// NewClientFromEnv constructs a Client. The credential is resolved once
// here, with TMDB_BEARER taking priority over TMDB_API_KEY when both are
// set. With neither set the client still constructs so the rest of the
// app keeps working; its calls fail with ErrCredentialsMissing.
func NewClientFromEnv() *Client {
	baseURL := strings.TrimSpace(os.Getenv("TMDB_BASE_URL"))
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	c := &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}

	if bearer := strings.TrimSpace(os.Getenv("TMDB_BEARER")); bearer != "" {
		c.cred = &credential{bearer: bearer}
	} else if apiKey := strings.TrimSpace(os.Getenv("TMDB_API_KEY")); apiKey != "" {
		c.cred = &credential{apiKey: apiKey}
	}
	return c
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if c.cred == nil {
		return ErrCredentialsMissing
	}

	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("tmdb: build url: %w", err)
	}
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("tmdb: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	c.cred.apply(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("tmdb: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tmdb: status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("tmdb: decode response: %w", err)
	}
	return nil
}

// Search queries /search/{kind} for titles matching text.
func (c *Client) Search(ctx context.Context, kind, text string) ([]catalog.SearchItem, error) {
	q := url.Values{}
	q.Set("query", text)

	var out listResponse
	if err := c.get(ctx, "/search/"+kind, q, &out); err != nil {
		return nil, err
	}
	return mapSearchItems(kind, out.Results), nil
}

// Discover queries /discover/{kind} sorted by descending popularity.
// Pages below one are treated as the first page.
func (c *Client) Discover(ctx context.Context, kind string, page int) ([]catalog.SearchItem, error) {
	if page < 1 {
		page = 1
	}

	q := url.Values{}
	q.Set("sort_by", "popularity.desc")
	q.Set("page", strconv.Itoa(page))

	var out listResponse
	if err := c.get(ctx, "/discover/"+kind, q, &out); err != nil {
		return nil, err
	}
	return mapSearchItems(kind, out.Results), nil
}

// Detail fetches /{kind}/{id}. The id goes through verbatim; TMDB itself
// rejects ids it does not know.
func (c *Client) Detail(ctx context.Context, kind, id string) (*catalog.DetailItem, error) {
	var out result
	if err := c.get(ctx, "/"+kind+"/"+url.PathEscape(id), url.Values{}, &out); err != nil {
		return nil, err
	}

	item := mapDetailItem(kind, out)
	return &item, nil
}
