package anilist

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	t.Setenv("ANILIST_URL", srv.URL)
	return NewClientFromEnv()
}

func decodeGraphQLRequest(t *testing.T, r *http.Request) graphQLRequest {
	t.Helper()
	var req graphQLRequest
	require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
	return req
}

func TestSearchMapsResults(t *testing.T) {
	var captured graphQLRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		captured = decodeGraphQLRequest(t, r)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"Page":{"media":[
			{"id":1,"title":{"english":"Cowboy Bebop","romaji":"Kaubōi Bebappu","native":"カウボーイビバップ"},
			 "coverImage":{"large":"https://img/1.jpg"},"description":"Space bounty hunters.","averageScore":86},
			{"id":2,"title":{"english":null,"romaji":"Shingeki","native":"進撃"},"coverImage":{},"description":null,"averageScore":null}
		]}}}`))
	})

	items, err := client.Search(context.Background(), "cowboy")
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "cowboy", captured.Variables["query"])

	first := items[0]
	assert.Equal(t, "1", first.ItemID)
	assert.Equal(t, "Cowboy Bebop", first.Title)
	require.NotNil(t, first.CommunityRating)
	assert.Equal(t, 8.6, *first.CommunityRating)

	second := items[1]
	assert.Equal(t, "Shingeki", second.Title)
	assert.Nil(t, second.PosterURL)
	assert.Nil(t, second.Overview)
	assert.Nil(t, second.CommunityRating)
}

func TestDiscoverDefaultsToFirstPage(t *testing.T) {
	var captured graphQLRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		captured = decodeGraphQLRequest(t, r)
		_, _ = w.Write([]byte(`{"data":{"Page":{"media":[]}}}`))
	})

	_, err := client.Discover(context.Background(), 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, captured.Variables["page"])

	_, err = client.Discover(context.Background(), 3)
	require.NoError(t, err)
	assert.EqualValues(t, 3, captured.Variables["page"])
}

func TestDetail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"Media":
			{"id":16498,"title":{"romaji":"Shingeki no Kyojin"},"coverImage":{"large":"https://img/16498.jpg"},
			 "description":"Titans.","averageScore":85,"seasonYear":2013,"genres":["Action","Drama"]}}}`))
	})

	item, err := client.Detail(context.Background(), 16498)
	require.NoError(t, err)

	assert.Equal(t, "16498", item.ItemID)
	require.NotNil(t, item.Year)
	assert.Equal(t, 2013, *item.Year)
	assert.Equal(t, []string{"Action", "Drama"}, item.Genres)
	require.NotNil(t, item.CommunityRating)
	assert.Equal(t, 8.5, *item.CommunityRating)
}

func TestDetailMissingMedia(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"Media":null}}`))
	})

	_, err := client.Detail(context.Background(), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "media not found")
}

func TestServerFailuresSurfaceAsOneError(t *testing.T) {
	t.Run("http status", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		})
		_, err := client.Search(context.Background(), "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 429")
	})

	t.Run("graphql errors array", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"errors":[{"message":"Invalid query"}]}`))
		})
		_, err := client.Search(context.Background(), "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid query")
	})

	t.Run("malformed payload", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		})
		_, err := client.Search(context.Background(), "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode response")
	})
}
