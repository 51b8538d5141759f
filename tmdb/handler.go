package tmdb

import (
	"errors"
	"net/http"

	"andrate_back/catalog"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the movie and tv catalog endpoints under
// /catalog/{movie,tv}.
func RegisterRoutes(router *gin.Engine, client *Client) {
	group := router.Group("/catalog")
	for _, kind := range []string{KindMovie, KindTV} {
		registerKind(group, client, kind)
	}
}

func registerKind(group *gin.RouterGroup, client *Client, kind string) {
	group.GET("/"+kind+"/search", func(c *gin.Context) {
		items, err := client.Search(c.Request.Context(), kind, c.Query("query"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"results": items})
	})

	group.GET("/"+kind+"/discover", func(c *gin.Context) {
		items, err := client.Discover(c.Request.Context(), kind, catalog.ParsePage(c.Query("page")))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"results": items})
	})

	group.GET("/"+kind+"/:id", func(c *gin.Context) {
		item, err := client.Detail(c.Request.Context(), kind, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	})
}

func respondError(c *gin.Context, err error) {
	if errors.Is(err, ErrCredentialsMissing) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	catalog.RespondUpstreamError(c, err)
}
