package anilist

import (
	"net/http"
	"strconv"

	"andrate_back/catalog"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the anime catalog endpoints under /catalog/anime.
func RegisterRoutes(router *gin.Engine, client *Client) {
	group := router.Group("/catalog/anime")

	group.GET("/search", func(c *gin.Context) {
		items, err := client.Search(c.Request.Context(), c.Query("query"))
		if err != nil {
			catalog.RespondUpstreamError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"results": items})
	})

	group.GET("/discover", func(c *gin.Context) {
		items, err := client.Discover(c.Request.Context(), catalog.ParsePage(c.Query("page")))
		if err != nil {
			catalog.RespondUpstreamError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"results": items})
	})

	group.GET("/:id", func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "anime id must be numeric"})
			return
		}

		item, err := client.Detail(c.Request.Context(), id)
		if err != nil {
			catalog.RespondUpstreamError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	})
}
