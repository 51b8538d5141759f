package catalog

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// RespondUpstreamError writes an adapter failure as a bad gateway. The
// upstream error message is passed through opaquely; callers cannot tell
// a transport failure from a malformed payload, and no retry happens.
func RespondUpstreamError(c *gin.Context, err error) {
	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}

// ParsePage interprets an optional page query parameter. Anything
// missing, malformed or below one means the first page.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
