package authorization

import (
	"net/http"

	jwt "github.com/appleboy/gin-jwt/v2"
	"github.com/gin-gonic/gin"
)

// Guard wraps the JWT middleware so other modules can protect their
// routes without importing the JWT machinery themselves.
type Guard struct {
	jwt *jwt.GinJWTMiddleware
}

// Guard returns the module's guard instance.
func (m *Module) Guard() *Guard {
	if m == nil || m.jwtMiddleware == nil {
		return nil
	}
	return &Guard{jwt: m.jwtMiddleware}
}

// RequireAuthenticated ensures the request carries a valid JWT.
func (g *Guard) RequireAuthenticated() gin.HandlerFunc {
	if g == nil || g.jwt == nil {
		return func(c *gin.Context) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		}
	}
	return g.jwt.MiddlewareFunc()
}

// CurrentUserID returns the authenticated user's id from the request's
// JWT claims, or zero when the request carries no usable identity.
func (g *Guard) CurrentUserID(c *gin.Context) uint64 {
	if g == nil || g.jwt == nil {
		return 0
	}
	return extractUserID(jwt.ExtractClaims(c))
}
