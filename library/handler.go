package library

import (
	"fmt"
	"net/http"

	"andrate_back/authorization"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Module owns the library storage and HTTP surface.
type Module struct {
	db    *gorm.DB
	store *Store
}

// RegisterRoutes mounts the library endpoints under /library. All routes
// require an authenticated session; the user identity always comes from
// the token, never from the request body.
func RegisterRoutes(router *gin.Engine, guard *authorization.Guard) (*Module, error) {
	db, err := openDatabaseFromEnv()
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("library: migrate models: %w", err)
	}

	store := &Store{db: db}

	group := router.Group("/library")
	group.Use(guard.RequireAuthenticated())

	group.PUT("", func(c *gin.Context) {
		var req UpsertRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
			return
		}

		userID := guard.CurrentUserID(c)
		if userID == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		entry := &Entry{
			UserID:    userID,
			ItemID:    req.ItemID,
			ItemType:  req.ItemType,
			Title:     req.Title,
			PosterURL: req.PosterURL,
			Status:    req.Status,
			Rating:    req.Rating,
		}
		if err := store.Upsert(c.Request.Context(), entry); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save library entry"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	group.GET("", func(c *gin.Context) {
		userID := guard.CurrentUserID(c)
		if userID == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		entries, err := store.Query(c.Request.Context(), userID, c.Query("item_type"), c.Query("status"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load library"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"entries": entries})
	})

	return &Module{db: db, store: store}, nil
}
