package main

import (
	"log"
	"os"

	"andrate_back/anilist"
	"andrate_back/authorization"
	"andrate_back/library"
	"andrate_back/tmdb"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func mustLoadEnv() {
	_ = godotenv.Load()
}

func main() {
	mustLoadEnv()

	r := gin.Default()

	// The UI lives in a local webview; its origin is not ours.
	r.Use(cors.Default())

	authModule, err := authorization.RegisterRoutes(r)
	if err != nil {
		log.Fatalf("register auth routes: %v", err)
	}

	if _, err := library.RegisterRoutes(r, authModule.Guard()); err != nil {
		log.Fatalf("register library routes: %v", err)
	}

	anilist.RegisterRoutes(r, anilist.NewClientFromEnv())
	tmdb.RegisterRoutes(r, tmdb.NewClientFromEnv())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("start server: %v", err)
	}
}
