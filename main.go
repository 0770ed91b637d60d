package main

import (
	"log"
	"os"
	"time"

	"portfolio-app/config"
	"portfolio-app/database"
	routes "portfolio-app/internal/app/http"
	"portfolio-app/internal/cache"
	miniostorage "portfolio-app/internal/storage/minio"
	"portfolio-app/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()

	// Store configuration is evaluated once here: without it, reads serve
	// the built-in sample collection and writes report an unconfigured store.
	var db *gorm.DB
	var objects store.ObjectStore
	if database.InitDB() {
		db = database.DB

		client, err := miniostorage.NewClient(
			config.MINIO_ENDPOINT,
			config.MINIO_ACCESS_KEY,
			config.MINIO_SECRET_KEY,
			config.MINIO_BUCKET,
			config.MINIO_PUBLIC_URL,
			config.MINIO_USE_SSL,
		)
		if err != nil {
			log.Fatal("Failed to connect to object storage:", err)
		}
		objects = client
	}

	var viewCache cache.ViewCache = cache.Noop{}
	if config.REDIS_URL != "" {
		rc, err := cache.NewRedis(config.REDIS_URL)
		if err != nil {
			log.Println("Redis unavailable, view caching disabled:", err)
		} else {
			viewCache = rc
		}
	}

	repo := store.New(db, objects, viewCache)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{os.Getenv("CORS_ORIGIN")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, repo, viewCache)

	r.Run(":" + config.PORT)
}
