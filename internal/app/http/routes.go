package routes

import (
	adminapi "portfolio-app/internal/api/admin"
	artworksapi "portfolio-app/internal/api/artworks"
	authapi "portfolio-app/internal/api/auth"
	"portfolio-app/internal/app/http/middleware"
	"portfolio-app/internal/cache"
	"portfolio-app/internal/store"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, repo *store.Repository, viewCache cache.ViewCache) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public, sanitized
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())
	public.POST("/login", authapi.Login)

	// Public reads: never fail, sample data covers store outages
	art := artworksapi.NewHandler(repo, viewCache)
	r.GET("/artworks", art.List)
	r.GET("/artworks/featured", art.ListFeatured)
	r.GET("/artworks/:id", art.Get)

	// Admin panel
	adm := adminapi.NewHandler(repo, viewCache)
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/artworks", adm.List)
	admin.POST("/artworks", adm.Create)
	admin.PUT("/artworks/:id", adm.Update)
	admin.DELETE("/artworks/:id", adm.Delete)
}
