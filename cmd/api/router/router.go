package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/EISEC/spb-remont/cmd/api/handlers"
	"github.com/EISEC/spb-remont/cmd/api/middleware"
	_ "github.com/EISEC/spb-remont/docs"
	"github.com/EISEC/spb-remont/services"
	"github.com/EISEC/spb-remont/taxonomy"
	"github.com/EISEC/spb-remont/wpclient"
)

// New wires the HTTP surface around one WordPress client and one shared
// taxonomy cache.
func New(client *wpclient.Client) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestTrace())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := client.Health(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "wordpress": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		cache := taxonomy.New(client)
		blogSvc := services.NewBlogService(client, cache)
		blog := api.Group("/blog")
		{
			blog.GET("/posts", handlers.ListPostsHandler(blogSvc))
			blog.GET("/posts/:slug", handlers.GetPostBySlugHandler(blogSvc))
			blog.GET("/popular", handlers.PopularPostsHandler(blogSvc))
			blog.GET("/related", handlers.RelatedPostsHandler(blogSvc))
			blog.GET("/suggest", handlers.SuggestHandler(blogSvc))
			blog.GET("/slugs", handlers.SlugsHandler(blogSvc))
			blog.GET("/categories", handlers.CategoriesHandler(blogSvc))
			blog.GET("/tags", handlers.TagsHandler(blogSvc))
		}

		leadSvc := services.NewLeadService(nil)
		api.POST("/leads", handlers.CreateLeadHandler(leadSvc))

		estimateSvc := services.NewEstimateService()
		api.POST("/estimate", handlers.EstimateHandler(estimateSvc))
	}

	return r
}
