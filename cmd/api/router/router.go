package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"blog-backend/cmd/api/handlers"
	"blog-backend/cmd/api/middleware"
	"blog-backend/cmd/api/services"
	_ "blog-backend/docs"
)

// Deps are the collaborators the HTTP layer needs.
type Deps struct {
	Blog *services.BlogService
	Tags *services.TagService
	Auth *services.AuthService
	// Import backs POST /api/admin/blog/import. Nil leaves the route out.
	Import *services.ImportService
	Feed   handlers.FeedInfo

	// LoginLimiter throttles POST /api/auth/login per client IP. Nil disables it.
	LoginLimiter *middleware.IPRateLimiter
	// Registry receives the HTTP metrics and is served on /metrics. Nil disables both.
	Registry *prometheus.Registry
	// Health reports storage reachability for /health. Nil always reports ok.
	Health func(ctx context.Context) error
}

func New(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestTrace())
	if d.Registry != nil {
		r.Use(middleware.NewMetrics(d.Registry).Middleware())
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))
	}

	r.GET("/health", func(c *gin.Context) {
		if d.Health != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
			defer cancel()
			if err := d.Health(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "storage": "down"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")

	blog := api.Group("/blog")
	{
		blog.GET("", handlers.ListPostsHandler(d.Blog))
		blog.GET("/featured", handlers.FeaturedPostsHandler(d.Blog))
		blog.GET("/recent", handlers.RecentPostsHandler(d.Blog))
		blog.GET("/rss", handlers.RSSFeedHandler(d.Blog, d.Feed))
		blog.GET("/slug/:slug", handlers.GetPostBySlugHandler(d.Blog))
		blog.GET("/:id", handlers.GetPostHandler(d.Blog))
	}

	tag := api.Group("/tag")
	{
		tag.GET("", handlers.ListTagsHandler(d.Tags))
		tag.GET("/paginated", handlers.ListTagsPaginatedHandler(d.Tags))
		tag.GET("/popular", handlers.PopularTagsHandler(d.Tags))
		tag.GET("/name/:name", handlers.GetTagByNameHandler(d.Tags))
		tag.GET("/post/:postId", handlers.TagsForPostHandler(d.Tags))
		tag.GET("/:id", handlers.GetTagHandler(d.Tags))
	}

	authGroup := api.Group("/auth")
	{
		login := []gin.HandlerFunc{}
		if d.LoginLimiter != nil {
			login = append(login, middleware.RateLimit(d.LoginLimiter))
		}
		login = append(login, handlers.LoginHandler(d.Auth))
		authGroup.POST("/login", login...)
		authGroup.GET("/admin-check", middleware.RequireAuth(d.Auth), handlers.AdminCheckHandler())
	}

	admin := api.Group("/admin", middleware.AdminAuthMiddleware(d.Auth))

	adminBlog := admin.Group("/blog")
	{
		adminBlog.GET("/generate-slug", handlers.GenerateSlugHandler(d.Blog))
		adminBlog.POST("/reading-time", handlers.ReadingTimeHandler(d.Blog))
		adminBlog.POST("", handlers.AdminCreatePostHandler(d.Blog))
		if d.Import != nil {
			adminBlog.POST("/import", handlers.ImportFeedHandler(d.Import))
		}
		adminBlog.GET("/:id", handlers.AdminGetPostHandler(d.Blog))
		adminBlog.PUT("/:id", handlers.AdminUpdatePostHandler(d.Blog))
		adminBlog.DELETE("/:id", handlers.AdminDeletePostHandler(d.Blog))
		adminBlog.POST("/:id/feature", handlers.AdminSetFeaturedHandler(d.Blog))
	}

	adminTags := admin.Group("/tags")
	{
		adminTags.GET("", handlers.ListTagsHandler(d.Tags))
		adminTags.GET("/paginated", handlers.ListTagsPaginatedHandler(d.Tags))
		adminTags.POST("", handlers.AdminCreateTagHandler(d.Tags))
		adminTags.POST("/post/:postId", handlers.AddTagsToPostHandler(d.Tags))
		adminTags.DELETE("/post/:postId", handlers.RemoveTagsFromPostHandler(d.Tags))
		adminTags.GET("/:id", handlers.GetTagHandler(d.Tags))
		adminTags.PUT("/:id", handlers.AdminUpdateTagHandler(d.Tags))
		adminTags.DELETE("/:id", handlers.AdminDeleteTagHandler(d.Tags))
	}

	return r
}

// WithCORS wraps h with a CORS policy for the given origins. No origins
// allows any origin.
func WithCORS(h http.Handler, origins []string) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Location", "X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           600,
	}).Handler(h)
}
