package router

import (
	"time"

	"anima/config"
	"anima/internal/handler"
	"anima/internal/middleware"
	"anima/internal/models"
	"anima/internal/repository"
	"anima/pkg/cloudinary"
	"anima/pkg/mailer"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, cloud cloudinary.Client, mail mailer.Mailer) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(corsMiddleware(&cfg.CORS))
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(300, 60*time.Second)))

	// Repositories
	configRepo := repository.NewConfigRepository(db)
	userRepo := repository.NewUserRepository(db)
	contactRepo := repository.NewContactRepository(db)
	articleRepo := repository.NewArticleRepository(db)
	testimonialRepo := repository.NewOrderedRepository[models.Testimonial](db, "is_active")
	faqRepo := repository.NewOrderedRepository[models.FaqItem](db, "is_active")
	serviceRepo := repository.NewOrderedRepository[models.Service](db, "is_active")
	photoRepo := repository.NewOrderedRepository[models.PhotoCarouselItem](db, "is_active")
	specialtyRepo := repository.NewOrderedRepository[models.Specialty](db, "is_active")
	codeRepo := repository.NewOrderedRepository[models.CustomCode](db, "is_active")
	galleryRepo := repository.NewOrderedRepository[models.GalleryImage](db, "is_active")

	// Handlers
	authHandler := handler.NewAuthHandler(&cfg.JWT, userRepo)
	configHandler := handler.NewConfigHandler(configRepo)
	uploadHandler := handler.NewUploadHandler(cloud, cfg.Cloudinary.Folder)
	contactHandler := handler.NewContactHandler(contactRepo, mail, cfg.SMTP.To)
	articleHandler := handler.NewArticleHandler(articleRepo, map[string]string{
		"slug": "slug", "title": "title", "excerpt": "excerpt", "content": "content",
		"cover_image_url": "cover_image_url", "is_featured": "is_featured", "order": "sort_order",
	})
	testimonialHandler := handler.NewContentHandler(testimonialRepo, map[string]string{
		"author_name": "author_name", "author_detail": "author_detail", "quote": "quote",
		"rating": "rating", "avatar_url": "avatar_url", "is_active": "is_active", "order": "sort_order",
	})
	faqHandler := handler.NewContentHandler(faqRepo, map[string]string{
		"question": "question", "answer": "answer", "is_active": "is_active", "order": "sort_order",
	})
	serviceHandler := handler.NewContentHandler(serviceRepo, map[string]string{
		"title": "title", "description": "description", "icon": "icon",
		"duration": "duration", "price_note": "price_note", "is_active": "is_active", "order": "sort_order",
	})
	photoHandler := handler.NewContentHandler(photoRepo, map[string]string{
		"image_url": "image_url", "thumbnail_url": "thumbnail_url", "caption": "caption",
		"is_active": "is_active", "order": "sort_order",
	})
	specialtyHandler := handler.NewContentHandler(specialtyRepo, map[string]string{
		"name": "name", "description": "description", "icon": "icon",
		"is_active": "is_active", "order": "sort_order",
	})
	codeHandler := handler.NewContentHandler(codeRepo, map[string]string{
		"name": "name", "code": "code", "placement": "placement",
		"is_active": "is_active", "order": "sort_order",
	})
	galleryHandler := handler.NewContentHandler(galleryRepo, map[string]string{
		"image_url": "image_url", "thumbnail_url": "thumbnail_url", "alt_text": "alt_text",
		"caption": "caption", "is_active": "is_active", "order": "sort_order",
	})

	// Crawlers get a pre-rendered meta shell on public page paths.
	r.Use(middleware.PrerenderForBots(&cfg.Site, configRepo, articleRepo))

	api := r.Group("/api")
	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(&cfg.JWT), middleware.AdminRequired())

	authGroup := api.Group("/admin/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)
		authGroup.PATCH("/change-password", middleware.AuthRequired(&cfg.JWT), middleware.AdminRequired(), authHandler.ChangePassword)
	}

	mountOrdered(api, admin, "testimonials", testimonialHandler)
	mountOrdered(api, admin, "faq", faqHandler)
	mountOrdered(api, admin, "services", serviceHandler)
	mountOrdered(api, admin, "photos", photoHandler)
	mountOrdered(api, admin, "specialties", specialtyHandler)
	mountOrdered(api, admin, "custom-codes", codeHandler)
	mountOrdered(api, admin, "gallery", galleryHandler)

	// Articles carry the shared contract plus slug reads, the featured
	// strip and the publish lifecycle.
	api.GET("/articles", articleHandler.ListPublic)
	api.GET("/articles/featured", articleHandler.ListFeatured)
	api.GET("/articles/:slug", articleHandler.GetBySlug)
	adminArticles := admin.Group("/articles")
	{
		adminArticles.GET("", articleHandler.ListAdmin)
		adminArticles.POST("", articleHandler.Create)
		adminArticles.PUT("/reorder", articleHandler.Reorder)
		adminArticles.PUT("/:id", articleHandler.Update)
		adminArticles.DELETE("/:id", articleHandler.Delete)
		adminArticles.POST("/:id/publish", articleHandler.Publish)
		adminArticles.POST("/:id/unpublish", articleHandler.Unpublish)
	}

	api.GET("/config", configHandler.ListPublic)
	adminConfig := admin.Group("/config")
	{
		adminConfig.GET("", configHandler.ListAdmin)
		adminConfig.POST("", configHandler.Upsert)
		adminConfig.PUT("/section-colors/:section", configHandler.MergeSectionColors)
		adminConfig.DELETE("/:key", configHandler.Delete)
	}

	api.POST("/contact", contactHandler.Create)
	admin.GET("/contact", contactHandler.List)
	admin.PUT("/contact/:id/handled", contactHandler.MarkHandled)

	admin.POST("/uploads", uploadHandler.Upload)

	return r
}

// mountOrdered wires the shared CRUD + reorder contract for one content type.
func mountOrdered[T any](public, admin *gin.RouterGroup, path string, h *handler.ContentHandler[T]) {
	public.GET("/"+path, h.ListPublic)
	g := admin.Group("/" + path)
	g.GET("", h.ListAdmin)
	g.POST("", h.Create)
	g.PUT("/reorder", h.Reorder)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func corsMiddleware(cfg *config.CORSConfig) gin.HandlerFunc {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}
	if len(cfg.AllowedOrigins) > 0 {
		c.AllowOrigins = cfg.AllowedOrigins
	} else {
		c.AllowAllOrigins = true
		c.AllowCredentials = false
	}
	return cors.New(c)
}
