package routes

import (
	"net/http"

	"discussion-board/config"
	"discussion-board/handlers"
	"discussion-board/helper"
	"discussion-board/middleware"
	"discussion-board/models"
	"discussion-board/pipeline"
	"discussion-board/repositories"
	"discussion-board/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"gorm.io/gorm"
)

// NewRouter wires repositories, services and handlers over db and mounts the
// HTML and JSON routes. Wrap the result with middleware.MethodOverride before
// serving so HTML forms can reach the PUT and DELETE routes.
func NewRouter(db *gorm.DB, renderer render.HTMLRender, cfg config.AppConfig) *gin.Engine {
	httpHelper := helper.NewHTTPHelper()
	flashes := middleware.NewFlashStore(cfg.SessionSecret, cfg.SSL)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	discussionRepo := repositories.NewDiscussionRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	tagRepo := repositories.NewTagRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	discussionService := services.NewDiscussionService(discussionRepo)
	commentService := services.NewCommentService(commentRepo, discussionRepo)
	tagService := services.NewTagService(tagRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, httpHelper, cfg.SSL)
	discussionHandler := handlers.NewDiscussionHandler(discussionService)
	commentHandler := handlers.NewCommentHandler(commentService, httpHelper)
	tagHandler := handlers.NewTagHandler(tagService, httpHelper)

	flow := &pipeline.Orchestrator{
		BeforeRedirect: func(c *gin.Context, st *pipeline.State, _ gin.H) {
			if st.Flash != "" {
				flashes.Add(c, st.Flash)
			}
		},
		BeforeRender: func(c *gin.Context, _ *pipeline.State, data gin.H) {
			data["currentUser"] = middleware.GetCurrentUser(c)
			data["flashes"] = flashes.Pop(c)
		},
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Security(cfg.SSL))
	router.HTMLRender = renderer

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		v1.GET("/tags", tagHandler.GetTags)
		v1.GET("/tags/:id", tagHandler.GetTag)

		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/profile", authHandler.GetProfile)
			protected.POST("/tags", middleware.RequireRole(models.RoleAdmin), tagHandler.CreateTag)
		}
	}

	// HTML routes
	web := router.Group("/")
	web.Use(middleware.ErrorHandler(httpHelper), middleware.CurrentUser())
	{
		web.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusFound, "/discussions")
		})
		web.POST("/logout", authHandler.Logout)

		d := discussionHandler
		discussions := web.Group("/discussions")
		{
			discussions.GET("", flow.Chain(d.Index, d.IndexView))
			discussions.GET("/new", middleware.RequireUser(), flow.Chain(d.New))
			discussions.POST("", middleware.RequireUser(),
				flow.Chain(d.BindForm, middleware.ValidateDiscussion(httpHelper), d.Create, d.RedirectView, d.New))
			discussions.GET("/:id", flow.Chain(d.Show, d.ShowView))
			discussions.GET("/:id/edit", middleware.RequireUser(), flow.Chain(d.Edit))
			discussions.PUT("/:id", middleware.RequireUser(), flow.Chain(d.BindForm, d.Update, d.RedirectView))
			discussions.PATCH("/:id", middleware.RequireUser(), flow.Chain(d.BindForm, d.Update, d.RedirectView))
			discussions.DELETE("/:id", middleware.RequireUser(), flow.Chain(d.Delete, d.RedirectView))
			discussions.POST("/:id/comments", middleware.RequireUser(), flow.Chain(commentHandler.Create, d.RedirectView))
		}
	}

	return router
}
