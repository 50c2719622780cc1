package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	blogHTTP "github.com/h9rms/wanderlust-grid-bloom/internal/controller/http"
	"github.com/h9rms/wanderlust-grid-bloom/internal/relay"
	"github.com/h9rms/wanderlust-grid-bloom/internal/repo/persistent"
	"github.com/h9rms/wanderlust-grid-bloom/internal/session"
	"github.com/h9rms/wanderlust-grid-bloom/internal/usecase"
	"github.com/h9rms/wanderlust-grid-bloom/pkg/config"
	"github.com/h9rms/wanderlust-grid-bloom/pkg/jwt"
	"github.com/h9rms/wanderlust-grid-bloom/pkg/logger"
	"github.com/h9rms/wanderlust-grid-bloom/pkg/middleware"
	"github.com/h9rms/wanderlust-grid-bloom/pkg/queue"
	"github.com/h9rms/wanderlust-grid-bloom/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/h9rms/wanderlust-grid-bloom/docs" // Swagger docs
)

func corsConfig() cors.Config {
	return cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, queueClient *queue.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)
	sessions := session.NewBroker()

	// Log session transitions; subscribers drop events rather than block.
	events, cancelEvents := sessions.Subscribe(16)
	defer cancelEvents()
	go func() {
		for evt := range events {
			log.Info("Session %s for user %s", evt.Type, evt.UserID)
		}
	}()

	// Initialize repositories
	postRepo := persistent.NewPostRepository(db)
	profileRepo := persistent.NewProfileRepository(db)
	interactionRepo := persistent.NewInteractionRepository(db)
	userRepo := persistent.NewUserRepository(db)

	// Initialize use cases
	likeCounter := usecase.NewRedisLikeCounter(redisClient)
	postUseCase := usecase.NewPostUseCase(postRepo, profileRepo, s3Client, queueClient, log)
	interactionUseCase := usecase.NewInteractionUseCase(interactionRepo, postRepo, likeCounter, queueClient, log)
	profileUseCase := usecase.NewProfileUseCase(profileRepo, s3Client, log)
	authUseCase := usecase.NewAuthUseCase(userRepo, profileRepo, jwtService, sessions, log)
	chatUseCase := usecase.NewChatUseCase(relay.NewDeepseekClient(cfg), log)

	// Initialize HTTP handlers
	postHandler := blogHTTP.NewPostHandler(postUseCase, log)
	interactionHandler := blogHTTP.NewInteractionHandler(interactionUseCase, log)
	profileHandler := blogHTTP.NewProfileHandler(profileUseCase, log)
	authHandler := blogHTTP.NewAuthHandler(authUseCase, log)
	chatHandler := blogHTTP.NewChatHandler(chatUseCase, log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(corsConfig()))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))

	// Public routes; an attached token still resolves the viewer so
	// like/save state reads are viewer-scoped.
	public := api.Group("")
	public.Use(middleware.OptionalAuthMiddleware(jwtService))
	{
		public.POST("/auth/register", authHandler.Register)
		public.POST("/auth/login", authHandler.Login)
		public.GET("/posts", postHandler.ListPosts)
		public.GET("/posts/:id", postHandler.GetPost)
		public.GET("/posts/user/:user_id", postHandler.GetUserPosts)
		public.GET("/posts/:id/likes", interactionHandler.GetLikeState)
		public.GET("/posts/:id/saves", interactionHandler.GetSaveState)
		public.GET("/profiles/:user_id", profileHandler.GetProfile)
		public.POST("/chat", chatHandler.Chat)
	}

	// Authenticated routes
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(jwtService))
	{
		authed.GET("/auth/me", authHandler.Me)
		authed.POST("/auth/signout", authHandler.SignOut)
		authed.POST("/posts", postHandler.CreatePost)
		authed.PUT("/posts/:id", postHandler.UpdatePost)
		authed.DELETE("/posts/:id", postHandler.DeletePost)
		authed.GET("/posts/liked", postHandler.GetLikedPosts)
		authed.GET("/posts/saved", postHandler.GetSavedPosts)
		authed.POST("/posts/:id/like", interactionHandler.ToggleLike)
		authed.POST("/posts/:id/save", interactionHandler.ToggleSave)
		authed.PUT("/profiles/me", profileHandler.UpdateProfile)
		authed.POST("/profiles/me/avatar", profileHandler.UploadAvatar)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Blog service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down blog service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Close RabbitMQ connection
	if queueClient != nil {
		queueClient.Close()
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Blog service exited")
}
