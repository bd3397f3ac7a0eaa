package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apiHTTP "github.com/shripad-gm/inceptrix/internal/controller/http"
	"github.com/shripad-gm/inceptrix/internal/repo/persistent"
	"github.com/shripad-gm/inceptrix/internal/usecase"
	"github.com/shripad-gm/inceptrix/pkg/config"
	"github.com/shripad-gm/inceptrix/pkg/jwt"
	"github.com/shripad-gm/inceptrix/pkg/logger"
	"github.com/shripad-gm/inceptrix/pkg/middleware"
	"github.com/shripad-gm/inceptrix/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo"
)

func Run(cfg *config.Config, log *logger.Logger, client *mongo.Client, db *mongo.Database, s3Client *s3.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize repositories
	postRepo := persistent.NewPostRepository(db)
	userRepo := persistent.NewUserRepository(db)
	notificationRepo := persistent.NewNotificationRepository(db)
	adminRepo := persistent.NewAdminContentRepository(db)

	// Initialize use cases
	postUseCase := usecase.NewPostUseCase(postRepo, userRepo, notificationRepo, s3Client, log)
	adminUseCase := usecase.NewAdminUseCase(postRepo, userRepo, adminRepo, cfg.PopularLikeThreshold, log)

	// Initialize HTTP handlers
	postHandler := apiHTTP.NewPostHandler(postUseCase, log)
	adminHandler := apiHTTP.NewAdminHandler(adminUseCase, log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(jwtService))
	api.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))

	{
		api.POST("/posts", postHandler.CreatePost)
		api.GET("/posts", postHandler.GetAllPosts)
		api.DELETE("/posts/:id", postHandler.DeletePost)
		api.POST("/posts/:id/comment", postHandler.CommentOnPost)
		api.POST("/posts/:id/like", postHandler.LikeUnlikePost)
		api.GET("/posts/liked/:id", postHandler.GetLikedPosts)
		api.GET("/posts/following", postHandler.GetFollowingPosts)
		api.GET("/posts/user/:username", postHandler.GetUserPosts)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AdminMiddleware())
	{
		admin.POST("/pushadmin", adminHandler.PushToAdmin)
		admin.GET("/all", adminHandler.GetAdminContent)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Server starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close MongoDB connection
	if err := client.Disconnect(ctx); err != nil {
		log.Error("Error closing MongoDB: %v", err)
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Server exited")
}
