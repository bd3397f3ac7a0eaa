package main

import (
	"context"
	"time"

	"github.com/shripad-gm/inceptrix/internal/app"
	"github.com/shripad-gm/inceptrix/pkg/cache"
	"github.com/shripad-gm/inceptrix/pkg/config"
	"github.com/shripad-gm/inceptrix/pkg/database"
	"github.com/shripad-gm/inceptrix/pkg/logger"
	"github.com/shripad-gm/inceptrix/pkg/s3"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// @title           Inceptrix API
// @version         1.0
// @description     Social network backend for posts, feeds, and admin content curation
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:5000
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()

	if cfg.JWTSecret == "your-secret-key-change-in-production" {
		log.Warn("JWT_SECRET is using the default value, set it in production")
	}

	client, err := database.NewMongoClient(cfg)
	if err != nil {
		log.Error("Failed to connect to MongoDB: %v", err)
		panic(err)
	}
	db := client.Database(cfg.MongoDBName)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		cancel()
		log.Error("Failed to create indexes: %v", err)
		panic(err)
	}
	cancel()

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (continuing without rate limiting)", err)
		redisClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to initialize S3 client: %v", err)
		panic(err)
	}

	app.Run(cfg, log, client, db, s3Client, redisClient)
}
