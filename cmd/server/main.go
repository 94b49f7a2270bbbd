package main

import (
	"context"
	"net/http"

	"bbqbuddy/backend/internal/config"
	"bbqbuddy/backend/internal/database"
	"bbqbuddy/backend/internal/feed"
	"bbqbuddy/backend/internal/handler"
	"bbqbuddy/backend/internal/logger"
	"bbqbuddy/backend/internal/sessions"
	"bbqbuddy/backend/internal/social"
	"bbqbuddy/backend/internal/stats"
	"bbqbuddy/backend/internal/storage"
	"bbqbuddy/backend/internal/store"

	"github.com/gin-gonic/gin"
)

func init() {
	config.LoadConfig()
}

// @title           BBQ Buddy API
// @version         1.0
// @description     Log BBQ sessions, follow other grillers and hand out yummies.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.AppConfig
	logger.Init(cfg.LogLevel)

	// Connect to the database
	database.Connect(cfg.DatabaseDriver, cfg.DatabaseURL)

	images := imageStore(cfg)
	st := store.New(database.DB)
	assembler := feed.NewAssembler(st, cfg.FeedPageSize)
	socialService := social.NewService(database.DB, st, images)
	sessionService := sessions.NewService(st, assembler, images, sessions.Limits{
		MaxImages:     cfg.MaxSessionImages,
		MaxImageBytes: cfg.MaxImageBytes,
		OwnPageSize:   cfg.OwnPageSize,
	})

	h := handler.New(assembler, sessionService, socialService, stats.NewService(database.DB))
	h.MaxImageBytes = cfg.MaxImageBytes

	router := handler.SetupRouter(h, socialService, cfg.Origins())
	if mem, ok := images.(*storage.MemoryStore); ok {
		router.GET("/assets/*key", gin.WrapH(http.StripPrefix("/assets", mem)))
	}

	logger.Log.WithField("port", cfg.Port).Info("Server is running")
	logger.Log.Infof("Swagger UI is available at http://localhost:%s/swagger/index.html", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Log.WithError(err).Fatal("Server stopped")
	}
}

// imageStore uses S3 when a bucket is configured and keeps images in memory otherwise.
func imageStore(cfg *config.Config) storage.ImageStore {
	if cfg.S3Bucket == "" {
		logger.Log.Warn("S3_BUCKET not set, images are kept in memory")
		return storage.NewMemoryStore(cfg.PublicAssetURL)
	}

	s3Store, err := storage.NewS3Store(context.Background(), cfg.S3Region, cfg.S3Bucket, cfg.PublicAssetURL)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to configure S3")
	}
	return s3Store
}
