package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"liveroom/backend/internal/config"
	"liveroom/backend/internal/database"
	"liveroom/backend/internal/handler"
	"liveroom/backend/internal/janitor"
	"liveroom/backend/internal/logger"
	"liveroom/backend/internal/room"
	"liveroom/backend/internal/store"
	"liveroom/backend/internal/user"
	"liveroom/backend/pkg/jwt"

	// Swagger imports
	_ "liveroom/backend/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 5 * time.Second

// backend is what the server needs from a storage driver.
type backend interface {
	room.Store
	user.Store
	janitor.Purger
}

// @title           Live Room API
// @version         1.0
// @description     Rooms where players gather, start a live together and share their results.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Unable to load config, %v", err)
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Unable to build logger, %v", err)
	}
	defer zl.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var st backend
	switch cfg.StoreDriver {
	case config.DriverMemory:
		st = store.NewMemory()
		zl.Warn("using in-memory store, data is lost on restart")
	default:
		db, err := database.Connect(cfg.DatabaseURL, zl)
		if err != nil {
			zl.Fatal("Failed to initialize database", zap.Error(err))
		}
		st = store.NewGorm(db)
	}

	var cache *user.Cache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			zl.Warn("redis unreachable, user cache will miss until it recovers", zap.Error(err))
		}
		cache = user.NewCache(rdb, cfg.UserCacheTTL, zl)
	}

	users := user.NewDirectory(st, jwt.NewIssuer(cfg.JWTSecret), cache, zl)
	rooms := room.NewService(st, users, cfg.RoomMaxMembers, zl)

	if cfg.PurgeSchedule != "" {
		c, err := janitor.Start(st, cfg.PurgeSchedule, cfg.PurgeRetention, zl)
		if err != nil {
			zl.Fatal("Failed to schedule room purge", zap.Error(err))
		}
		defer c.Stop()
	}

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery(), logger.RequestLogger(zl))

	if origins := cfg.Origins(); len(origins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:  origins,
			AllowMethods:  []string{"GET", "POST"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        12 * time.Hour,
		}))
	}

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	handler.New(users, rooms, zl).Register(router)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		zl.Info("Server is running", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("Server stopped unexpectedly", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zl.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("Graceful shutdown failed", zap.Error(err))
	}
}
