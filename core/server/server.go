package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sponlink-api/core/cache"
	"sponlink-api/core/config"
	"sponlink-api/core/database"
	"sponlink-api/core/logger"
	"sponlink-api/core/middleware"
	"sponlink-api/core/storage"
	"sponlink-api/core/worker"
	"sponlink-api/modules/auth"
	"sponlink-api/modules/event"
	"sponlink-api/modules/importer"
	"sponlink-api/modules/meeting"
	"sponlink-api/modules/notification"
	"sponlink-api/modules/profile"
	"sponlink-api/modules/series"
	"sponlink-api/modules/sponsor"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Run boots the API server and the background worker, blocking until an
// interrupt arrives.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.InitDB(database.DatabaseConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
	})
	if err != nil {
		return fmt.Errorf("failed to init database: %w", err)
	}
	defer db.Close()

	redisCache, err := cache.NewRedisCache(cache.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return fmt.Errorf("failed to init redis: %w", err)
	}

	store := storage.NewS3Storage(cfg.S3)

	w := worker.New(worker.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.CORS())

	mw := middleware.NewMiddleware(redisCache)
	idb := database.GetDB()

	auth.Init(e, idb, redisCache, mw)
	profile.Init(e, idb, mw)
	event.Init(e, idb, mw, store)
	series.Init(e, idb, mw)
	notifSvc := notification.Init(e, idb, mw)
	sponsor.Init(e, idb, mw, notifSvc)
	meeting.Init(e, idb, mw, w)
	importer.Init(e, idb, mw, w)

	meeting.RegisterWorker(w, idb)
	importer.RegisterWorker(w, idb)
	w.Start()
	defer w.Shutdown()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", err)
		}
	}()
	logger.Info("Server started", "addr", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}
