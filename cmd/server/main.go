package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/odlaor/paradise-resort/internal/booking"
	"github.com/odlaor/paradise-resort/internal/catalog"
	"github.com/odlaor/paradise-resort/internal/config"
	"github.com/odlaor/paradise-resort/internal/database"
	"github.com/odlaor/paradise-resort/internal/handler"
	"github.com/odlaor/paradise-resort/internal/middleware"
	"github.com/odlaor/paradise-resort/internal/queue"
	"github.com/odlaor/paradise-resort/internal/repository"
	"github.com/odlaor/paradise-resort/internal/router"
	"github.com/odlaor/paradise-resort/internal/service"
)

func main() {
	// .env is a development convenience; in production the variables come
	// from the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer db.Close()

	bookingRepo := repository.NewBookingRepo(db)
	reportRepo := repository.NewReportRepo(db)
	publisher := service.NewQueuePublisher("")
	gen := booking.NewGenerator()

	bookingHandler := handler.NewBookingHandler(cat, bookingRepo, gen, publisher)
	adminHandler := handler.NewAdminHandler(bookingRepo, publisher)
	reportHandler := handler.NewReportHandler(reportRepo, cat)

	// Redis is optional; with no client both middlewares become no-ops.
	rdb := config.NewRedisClient()
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	limitMW := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e)
	router.RegisterPublic(e, bookingHandler, cacheMW, limitMW)
	router.RegisterAdmin(e, adminHandler, reportHandler)

	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
