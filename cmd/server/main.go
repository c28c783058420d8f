package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/strokerox/agenciaHG/internal/config"
	"github.com/strokerox/agenciaHG/internal/database"
	"github.com/strokerox/agenciaHG/internal/handler"
	"github.com/strokerox/agenciaHG/internal/middleware"
	"github.com/strokerox/agenciaHG/internal/queue"
	"github.com/strokerox/agenciaHG/internal/repository"
	"github.com/strokerox/agenciaHG/internal/router"
	"github.com/strokerox/agenciaHG/internal/service"
)

func main() {
	// .env is optional; real deployments set the variables directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: nil disables caching and rate limiting.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; cache and rate limiting disabled")
	}

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	clients := repository.NewClientRepo(db)
	airlines := repository.NewAirlineRepo(db)
	reservations := repository.NewReservationRepo(db)
	sales := repository.NewSaleRepo(db)

	recorder := service.NewSaleRecorder(db, reservations, sales, cfg.CommissionRate)

	authHandler := handler.NewAuthHandler(cfg, users, tokens)
	saleHandler := handler.NewSaleHandler(recorder, sales)
	clientHandler := handler.NewClientHandler(clients)
	airlineHandler := handler.NewAirlineHandler(airlines)

	e := echo.New()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler, cfg.JWTSecret)
	router.RegisterAgency(e, saleHandler, clientHandler, airlineHandler,
		cfg.JWTSecret, config.LoadCacheConfig(), rdb)

	// Background consumer appends recorded sales to the audit log. It runs
	// its own reconnect loop and never stops the server.
	go func() {
		if err := queue.StartSaleConsumer(); err != nil {
			log.Printf("sale consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
