package main

import (
	"context"
	_ "embed"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/arkasala/badmintongo-storefront/api"
	"github.com/arkasala/badmintongo-storefront/bookingapi"
	"github.com/arkasala/badmintongo-storefront/bookings"
	"github.com/arkasala/badmintongo-storefront/cart"
	"github.com/arkasala/badmintongo-storefront/catalog"
	"github.com/arkasala/badmintongo-storefront/checkout"
	"github.com/arkasala/badmintongo-storefront/config"
	"github.com/arkasala/badmintongo-storefront/storage"
)

//go:embed database/setup.sql
var setupSQL string

func main() {
	logger := slog.Default().With("component", "main")

	cfg, err := config.Load()

	if err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	var persister cart.Persister

	switch cfg.CartBackend {
	case "postgres":
		logger.Info("connecting to PostgreSQL database")
		conn, err := pgx.Connect(context.Background(), cfg.DatabaseURL)

		if err != nil {
			logger.Error("Unable to connect to database", "err", err)
			os.Exit(1)
		}

		defer conn.Close(context.Background())

		_, err = conn.Exec(context.Background(), setupSQL)
		if err != nil {
			logger.Error("failed to initialize tables", "err", err)
			os.Exit(1)
		} else {
			logger.Info("initialized database tables")
		}

		persister = storage.NewPostgresStore(conn)
	case "redis":
		logger.Info("connecting to Redis", "addr", cfg.RedisAddr)
		store := storage.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

		if err := store.Ping(context.Background()); err != nil {
			logger.Error("Unable to connect to Redis", "err", err)
			os.Exit(1)
		}

		persister = store
	default:
		logger.Warn("using in-memory cart store, carts will not survive a restart")
		persister = storage.NewMemoryStore()
	}

	client := bookingapi.NewClient(cfg.BookingAPIURL, cfg.CourtsCacheTTL)

	cartStore := cart.NewStore(persister)
	catalogService := catalog.NewService(client)
	checkoutService := checkout.NewService(cartStore, client)
	bookingsService := bookings.NewService(client)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	session := api.CartSession()

	// CATALOG API

	catalogHandler := api.NewCatalogHandler(catalogService, cfg.ScrollerDays)
	catalogHandler.Register(r.Group("/api/courts"))
	r.GET("/api/dates", catalogHandler.Dates)

	// CART API

	cartRouter := r.Group("/api/cart")
	cartRouter.Use(session)
	api.NewCartHandler(cartStore).Register(cartRouter)

	// CHECKOUT API

	checkoutRouter := r.Group("/api/checkout")
	checkoutRouter.Use(session)
	api.NewCheckoutHandler(checkoutService).Register(checkoutRouter)

	// BOOKINGS API

	api.NewBookingsHandler(bookingsService).Register(r.Group("/api/bookings"))

	r.Run(":" + cfg.Port)
}
