package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/config"
	"storefront/internal/logging"
	"storefront/internal/shop"
	"storefront/internal/ws"
	"storefront/middleware"
	"storefront/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	resetDB := flag.Bool("reset-db", false, "drop and recreate the storage table (gorm driver only)")
	flag.Parse()

	logging.ConfigureRuntime()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	if cfg.JWTSecret == config.DevJWTSecret {
		log.Warn().Msg("JWT_SECRET is the development default")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *resetDB {
		if err := resetDatabase(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to reset database")
		}
	}

	st, err := config.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("Failed to open store")
	}
	defer st.Close()

	if cfg.SeedDemoUsers {
		if err := config.SeedUsers(ctx, st, time.Now()); err != nil {
			log.Error().Err(err).Msg("Failed to seed users")
		}
	}

	hub := ws.NewHub()
	storefront := shop.NewStorefront(st, shop.Options{
		Logger:    logging.Component("storefront"),
		Publisher: hub,
	})
	if err := storefront.Restore(ctx); err != nil {
		log.Warn().Err(err).Msg("Some state could not be restored")
	}

	app := fiber.New(fiber.Config{
		AppName:      "Storefront",
		ServerHeader: "Storefront Server/1.0",
		ErrorHandler: middleware.ErrorHandler,
		BodyLimit:    int(shop.MaxAvatarSize) + 64<<10,
	})
	middleware.SetupMiddleware(app, cfg)
	routes.SetupRoutes(app, cfg, storefront, hub)
	middleware.SetupErrorHandler(app)

	go hub.Run(ctx)

	go func() {
		loadCtx, cancel := context.WithTimeout(ctx, cfg.CatalogFetchTimeout())
		defer cancel()
		client := &http.Client{Timeout: cfg.CatalogFetchTimeout()}
		_ = storefront.LoadCatalog(loadCtx, cfg.CatalogSource, client)
	}()

	go func() {
		<-ctx.Done()
		log.Info().Msg("Shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error().Err(err).Msg("Shutdown failed")
		}
	}()

	log.Info().Str("host", cfg.HOST).Str("port", cfg.AppPort).Str("store", cfg.StoreDriver).Msg("🚀 Server starting")

	if err := app.Listen(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

func resetDatabase(cfg *config.Config) error {
	if cfg.StoreDriver != config.DriverGorm {
		return errors.New("-reset-db needs the gorm store driver")
	}
	db, err := config.OpenDatabase(cfg.StoreDSN)
	if err != nil {
		return err
	}
	if err := config.ResetAndMigrate(db); err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
