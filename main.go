package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"greenwave-ticketing/config"
	"greenwave-ticketing/database"
	"greenwave-ticketing/handlers"
	"greenwave-ticketing/router"
	"greenwave-ticketing/service"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	store := pickStore(logger)

	sys := service.NewSystem()
	snapshot := store.Load()
	sys.Restore(snapshot.Attendees, snapshot.Exhibitions, snapshot.Sales)
	sys.SeedDefaultCatalog()
	logger.Info().
		Int("attendees", len(sys.Attendees)).
		Int("exhibitions", len(sys.Exhibitions)).
		Int("sales", len(sys.Sales)).
		Msg("system state loaded")

	h := handlers.New(sys, store)

	app := fiber.New()
	router.SetupRoutes(app, h)

	go func() {
		if err := app.Listen(config.ListenAddr()); err != nil {
			logger.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	if err := app.Shutdown(); err != nil {
		logger.Error().Err(err).Msg("server shutdown")
	}
	if err := store.Save(h.Snapshot()); err != nil {
		logger.Error().Err(err).Msg("snapshot save failed")
	} else {
		logger.Info().Msg("snapshot saved")
	}
}

// pickStore prefers Mongo when a connection string is configured and falls
// back to local JSON files when it is absent or unreachable.
func pickStore(logger zerolog.Logger) database.SnapshotStore {
	if connString, err := config.GetSecret("MONGODB_CONNSTRING"); err == nil {
		store, connErr := database.NewMongoStore(connString)
		if connErr == nil {
			logger.Info().Msg("using mongo snapshot store")
			return store
		}
		logger.Warn().Err(connErr).Msg("mongo unavailable, falling back to local snapshots")
	}
	logger.Info().Str("dir", config.SnapshotDir()).Msg("using local snapshot store")
	return database.NewLocalStore(config.SnapshotDir())
}
