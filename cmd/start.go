package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"charge-finder/core/database"
	"charge-finder/core/loader"
	"charge-finder/core/logger"
	"charge-finder/core/middleware/auth"
	"charge-finder/core/middleware/rayid"
	"charge-finder/core/storage"
	"charge-finder/feature/history"
	"charge-finder/feature/integrity"
	"charge-finder/feature/snapshot"
	"charge-finder/feature/stations"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "charge-finder/docs/swagger"
)

// @title Charge Finder API
// @version 1.0
// @description Reconciled EV charging stations from a public registry and a place directory.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the charge finder server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		cfg, logg := a.cfg, a.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// Search history needs a database; without one the feature stays off.
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed, search history disabled", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to history database", zap.String("driver", db.Dialector.Name()))
		}

		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		historyFeature := history.NewFeature(db, logg)
		var opts []stations.Option
		if rec := historyFeature.Recorder(); rec != nil {
			opts = append(opts, stations.WithRecorder(rec))
		}
		stationService := a.stationService(opts...)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager(logg)
		mgr.Register(stations.NewFeature(stationService))
		mgr.Register(historyFeature)
		mgr.Register(snapshot.NewFeature(snapshot.NewService(store, cfg.Storage, stationService, logg)))
		mgr.Register(integrity.NewFeature(integrity.NewService(store, cfg.Storage, db, a.probes(), logg)))

		// RayID first so every later log line carries it.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			start := time.Now()
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			l.Info("Request completed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Int("status", c.Response().StatusCode()),
				zap.Duration("duration", time.Since(start)),
				zap.String("ip", c.IP()),
			)
			return err
		})

		// Public.
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok", "features": mgr.Loaded()})
		})

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			primary, enrichment := a.engine.Sources()
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("primary", primary),
				zap.String("enrichment", enrichment),
				zap.Bool("auth", cfg.Server.AuthEnabled()))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		timeout := time.Duration(cfg.Server.ShutdownSeconds) * time.Second
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		if err := app.ShutdownWithTimeout(timeout); err != nil {
			logg.Warn("Shutdown incomplete", zap.Error(err))
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
