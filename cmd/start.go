package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"focusdeck/core/config"
	"focusdeck/core/database"
	"focusdeck/core/loader"
	"focusdeck/core/logger"
	"focusdeck/core/middleware/auth"
	"focusdeck/core/middleware/rayid"
	"focusdeck/core/storage"

	"focusdeck/feature/notes"
	"focusdeck/feature/siteblock"
	"focusdeck/feature/soundscape"
	"focusdeck/feature/tabstash"
	"focusdeck/feature/tasks"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "focusdeck/docs/swagger"
)

// @title FocusDeck API
// @version 1.0
// @description Sync and media API for the FocusDeck productivity app.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the focusdeck server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if !cfg.Server.IsConfigured() {
			logg.Fatal("SERVER_JWT_SECRET is required; refusing to start without request authentication")
		}

		// 3. Connect to Database (Optional)
		// Without a database only the soundscape feature can run.
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to database", zap.String("name", cfg.Database.Name))
		}

		// 4. Initialize Storage (Optional)
		var store storage.Client
		if client, err := storage.NewClient(cfg.Storage); err != nil {
			logg.Warn("Optional storage connection failed", zap.Error(err))
		} else {
			store = client
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
			BodyLimit:             cfg.Server.BodyLimitBytes,
		})

		// 6. Register Features
		mgr := loader.NewManager()
		mgr.Register(tasks.NewFeature(db, logg))
		mgr.Register(notes.NewFeature(db, logg))
		mgr.Register(siteblock.NewFeature(db, logg))
		mgr.Register(tabstash.NewFeature(db, logg))
		mgr.Register(soundscape.NewFeature(store, cfg.Storage.Bucket, logg))

		// Middleware: RayID first so everything is traceable.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Auth: every feature route acts on behalf of an owner.
		app.Use(auth.New(auth.Config{Secret: cfg.Server.JwtSecret}))

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		logg.Info("Features loaded", zap.Strings("enabled", mgr.Enabled()))

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
