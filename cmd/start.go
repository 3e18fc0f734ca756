package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rebar-check/core/config"
	"rebar-check/core/loader"
	"rebar-check/core/logger"
	"rebar-check/core/middleware/auth"
	"rebar-check/core/middleware/rayid"
	"rebar-check/core/storage"
	"rebar-check/feature/compare"
	"rebar-check/feature/settings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "rebar-check/docs/swagger"
)

// @title Rebar Check API
// @version 1.0
// @description Compares reinforcing bar schedules (CSV, XML, IFC) per bar mark.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the comparison server",
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

		ifcOpts, err := cfg.Ifc.Options()
		if err != nil {
			logg.Fatal("Invalid IFC configuration", zap.Error(err))
		}

		// 3. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
			BodyLimit:             cfg.Server.BodyLimit(),
		})

		// 4. Initialize Storage (Optional)
		var client storage.Client
		if c, err := storage.NewClient(cfg.Storage); err != nil {
			logg.Warn("Object storage disabled", zap.Error(err))
		} else {
			client = c
		}

		svc := compare.NewService(client, logg, compare.Options{
			Bucket:         cfg.Storage.Bucket,
			Prefix:         cfg.Storage.Prefix,
			Policy:         ifcOpts.Policy,
			CacheTTL:       time.Duration(cfg.Storage.CacheTTLSeconds) * time.Second,
			MaxObjectBytes: int64(cfg.Server.BodyLimit()),
		})

		if client != nil {
			ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Storage.TimeoutSeconds)*time.Second)
			if err := svc.CheckStorage(ctx); err != nil {
				logg.Warn("Stored schedules unavailable", zap.Error(err))
			}
			cancel()
		}

		// 5. Session-scoped IFC mapping
		sessions := session.New(session.Config{
			Expiration:     cfg.Server.SessionTTL(),
			CookieHTTPOnly: true,
			CookieSameSite: fiber.CookieSameSiteLaxMode,
		})
		mappings := settings.NewStore(sessions, ifcOpts.Mapping)

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		mgr.Register(compare.NewFeature(svc, mappings))
		mgr.Register(settings.NewFeature(mappings, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
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

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.Stringer("conflict_policy", ifcOpts.Policy),
				zap.Bool("default_mapping", ifcOpts.Mapping.IsDefault()),
			)
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

// Ensure the session mapping store serves the comparison feature.
var _ compare.MappingProvider = (*settings.Store)(nil)
