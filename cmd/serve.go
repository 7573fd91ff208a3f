package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gamedata-manager/core/loader"
	"gamedata-manager/core/logger"
	"gamedata-manager/core/middleware/auth"
	"gamedata-manager/core/middleware/rayid"
	"gamedata-manager/feature/game"
	"gamedata-manager/feature/inspect"
	"gamedata-manager/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the game session over HTTP",
	Long:  `Opens a game session and starts the HTTP server with the inspection and integrity features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// 1. Load configuration and logger
		rt, err := loadRuntime(cmd)
		if err != nil {
			return err
		}
		logg := rt.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 2. Save journal (optional)
		var opts []game.Option
		j := rt.openJournal()
		if j != nil {
			opts = append(opts, game.WithRecorder(j))
			logg.Info("Save journal enabled", zap.String("driver", rt.cfg.Database.Driver))
		}

		// 3. Game session
		m, err := rt.openSession(ctx, opts...)
		if err != nil {
			return err
		}

		// 4. Features
		integritySvc, err := rt.integrityService(j)
		if err != nil {
			return err
		}
		mgr := loader.NewManager()
		mgr.Register(inspect.NewFeature(m, rt.cfg.Server.ReadOnly, logg))
		mgr.Register(integrity.NewFeature(integritySvc))

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// RayID first so every log line can be traced
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
		app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			return fmt.Errorf("failed to load features: %w", err)
		}

		// 5. Start server
		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server",
				zap.String("port", rt.cfg.Server.Port),
				zap.String("session_id", m.SessionID()),
				zap.String("version", m.Version().String()),
			)
			errCh <- app.Listen(rt.cfg.Server.Address())
		}()

		// 6. Graceful shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return fmt.Errorf("server failed: %w", err)
		case <-c:
		}

		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
