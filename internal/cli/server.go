// filepath: internal/cli/server.go
package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookmarkhub/internal/api/handlers"
	"bookmarkhub/internal/config"
	"bookmarkhub/internal/httpserver"
	"bookmarkhub/internal/logging"
	"bookmarkhub/internal/repository"
	"bookmarkhub/internal/services"
)

// runServer contains the logic to start the HTTP server with graceful shutdown.
func runServer(globalOptions *GlobalOptions, serveOptions *ServeOptions) error {
	cfg, err := loadConfig(globalOptions, serveOptions)
	if err != nil {
		return err
	}
	store := config.NewStore(cfg)

	if serveOptions.WatchConfig {
		store.Watch(globalOptions.configPath(), func(c *config.Config) error {
			return prepareConfig(c, globalOptions, serveOptions)
		})
	}

	repo, err := repository.NewRepository(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize repository: %w", err)
	}
	defer repo.Close()

	// --- Conditional Auto-migrate on startup ---
	if err := repo.EnsureSchemaBootstrapped(); err != nil {
		logging.Log.Errorf("Failed to bootstrap database: %v", err)
		return err
	}

	if err := repo.ValidateSchema(); err != nil {
		logging.Log.Error("---------------------------------------------------------------")
		logging.Log.Errorf("CRITICAL DATABASE ERROR: %v", err)
		logging.Log.Error("---------------------------------------------------------------")
		return err
	}

	// Service Initialization
	bookmarksService := services.NewBookmarksService(store, repo)
	infoService := services.NewInfoService(store, bookmarksService)

	h := handlers.NewHandlers(infoService)
	r := httpserver.SetupRouter(h)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// --- Graceful Shutdown Setup ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		logging.Log.Infof("Server %s starting on %s (Max Sync Size: %d bytes)", cfg.Version, serverAddr, cfg.MaxSyncSizeBytes)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case <-stop:
	case err := <-serverErr:
		return fmt.Errorf("server failed to start: %w", err)
	}
	logging.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Log.Errorf("Server forced to shutdown: %v", err)
		return err
	}

	logging.Log.Info("Server exiting")
	return nil
}
