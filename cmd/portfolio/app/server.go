package app

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"mfuertes.net/portfolio/internal/config"
	"mfuertes.net/portfolio/internal/portfolio/http"
)

// Serve runs the query server until it fails or the process is signalled.
func Serve(cfg *config.Config) error {
	srv, err := http.NewServerForConfig(cfg)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe(cfg.GetAddr())
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
		return err
	case sig := <-quit:
		slog.Info("Shutting down server", "signal", sig.String())
		if err := srv.Close(); err != nil {
			slog.Error("Error during shutdown", "error", err)
			return err
		}
		slog.Info("Server stopped")
	}
	return nil
}
