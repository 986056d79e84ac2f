package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"mfuertes.net/portfolio/cmd/portfolio/app"
	"mfuertes.net/portfolio/internal/config"
	"mfuertes.net/portfolio/internal/og"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

var (
	cfg = config.New()

	shutdownTelemetry = func() {}

	rootCmd = &cobra.Command{
		Use:               "portfolio",
		Short:             "Portfolio content pipeline and query server",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(*cobra.Command, []string) { shutdownTelemetry() },
	}
	loadCmd = &cobra.Command{
		Use:   "load",
		Short: "Fetch all configured sources and write the content snapshot",
		RunE:  runLoad,
	}
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the query server",
		RunE:  runServe,
	}
	ogCmd = &cobra.Command{
		Use:   "og",
		Short: "Render social preview images from the content snapshot",
		RunE:  runOG,
	}

	// Flags
	addr        string
	sourcesFile string
	contentFile string
	profileFile string
	ogDir       string
	concurrency int
)

func init() {
	rootCmd.PersistentFlags().StringVar(&contentFile, "content", "", "Content snapshot path. Falls back to CONTENT_FILE")
	loadCmd.Flags().StringVar(&sourcesFile, "sources", "", "Sources file path. Falls back to SOURCES_FILE")
	loadCmd.Flags().IntVar(&concurrency, "concurrency", 0, "Items fetched in parallel per source. Falls back to LOAD_CONCURRENCY")
	serveCmd.Flags().StringVar(&addr, "addr", "", "Address to run the server on (host:port). If empty, uses HOST and PORT environment variables")
	serveCmd.Flags().StringVar(&profileFile, "profile", "", "Profile data path. Falls back to PROFILE_FILE")
	ogCmd.Flags().StringVar(&ogDir, "out", "", "Output directory for images. Falls back to OG_DIR")
	rootCmd.AddCommand(loadCmd, serveCmd, ogCmd)
}

func setup(cmd *cobra.Command, _ []string) error {
	for key, val := range map[string]string{
		"SOURCES_FILE": sourcesFile,
		"CONTENT_FILE": contentFile,
		"PROFILE_FILE": profileFile,
		"OG_DIR":       ogDir,
	} {
		if val != "" {
			cfg.Set(key, val)
		}
	}
	if addr != "" {
		cfg.Set("ADDR", addr)
	}
	if concurrency > 0 {
		cfg.Set("LOAD_CONCURRENCY", concurrency)
	}
	config.SetupLog(cfg)
	shutdown, err := config.SetupTelemetry(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	shutdownTelemetry = shutdown
	return nil
}

func runLoad(cmd *cobra.Command, _ []string) error {
	config.StartRun()
	if err := cfg.ReadSourcesFile(cfg.GetSourcesFile()); err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	l, err := app.NewLoaderForConfig(cfg)
	if err != nil {
		return err
	}
	catalog, report, err := l.Run(ctx)
	if err != nil {
		return fmt.Errorf("content snapshot %s left unchanged: %w", cfg.GetContentFile(), err)
	}
	if err := catalog.SaveFile(cfg.GetContentFile()); err != nil {
		return err
	}
	slog.Info("Content snapshot written",
		"path", cfg.GetContentFile(),
		"records", catalog.Len(),
		"excluded", report.Excluded,
		"skipped", report.Skipped,
		"failed", report.Failed,
	)
	return nil
}

func runServe(*cobra.Command, []string) error {
	if err := cfg.ReadSourcesFile(cfg.GetSourcesFile()); err == nil {
		cfg.Watch()
	}
	return app.Serve(cfg)
}

func runOG(cmd *cobra.Command, _ []string) error {
	n, err := app.GenerateImages(cmd.Context(), cfg, og.FrameRenderer{})
	if err != nil {
		return err
	}
	slog.Info("Preview images written", "dir", cfg.GetOGDir(), "images", n)
	return nil
}
