package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"skc.dev/internal/animation"
	"skc.dev/internal/content"
	"skc.dev/internal/generation"
	"skc.dev/internal/logging"
	"skc.dev/internal/services"
	"skc.dev/static"
)

var (
	contentPath string
	mailEnabled bool
	workers     int
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "generate <output-dir>",
	Short: "Export the portfolio as static files",
	Long: `Renders the portfolio page to index.html, writes the content and
animation registry as JSON, and copies the embedded static assets so the
site can be served by any static host.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&contentPath, "content", "", "content file (.yaml, .yml or .json); defaults to the embedded portfolio")
	rootCmd.Flags().BoolVar(&mailEnabled, "with-contact", false, "render the contact form as usable (requires the contact API next to the site)")
	rootCmd.Flags().IntVar(&workers, "workers", 4, "concurrent file writes")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(logLevel, true)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	portfolio, err := content.Load(contentPath)
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}
	ps, err := services.NewPortfolioService(portfolio, animation.Page())
	if err != nil {
		return err
	}

	exporter := generation.NewExporter(ps, static.FS(), generation.Options{
		MailEnabled: mailEnabled,
		Workers:     workers,
		Logger:      logger,
	})
	files, err := exporter.Export(args[0])
	if err != nil {
		return err
	}

	for _, f := range files {
		logger.Info("created", zap.String("path", f.Path), zap.Int64("bytes", f.Bytes))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Done! %d files written to %s\n", len(files), args[0])
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
