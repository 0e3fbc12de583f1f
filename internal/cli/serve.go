package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	clierrors "github.com/temps-sh/changelint/internal/errors"
	"github.com/temps-sh/changelint/internal/server"
)

var serveAddrFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the demo web service fixture",
	Long: `Run the demo web service used as a deployment fixture. It exposes
exactly three routes: an index page, a health probe at /healthz, and an
HTML rendering of the changelog at /changelog.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddrFlag, "addr", "", "Listen address (default from config, :8080)")
}

func runServe(cmd *cobra.Command) error {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	addr := cfg.ServeAddr
	if serveAddrFlag != "" {
		addr = serveAddrFlag
	}

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      server.New(cfg.ChangelogPath, log),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting fixture server", "addr", addr, "changelog", cfg.ChangelogPath)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return clierrors.WrapWithMessage(err, clierrors.Runtime, "fixture server",
			"check that the listen address is free")
	}
	return nil
}
