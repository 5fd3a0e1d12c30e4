package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/radikals/radikal/internal/assets"
	"github.com/radikals/radikal/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the deck to browsers",
	Long: `Start the deck server: a REST API for editing, a websocket feed of
carousel and camera frames, and an offline asset gateway. Runs until
interrupted.`,
	Run: runServe,
}

var (
	serveListen   string
	serveOrigin   string
	serveLogLevel string
)

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "Listen address (default from config)")
	serveCmd.Flags().StringVar(&serveOrigin, "origin", "", "Asset origin to precache and proxy")
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

func runServe(cmd *cobra.Command, args []string) {
	c := initDeckContext()
	defer c.Close()

	var level slog.Level
	switch serveLogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	listen := serveListen
	if listen == "" {
		listen = c.Config.Listen
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cache *assets.Cache
	if serveOrigin != "" {
		fetcher := assets.NewHTTPFetcher(nil, assets.DefaultRetryConfig())
		var err error
		cache, err = assets.Open(c.Config.AssetCachePath(), serveOrigin, fetcher)
		if err != nil {
			exitError("failed to open asset cache: %v", err)
		}
		defer cache.Close()

		if err := cache.Precache(ctx, assets.DefaultCoreAssets); err != nil {
			logger.Warn("precache incomplete, serving network-first only", "error", err)
		} else if err := cache.ActivateVersion(); err != nil {
			logger.Warn("failed to drop stale cache versions", "error", err)
		}
	}

	srv := server.New(c.Deck, server.Options{
		Listen: listen,
		Cache:  cache,
		Logger: logger,
	})

	fmt.Printf("Serving deck %q on http://%s\n", c.Config.Title, listen)
	if err := srv.Run(ctx); err != nil {
		exitError("server error: %v", err)
	}
}
