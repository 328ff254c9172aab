package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/fitfast/fitfast/internal/config"
	"github.com/fitfast/fitfast/internal/server"
)

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, else :8080)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the engine queries over HTTP",
	Long: `Serve the four engine queries over HTTP.

Endpoints:
  POST /api/size      body: user_measurements, garment_type, limit, min_score
  POST /api/outfit    body: item_id, theme, max_items, max_price, user_measurements, require_fit
  POST /api/outfits   body: item_id, count, max_price, user_measurements
  POST /api/similar   body: item_id, limit, same_category, min_similarity
  GET  /health

The engine snapshot is loaded once at startup and shared read-only
across requests. A .env file in the working directory is loaded when
present; FF_ADDR overrides the listen address.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	// Missing .env is fine; only explicit files matter in production
	_ = godotenv.Load()

	root := mustFindRepository()

	cfg, err := config.Load(root)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	addr := serveAddr
	if addr == "" {
		addr = os.Getenv("FF_ADDR")
	}
	if addr == "" {
		addr = cfg.ServerAddr
	}
	if addr == "" {
		addr = config.GetServerAddr()
	}
	if addr == "" {
		addr = ":8080"
	}

	eng := mustLoadEngine(root)

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	srv := server.New(eng, logger, config.GetRateLimit())

	items, sizeRecords, embeddings := eng.Counts()
	logger.Info("serving",
		"addr", addr,
		"items", items,
		"size_records", sizeRecords,
		"embeddings", embeddings,
	)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	if err := httpServer.ListenAndServe(); err != nil {
		exitWithError(ExitError, "serving: %v", err)
	}

	return nil
}
