package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var previewPort int

var previewCmd = &cobra.Command{
	Use:   "preview [artifact]",
	Short: "Serve a built artifact locally",
	Long:  "Serves the HTML artifact over HTTP for local review. Defaults to the configured artifact output path.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		path := cfg.Artifact.OutPath
		if len(args) == 1 {
			path = args[0]
		}
		if _, err := os.Stat(path); err != nil {
			return eris.Wrapf(err, "preview: artifact %s not found (run build first)", path)
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return eris.Wrap(err, "preview: resolve artifact path")
		}

		r := chi.NewRouter()
		r.Use(chimw.Recoverer)
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "OPTIONS"},
		}))

		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
		})
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			http.ServeFile(w, req, abs)
		})

		port := previewPort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: r,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down preview server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("serving artifact",
			zap.String("path", abs),
			zap.Int("port", port),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "preview: listen")
		}

		return nil
	},
}

func init() {
	previewCmd.Flags().IntVar(&previewPort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(previewCmd)
}
