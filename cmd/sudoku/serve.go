package main

import (
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	httpadapter "svw.info/sudoku-engine/internal/adapters/http"
	"svw.info/sudoku-engine/internal/config"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", time.Since(start).Round(time.Millisecond),
		)
	})
}

func slogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the engine as a JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, _ := cmd.Flags().GetString("config")
		cfg := config.Default()
		if cfgPath != "" {
			var err error
			if cfg, err = config.Load(cfgPath); err != nil {
				return err
			}
		}
		// flags set explicitly win over the config file
		if cmd.Flags().Changed("addr") {
			cfg.Addr, _ = cmd.Flags().GetString("addr")
		}
		if cmd.Flags().Changed("persist-path") {
			cfg.PersistPath, _ = cmd.Flags().GetString("persist-path")
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
		}
		if cmd.Flags().Changed("solver") {
			cfg.Solver, _ = cmd.Flags().GetString("solver")
		}

		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel(cfg.LogLevel)}))
		if err := os.MkdirAll(cfg.PersistPath, 0o755); err != nil {
			return err
		}

		uc := buildService(cfg.Solver, cfg.PersistPath)
		h := httpadapter.New(uc)

		mux := http.NewServeMux()
		h.Register(mux)

		srv := &http.Server{
			Addr:              cfg.Addr,
			Handler:           requestLogger(logger, mux),
			ReadHeaderTimeout: 5 * time.Second,
		}
		logger.Info("listening", "addr", cfg.Addr, "persist", cfg.PersistPath, "solver", cfg.Solver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().String("persist-path", "./data", "save directory")
	serveCmd.Flags().String("log-level", "info", "debug|info|warn|error")
	serveCmd.Flags().String("solver", "dlx", "solver for /api/solve: dlx|backtrack")
	serveCmd.Flags().String("config", "", "TOML config file (flags override it)")
}
