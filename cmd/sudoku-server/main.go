package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	httpadapter "svw.info/sudokusolve/internal/adapters/http"
	"svw.info/sudokusolve/internal/adapters/ws"
	"svw.info/sudokusolve/internal/generator"
	"svw.info/sudokusolve/internal/hint"
	"svw.info/sudokusolve/internal/infrastructure/storage"
	"svw.info/sudokusolve/internal/ports"
	"svw.info/sudokusolve/internal/solver"
	"svw.info/sudokusolve/internal/usecase"
	"svw.info/sudokusolve/internal/validator"
	"svw.info/sudokusolve/internal/verify"
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

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	persist := flag.String("persist-path", "./data", "save directory")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	verifyURL := flag.String("verify-url", "", "remote verification endpoint (empty disables /api/verify)")
	verifyConns := flag.Int("verify-connections", 4, "max connections to the verifier")
	flag.Parse()

	lvl := slog.LevelInfo
	switch strings.ToLower(*levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	_ = os.MkdirAll(*persist, 0o755)

	// Wire providers → use cases → adapters
	s := solver.NewBacktrackingSolver()
	g := generator.NewUniqueGenerator(s)
	v := validator.New()
	st := storage.NewFS(*persist)
	hin := hint.NewSingles()
	var vf ports.Verifier
	if *verifyURL != "" {
		vf = verify.NewClient(*verifyURL, *verifyConns, logger)
	}
	uc := usecase.NewService(s, g, v, hin, vf, st)

	mux := http.NewServeMux()
	httpadapter.New(uc).Register(mux)
	ws.New(uc, logger).Register(mux)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", *addr, "persist", *persist, "verify", *verifyURL)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
