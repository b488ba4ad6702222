package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Route binds a path to its handler. Handlers check methods themselves so
// that every reply, 405 included, keeps the JSON envelope.
type Route struct {
	Pattern string
	Handler http.HandlerFunc
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Routes          []Route
}

type Server struct {
	srv             *http.Server
	log             zerolog.Logger
	shutdownTimeout time.Duration
}

func New(cfg Config, logger zerolog.Logger) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              cfg.Addr,
			Handler:           NewHandler(logger, cfg.Routes),
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		log:             logger,
		shutdownTimeout: cfg.ShutdownTimeout,
	}
}

// NewHandler builds the mux for routes and wraps it with request id, access
// log and panic recovery.
func NewHandler(logger zerolog.Logger, routes []Route) http.Handler {
	mux := http.NewServeMux()
	for _, rt := range routes {
		mux.HandleFunc(rt.Pattern, rt.Handler)
	}
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusNotFound, "Not found")
	})

	return chain(mux,
		withLogger(logger),
		RequestID,
		AccessLog,
		Recovery,
	)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.srv.Addr).Msg("listening")
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func writeMessage(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
