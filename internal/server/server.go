// Package server exposes the scraped fuel prices over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/fuelwatch/kayseri/internal/translations"
	"github.com/fuelwatch/kayseri/pkg/api"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/httprate"
)

const (
	PricesPath = "/api/akaryakit-fiyatlari/kayseri"
	HealthPath = "/healthz"

	requestsPerMinute = 20
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
)

// PriceFetcher is implemented by *api.FuelPriceAPI.
type PriceFetcher interface {
	FetchPrices(ctx context.Context) (api.PriceReport, error)
}

// Config holds the listener settings.
type Config struct {
	Addr string
	Port int
}

// Server serves the price endpoint.
type Server struct {
	prices PriceFetcher
	logger *httplog.Logger
	text   translations.Translations
}

// New creates a Server. The logger is used both for request logging and
// for reporting failed fetches.
func New(prices PriceFetcher, logger *httplog.Logger, lang string) *Server {
	return &Server{
		prices: prices,
		logger: logger,
		text:   translations.Get(lang),
	}
}

// Router builds the HTTP handler with all middleware applied.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(httplog.RequestLogger(s.logger, []string{HealthPath}))
	r.Use(middleware.Recoverer)

	r.Get(HealthPath, s.handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(requestsPerMinute, time.Minute))
		r.Get(PricesPath, s.handlePrices)
	})

	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, cfg Config) error {
	addr := fmt.Sprintf("%s:%d", cfg.Addr, cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) handlePrices(w http.ResponseWriter, r *http.Request) {
	report, err := s.prices.FetchPrices(r.Context())
	if err != nil {
		httplog.LogEntrySetField(r.Context(), "fetch_error", slog.StringValue(err.Error()))
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: s.text.FetchFailed})
		return
	}

	if len(report) == 0 {
		s.logger.Warn("price table has no complete district rows")
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: s.text.FetchFailed})
		return
	}

	s.writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("error writing response", "error", err)
	}
}
