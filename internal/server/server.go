// Package server exposes both conversions as a small JSON API with
// Prometheus metrics.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"codeberg.org/snonux/annatar/internal/converter"
)

// ConvertRequest is the JSON request body for the conversion endpoints
type ConvertRequest struct {
	Text        string `json:"text"`
	Punctuation bool   `json:"punctuation,omitempty"`
}

// ConvertResponse is the JSON response of the conversion endpoints
type ConvertResponse struct {
	Input  string `json:"input"`
	Output string `json:"output"`
	Mode   string `json:"mode"`
}

// ErrorResponse is returned with every non-2xx status
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type metrics struct {
	conversions *prometheus.CounterVec
	inputBytes  *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "annatar_conversions_total",
			Help: "Number of texts converted, by mode.",
		}, []string{"mode"}),
		inputBytes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "annatar_conversion_input_bytes",
			Help:    "Size of converted texts in bytes, by mode.",
			Buckets: prometheus.ExponentialBuckets(16, 4, 7),
		}, []string{"mode"}),
	}
	reg.MustRegister(m.conversions, m.inputBytes)
	return m
}

// Server serves the conversion API
type Server struct {
	addr     string
	registry *prometheus.Registry
	metrics  *metrics
	mux      *http.ServeMux
}

// New creates a server listening on addr once Run is called
func New(addr string) *Server {
	registry := prometheus.NewRegistry()
	s := &Server{
		addr:     addr,
		registry: registry,
		metrics:  newMetrics(registry),
		mux:      http.NewServeMux(),
	}
	s.RegisterHTTPHandlers("/api/", s.mux)
	s.mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	return s
}

// Handler returns the root handler, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.mux
}

// RegisterHTTPHandlers registers the API handlers under prefix, which
// must include the trailing slash.
func (s *Server) RegisterHTTPHandlers(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(prefix+"transliterate", s.handleConvert(converter.ModeTengwar))
	mux.HandleFunc(prefix+"translate", s.handleConvert(converter.ModeBlackSpeech))
	mux.HandleFunc(prefix+"health", s.handleHealth)
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Serving on %s", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Printf("Server stopped")
	return nil
}

func (s *Server) handleConvert(mode string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "use POST")
			return
		}

		var req ConvertRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}

		conv, err := converter.NewConverter(&converter.Config{Mode: mode, Punctuation: req.Punctuation})
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, "internal", err.Error())
			return
		}

		s.metrics.conversions.WithLabelValues(mode).Inc()
		s.metrics.inputBytes.WithLabelValues(mode).Observe(float64(len(req.Text)))

		writeJSON(w, http.StatusOK, ConvertResponse{
			Input:  req.Text,
			Output: conv.Convert(req.Text),
			Mode:   conv.Name(),
		})
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "use GET")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// writeJSONError writes a JSON error response.
func writeJSONError(w http.ResponseWriter, status int, errorCode, message string) {
	writeJSON(w, status, ErrorResponse{Error: errorCode, Message: message})
}
