package httpadapter

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/metar-etl/internal/domain"
)

const maxReportBytes = 8 << 10

var icaoPattern = regexp.MustCompile(`^[A-Za-z0-9]{4}$`)

// Server exposes health, readiness, metrics, the decode API, and the live
// observation feed.
type Server struct {
	httpServer *http.Server
	fetcher    domain.StationFetcher
	logger     *slog.Logger
}

// NewServer creates the HTTP server. live serves GET /v1/live and may be nil,
// as may fetcher, which disables GET /v1/stations/{icao}.
func NewServer(addr string, ready sharedobs.ReadinessChecker, fetcher domain.StationFetcher, live http.Handler, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		fetcher: fetcher,
		logger:  logger,
	}

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("POST /v1/decode", s.handleDecode)
	if fetcher != nil {
		mux.HandleFunc("GET /v1/stations/{icao}", s.handleStation)
	}
	if live != nil {
		mux.Handle("GET /v1/live", live)
	}

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// handleDecode decodes a report posted as plain text, a NOAA station file, or
// a JSON envelope carrying a raw report.
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxReportBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, err)
		return
	}

	obs, err := domain.ParseRawEvent(domain.RawEvent{Value: body})
	if err == nil {
		obs, err = domain.EnrichObservation(obs)
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, obs)
}

// handleStation fetches and decodes the latest report of a station.
func (s *Server) handleStation(w http.ResponseWriter, r *http.Request) {
	icao := r.PathValue("icao")
	if !icaoPattern.MatchString(icao) {
		writeError(w, http.StatusBadRequest, errors.New("station must be a four character ICAO identifier"))
		return
	}
	icao = strings.ToUpper(icao)

	b, err := s.fetcher.Latest(r.Context(), icao)
	switch {
	case errors.Is(err, domain.ErrStationNotFound):
		writeError(w, http.StatusNotFound, err)
		return
	case err != nil:
		s.logger.Warn("station lookup failed", "station", icao, "error", err)
		writeError(w, http.StatusBadGateway, err)
		return
	}

	obs, err := domain.EnrichObservation(domain.Observation{
		Station:      icao,
		Raw:          b.Raw,
		ReportSource: domain.SourceNOAA,
		ObservedAt:   b.IssuedAt,
	})
	if err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, obs)
}

func writeError(w http.ResponseWriter, status int, err error) {
	sharedobs.WriteJSON(w, status, map[string]string{"error": err.Error()})
}
