// Package server exposes the read-only member API: membership status, the
// member directory and proposals, gated by the membership NFT.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/oklog/run"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second

	// RequestIDHeader carries the request id in both directions
	RequestIDHeader = "X-Request-ID"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// RequestID returns the id assigned to the request, if any
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// Server is the member API
type Server struct {
	log       *slog.Logger
	gate      MembershipChecker
	members   MemberLister
	proposals ProposalLister
	contracts ContractsChecker
	metrics   *Metrics
	handler   http.Handler
}

// New creates a new member API server
func New(log *slog.Logger, gate MembershipChecker, members MemberLister, proposals ProposalLister, contracts ContractsChecker) *Server {
	s := &Server{
		log:       log,
		gate:      gate,
		members:   members,
		proposals: proposals,
		contracts: contracts,
		metrics:   NewMetrics(),
	}
	s.handler = s.routes()
	return s
}

// Handler returns the routed API with access logging, CORS and request ids
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() http.Handler {
	router := mux.NewRouter()
	router.Use(s.requestID, s.metrics.Middleware)

	router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	router.HandleFunc("/readyz", s.handleReady).Methods(http.MethodGet)
	router.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/membership/{address}", s.handleMembership).Methods(http.MethodGet)
	api.HandleFunc("/members", s.handleMembers).Methods(http.MethodGet)
	api.HandleFunc("/proposals", s.handleProposals).Methods(http.MethodGet)

	cors := handlers.CORS(
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", RequestIDHeader}),
		handlers.ExposedHeaders([]string{RequestIDHeader}),
	)
	return handlers.CombinedLoggingHandler(newLogWriter(s.log), cors(router))
}

// requestID assigns every request an id, keeping one sent by the client
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

// Run serves on addr until ctx is done or the process is interrupted
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		ErrorLog:          slog.NewLogLogger(s.log.Handler(), slog.LevelError),
	}

	var g run.Group
	{
		g.Add(func() error {
			s.log.Info("member API listening", "addr", addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("failed to serve: %w", err)
			}
			return nil
		}, func(error) {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				s.log.Warn("failed to shut down cleanly", "error", err)
			}
		})
	}
	{
		g.Add(run.SignalHandler(ctx, os.Interrupt, syscall.SIGTERM))
	}

	err := g.Run()
	var sigErr run.SignalError
	if errors.As(err, &sigErr) {
		s.log.Info("member API stopped", "signal", sigErr.Signal.String())
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// logWriter forwards access log lines to the structured logger. The
// combined log handler writes one line per request.
type logWriter struct {
	log *slog.Logger
}

func newLogWriter(log *slog.Logger) io.Writer {
	return &logWriter{log: log}
}

func (w *logWriter) Write(b []byte) (int, error) {
	w.log.Debug("http", "access", strings.TrimSpace(string(b)))
	return len(b), nil
}
