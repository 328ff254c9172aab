// Package server exposes the engine's four queries over a small HTTP API.
package server

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/fitfast/fitfast/internal/engine"
)

// DefaultRateLimit is the per-client request rate applied when the
// configuration doesn't set one.
const DefaultRateLimit = 10

// Server holds the shared engine snapshot and request plumbing.
// The engine is read-only, so handlers need no locking around it.
type Server struct {
	engine *engine.Engine
	log    *slog.Logger

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	perSec   rate.Limit
	burst    int
}

// New creates a server around a loaded engine snapshot.
// rateLimit is requests per second per client; <= 0 uses DefaultRateLimit.
func New(eng *engine.Engine, logger *slog.Logger, rateLimit int) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if rateLimit <= 0 {
		rateLimit = DefaultRateLimit
	}
	return &Server{
		engine:   eng,
		log:      logger,
		limiters: make(map[string]*rate.Limiter),
		perSec:   rate.Limit(rateLimit),
		burst:    rateLimit * 2,
	}
}

// Router builds the HTTP handler with the full middleware stack.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Use(s.rateLimit)
		r.Post("/size", s.handleSize)
		r.Post("/outfit", s.handleOutfit)
		r.Post("/outfits", s.handleOutfits)
		r.Post("/similar", s.handleSimilar)
	})

	return r
}

// requestLogger logs one line per request with method, path, status and latency.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"remote", r.RemoteAddr,
		)
	})
}

// rateLimit enforces a per-client token bucket keyed by remote address.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiterFor(r.RemoteAddr).Allow() {
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) limiterFor(client string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	lim, ok := s.limiters[client]
	if !ok {
		lim = rate.NewLimiter(s.perSec, s.burst)
		s.limiters[client] = lim
	}
	return lim
}
