package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"alkhair/internal/metrics"

	"github.com/sirupsen/logrus"
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (s *Service) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		elapsed := time.Since(started)
		metrics.HTTPRequests.WithLabelValues(r.Method, strconv.Itoa(rw.statusCode)).Inc()
		metrics.HTTPDuration.WithLabelValues(r.Method).Observe(elapsed.Seconds())

		entry := s.logger.WithFields(logrus.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rw.statusCode,
			"duration_ms": elapsed.Milliseconds(),
		})
		if r.URL.Path == "/healthz" || r.URL.Path == "/metrics" {
			entry.Debug("http request")
			return
		}
		entry.Info("http request")
	})
}

// JSONContent sets the API content type.
func (s *Service) JSONContent(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

func (s *Service) StripTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		if path != "/" && strings.HasSuffix(path, "/") {
			newURL := *r.URL
			newURL.Path = strings.TrimSuffix(path, "/")

			http.Redirect(w, r, newURL.String(), http.StatusPermanentRedirect)
			return
		}

		next.ServeHTTP(w, r)
	})
}
