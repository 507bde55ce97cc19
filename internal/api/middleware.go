package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type contextKey string

const requestIDContextKey = contextKey("request_id")

const requestIDHeader = "X-Request-ID"

// RequestID keeps a client supplied X-Request-ID or assigns a new one, and
// echoes it on the response.
func (s *Server) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)

		ctx := context.WithValue(r.Context(), requestIDContextKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDContextKey).(string); ok {
		return id
	}
	return ""
}

func (s *Server) RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		duration := time.Since(start).Seconds()

		path := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}

		s.metrics.reqCount.WithLabelValues(r.Method, path, strconv.Itoa(status)).Inc()
		s.metrics.reqDuration.WithLabelValues(r.Method, path).Observe(duration)

		s.logger.Info("http_request",
			zap.String("method", r.Method),
			zap.String("path", path),
			zap.String("uri", r.URL.RequestURI()),
			zap.Int("status", status),
			zap.Float64("duration", duration),
			zap.String("client_ip", r.RemoteAddr),
			zap.String("request_id", GetRequestID(r.Context())),
		)
	})
}

func (s *Server) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				s.logger.Error("panic_recovered",
					zap.Any("panic", rec),
					zap.String("request_id", GetRequestID(r.Context())),
				)
				s.metrics.errorCount.WithLabelValues("recoverer", "panic").Inc()
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
